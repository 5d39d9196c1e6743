package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
)

// PostgresStatusLogRepository implements StatusLogRepository using PostgreSQL
type PostgresStatusLogRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresStatusLogRepository creates a new PostgresStatusLogRepository
func NewPostgresStatusLogRepository(pool *pgxpool.Pool) *PostgresStatusLogRepository {
	return &PostgresStatusLogRepository{pool: pool}
}

// Create appends one status transition record
func (r *PostgresStatusLogRepository) Create(ctx context.Context, entry *domain.StatusLog) error {
	query := `
		INSERT INTO status_logs (id, service_id, org_id, old_status, new_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.ServiceID,
		entry.OrgID,
		entry.OldStatus,
		entry.NewStatus,
		entry.CreatedAt,
	)
	return err
}

// ListByService retrieves a service's transitions, newest first
func (r *PostgresStatusLogRepository) ListByService(ctx context.Context, serviceID string, limit int) ([]*domain.StatusLog, error) {
	query := `
		SELECT id, service_id, org_id, old_status, new_status, created_at
		FROM status_logs
		WHERE service_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, serviceID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*domain.StatusLog{}
	for rows.Next() {
		entry := &domain.StatusLog{}
		err := rows.Scan(
			&entry.ID,
			&entry.ServiceID,
			&entry.OrgID,
			&entry.OldStatus,
			&entry.NewStatus,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
