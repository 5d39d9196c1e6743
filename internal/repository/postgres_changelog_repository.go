package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
)

// PostgresChangeLogRepository implements ChangeLogRepository using PostgreSQL
type PostgresChangeLogRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresChangeLogRepository creates a new PostgresChangeLogRepository
func NewPostgresChangeLogRepository(pool *pgxpool.Pool) *PostgresChangeLogRepository {
	return &PostgresChangeLogRepository{pool: pool}
}

const changeLogColumns = `id, entity_id, entity_type, change_kind, changes, org_id, actor_id, created_at`

// Create appends one change record
func (r *PostgresChangeLogRepository) Create(ctx context.Context, entry *domain.ChangeLog) error {
	query := `
		INSERT INTO change_logs (id, entity_id, entity_type, change_kind, changes, org_id, actor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	changes, err := json.Marshal(entry.Changes)
	if err != nil {
		return fmt.Errorf("marshal changes: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		entry.ID,
		entry.EntityID,
		entry.EntityType,
		entry.ChangeKind,
		changes,
		entry.OrgID,
		entry.ActorID,
		entry.CreatedAt,
	)
	return err
}

// List retrieves change records across all organizations, newest first
func (r *PostgresChangeLogRepository) List(ctx context.Context, limit int) ([]*domain.ChangeLog, error) {
	query := `SELECT ` + changeLogColumns + ` FROM change_logs ORDER BY created_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

// ListByOrg retrieves one organization's change records, newest first
func (r *PostgresChangeLogRepository) ListByOrg(ctx context.Context, orgID string, limit int) ([]*domain.ChangeLog, error) {
	query := `SELECT ` + changeLogColumns + ` FROM change_logs WHERE org_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.pool.Query(ctx, query, orgID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *PostgresChangeLogRepository) collect(rows pgx.Rows) ([]*domain.ChangeLog, error) {
	entries := []*domain.ChangeLog{}
	for rows.Next() {
		entry := &domain.ChangeLog{}
		var changes []byte
		err := rows.Scan(
			&entry.ID,
			&entry.EntityID,
			&entry.EntityType,
			&entry.ChangeKind,
			&changes,
			&entry.OrgID,
			&entry.ActorID,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(changes, &entry.Changes); err != nil {
			return nil, fmt.Errorf("unmarshal changes: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
