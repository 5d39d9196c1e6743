package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
)

// PostgresServiceRepository implements ServiceRepository using PostgreSQL
type PostgresServiceRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresServiceRepository creates a new PostgresServiceRepository
func NewPostgresServiceRepository(pool *pgxpool.Pool) *PostgresServiceRepository {
	return &PostgresServiceRepository{pool: pool}
}

const serviceColumns = `id, org_id, name, COALESCE(description, '') as description, status, COALESCE(created_by::text, '') as created_by, created_by_username, created_at, updated_at`

// Create creates a new service
func (r *PostgresServiceRepository) Create(ctx context.Context, svc *domain.Service) error {
	query := `
		INSERT INTO services (id, org_id, name, description, status, created_by, created_by_username, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	var createdBy interface{}
	if svc.CreatedBy != "" {
		createdBy = svc.CreatedBy
	}

	_, err := r.pool.Exec(ctx, query,
		svc.ID,
		svc.OrgID,
		svc.Name,
		svc.Description,
		svc.Status,
		createdBy,
		svc.CreatedByUsername,
		svc.CreatedAt,
		svc.UpdatedAt,
	)
	return err
}

// GetByID retrieves a service by ID
func (r *PostgresServiceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	return r.scanService(r.pool.QueryRow(ctx, query, id))
}

// ListByOrg retrieves an organization's services, newest first
func (r *PostgresServiceRepository) ListByOrg(ctx context.Context, orgID string) ([]*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE org_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []*domain.Service{}
	for rows.Next() {
		svc, err := r.scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, rows.Err()
}

// Update updates a service
func (r *PostgresServiceRepository) Update(ctx context.Context, svc *domain.Service) error {
	query := `
		UPDATE services
		SET name = $2, description = $3, status = $4, updated_at = $5
		WHERE id = $1
	`
	now := time.Now().UTC()
	svc.UpdatedAt = &now

	_, err := r.pool.Exec(ctx, query,
		svc.ID,
		svc.Name,
		svc.Description,
		svc.Status,
		svc.UpdatedAt,
	)
	return err
}

// Delete deletes a service
func (r *PostgresServiceRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM services WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *PostgresServiceRepository) scanService(row pgx.Row) (*domain.Service, error) {
	svc := &domain.Service{}
	err := row.Scan(
		&svc.ID,
		&svc.OrgID,
		&svc.Name,
		&svc.Description,
		&svc.Status,
		&svc.CreatedBy,
		&svc.CreatedByUsername,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return svc, nil
}
