package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
)

// PostgresOrgRepository implements OrgRepository using PostgreSQL
type PostgresOrgRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOrgRepository creates a new PostgresOrgRepository
func NewPostgresOrgRepository(pool *pgxpool.Pool) *PostgresOrgRepository {
	return &PostgresOrgRepository{pool: pool}
}

const orgColumns = `id, name, domain, org_slug, COALESCE(created_by::text, '') as created_by, created_by_username, created_at, updated_at`

// Create creates a new organization
func (r *PostgresOrgRepository) Create(ctx context.Context, org *domain.Organization) error {
	query := `
		INSERT INTO orgs (id, name, domain, org_slug, created_by, created_by_username, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	var createdBy interface{}
	if org.CreatedBy != "" {
		createdBy = org.CreatedBy
	}

	_, err := r.pool.Exec(ctx, query,
		org.ID,
		org.Name,
		org.Domain,
		org.Slug,
		createdBy,
		org.CreatedByUsername,
		org.CreatedAt,
		org.UpdatedAt,
	)
	return err
}

// GetByID retrieves an organization by ID
func (r *PostgresOrgRepository) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM orgs WHERE id = $1`
	return r.scanOrg(r.pool.QueryRow(ctx, query, id))
}

// GetByDomain retrieves an organization by its domain
func (r *PostgresOrgRepository) GetByDomain(ctx context.Context, orgDomain string) (*domain.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM orgs WHERE domain = $1`
	return r.scanOrg(r.pool.QueryRow(ctx, query, orgDomain))
}

// GetBySlug retrieves an organization by its slug
func (r *PostgresOrgRepository) GetBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM orgs WHERE org_slug = $1`
	return r.scanOrg(r.pool.QueryRow(ctx, query, slug))
}

// ExistsByDomainOrSlug checks if any organization claims the domain or slug
func (r *PostgresOrgRepository) ExistsByDomainOrSlug(ctx context.Context, orgDomain, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM orgs WHERE domain = $1 OR org_slug = $2)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, orgDomain, slug).Scan(&exists)
	return exists, err
}

// ListByIDs retrieves organizations by ID, newest first
func (r *PostgresOrgRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Organization, error) {
	if len(ids) == 0 {
		return []*domain.Organization{}, nil
	}
	query := `SELECT ` + orgColumns + ` FROM orgs WHERE id = ANY($1) ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orgs := []*domain.Organization{}
	for rows.Next() {
		org, err := r.scanOrg(rows)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}

func (r *PostgresOrgRepository) scanOrg(row pgx.Row) (*domain.Organization, error) {
	org := &domain.Organization{}
	err := row.Scan(
		&org.ID,
		&org.Name,
		&org.Domain,
		&org.Slug,
		&org.CreatedBy,
		&org.CreatedByUsername,
		&org.CreatedAt,
		&org.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return org, nil
}
