package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
)

// PostgresUserRepository implements UserRepository using PostgreSQL
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// Create creates a new user
func (r *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, full_name, photo_url, role, org_memberships, current_org_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	memberships, err := json.Marshal(user.Memberships)
	if err != nil {
		return fmt.Errorf("marshal memberships: %w", err)
	}

	// Convert empty current_org_id to nil for NULL in database
	var currentOrgID interface{}
	if user.CurrentOrgID != "" {
		currentOrgID = user.CurrentOrgID
	}

	_, err = r.pool.Exec(ctx, query,
		user.ID,
		user.Email,
		user.FullName,
		user.PhotoURL,
		user.Role,
		memberships,
		currentOrgID,
		user.CreatedAt,
		user.UpdatedAt,
	)
	return err
}

// GetByID retrieves a user by ID
func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, email, full_name, COALESCE(photo_url, '') as photo_url, role, org_memberships, COALESCE(current_org_id::text, '') as current_org_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.pool.QueryRow(ctx, query, id))
}

// GetByEmail retrieves a user by email
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, full_name, COALESCE(photo_url, '') as photo_url, role, org_memberships, COALESCE(current_org_id::text, '') as current_org_id, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return r.scanUser(r.pool.QueryRow(ctx, query, email))
}

// Update updates a user
func (r *PostgresUserRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET email = $2, full_name = $3, photo_url = $4, role = $5, org_memberships = $6, current_org_id = $7, updated_at = $8
		WHERE id = $1
	`
	memberships, err := json.Marshal(user.Memberships)
	if err != nil {
		return fmt.Errorf("marshal memberships: %w", err)
	}

	var currentOrgID interface{}
	if user.CurrentOrgID != "" {
		currentOrgID = user.CurrentOrgID
	}

	now := time.Now().UTC()
	user.UpdatedAt = &now

	_, err = r.pool.Exec(ctx, query,
		user.ID,
		user.Email,
		user.FullName,
		user.PhotoURL,
		user.Role,
		memberships,
		currentOrgID,
		user.UpdatedAt,
	)
	return err
}

func (r *PostgresUserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	user := &domain.User{}
	var memberships []byte
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.PhotoURL,
		&user.Role,
		&memberships,
		&user.CurrentOrgID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(memberships, &user.Memberships); err != nil {
		return nil, fmt.Errorf("unmarshal memberships: %w", err)
	}
	return user, nil
}
