package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
)

// PostgresTeamRepository implements TeamRepository using PostgreSQL
type PostgresTeamRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTeamRepository creates a new PostgresTeamRepository
func NewPostgresTeamRepository(pool *pgxpool.Pool) *PostgresTeamRepository {
	return &PostgresTeamRepository{pool: pool}
}

const teamColumns = `id, org_id, name, members, COALESCE(created_by::text, '') as created_by, created_at, updated_at`

// Create creates a new team
func (r *PostgresTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (id, org_id, name, members, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	members, err := json.Marshal(team.Members)
	if err != nil {
		return fmt.Errorf("marshal members: %w", err)
	}

	var createdBy interface{}
	if team.CreatedBy != "" {
		createdBy = team.CreatedBy
	}

	_, err = r.pool.Exec(ctx, query,
		team.ID,
		team.OrgID,
		team.Name,
		members,
		createdBy,
		team.CreatedAt,
		team.UpdatedAt,
	)
	return err
}

// GetByID retrieves a team by ID
func (r *PostgresTeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`
	return r.scanTeam(r.pool.QueryRow(ctx, query, id))
}

// ListByOrg retrieves an organization's teams, newest first
func (r *PostgresTeamRepository) ListByOrg(ctx context.Context, orgID string) ([]*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE org_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := []*domain.Team{}
	for rows.Next() {
		team, err := r.scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

func (r *PostgresTeamRepository) scanTeam(row pgx.Row) (*domain.Team, error) {
	team := &domain.Team{}
	var members []byte
	err := row.Scan(
		&team.ID,
		&team.OrgID,
		&team.Name,
		&members,
		&team.CreatedBy,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(members, &team.Members); err != nil {
		return nil, fmt.Errorf("unmarshal members: %w", err)
	}
	return team, nil
}
