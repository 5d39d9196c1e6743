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

// PostgresIncidentRepository implements IncidentRepository using PostgreSQL
type PostgresIncidentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresIncidentRepository creates a new PostgresIncidentRepository
func NewPostgresIncidentRepository(pool *pgxpool.Pool) *PostgresIncidentRepository {
	return &PostgresIncidentRepository{pool: pool}
}

const incidentColumns = `id, org_id, title, description, status, COALESCE(severity, '') as severity, affected_services, updates, started_at, resolved_at, COALESCE(created_by::text, '') as created_by, created_by_username, created_at, updated_at`

// Create creates a new incident
func (r *PostgresIncidentRepository) Create(ctx context.Context, inc *domain.Incident) error {
	query := `
		INSERT INTO incidents (id, org_id, title, description, status, severity, affected_services, updates, started_at, resolved_at, created_by, created_by_username, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	affected, updates, err := marshalIncidentJSON(inc)
	if err != nil {
		return err
	}

	var severity interface{}
	if inc.Severity != "" {
		severity = inc.Severity
	}
	var createdBy interface{}
	if inc.CreatedBy != "" {
		createdBy = inc.CreatedBy
	}

	_, err = r.pool.Exec(ctx, query,
		inc.ID,
		inc.OrgID,
		inc.Title,
		inc.Description,
		inc.Status,
		severity,
		affected,
		updates,
		inc.StartedAt,
		inc.ResolvedAt,
		createdBy,
		inc.CreatedByUsername,
		inc.CreatedAt,
		inc.UpdatedAt,
	)
	return err
}

// GetByID retrieves an incident by ID
func (r *PostgresIncidentRepository) GetByID(ctx context.Context, id string) (*domain.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1`
	return r.scanIncident(r.pool.QueryRow(ctx, query, id))
}

// ListByOrg retrieves an organization's incidents, newest first
func (r *PostgresIncidentRepository) ListByOrg(ctx context.Context, orgID string) ([]*domain.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE org_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	incidents := []*domain.Incident{}
	for rows.Next() {
		inc, err := r.scanIncident(rows)
		if err != nil {
			return nil, err
		}
		incidents = append(incidents, inc)
	}
	return incidents, rows.Err()
}

// Update updates an incident
func (r *PostgresIncidentRepository) Update(ctx context.Context, inc *domain.Incident) error {
	query := `
		UPDATE incidents
		SET title = $2, description = $3, status = $4, severity = $5, affected_services = $6, updates = $7, resolved_at = $8, updated_at = $9
		WHERE id = $1
	`
	affected, updates, err := marshalIncidentJSON(inc)
	if err != nil {
		return err
	}

	var severity interface{}
	if inc.Severity != "" {
		severity = inc.Severity
	}

	now := time.Now().UTC()
	inc.UpdatedAt = &now

	_, err = r.pool.Exec(ctx, query,
		inc.ID,
		inc.Title,
		inc.Description,
		inc.Status,
		severity,
		affected,
		updates,
		inc.ResolvedAt,
		inc.UpdatedAt,
	)
	return err
}

// Delete deletes an incident
func (r *PostgresIncidentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM incidents WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func marshalIncidentJSON(inc *domain.Incident) (affected, updates []byte, err error) {
	affected, err = json.Marshal(inc.AffectedServices)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal affected services: %w", err)
	}
	updates, err = json.Marshal(inc.Updates)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal updates: %w", err)
	}
	return affected, updates, nil
}

func (r *PostgresIncidentRepository) scanIncident(row pgx.Row) (*domain.Incident, error) {
	inc := &domain.Incident{}
	var affected, updates []byte
	err := row.Scan(
		&inc.ID,
		&inc.OrgID,
		&inc.Title,
		&inc.Description,
		&inc.Status,
		&inc.Severity,
		&affected,
		&updates,
		&inc.StartedAt,
		&inc.ResolvedAt,
		&inc.CreatedBy,
		&inc.CreatedByUsername,
		&inc.CreatedAt,
		&inc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(affected, &inc.AffectedServices); err != nil {
		return nil, fmt.Errorf("unmarshal affected services: %w", err)
	}
	if err := json.Unmarshal(updates, &inc.Updates); err != nil {
		return nil, fmt.Errorf("unmarshal updates: %w", err)
	}
	return inc, nil
}
