package repository

import (
	"context"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
)

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	// Create creates a new team
	Create(ctx context.Context, team *domain.Team) error
	// GetByID retrieves a team by ID, (nil, nil) when absent
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	// ListByOrg retrieves an organization's teams, newest first
	ListByOrg(ctx context.Context, orgID string) ([]*domain.Team, error)
}
