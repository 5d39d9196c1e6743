package repository

import (
	"context"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
)

// IncidentRepository defines the interface for incident data access
type IncidentRepository interface {
	// Create creates a new incident
	Create(ctx context.Context, inc *domain.Incident) error
	// GetByID retrieves an incident by ID, (nil, nil) when absent
	GetByID(ctx context.Context, id string) (*domain.Incident, error)
	// ListByOrg retrieves an organization's incidents, newest first
	ListByOrg(ctx context.Context, orgID string) ([]*domain.Incident, error)
	// Update persists the incident's mutable fields
	Update(ctx context.Context, inc *domain.Incident) error
	// Delete removes an incident
	Delete(ctx context.Context, id string) error
}
