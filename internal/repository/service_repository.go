package repository

import (
	"context"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
)

// ServiceRepository defines the interface for monitored-service data access
type ServiceRepository interface {
	// Create creates a new service
	Create(ctx context.Context, svc *domain.Service) error
	// GetByID retrieves a service by ID, (nil, nil) when absent
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	// ListByOrg retrieves an organization's services, newest first
	ListByOrg(ctx context.Context, orgID string) ([]*domain.Service, error)
	// Update persists the service's mutable fields
	Update(ctx context.Context, svc *domain.Service) error
	// Delete removes a service
	Delete(ctx context.Context, id string) error
}
