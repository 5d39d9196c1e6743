package repository

import (
	"context"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
)

// OrgRepository defines the interface for organization data access
type OrgRepository interface {
	// Create creates a new organization
	Create(ctx context.Context, org *domain.Organization) error
	// GetByID retrieves an organization by ID, (nil, nil) when absent
	GetByID(ctx context.Context, id string) (*domain.Organization, error)
	// GetByDomain retrieves an organization by its domain, (nil, nil) when absent
	GetByDomain(ctx context.Context, domain string) (*domain.Organization, error)
	// GetBySlug retrieves an organization by its slug, (nil, nil) when absent
	GetBySlug(ctx context.Context, slug string) (*domain.Organization, error)
	// ExistsByDomainOrSlug reports whether any organization already claims the
	// given domain or slug
	ExistsByDomainOrSlug(ctx context.Context, domain, slug string) (bool, error)
	// ListByIDs retrieves the organizations with the given IDs, newest first
	ListByIDs(ctx context.Context, ids []string) ([]*domain.Organization, error)
}
