package repository

import (
	"context"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *domain.User) error
	// GetByID retrieves a user by ID, (nil, nil) when absent
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByEmail retrieves a user by email, (nil, nil) when absent
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update persists the user's mutable fields, memberships included
	Update(ctx context.Context, user *domain.User) error
}
