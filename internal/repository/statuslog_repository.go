package repository

import (
	"context"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
)

// StatusLogRepository defines the interface for service status transition logs
type StatusLogRepository interface {
	// Create appends one status transition record
	Create(ctx context.Context, entry *domain.StatusLog) error
	// ListByService retrieves a service's transitions, newest first
	ListByService(ctx context.Context, serviceID string, limit int) ([]*domain.StatusLog, error)
}
