package repository

import (
	"context"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
)

// ChangeLogRepository defines the interface for the append-only audit trail.
// Records are immutable once written: no update or delete is exposed.
type ChangeLogRepository interface {
	// Create appends one change record
	Create(ctx context.Context, entry *domain.ChangeLog) error
	// List retrieves change records across all organizations, newest first
	List(ctx context.Context, limit int) ([]*domain.ChangeLog, error)
	// ListByOrg retrieves one organization's change records, newest first
	ListByOrg(ctx context.Context, orgID string, limit int) ([]*domain.ChangeLog, error)
}
