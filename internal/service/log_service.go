package service

import (
	"context"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
	"github.com/aditya26raj01/status-app-backend/internal/repository"
)

// LogService defines the interface for reading the audit trail
type LogService interface {
	// GetAll retrieves change records across organizations, newest first
	GetAll(ctx context.Context, limit int) ([]*domain.ChangeLog, error)
	// GetByOrg retrieves one organization's change records; the actor's
	// active organization must match
	GetByOrg(ctx context.Context, actor *domain.User, orgID string, limit int) ([]*domain.ChangeLog, error)
}

type logService struct {
	changeRepo repository.ChangeLogRepository
}

// NewLogService creates a new LogService
func NewLogService(changeRepo repository.ChangeLogRepository) LogService {
	return &logService{changeRepo: changeRepo}
}

// GetAll retrieves change records across organizations
func (s *logService) GetAll(ctx context.Context, limit int) ([]*domain.ChangeLog, error) {
	return s.changeRepo.List(ctx, limit)
}

// GetByOrg retrieves one organization's change records
func (s *logService) GetByOrg(ctx context.Context, actor *domain.User, orgID string, limit int) ([]*domain.ChangeLog, error) {
	if actor.CurrentOrgID != orgID {
		return nil, ErrCrossOrgAccess
	}
	return s.changeRepo.ListByOrg(ctx, orgID, limit)
}
