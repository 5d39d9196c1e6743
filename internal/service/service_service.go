package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
	"github.com/aditya26raj01/status-app-backend/internal/dto"
	"github.com/aditya26raj01/status-app-backend/internal/realtime"
	"github.com/aditya26raj01/status-app-backend/internal/repository"
	"github.com/aditya26raj01/status-app-backend/pkg/logger"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrInvalidStatus   = errors.New("invalid service status")
)

// ServiceService defines the interface for monitored-service operations
type ServiceService interface {
	// Create creates a service on the status page
	Create(ctx context.Context, actor *domain.User, req *dto.CreateServiceRequest) (*domain.Service, error)
	// GetByID retrieves a service by ID
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	// GetAll retrieves an organization's services
	GetAll(ctx context.Context, orgID string) ([]*domain.Service, error)
	// Update updates a service's fields; a status change is logged
	Update(ctx context.Context, actor *domain.User, req *dto.UpdateServiceRequest) (*domain.Service, error)
	// Delete removes a service
	Delete(ctx context.Context, actor *domain.User, serviceID string) error
	// GetStatusLogs retrieves a service's status transition history
	GetStatusLogs(ctx context.Context, serviceID string, limit int) ([]*domain.StatusLog, error)
}

type serviceService struct {
	serviceRepo   repository.ServiceRepository
	statusLogRepo repository.StatusLogRepository
	recorder      *Recorder
}

// NewServiceService creates a new ServiceService
func NewServiceService(serviceRepo repository.ServiceRepository, statusLogRepo repository.StatusLogRepository, recorder *Recorder) ServiceService {
	return &serviceService{
		serviceRepo:   serviceRepo,
		statusLogRepo: statusLogRepo,
		recorder:      recorder,
	}
}

// parseServiceStatus validates a raw status against the closed set. Empty
// means "not provided" and maps to unknown.
func parseServiceStatus(raw string) (domain.ServiceStatus, error) {
	if raw == "" {
		return domain.ServiceUnknown, nil
	}
	switch domain.ServiceStatus(raw) {
	case domain.ServiceOperational, domain.ServiceDegraded, domain.ServiceMaintenance, domain.ServiceOutage, domain.ServiceUnknown:
		return domain.ServiceStatus(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
}

// Create creates a service
func (s *serviceService) Create(ctx context.Context, actor *domain.User, req *dto.CreateServiceRequest) (*domain.Service, error) {
	if err := authorize(actor, req.OrgID, domain.RoleAdmin, domain.RoleMember); err != nil {
		return nil, err
	}
	status, err := parseServiceStatus(req.Status)
	if err != nil {
		return nil, err
	}

	svc := &domain.Service{
		ID:                uuid.New().String(),
		OrgID:             req.OrgID,
		Name:              req.Name,
		Description:       req.Description,
		Status:            status,
		CreatedBy:         actor.ID,
		CreatedByUsername: actor.FullName,
		CreatedAt:         time.Now().UTC(),
	}
	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}

	changes := map[string]string{
		"name":   svc.Name,
		"status": string(svc.Status),
	}
	if err := s.recorder.Record(ctx, actor, svc.ID, domain.EntityService, domain.ChangeCreate, changes, svc.OrgID, svc, realtime.ActionCreate); err != nil {
		return nil, err
	}
	return svc, nil
}

// GetByID retrieves a service by ID
func (s *serviceService) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

// GetAll retrieves an organization's services
func (s *serviceService) GetAll(ctx context.Context, orgID string) ([]*domain.Service, error) {
	return s.serviceRepo.ListByOrg(ctx, orgID)
}

// Update updates a service. A status transition additionally appends a
// status_log row recording the old and new status.
func (s *serviceService) Update(ctx context.Context, actor *domain.User, req *dto.UpdateServiceRequest) (*domain.Service, error) {
	if valid, _ := req.Validate(); !valid {
		return nil, ErrEmptyUpdate
	}

	svc, err := s.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	if err := authorize(actor, svc.OrgID, domain.RoleAdmin, domain.RoleMember); err != nil {
		return nil, err
	}

	changes := map[string]string{}
	oldStatus := svc.Status
	if req.Name != nil {
		svc.Name = *req.Name
		changes["name"] = svc.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
		changes["description"] = svc.Description
	}
	if req.Status != nil {
		status, err := parseServiceStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		svc.Status = status
		changes["status"] = string(svc.Status)
	}

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}

	if svc.Status != oldStatus {
		s.logStatusChange(ctx, svc, oldStatus)
	}

	if err := s.recorder.Record(ctx, actor, svc.ID, domain.EntityService, domain.ChangeUpdate, changes, svc.OrgID, svc, realtime.ActionUpdate); err != nil {
		return nil, err
	}
	return svc, nil
}

// Delete removes a service. The audit record carries an empty change map.
func (s *serviceService) Delete(ctx context.Context, actor *domain.User, serviceID string) error {
	svc, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return err
	}
	if svc == nil {
		return ErrServiceNotFound
	}
	if err := authorize(actor, svc.OrgID, domain.RoleAdmin, domain.RoleMember); err != nil {
		return err
	}

	if err := s.serviceRepo.Delete(ctx, serviceID); err != nil {
		return err
	}
	return s.recorder.Record(ctx, actor, svc.ID, domain.EntityService, domain.ChangeDelete, nil, svc.OrgID, svc, realtime.ActionDelete)
}

// GetStatusLogs retrieves a service's status transition history, newest first
func (s *serviceService) GetStatusLogs(ctx context.Context, serviceID string, limit int) ([]*domain.StatusLog, error) {
	svc, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return s.statusLogRepo.ListByService(ctx, serviceID, limit)
}

// logStatusChange appends a status transition row. Losing a transition row
// does not roll back the service update, so failures are only logged.
func (s *serviceService) logStatusChange(ctx context.Context, svc *domain.Service, old domain.ServiceStatus) {
	entry := &domain.StatusLog{
		ID:        uuid.New().String(),
		ServiceID: svc.ID,
		OrgID:     svc.OrgID,
		OldStatus: old,
		NewStatus: svc.Status,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.statusLogRepo.Create(ctx, entry); err != nil {
		logger.Warn("write status log",
			zap.Error(err),
			zap.String("service_id", svc.ID),
			zap.String("old_status", string(old)),
			zap.String("new_status", string(svc.Status)),
		)
	}
}
