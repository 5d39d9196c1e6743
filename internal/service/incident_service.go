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
	ErrIncidentNotFound      = errors.New("incident not found")
	ErrInvalidIncidentStatus = errors.New("invalid incident status")
	ErrInvalidSeverity       = errors.New("invalid incident severity")
)

// IncidentService defines the interface for incident operations
type IncidentService interface {
	// Create opens an incident; affected services take the incident's statuses
	Create(ctx context.Context, actor *domain.User, req *dto.CreateIncidentRequest) (*domain.Incident, error)
	// GetByID retrieves an incident by ID
	GetByID(ctx context.Context, id string) (*domain.Incident, error)
	// GetAll retrieves an organization's incidents
	GetAll(ctx context.Context, orgID string) ([]*domain.Incident, error)
	// Update updates an incident, re-propagating affected-service statuses
	Update(ctx context.Context, actor *domain.User, req *dto.UpdateIncidentRequest) (*domain.Incident, error)
	// Delete removes an incident
	Delete(ctx context.Context, actor *domain.User, incidentID string) error
}

type incidentService struct {
	incidentRepo  repository.IncidentRepository
	serviceRepo   repository.ServiceRepository
	statusLogRepo repository.StatusLogRepository
	recorder      *Recorder
}

// NewIncidentService creates a new IncidentService
func NewIncidentService(
	incidentRepo repository.IncidentRepository,
	serviceRepo repository.ServiceRepository,
	statusLogRepo repository.StatusLogRepository,
	recorder *Recorder,
) IncidentService {
	return &incidentService{
		incidentRepo:  incidentRepo,
		serviceRepo:   serviceRepo,
		statusLogRepo: statusLogRepo,
		recorder:      recorder,
	}
}

func parseIncidentStatus(raw string) (domain.IncidentStatus, error) {
	if raw == "" {
		return domain.IncidentInvestigating, nil
	}
	switch domain.IncidentStatus(raw) {
	case domain.IncidentInvestigating, domain.IncidentIdentified, domain.IncidentMonitoring, domain.IncidentResolved:
		return domain.IncidentStatus(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidIncidentStatus, raw)
	}
}

func parseIncidentSeverity(raw string) (domain.IncidentSeverity, error) {
	if raw == "" {
		return "", nil
	}
	switch domain.IncidentSeverity(raw) {
	case domain.SeverityMinor, domain.SeverityMajor, domain.SeverityCritical:
		return domain.IncidentSeverity(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSeverity, raw)
	}
}

// Create opens an incident
func (s *incidentService) Create(ctx context.Context, actor *domain.User, req *dto.CreateIncidentRequest) (*domain.Incident, error) {
	if err := authorize(actor, req.OrgID, domain.RoleAdmin, domain.RoleMember); err != nil {
		return nil, err
	}
	status, err := parseIncidentStatus(req.Status)
	if err != nil {
		return nil, err
	}
	severity, err := parseIncidentSeverity(req.Severity)
	if err != nil {
		return nil, err
	}

	affected, err := s.propagateAffectedServices(ctx, req.OrgID, req.AffectedServices)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	inc := &domain.Incident{
		ID:                uuid.New().String(),
		OrgID:             req.OrgID,
		Title:             req.Title,
		Description:       req.Description,
		Status:            status,
		Severity:          severity,
		AffectedServices:  affected,
		Updates:           notesFromInputs(req.Updates, actor, now),
		StartedAt:         now,
		CreatedBy:         actor.ID,
		CreatedByUsername: actor.FullName,
		CreatedAt:         now,
	}
	if inc.Status == domain.IncidentResolved {
		inc.ResolvedAt = &now
	}
	if err := s.incidentRepo.Create(ctx, inc); err != nil {
		return nil, err
	}

	changes := map[string]string{
		"title":  inc.Title,
		"status": string(inc.Status),
	}
	if inc.Severity != "" {
		changes["severity"] = string(inc.Severity)
	}
	if err := s.recorder.Record(ctx, actor, inc.ID, domain.EntityIncident, domain.ChangeCreate, changes, inc.OrgID, inc, realtime.ActionCreate); err != nil {
		return nil, err
	}
	return inc, nil
}

// GetByID retrieves an incident by ID
func (s *incidentService) GetByID(ctx context.Context, id string) (*domain.Incident, error) {
	inc, err := s.incidentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inc == nil {
		return nil, ErrIncidentNotFound
	}
	return inc, nil
}

// GetAll retrieves an organization's incidents
func (s *incidentService) GetAll(ctx context.Context, orgID string) ([]*domain.Incident, error) {
	return s.incidentRepo.ListByOrg(ctx, orgID)
}

// Update updates an incident. A provided affected-services list replaces the
// existing one and its statuses are pushed onto the named services again.
func (s *incidentService) Update(ctx context.Context, actor *domain.User, req *dto.UpdateIncidentRequest) (*domain.Incident, error) {
	if valid, _ := req.Validate(); !valid {
		return nil, ErrEmptyUpdate
	}

	inc, err := s.incidentRepo.GetByID(ctx, req.IncidentID)
	if err != nil {
		return nil, err
	}
	if inc == nil {
		return nil, ErrIncidentNotFound
	}
	if err := authorize(actor, inc.OrgID, domain.RoleAdmin, domain.RoleMember); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	changes := map[string]string{}
	if req.Title != nil {
		inc.Title = *req.Title
		changes["title"] = inc.Title
	}
	if req.Description != nil {
		inc.Description = *req.Description
		changes["description"] = inc.Description
	}
	if req.Status != nil {
		status, err := parseIncidentStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		inc.Status = status
		changes["status"] = string(inc.Status)
		if inc.Status == domain.IncidentResolved && inc.ResolvedAt == nil {
			inc.ResolvedAt = &now
		}
	}
	if req.Severity != nil {
		severity, err := parseIncidentSeverity(*req.Severity)
		if err != nil {
			return nil, err
		}
		inc.Severity = severity
		changes["severity"] = string(inc.Severity)
	}
	if req.AffectedServices != nil {
		affected, err := s.propagateAffectedServices(ctx, inc.OrgID, req.AffectedServices)
		if err != nil {
			return nil, err
		}
		inc.AffectedServices = affected
		changes["affected_services"] = fmt.Sprintf("%d services", len(affected))
	}
	if req.Updates != nil {
		inc.Updates = append(inc.Updates, notesFromInputs(req.Updates, actor, now)...)
	}

	if err := s.incidentRepo.Update(ctx, inc); err != nil {
		return nil, err
	}
	if err := s.recorder.Record(ctx, actor, inc.ID, domain.EntityIncident, domain.ChangeUpdate, changes, inc.OrgID, inc, realtime.ActionUpdate); err != nil {
		return nil, err
	}
	return inc, nil
}

// Delete removes an incident. Affected services keep whatever status the
// incident last pushed onto them.
func (s *incidentService) Delete(ctx context.Context, actor *domain.User, incidentID string) error {
	inc, err := s.incidentRepo.GetByID(ctx, incidentID)
	if err != nil {
		return err
	}
	if inc == nil {
		return ErrIncidentNotFound
	}
	if err := authorize(actor, inc.OrgID, domain.RoleAdmin, domain.RoleMember); err != nil {
		return err
	}

	if err := s.incidentRepo.Delete(ctx, incidentID); err != nil {
		return err
	}
	return s.recorder.Record(ctx, actor, inc.ID, domain.EntityIncident, domain.ChangeDelete, nil, inc.OrgID, inc, realtime.ActionDelete)
}

// propagateAffectedServices pushes each input's status onto the named service
// and returns the resolved affected-service entries. Every named service must
// exist and belong to orgID.
func (s *incidentService) propagateAffectedServices(ctx context.Context, orgID string, inputs []dto.AffectedServiceInput) ([]domain.AffectedService, error) {
	affected := make([]domain.AffectedService, 0, len(inputs))
	now := time.Now().UTC()

	for _, in := range inputs {
		svc, err := s.serviceRepo.GetByID(ctx, in.ServiceID)
		if err != nil {
			return nil, err
		}
		if svc == nil {
			return nil, ErrServiceNotFound
		}
		if svc.OrgID != orgID {
			return nil, ErrCrossOrgAccess
		}
		status, err := parseServiceStatus(in.Status)
		if err != nil {
			return nil, err
		}

		if svc.Status != status {
			old := svc.Status
			svc.Status = status
			if err := s.serviceRepo.Update(ctx, svc); err != nil {
				return nil, err
			}
			entry := &domain.StatusLog{
				ID:        uuid.New().String(),
				ServiceID: svc.ID,
				OrgID:     svc.OrgID,
				OldStatus: old,
				NewStatus: status,
				CreatedAt: now,
			}
			// transition log only; never rolls back the service update
			if err := s.statusLogRepo.Create(ctx, entry); err != nil {
				logger.Warn("write status log",
					zap.Error(err),
					zap.String("service_id", svc.ID),
					zap.String("old_status", string(old)),
					zap.String("new_status", string(status)),
				)
			}
		}

		affected = append(affected, domain.AffectedService{
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			Status:      status,
			CreatedAt:   now,
		})
	}
	return affected, nil
}

func notesFromInputs(inputs []dto.IncidentNoteInput, actor *domain.User, at time.Time) []domain.IncidentNote {
	notes := make([]domain.IncidentNote, 0, len(inputs))
	for _, in := range inputs {
		notes = append(notes, domain.IncidentNote{
			Message:           in.Message,
			CreatedBy:         actor.ID,
			CreatedByUsername: actor.FullName,
			CreatedAt:         at,
		})
	}
	return notes
}
