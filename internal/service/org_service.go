package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
	"github.com/aditya26raj01/status-app-backend/internal/dto"
	"github.com/aditya26raj01/status-app-backend/internal/realtime"
	"github.com/aditya26raj01/status-app-backend/internal/repository"
)

var (
	ErrOrgAlreadyExists = errors.New("organization with this domain or slug already exists")
	ErrOrgNotFound      = errors.New("organization not found")
	ErrInvalidOrgSlug   = errors.New("invalid organization slug format")
)

// OrgService defines the interface for organization management operations
type OrgService interface {
	// Create creates an organization and makes the actor its founding admin
	Create(ctx context.Context, actor *domain.User, req *dto.CreateOrgRequest) (*domain.Organization, error)
	// GetAllForUser retrieves the organizations the actor belongs to
	GetAllForUser(ctx context.Context, actor *domain.User) ([]*domain.Organization, error)
	// GetByDomain retrieves an organization by its domain (public lookup)
	GetByDomain(ctx context.Context, orgDomain string) (*domain.Organization, error)
}

type orgService struct {
	orgRepo  repository.OrgRepository
	userRepo repository.UserRepository
	recorder *Recorder
}

// NewOrgService creates a new OrgService
func NewOrgService(orgRepo repository.OrgRepository, userRepo repository.UserRepository, recorder *Recorder) OrgService {
	return &orgService{
		orgRepo:  orgRepo,
		userRepo: userRepo,
		recorder: recorder,
	}
}

// Create creates an organization. Any authenticated user may create one (the
// bootstrap exemption from role checks); the actor is appended as an admin
// member and the new organization becomes their active one.
func (s *orgService) Create(ctx context.Context, actor *domain.User, req *dto.CreateOrgRequest) (*domain.Organization, error) {
	if valid, _ := req.ValidateSlug(); !valid {
		return nil, ErrInvalidOrgSlug
	}

	// Reject duplicates before any write happens
	exists, err := s.orgRepo.ExistsByDomainOrSlug(ctx, req.Domain, req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrOrgAlreadyExists
	}

	now := time.Now().UTC()
	org := &domain.Organization{
		ID:                uuid.New().String(),
		Name:              req.Name,
		Domain:            req.Domain,
		Slug:              req.Slug,
		CreatedBy:         actor.ID,
		CreatedByUsername: actor.FullName,
		CreatedAt:         now,
	}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}

	// Founding membership: admin role, and the new org becomes current
	actor.Memberships = append(actor.Memberships, domain.OrgMembership{
		OrgID:     org.ID,
		OrgSlug:   org.Slug,
		Role:      domain.RoleAdmin,
		CreatedAt: now,
	})
	actor.CurrentOrgID = org.ID
	if err := s.userRepo.Update(ctx, actor); err != nil {
		return nil, err
	}

	changes := map[string]string{
		"name":     org.Name,
		"domain":   org.Domain,
		"org_slug": org.Slug,
	}
	if err := s.recorder.Record(ctx, actor, org.ID, domain.EntityOrganization, domain.ChangeCreate, changes, org.ID, org, realtime.ActionCreate); err != nil {
		return nil, err
	}
	return org, nil
}

// GetAllForUser retrieves the organizations the actor holds memberships in
func (s *orgService) GetAllForUser(ctx context.Context, actor *domain.User) ([]*domain.Organization, error) {
	ids := make([]string, 0, len(actor.Memberships))
	for _, m := range actor.Memberships {
		ids = append(ids, m.OrgID)
	}
	return s.orgRepo.ListByIDs(ctx, ids)
}

// GetByDomain retrieves an organization by its domain
func (s *orgService) GetByDomain(ctx context.Context, orgDomain string) (*domain.Organization, error) {
	org, err := s.orgRepo.GetByDomain(ctx, orgDomain)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrgNotFound
	}
	return org, nil
}
