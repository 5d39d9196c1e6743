package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
	"github.com/aditya26raj01/status-app-backend/internal/dto"
	"github.com/aditya26raj01/status-app-backend/internal/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNotMember    = errors.New("user is not a member of this organization")
)

// UserService defines the interface for user management operations
type UserService interface {
	// Sync upserts a user record keyed by email. Called unauthenticated as
	// the bootstrap step after an external identity provider sign-in.
	Sync(ctx context.Context, req *dto.SyncUserRequest) (*domain.User, error)
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateCurrentOrg switches the actor's active organization
	UpdateCurrentOrg(ctx context.Context, actor *domain.User, orgID string) (*domain.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrgRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, orgRepo repository.OrgRepository) UserService {
	return &userService{
		userRepo: userRepo,
		orgRepo:  orgRepo,
	}
}

// Sync upserts a user record keyed by email. Syncing the same email twice
// yields one record; existing users get their profile fields backfilled.
func (s *userService) Sync(ctx context.Context, req *dto.SyncUserRequest) (*domain.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		changed := false
		if req.FullName != "" && existing.FullName != req.FullName {
			existing.FullName = req.FullName
			changed = true
		}
		if req.PhotoURL != "" && existing.PhotoURL != req.PhotoURL {
			existing.PhotoURL = req.PhotoURL
			changed = true
		}
		if changed {
			if err := s.userRepo.Update(ctx, existing); err != nil {
				return nil, err
			}
		}
		return existing, nil
	}

	user := &domain.User{
		ID:          uuid.New().String(),
		Email:       req.Email,
		FullName:    req.FullName,
		PhotoURL:    req.PhotoURL,
		Role:        domain.RoleMember,
		Memberships: []domain.OrgMembership{},
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID retrieves a user by ID
func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateCurrentOrg switches the actor's active organization. The target must
// exist and the actor must already hold a membership in it; on failure the
// current organization is left untouched.
func (s *userService) UpdateCurrentOrg(ctx context.Context, actor *domain.User, orgID string) (*domain.User, error) {
	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrgNotFound
	}
	if actor.MembershipFor(orgID) == nil {
		return nil, ErrNotMember
	}

	actor.CurrentOrgID = orgID
	if err := s.userRepo.Update(ctx, actor); err != nil {
		return nil, err
	}
	return actor, nil
}
