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

var ErrTeamNotFound = errors.New("team not found")

// TeamService defines the interface for team operations
type TeamService interface {
	// Create creates a team; roster entries are resolved from user IDs
	Create(ctx context.Context, actor *domain.User, req *dto.CreateTeamRequest) (*domain.Team, error)
	// GetByID retrieves a team by ID
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	// GetAll retrieves an organization's teams
	GetAll(ctx context.Context, orgID string) ([]*domain.Team, error)
}

type teamService struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
	recorder *Recorder
}

// NewTeamService creates a new TeamService
func NewTeamService(teamRepo repository.TeamRepository, userRepo repository.UserRepository, recorder *Recorder) TeamService {
	return &teamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
		recorder: recorder,
	}
}

// Create creates a team. Each roster entry's user ID must resolve to an
// existing user; names and emails are denormalized into the roster.
func (s *teamService) Create(ctx context.Context, actor *domain.User, req *dto.CreateTeamRequest) (*domain.Team, error) {
	if err := authorize(actor, req.OrgID, domain.RoleAdmin, domain.RoleMember); err != nil {
		return nil, err
	}

	members := make([]domain.TeamMember, 0, len(req.Members))
	for _, m := range req.Members {
		user, err := s.userRepo.GetByID(ctx, m.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		role := domain.RoleMember
		if m.Role != "" {
			parsed, err := domain.ParseRole(m.Role)
			if err != nil {
				return nil, err
			}
			role = parsed
		}
		members = append(members, domain.TeamMember{
			UserID:    user.ID,
			UserName:  user.FullName,
			UserEmail: user.Email,
			Role:      role,
		})
	}

	team := &domain.Team{
		ID:        uuid.New().String(),
		OrgID:     req.OrgID,
		Name:      req.Name,
		Members:   members,
		CreatedBy: actor.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	changes := map[string]string{"name": team.Name}
	if err := s.recorder.Record(ctx, actor, team.ID, domain.EntityTeam, domain.ChangeCreate, changes, team.OrgID, team, realtime.ActionCreate); err != nil {
		return nil, err
	}
	return team, nil
}

// GetByID retrieves a team by ID
func (s *teamService) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}
	return team, nil
}

// GetAll retrieves an organization's teams
func (s *teamService) GetAll(ctx context.Context, orgID string) ([]*domain.Team, error) {
	return s.teamRepo.ListByOrg(ctx, orgID)
}
