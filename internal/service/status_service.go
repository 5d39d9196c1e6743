package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/aditya26raj01/status-app-backend/internal/dto"
	"github.com/aditya26raj01/status-app-backend/internal/repository"
	"github.com/aditya26raj01/status-app-backend/pkg/logger"
)

const (
	statusCacheKeyPrefix  = "org-status:"
	defaultStatusCacheTTL = 30 * time.Second
)

// StatusService defines the interface for the public status page aggregate
type StatusService interface {
	// GetOrgStatus retrieves the public status aggregate for an organization
	// by slug: the org itself, its services, and its incidents
	GetOrgStatus(ctx context.Context, orgSlug string) (*dto.OrgStatusResponse, error)
}

type statusService struct {
	orgRepo      repository.OrgRepository
	serviceRepo  repository.ServiceRepository
	incidentRepo repository.IncidentRepository
	cache        *redis.Client
	cacheTTL     time.Duration
}

// NewStatusService creates a new StatusService. cache may be nil, in which
// case every request hits the database. A non-positive cacheTTL falls back
// to the default.
func NewStatusService(
	orgRepo repository.OrgRepository,
	serviceRepo repository.ServiceRepository,
	incidentRepo repository.IncidentRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
) StatusService {
	if cacheTTL <= 0 {
		cacheTTL = defaultStatusCacheTTL
	}
	return &statusService{
		orgRepo:      orgRepo,
		serviceRepo:  serviceRepo,
		incidentRepo: incidentRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

// GetOrgStatus retrieves the public status aggregate for an organization.
// The aggregate is cached briefly in Redis; cache failures fall through to
// the database.
func (s *statusService) GetOrgStatus(ctx context.Context, orgSlug string) (*dto.OrgStatusResponse, error) {
	key := statusCacheKeyPrefix + orgSlug

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			resp := &dto.OrgStatusResponse{}
			if err := json.Unmarshal(cached, resp); err == nil {
				return resp, nil
			}
		}
	}

	org, err := s.orgRepo.GetBySlug(ctx, orgSlug)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrgNotFound
	}

	services, err := s.serviceRepo.ListByOrg(ctx, org.ID)
	if err != nil {
		return nil, err
	}
	incidents, err := s.incidentRepo.ListByOrg(ctx, org.ID)
	if err != nil {
		return nil, err
	}

	resp := &dto.OrgStatusResponse{
		Org:       org,
		Services:  services,
		Incidents: incidents,
	}

	if s.cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
				logger.Warn("cache org status", zap.Error(err), zap.String("org_slug", orgSlug))
			}
		}
	}
	return resp, nil
}
