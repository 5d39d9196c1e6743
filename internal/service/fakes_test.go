package service

import (
	"context"
	"errors"
	"sync"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
	"github.com/aditya26raj01/status-app-backend/internal/realtime"
)

// In-memory repository fakes. Each one keeps entities in a map and honors
// the (nil, nil) absent-row convention of the postgres implementations.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.ID]; !ok {
		return errors.New("user does not exist")
	}
	f.users[u.ID] = u
	return nil
}

type fakeOrgRepo struct {
	mu   sync.Mutex
	orgs map[string]*domain.Organization
}

func newFakeOrgRepo() *fakeOrgRepo {
	return &fakeOrgRepo{orgs: map[string]*domain.Organization{}}
}

func (f *fakeOrgRepo) Create(ctx context.Context, o *domain.Organization) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orgs[o.ID] = o
	return nil
}

func (f *fakeOrgRepo) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orgs[id], nil
}

func (f *fakeOrgRepo) GetByDomain(ctx context.Context, d string) (*domain.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orgs {
		if o.Domain == d {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrgRepo) GetBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orgs {
		if o.Slug == slug {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrgRepo) ExistsByDomainOrSlug(ctx context.Context, d, slug string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orgs {
		if o.Domain == d || o.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOrgRepo) ListByIDs(ctx context.Context, ids []string) ([]*domain.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*domain.Organization{}
	for _, id := range ids {
		if o, ok := f.orgs[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeServiceRepo struct {
	mu       sync.Mutex
	services map[string]*domain.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[string]*domain.Service{}}
}

func (f *fakeServiceRepo) Create(ctx context.Context, s *domain.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.services[s.ID] = s
	return nil
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.services[id], nil
}

func (f *fakeServiceRepo) ListByOrg(ctx context.Context, orgID string) ([]*domain.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*domain.Service{}
	for _, s := range f.services {
		if s.OrgID == orgID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) Update(ctx context.Context, s *domain.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.services[s.ID]; !ok {
		return errors.New("service does not exist")
	}
	f.services[s.ID] = s
	return nil
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.services, id)
	return nil
}

type fakeIncidentRepo struct {
	mu        sync.Mutex
	incidents map[string]*domain.Incident
}

func newFakeIncidentRepo() *fakeIncidentRepo {
	return &fakeIncidentRepo{incidents: map[string]*domain.Incident{}}
}

func (f *fakeIncidentRepo) Create(ctx context.Context, i *domain.Incident) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.incidents[i.ID] = i
	return nil
}

func (f *fakeIncidentRepo) GetByID(ctx context.Context, id string) (*domain.Incident, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.incidents[id], nil
}

func (f *fakeIncidentRepo) ListByOrg(ctx context.Context, orgID string) ([]*domain.Incident, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*domain.Incident{}
	for _, i := range f.incidents {
		if i.OrgID == orgID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeIncidentRepo) Update(ctx context.Context, i *domain.Incident) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.incidents[i.ID] = i
	return nil
}

func (f *fakeIncidentRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.incidents, id)
	return nil
}

type fakeTeamRepo struct {
	mu    sync.Mutex
	teams map[string]*domain.Team
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: map[string]*domain.Team{}}
}

func (f *fakeTeamRepo) Create(ctx context.Context, t *domain.Team) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.teams[t.ID] = t
	return nil
}

func (f *fakeTeamRepo) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.teams[id], nil
}

func (f *fakeTeamRepo) ListByOrg(ctx context.Context, orgID string) ([]*domain.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*domain.Team{}
	for _, t := range f.teams {
		if t.OrgID == orgID {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeChangeLogRepo struct {
	mu      sync.Mutex
	entries []*domain.ChangeLog
	failErr error
}

func newFakeChangeLogRepo() *fakeChangeLogRepo {
	return &fakeChangeLogRepo{}
}

func (f *fakeChangeLogRepo) Create(ctx context.Context, e *domain.ChangeLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return f.failErr
	}
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeChangeLogRepo) List(ctx context.Context, limit int) ([]*domain.ChangeLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if limit > len(f.entries) {
		limit = len(f.entries)
	}
	out := make([]*domain.ChangeLog, limit)
	copy(out, f.entries[len(f.entries)-limit:])
	return out, nil
}

func (f *fakeChangeLogRepo) ListByOrg(ctx context.Context, orgID string, limit int) ([]*domain.ChangeLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*domain.ChangeLog{}
	for _, e := range f.entries {
		if e.OrgID == orgID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeChangeLogRepo) all() []*domain.ChangeLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.ChangeLog, len(f.entries))
	copy(out, f.entries)
	return out
}

type fakeStatusLogRepo struct {
	mu      sync.Mutex
	entries []*domain.StatusLog
	failErr error
}

func newFakeStatusLogRepo() *fakeStatusLogRepo {
	return &fakeStatusLogRepo{}
}

func (f *fakeStatusLogRepo) Create(ctx context.Context, e *domain.StatusLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return f.failErr
	}
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeStatusLogRepo) ListByService(ctx context.Context, serviceID string, limit int) ([]*domain.StatusLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*domain.StatusLog{}
	for _, e := range f.entries {
		if e.ServiceID == serviceID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStatusLogRepo) all() []*domain.StatusLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.StatusLog, len(f.entries))
	copy(out, f.entries)
	return out
}

// fakeBroadcaster records every envelope the recorder fans out
type fakeBroadcaster struct {
	mu        sync.Mutex
	envelopes []realtime.Envelope
}

func (f *fakeBroadcaster) Broadcast(ctx context.Context, env realtime.Envelope) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.envelopes = append(f.envelopes, env)
}

func (f *fakeBroadcaster) all() []realtime.Envelope {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]realtime.Envelope, len(f.envelopes))
	copy(out, f.envelopes)
	return out
}
