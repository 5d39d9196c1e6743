package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
	"github.com/aditya26raj01/status-app-backend/internal/dto"
)

type incidentFixture struct {
	incidentRepo  *fakeIncidentRepo
	serviceRepo   *fakeServiceRepo
	statusLogRepo *fakeStatusLogRepo
	changeRepo    *fakeChangeLogRepo
	hub           *fakeBroadcaster
	svc           IncidentService
}

func newIncidentFixture() *incidentFixture {
	f := &incidentFixture{
		incidentRepo:  newFakeIncidentRepo(),
		serviceRepo:   newFakeServiceRepo(),
		statusLogRepo: newFakeStatusLogRepo(),
		changeRepo:    newFakeChangeLogRepo(),
		hub:           &fakeBroadcaster{},
	}
	recorder := NewRecorder(f.changeRepo, nil, f.hub)
	f.svc = NewIncidentService(f.incidentRepo, f.serviceRepo, f.statusLogRepo, recorder)
	return f
}

func (f *incidentFixture) seedService(t *testing.T, id, orgID string, status domain.ServiceStatus) *domain.Service {
	t.Helper()
	svc := &domain.Service{
		ID:        id,
		OrgID:     orgID,
		Name:      "svc " + id,
		Status:    status,
		CreatedAt: time.Now(),
	}
	require.NoError(t, f.serviceRepo.Create(context.Background(), svc))
	return svc
}

func TestIncidentService_Create_PropagatesAffectedServiceStatus(t *testing.T) {
	f := newIncidentFixture()
	actor := memberOf("org-1", domain.RoleAdmin)
	f.seedService(t, "svc-1", "org-1", domain.ServiceOperational)
	f.seedService(t, "svc-2", "org-1", domain.ServiceOperational)

	inc, err := f.svc.Create(context.Background(), actor, &dto.CreateIncidentRequest{
		Title:    "Database outage",
		OrgID:    "org-1",
		Severity: string(domain.SeverityCritical),
		AffectedServices: []dto.AffectedServiceInput{
			{ServiceID: "svc-1", Status: string(domain.ServiceOutage)},
			{ServiceID: "svc-2", Status: string(domain.ServiceDegraded)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.IncidentInvestigating, inc.Status)
	require.Len(t, inc.AffectedServices, 2)
	assert.Equal(t, "svc " + "svc-1", inc.AffectedServices[0].ServiceName)

	// statuses pushed onto the services themselves
	svc1, _ := f.serviceRepo.GetByID(context.Background(), "svc-1")
	assert.Equal(t, domain.ServiceOutage, svc1.Status)
	svc2, _ := f.serviceRepo.GetByID(context.Background(), "svc-2")
	assert.Equal(t, domain.ServiceDegraded, svc2.Status)

	// one transition row per changed service
	assert.Len(t, f.statusLogRepo.all(), 2)

	require.Len(t, f.changeRepo.all(), 1)
	require.Len(t, f.hub.all(), 1)
	assert.Equal(t, "incident", f.hub.all()[0].Type)
}

func TestIncidentService_Create_UnknownAffectedService(t *testing.T) {
	f := newIncidentFixture()
	actor := memberOf("org-1", domain.RoleAdmin)

	_, err := f.svc.Create(context.Background(), actor, &dto.CreateIncidentRequest{
		Title: "Outage",
		OrgID: "org-1",
		AffectedServices: []dto.AffectedServiceInput{
			{ServiceID: "missing", Status: string(domain.ServiceOutage)},
		},
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Empty(t, f.incidentRepo.incidents)
	assert.Empty(t, f.changeRepo.all())
}

func TestIncidentService_Create_CrossOrgAffectedService(t *testing.T) {
	f := newIncidentFixture()
	actor := memberOf("org-1", domain.RoleAdmin)
	f.seedService(t, "svc-other", "org-2", domain.ServiceOperational)

	_, err := f.svc.Create(context.Background(), actor, &dto.CreateIncidentRequest{
		Title: "Outage",
		OrgID: "org-1",
		AffectedServices: []dto.AffectedServiceInput{
			{ServiceID: "svc-other", Status: string(domain.ServiceOutage)},
		},
	})
	assert.ErrorIs(t, err, ErrCrossOrgAccess)
}

func TestIncidentService_Create_ViewerForbidden(t *testing.T) {
	f := newIncidentFixture()
	viewer := memberOf("org-1", domain.RoleViewer)

	_, err := f.svc.Create(context.Background(), viewer, &dto.CreateIncidentRequest{
		Title: "Outage",
		OrgID: "org-1",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientRole)
	assert.Empty(t, f.incidentRepo.incidents)
}

func TestIncidentService_Update_ResolvedSetsResolvedAt(t *testing.T) {
	f := newIncidentFixture()
	actor := memberOf("org-1", domain.RoleAdmin)

	inc, err := f.svc.Create(context.Background(), actor, &dto.CreateIncidentRequest{
		Title: "Outage",
		OrgID: "org-1",
	})
	require.NoError(t, err)
	require.Nil(t, inc.ResolvedAt)

	resolved := string(domain.IncidentResolved)
	updated, err := f.svc.Update(context.Background(), actor, &dto.UpdateIncidentRequest{
		IncidentID: inc.ID,
		Status:     &resolved,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.IncidentResolved, updated.Status)
	assert.NotNil(t, updated.ResolvedAt)
}

func TestIncidentService_Update_AppendsNotes(t *testing.T) {
	f := newIncidentFixture()
	actor := memberOf("org-1", domain.RoleAdmin)

	inc, err := f.svc.Create(context.Background(), actor, &dto.CreateIncidentRequest{
		Title:   "Outage",
		OrgID:   "org-1",
		Updates: []dto.IncidentNoteInput{{Message: "investigating"}},
	})
	require.NoError(t, err)
	require.Len(t, inc.Updates, 1)

	updated, err := f.svc.Update(context.Background(), actor, &dto.UpdateIncidentRequest{
		IncidentID: inc.ID,
		Updates:    []dto.IncidentNoteInput{{Message: "root cause found"}},
	})
	require.NoError(t, err)
	require.Len(t, updated.Updates, 2)
	assert.Equal(t, "root cause found", updated.Updates[1].Message)
	assert.Equal(t, actor.ID, updated.Updates[1].CreatedBy)
}

func TestIncidentService_Create_InvalidStatus(t *testing.T) {
	f := newIncidentFixture()
	actor := memberOf("org-1", domain.RoleAdmin)

	_, err := f.svc.Create(context.Background(), actor, &dto.CreateIncidentRequest{
		Title:  "Outage",
		OrgID:  "org-1",
		Status: "exploded",
	})
	assert.ErrorIs(t, err, ErrInvalidIncidentStatus)
	assert.Empty(t, f.incidentRepo.incidents)
}

func TestIncidentService_Create_StatusLogFailureDoesNotBlock(t *testing.T) {
	f := newIncidentFixture()
	actor := memberOf("org-1", domain.RoleAdmin)
	f.seedService(t, "svc-1", "org-1", domain.ServiceOperational)
	f.statusLogRepo.failErr = errors.New("statuslog table unavailable")

	inc, err := f.svc.Create(context.Background(), actor, &dto.CreateIncidentRequest{
		Title: "Outage",
		OrgID: "org-1",
		AffectedServices: []dto.AffectedServiceInput{
			{ServiceID: "svc-1", Status: string(domain.ServiceOutage)},
		},
	})
	require.NoError(t, err)
	require.Len(t, inc.AffectedServices, 1)

	// the pushed status sticks even though the transition row was lost
	svc, _ := f.serviceRepo.GetByID(context.Background(), "svc-1")
	assert.Equal(t, domain.ServiceOutage, svc.Status)
	assert.Empty(t, f.statusLogRepo.all())
}

func TestIncidentService_Update_NoFields(t *testing.T) {
	f := newIncidentFixture()
	actor := memberOf("org-1", domain.RoleAdmin)

	inc, err := f.svc.Create(context.Background(), actor, &dto.CreateIncidentRequest{
		Title: "Outage",
		OrgID: "org-1",
	})
	require.NoError(t, err)

	_, err = f.svc.Update(context.Background(), actor, &dto.UpdateIncidentRequest{
		IncidentID: inc.ID,
	})
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestIncidentService_Delete(t *testing.T) {
	f := newIncidentFixture()
	actor := memberOf("org-1", domain.RoleAdmin)

	inc, err := f.svc.Create(context.Background(), actor, &dto.CreateIncidentRequest{
		Title: "Outage",
		OrgID: "org-1",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), actor, inc.ID))
	_, err = f.svc.GetByID(context.Background(), inc.ID)
	assert.ErrorIs(t, err, ErrIncidentNotFound)

	entries := f.changeRepo.all()
	require.Len(t, entries, 2)
	assert.Equal(t, domain.ChangeDelete, entries[1].ChangeKind)
}
