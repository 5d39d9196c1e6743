package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
	"github.com/aditya26raj01/status-app-backend/internal/realtime"
)

func TestRecorder_EmptyEntityIDViolatesInvariant(t *testing.T) {
	changeRepo := newFakeChangeLogRepo()
	hub := &fakeBroadcaster{}
	rec := NewRecorder(changeRepo, nil, hub)
	actor := memberOf("org-1", domain.RoleAdmin)

	err := rec.Record(context.Background(), actor, "", domain.EntityService, domain.ChangeCreate, nil, "org-1", nil, realtime.ActionCreate)
	assert.ErrorIs(t, err, ErrInvariantViolation)
	assert.Empty(t, changeRepo.all())
	assert.Empty(t, hub.all())
}

func TestRecorder_AuditFailureBlocksBroadcast(t *testing.T) {
	changeRepo := newFakeChangeLogRepo()
	changeRepo.failErr = assert.AnError
	hub := &fakeBroadcaster{}
	rec := NewRecorder(changeRepo, nil, hub)
	actor := memberOf("org-1", domain.RoleAdmin)

	err := rec.Record(context.Background(), actor, "svc-1", domain.EntityService, domain.ChangeUpdate, map[string]string{"status": "outage"}, "org-1", map[string]string{"id": "svc-1"}, realtime.ActionUpdate)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, hub.all())
}

func TestRecorder_NilChangesStoredAsEmptyMap(t *testing.T) {
	changeRepo := newFakeChangeLogRepo()
	hub := &fakeBroadcaster{}
	rec := NewRecorder(changeRepo, nil, hub)
	actor := memberOf("org-1", domain.RoleAdmin)

	err := rec.Record(context.Background(), actor, "svc-1", domain.EntityService, domain.ChangeDelete, nil, "org-1", map[string]string{"id": "svc-1"}, realtime.ActionDelete)
	require.NoError(t, err)

	entries := changeRepo.all()
	require.Len(t, entries, 1)
	assert.NotNil(t, entries[0].Changes)
	assert.Empty(t, entries[0].Changes)
	assert.NotEmpty(t, entries[0].ID)
	assert.Equal(t, "user-1", entries[0].ActorID)

	require.Len(t, hub.all(), 1)
	assert.Equal(t, realtime.ActionDelete, hub.all()[0].Action)
}

func TestAuthorize(t *testing.T) {
	admin := memberOf("org-1", domain.RoleAdmin)
	assert.NoError(t, authorize(admin, "org-1", domain.RoleAdmin, domain.RoleMember))
	assert.ErrorIs(t, authorize(admin, "org-2", domain.RoleAdmin), ErrCrossOrgAccess)

	viewer := memberOf("org-1", domain.RoleViewer)
	assert.ErrorIs(t, authorize(viewer, "org-1", domain.RoleAdmin, domain.RoleMember), domain.ErrInsufficientRole)

	nobody := &domain.User{ID: "user-9"}
	assert.ErrorIs(t, authorize(nobody, "org-1", domain.RoleAdmin), domain.ErrInsufficientRole)
}
