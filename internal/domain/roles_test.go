package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userWithRole(role Role) *User {
	return &User{
		ID:    "user-1",
		Email: "alice@acme.com",
		Memberships: []OrgMembership{
			{OrgID: "org-1", OrgSlug: "acme", Role: role},
		},
		CurrentOrgID: "org-1",
	}
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"admin", "member", "viewer"} {
		r, err := ParseRole(valid)
		require.NoError(t, err)
		assert.Equal(t, Role(valid), r)
	}

	_, err := ParseRole("superuser")
	assert.ErrorIs(t, err, ErrUnknownRole)
	_, err = ParseRole("")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestRequireRole(t *testing.T) {
	t.Run("matching role passes", func(t *testing.T) {
		assert.NoError(t, RequireRole(userWithRole(RoleAdmin), RoleAdmin, RoleMember))
		assert.NoError(t, RequireRole(userWithRole(RoleMember), RoleAdmin, RoleMember))
	})

	t.Run("viewer rejected from admin/member operations", func(t *testing.T) {
		err := RequireRole(userWithRole(RoleViewer), RoleAdmin, RoleMember)
		assert.ErrorIs(t, err, ErrInsufficientRole)
	})

	t.Run("no active membership rejected", func(t *testing.T) {
		u := &User{ID: "user-2", Email: "bob@acme.com"}
		err := RequireRole(u, RoleAdmin, RoleMember, RoleViewer)
		assert.ErrorIs(t, err, ErrInsufficientRole)
	})

	t.Run("current org not in membership list rejected", func(t *testing.T) {
		u := userWithRole(RoleAdmin)
		u.CurrentOrgID = "org-unknown"
		err := RequireRole(u, RoleAdmin)
		assert.ErrorIs(t, err, ErrInsufficientRole)
	})
}

func TestCurrentMembership(t *testing.T) {
	u := &User{
		Memberships: []OrgMembership{
			{OrgID: "org-1", OrgSlug: "acme", Role: RoleAdmin},
			{OrgID: "org-2", OrgSlug: "globex", Role: RoleViewer},
		},
		CurrentOrgID: "org-2",
	}

	m := u.CurrentMembership()
	require.NotNil(t, m)
	assert.Equal(t, "org-2", m.OrgID)

	// the membership is a back-reference, not a detached copy
	m.Role = RoleMember
	assert.Equal(t, RoleMember, u.Memberships[1].Role)

	u.CurrentOrgID = ""
	assert.Nil(t, u.CurrentMembership())
}
