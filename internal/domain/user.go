package domain

import (
	"time"
)

// OrgMembership links a user to one organization with a role.
// A user holds at most one membership per organization.
type OrgMembership struct {
	OrgID     string    `json:"org_id"`
	OrgSlug   string    `json:"org_slug"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// User is a resolved account record. CurrentOrgID names the active tenant
// context and always refers to an entry in Memberships; the membership itself
// is resolved through CurrentMembership rather than stored as a copy.
type User struct {
	ID           string          `json:"id"`
	Email        string          `json:"email"`
	FullName     string          `json:"full_name"`
	PhotoURL     string          `json:"photo_url,omitempty"`
	Role         Role            `json:"role"`
	Memberships  []OrgMembership `json:"org_memberships"`
	CurrentOrgID string          `json:"current_org_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    *time.Time      `json:"updated_at,omitempty"`
}

// CurrentMembership returns the active organization membership, or nil when
// the user has none selected. The returned pointer aliases the Memberships
// slice entry.
func (u *User) CurrentMembership() *OrgMembership {
	if u.CurrentOrgID == "" {
		return nil
	}
	return u.MembershipFor(u.CurrentOrgID)
}

// MembershipFor returns the membership for the given organization, or nil
func (u *User) MembershipFor(orgID string) *OrgMembership {
	for i := range u.Memberships {
		if u.Memberships[i].OrgID == orgID {
			return &u.Memberships[i]
		}
	}
	return nil
}
