package domain

import (
	"errors"
	"fmt"
)

// Role is a user's role within an organization
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleViewer Role = "viewer"
)

var (
	// ErrInsufficientRole is returned when the current identity lacks a required
	// role for the operation. Distinct from authentication failures: the caller
	// is known, just not allowed.
	ErrInsufficientRole = errors.New("insufficient role")
	// ErrUnknownRole is returned for a role string outside the closed set
	ErrUnknownRole = errors.New("unknown role")
)

// ParseRole validates a raw role string against the closed set
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleMember, RoleViewer:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// RequireRole asserts that the user's active organization membership carries
// one of the given roles. A user with no active membership is rejected.
func RequireRole(u *User, roles ...Role) error {
	m := u.CurrentMembership()
	if m == nil {
		return ErrInsufficientRole
	}
	for _, r := range roles {
		if m.Role == r {
			return nil
		}
	}
	return ErrInsufficientRole
}
