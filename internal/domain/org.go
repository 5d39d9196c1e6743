package domain

import (
	"time"
)

// Organization is the tenant boundary. Domain and Slug are globally unique
// and immutable after creation.
type Organization struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Domain            string     `json:"domain"`
	Slug              string     `json:"org_slug"`
	CreatedBy         string     `json:"created_by,omitempty"`
	CreatedByUsername string     `json:"created_by_username"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}
