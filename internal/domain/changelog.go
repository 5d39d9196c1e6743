package domain

import (
	"time"
)

// EntityType names the kind of entity a change record describes
type EntityType string

const (
	EntityService      EntityType = "service"
	EntityOrganization EntityType = "organization"
	EntityIncident     EntityType = "incident"
	EntityTeam         EntityType = "team"
)

// ChangeKind names the kind of mutation a change record describes
type ChangeKind string

const (
	ChangeCreate ChangeKind = "create"
	ChangeUpdate ChangeKind = "update"
	ChangeDelete ChangeKind = "delete"
)

// ChangeLog is an append-only audit record for exactly one committed
// mutation. Changes holds field→new-value pairs for creates and updates and
// is empty for deletes. Records are never mutated or deleted.
type ChangeLog struct {
	ID         string            `json:"id"`
	EntityID   string            `json:"entity_id"`
	EntityType EntityType        `json:"entity_type"`
	ChangeKind ChangeKind        `json:"change_kind"`
	Changes    map[string]string `json:"changes"`
	OrgID      string            `json:"org_id"`
	ActorID    string            `json:"actor_id"`
	CreatedAt  time.Time         `json:"created_at"`
}
