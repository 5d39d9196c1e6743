package domain

import (
	"time"
)

// StatusLog records one service status transition
type StatusLog struct {
	ID        string        `json:"id"`
	ServiceID string        `json:"service_id"`
	OrgID     string        `json:"org_id"`
	OldStatus ServiceStatus `json:"old_status"`
	NewStatus ServiceStatus `json:"new_status"`
	CreatedAt time.Time     `json:"created_at"`
}
