package domain

import (
	"time"
)

// ServiceStatus is the operational state shown on the status page
type ServiceStatus string

const (
	ServiceOperational ServiceStatus = "operational"
	ServiceDegraded    ServiceStatus = "degraded_performance"
	ServiceMaintenance ServiceStatus = "maintenance"
	ServiceOutage      ServiceStatus = "outage"
	ServiceUnknown     ServiceStatus = "unknown"
)

// Service is a monitored component belonging to one organization
type Service struct {
	ID                string        `json:"id"`
	OrgID             string        `json:"org_id"`
	Name              string        `json:"name"`
	Description       string        `json:"description,omitempty"`
	Status            ServiceStatus `json:"status"`
	CreatedBy         string        `json:"created_by,omitempty"`
	CreatedByUsername string        `json:"created_by_username"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         *time.Time    `json:"updated_at,omitempty"`
}
