package domain

import (
	"time"
)

// IncidentStatus is an incident's lifecycle stage
type IncidentStatus string

const (
	IncidentInvestigating IncidentStatus = "investigating"
	IncidentIdentified    IncidentStatus = "identified"
	IncidentMonitoring    IncidentStatus = "monitoring"
	IncidentResolved      IncidentStatus = "resolved"
)

// IncidentSeverity grades an incident's impact
type IncidentSeverity string

const (
	SeverityMinor    IncidentSeverity = "minor"
	SeverityMajor    IncidentSeverity = "major"
	SeverityCritical IncidentSeverity = "critical"
)

// AffectedService records a service impacted by an incident together with
// the status the incident pushes onto it
type AffectedService struct {
	ServiceID   string        `json:"service_id"`
	ServiceName string        `json:"service_name"`
	Status      ServiceStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// IncidentNote is a timeline entry posted against an incident
type IncidentNote struct {
	Message           string    `json:"message"`
	CreatedBy         string    `json:"created_by,omitempty"`
	CreatedByUsername string    `json:"created_by_username,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// Incident is an outage or degradation event scoped to one organization
type Incident struct {
	ID                string            `json:"id"`
	OrgID             string            `json:"org_id"`
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	Status            IncidentStatus    `json:"status"`
	Severity          IncidentSeverity  `json:"severity,omitempty"`
	AffectedServices  []AffectedService `json:"affected_services"`
	Updates           []IncidentNote    `json:"updates"`
	StartedAt         time.Time         `json:"started_at"`
	ResolvedAt        *time.Time        `json:"resolved_at,omitempty"`
	CreatedBy         string            `json:"created_by,omitempty"`
	CreatedByUsername string            `json:"created_by_username"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         *time.Time        `json:"updated_at,omitempty"`
}
