package dto

// AffectedServiceInput names a service impacted by an incident and the status
// the incident pushes onto it
type AffectedServiceInput struct {
	ServiceID string `json:"service_id" binding:"required,uuid"`
	Status    string `json:"status" binding:"required,max=50"`
}

// IncidentNoteInput is a timeline entry submitted with an incident
type IncidentNoteInput struct {
	Message string `json:"message" binding:"required,max=2000"`
}

// CreateIncidentRequest represents request to open an incident
type CreateIncidentRequest struct {
	Title            string                 `json:"title" binding:"required,min=2,max=255"`
	Description      string                 `json:"description" binding:"omitempty,max=2000"`
	Status           string                 `json:"status" binding:"omitempty,max=50"`
	Severity         string                 `json:"severity" binding:"omitempty,max=50"`
	OrgID            string                 `json:"org_id" binding:"required,uuid"`
	AffectedServices []AffectedServiceInput `json:"affected_services" binding:"omitempty,dive"`
	Updates          []IncidentNoteInput    `json:"updates" binding:"omitempty,dive"`
}

// UpdateIncidentRequest represents request to update an incident. Nil fields
// are left unchanged; AffectedServices, when present, replaces the list and
// re-propagates statuses onto the named services.
type UpdateIncidentRequest struct {
	IncidentID       string                 `json:"incident_id" binding:"required,uuid"`
	Title            *string                `json:"title" binding:"omitempty,min=2,max=255"`
	Description      *string                `json:"description" binding:"omitempty,max=2000"`
	Status           *string                `json:"status" binding:"omitempty,max=50"`
	Severity         *string                `json:"severity" binding:"omitempty,max=50"`
	AffectedServices []AffectedServiceInput `json:"affected_services" binding:"omitempty,dive"`
	Updates          []IncidentNoteInput    `json:"updates" binding:"omitempty,dive"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateIncidentRequest) Validate() (bool, string) {
	if r.Title == nil && r.Description == nil && r.Status == nil && r.Severity == nil &&
		r.AffectedServices == nil && r.Updates == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// ListIncidentsQuery represents query parameters for listing incidents
type ListIncidentsQuery struct {
	OrgID string `form:"org_id" binding:"required,uuid"`
}

// DeleteIncidentQuery represents query parameters for deleting an incident
type DeleteIncidentQuery struct {
	IncidentID string `form:"incident_id" binding:"required,uuid"`
}
