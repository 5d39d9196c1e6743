package dto

// CreateServiceRequest represents request to create a monitored service
type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Status      string `json:"status" binding:"omitempty,max=50"`
	OrgID       string `json:"org_id" binding:"required,uuid"`
}

// UpdateServiceRequest represents request to update a service. Nil fields are
// left unchanged.
type UpdateServiceRequest struct {
	ServiceID   string  `json:"service_id" binding:"required,uuid"`
	Name        *string `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Status      *string `json:"status" binding:"omitempty,max=50"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateServiceRequest) Validate() (bool, string) {
	if r.Name == nil && r.Description == nil && r.Status == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// ListServicesQuery represents query parameters for listing services
type ListServicesQuery struct {
	OrgID string `form:"org_id" binding:"required,uuid"`
}

// DeleteServiceQuery represents query parameters for deleting a service
type DeleteServiceQuery struct {
	ServiceID string `form:"service_id" binding:"required,uuid"`
}

// ListStatusLogsQuery represents query parameters for a service's status
// transition history
type ListStatusLogsQuery struct {
	ServiceID string `form:"service_id" binding:"required,uuid"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

// SetDefaults sets default values for query parameters
func (q *ListStatusLogsQuery) SetDefaults() {
	if q.Limit == 0 {
		q.Limit = 100
	}
}
