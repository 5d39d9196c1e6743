package dto

// ListLogsQuery represents query parameters for listing change records
type ListLogsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

// SetDefaults sets default values for query parameters
func (q *ListLogsQuery) SetDefaults() {
	if q.Limit == 0 {
		q.Limit = 100
	}
}

// ListLogsByOrgQuery represents query parameters for listing change records
// of one organization
type ListLogsByOrgQuery struct {
	OrgID string `form:"org_id" binding:"required,uuid"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

// SetDefaults sets default values for query parameters
func (q *ListLogsByOrgQuery) SetDefaults() {
	if q.Limit == 0 {
		q.Limit = 100
	}
}
