package dto

// SyncUserRequest represents the unauthenticated bootstrap upsert of a user
// record keyed by email
type SyncUserRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	FullName string `json:"full_name" binding:"omitempty,max=255"`
	PhotoURL string `json:"photo_url" binding:"omitempty,url"`
}

// UpdateCurrentOrgQuery represents query parameters for switching the
// caller's active organization
type UpdateCurrentOrgQuery struct {
	OrgID string `form:"org_id" binding:"required,uuid"`
}
