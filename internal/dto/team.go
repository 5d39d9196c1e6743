package dto

// TeamMemberInput names a user to place on a team roster
type TeamMemberInput struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Role   string `json:"role" binding:"omitempty,max=50"`
}

// CreateTeamRequest represents request to create a team
type CreateTeamRequest struct {
	Name    string            `json:"name" binding:"required,min=2,max=255"`
	OrgID   string            `json:"org_id" binding:"required,uuid"`
	Members []TeamMemberInput `json:"members" binding:"omitempty,dive"`
}

// ListTeamsQuery represents query parameters for listing teams
type ListTeamsQuery struct {
	OrgID string `form:"org_id" binding:"required,uuid"`
}
