package dto

import (
	"github.com/aditya26raj01/status-app-backend/internal/domain"
)

// OrgStatusResponse is the public status-page aggregate for one organization
type OrgStatusResponse struct {
	Org       *domain.Organization `json:"org"`
	Services  []*domain.Service    `json:"services"`
	Incidents []*domain.Incident   `json:"incidents"`
}
