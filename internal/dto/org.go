package dto

import (
	"regexp"
)

// CreateOrgRequest represents request to create a new organization
type CreateOrgRequest struct {
	Name   string `json:"name" binding:"required,min=2,max=255"`
	Domain string `json:"domain" binding:"required,max=255"`
	Slug   string `json:"org_slug" binding:"required,min=2,max=100"`
}

var slugRegex = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidateSlug validates slug format (lowercase alphanumeric and hyphens only)
func (r *CreateOrgRequest) ValidateSlug() (bool, string) {
	if !slugRegex.MatchString(r.Slug) {
		return false, "Slug must contain only lowercase letters, numbers, and hyphens"
	}
	return true, ""
}

// GetOrgByDomainQuery represents query parameters for the public domain lookup
type GetOrgByDomainQuery struct {
	Domain string `form:"domain" binding:"required,max=255"`
}

// GetOrgStatusQuery represents query parameters for the public status page
type GetOrgStatusQuery struct {
	OrgSlug string `form:"org_slug" binding:"required,max=100"`
}
