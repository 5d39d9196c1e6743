package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aditya26raj01/status-app-backend/internal/dto"
	"github.com/aditya26raj01/status-app-backend/internal/service"
	"github.com/aditya26raj01/status-app-backend/pkg/middleware"
	"github.com/aditya26raj01/status-app-backend/pkg/response"
)

// OrgHandler handles organization HTTP requests
type OrgHandler struct {
	orgService service.OrgService
}

// NewOrgHandler creates a new OrgHandler
func NewOrgHandler(orgService service.OrgService) *OrgHandler {
	return &OrgHandler{orgService: orgService}
}

// Create handles organization creation
// POST /org/create-org
func (h *OrgHandler) Create(c *gin.Context) {
	actor, ok := middleware.MustCurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateOrgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	org, err := h.orgService.Create(c.Request.Context(), actor, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(org))
}

// GetAll handles listing the caller's organizations
// GET /org/get-all-orgs
func (h *OrgHandler) GetAll(c *gin.Context) {
	actor, ok := middleware.MustCurrentUser(c)
	if !ok {
		return
	}

	orgs, err := h.orgService.GetAllForUser(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(orgs))
}

// GetByDomain handles the public organization lookup
// GET /org/get-org-by-domain?domain=
func (h *OrgHandler) GetByDomain(c *gin.Context) {
	var query dto.GetOrgByDomainQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	org, err := h.orgService.GetByDomain(c.Request.Context(), query.Domain)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(org))
}
