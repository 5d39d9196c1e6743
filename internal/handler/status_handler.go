package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aditya26raj01/status-app-backend/internal/dto"
	"github.com/aditya26raj01/status-app-backend/internal/service"
	"github.com/aditya26raj01/status-app-backend/pkg/response"
)

// StatusHandler handles the public status-page request
type StatusHandler struct {
	statusService service.StatusService
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(statusService service.StatusService) *StatusHandler {
	return &StatusHandler{statusService: statusService}
}

// GetOrgStatus handles the public status aggregate
// GET /status/get-org-status?org_slug=
func (h *StatusHandler) GetOrgStatus(c *gin.Context) {
	var query dto.GetOrgStatusQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	status, err := h.statusService.GetOrgStatus(c.Request.Context(), query.OrgSlug)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(status))
}
