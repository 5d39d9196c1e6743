package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aditya26raj01/status-app-backend/internal/dto"
	"github.com/aditya26raj01/status-app-backend/internal/service"
	"github.com/aditya26raj01/status-app-backend/pkg/middleware"
	"github.com/aditya26raj01/status-app-backend/pkg/response"
)

// LogHandler handles audit-trail HTTP requests
type LogHandler struct {
	logService service.LogService
}

// NewLogHandler creates a new LogHandler
func NewLogHandler(logService service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// GetAll handles listing change records, newest first
// GET /log/get-all-logs
func (h *LogHandler) GetAll(c *gin.Context) {
	if _, ok := middleware.MustCurrentUser(c); !ok {
		return
	}

	var query dto.ListLogsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	query.SetDefaults()

	logs, err := h.logService.GetAll(c.Request.Context(), query.Limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(logs))
}

// GetByOrg handles listing one organization's change records
// GET /log/get-logs-by-org?org_id=
func (h *LogHandler) GetByOrg(c *gin.Context) {
	actor, ok := middleware.MustCurrentUser(c)
	if !ok {
		return
	}

	var query dto.ListLogsByOrgQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	query.SetDefaults()

	logs, err := h.logService.GetByOrg(c.Request.Context(), actor, query.OrgID, query.Limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(logs))
}
