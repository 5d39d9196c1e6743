package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aditya26raj01/status-app-backend/internal/dto"
	"github.com/aditya26raj01/status-app-backend/internal/service"
	"github.com/aditya26raj01/status-app-backend/pkg/middleware"
	"github.com/aditya26raj01/status-app-backend/pkg/response"
)

// IncidentHandler handles incident HTTP requests
type IncidentHandler struct {
	incidentService service.IncidentService
}

// NewIncidentHandler creates a new IncidentHandler
func NewIncidentHandler(incidentService service.IncidentService) *IncidentHandler {
	return &IncidentHandler{incidentService: incidentService}
}

// Create handles incident creation
// POST /incident/create-incident
func (h *IncidentHandler) Create(c *gin.Context) {
	actor, ok := middleware.MustCurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	inc, err := h.incidentService.Create(c.Request.Context(), actor, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(inc))
}

// Update handles incident updates
// POST /incident/update-incident
func (h *IncidentHandler) Update(c *gin.Context) {
	actor, ok := middleware.MustCurrentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	inc, err := h.incidentService.Update(c.Request.Context(), actor, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(inc))
}

// GetAll handles listing an organization's incidents
// GET /incident/get-all-incidents?org_id=
func (h *IncidentHandler) GetAll(c *gin.Context) {
	var query dto.ListIncidentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	incidents, err := h.incidentService.GetAll(c.Request.Context(), query.OrgID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(incidents))
}

// Delete handles incident deletion
// DELETE /incident/delete-incident?incident_id=
func (h *IncidentHandler) Delete(c *gin.Context) {
	actor, ok := middleware.MustCurrentUser(c)
	if !ok {
		return
	}

	var query dto.DeleteIncidentQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	if err := h.incidentService.Delete(c.Request.Context(), actor, query.IncidentID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": query.IncidentID}))
}

// GetByID handles retrieving an incident by ID
// GET /incident/:id
func (h *IncidentHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Incident ID is required"))
		return
	}

	inc, err := h.incidentService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(inc))
}
