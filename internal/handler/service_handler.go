package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aditya26raj01/status-app-backend/internal/dto"
	"github.com/aditya26raj01/status-app-backend/internal/service"
	"github.com/aditya26raj01/status-app-backend/pkg/middleware"
	"github.com/aditya26raj01/status-app-backend/pkg/response"
)

// ServiceHandler handles monitored-service HTTP requests
type ServiceHandler struct {
	serviceService service.ServiceService
}

// NewServiceHandler creates a new ServiceHandler
func NewServiceHandler(serviceService service.ServiceService) *ServiceHandler {
	return &ServiceHandler{serviceService: serviceService}
}

// Create handles service creation
// POST /service/create-service
func (h *ServiceHandler) Create(c *gin.Context) {
	actor, ok := middleware.MustCurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	svc, err := h.serviceService.Create(c.Request.Context(), actor, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(svc))
}

// Update handles service updates
// POST /service/update-service
func (h *ServiceHandler) Update(c *gin.Context) {
	actor, ok := middleware.MustCurrentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	svc, err := h.serviceService.Update(c.Request.Context(), actor, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(svc))
}

// GetAll handles listing an organization's services
// GET /service/get-all-services?org_id=
func (h *ServiceHandler) GetAll(c *gin.Context) {
	var query dto.ListServicesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	services, err := h.serviceService.GetAll(c.Request.Context(), query.OrgID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(services))
}

// Delete handles service deletion
// DELETE /service/delete-service?service_id=
func (h *ServiceHandler) Delete(c *gin.Context) {
	actor, ok := middleware.MustCurrentUser(c)
	if !ok {
		return
	}

	var query dto.DeleteServiceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	if err := h.serviceService.Delete(c.Request.Context(), actor, query.ServiceID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": query.ServiceID}))
}

// GetStatusLogs handles retrieving a service's status transition history
// GET /service/get-status-logs?service_id=&limit=
func (h *ServiceHandler) GetStatusLogs(c *gin.Context) {
	var query dto.ListStatusLogsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	query.SetDefaults()

	logs, err := h.serviceService.GetStatusLogs(c.Request.Context(), query.ServiceID, query.Limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(logs))
}

// GetByID handles retrieving a service by ID
// GET /service/:id
func (h *ServiceHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Service ID is required"))
		return
	}

	svc, err := h.serviceService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(svc))
}
