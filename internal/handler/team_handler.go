package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aditya26raj01/status-app-backend/internal/dto"
	"github.com/aditya26raj01/status-app-backend/internal/service"
	"github.com/aditya26raj01/status-app-backend/pkg/middleware"
	"github.com/aditya26raj01/status-app-backend/pkg/response"
)

// TeamHandler handles team HTTP requests
type TeamHandler struct {
	teamService service.TeamService
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// Create handles team creation
// POST /team/create-team
func (h *TeamHandler) Create(c *gin.Context) {
	actor, ok := middleware.MustCurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), actor, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(team))
}

// GetAll handles listing an organization's teams
// GET /team/get-all-teams?org_id=
func (h *TeamHandler) GetAll(c *gin.Context) {
	var query dto.ListTeamsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	teams, err := h.teamService.GetAll(c.Request.Context(), query.OrgID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(teams))
}

// GetByID handles retrieving a team by ID
// GET /team/:id
func (h *TeamHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Team ID is required"))
		return
	}

	team, err := h.teamService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(team))
}
