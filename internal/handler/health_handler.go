package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aditya26raj01/status-app-backend/pkg/database"
	"github.com/aditya26raj01/status-app-backend/pkg/response"
)

// HealthHandler reports service health
type HealthHandler struct {
	db *database.PostgresDB
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *database.PostgresDB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles the health probe, pinging the database
// GET /
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, response.Error(response.ErrCodeInternalError, "database unreachable"))
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"status": "ok"}))
}
