package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
	"github.com/aditya26raj01/status-app-backend/internal/service"
	"github.com/aditya26raj01/status-app-backend/pkg/response"
)

// respondServiceError maps service-layer sentinel errors onto the response
// envelope. Unknown errors become opaque 500s.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrOrgAlreadyExists):
		c.JSON(http.StatusConflict, response.Error(response.ErrCodeDuplicateOrg, "Organization with this domain or slug already exists"))
	case errors.Is(err, service.ErrOrgNotFound):
		c.JSON(http.StatusNotFound, response.NotFound("Organization not found"))
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, response.NotFound("User not found"))
	case errors.Is(err, service.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, response.NotFound("Service not found"))
	case errors.Is(err, service.ErrIncidentNotFound):
		c.JSON(http.StatusNotFound, response.NotFound("Incident not found"))
	case errors.Is(err, service.ErrTeamNotFound):
		c.JSON(http.StatusNotFound, response.NotFound("Team not found"))
	case errors.Is(err, service.ErrNotMember):
		c.JSON(http.StatusNotFound, response.Error(response.ErrCodeNotMember, "User is not a member of this organization"))
	case errors.Is(err, domain.ErrInsufficientRole):
		c.JSON(http.StatusForbidden, response.Forbidden("Insufficient role for this operation"))
	case errors.Is(err, service.ErrCrossOrgAccess):
		c.JSON(http.StatusForbidden, response.Forbidden("Entity belongs to a different organization"))
	case errors.Is(err, service.ErrInvalidOrgSlug),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidIncidentStatus),
		errors.Is(err, service.ErrInvalidSeverity),
		errors.Is(err, service.ErrEmptyUpdate),
		errors.Is(err, domain.ErrUnknownRole):
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
	case errors.Is(err, service.ErrInvariantViolation):
		c.JSON(http.StatusInternalServerError, response.InternalError("Internal error"))
	default:
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
	}
}
