package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
	"github.com/aditya26raj01/status-app-backend/internal/dto"
	"github.com/aditya26raj01/status-app-backend/internal/service"
	"github.com/aditya26raj01/status-app-backend/pkg/middleware"
	"github.com/aditya26raj01/status-app-backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondServiceError_Taxonomy(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"duplicate org", service.ErrOrgAlreadyExists, http.StatusConflict, response.ErrCodeDuplicateOrg},
		{"org not found", service.ErrOrgNotFound, http.StatusNotFound, response.ErrCodeNotFound},
		{"not a member", service.ErrNotMember, http.StatusNotFound, response.ErrCodeNotMember},
		{"insufficient role", domain.ErrInsufficientRole, http.StatusForbidden, response.ErrCodeForbidden},
		{"cross org", service.ErrCrossOrgAccess, http.StatusForbidden, response.ErrCodeForbidden},
		{"invalid slug", service.ErrInvalidOrgSlug, http.StatusBadRequest, response.ErrCodeBadRequest},
		{"invalid service status", fmt.Errorf("%w: %q", service.ErrInvalidStatus, "on-fire"), http.StatusBadRequest, response.ErrCodeBadRequest},
		{"invalid incident status", fmt.Errorf("%w: %q", service.ErrInvalidIncidentStatus, "exploded"), http.StatusBadRequest, response.ErrCodeBadRequest},
		{"invalid severity", service.ErrInvalidSeverity, http.StatusBadRequest, response.ErrCodeBadRequest},
		{"empty update", service.ErrEmptyUpdate, http.StatusBadRequest, response.ErrCodeBadRequest},
		{"unknown role", fmt.Errorf("%w: %q", domain.ErrUnknownRole, "superuser"), http.StatusBadRequest, response.ErrCodeBadRequest},
		{"invariant violation", service.ErrInvariantViolation, http.StatusInternalServerError, response.ErrCodeInternalError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			respondServiceError(c, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			var body response.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tc.wantCode, body.Error.Code)
		})
	}
}

// stubServiceService returns a canned error from every mutating call
type stubServiceService struct {
	err error
}

func (s *stubServiceService) Create(ctx context.Context, actor *domain.User, req *dto.CreateServiceRequest) (*domain.Service, error) {
	return nil, s.err
}

func (s *stubServiceService) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	return nil, s.err
}

func (s *stubServiceService) GetAll(ctx context.Context, orgID string) ([]*domain.Service, error) {
	return nil, s.err
}

func (s *stubServiceService) Update(ctx context.Context, actor *domain.User, req *dto.UpdateServiceRequest) (*domain.Service, error) {
	return nil, s.err
}

func (s *stubServiceService) Delete(ctx context.Context, actor *domain.User, serviceID string) error {
	return s.err
}

func (s *stubServiceService) GetStatusLogs(ctx context.Context, serviceID string, limit int) ([]*domain.StatusLog, error) {
	return nil, s.err
}

func serviceTestRouter(svcErr error) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetCurrentUser(c, &domain.User{ID: "user-1", Email: "alice@acme.com"})
	})
	h := NewServiceHandler(&stubServiceService{err: svcErr})
	r.POST("/service/update-service", h.Update)
	return r
}

func TestServiceHandler_Update_EmptyUpdateIsBadRequest(t *testing.T) {
	r := serviceTestRouter(service.ErrEmptyUpdate)

	body := bytes.NewBufferString(`{"service_id":"7c9e6679-7425-40de-944b-e07fc1f90ae7"}`)
	req := httptest.NewRequest(http.MethodPost, "/service/update-service", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, response.ErrCodeBadRequest, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "at least one field")
}

func TestServiceHandler_Update_InvalidStatusIsBadRequest(t *testing.T) {
	r := serviceTestRouter(fmt.Errorf("%w: %q", service.ErrInvalidStatus, "on-fire"))

	body := bytes.NewBufferString(`{"service_id":"7c9e6679-7425-40de-944b-e07fc1f90ae7","status":"on-fire"}`)
	req := httptest.NewRequest(http.MethodPost, "/service/update-service", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, response.ErrCodeBadRequest, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "on-fire")
}
