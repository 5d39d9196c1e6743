package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
	"github.com/aditya26raj01/status-app-backend/pkg/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubVerifier struct {
	claims *token.Claims
	err    error
}

func (s *stubVerifier) Verify(ctx context.Context, raw string) (*token.Claims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

type stubUsers struct {
	users map[string]*domain.User
	err   error
}

func (s *stubUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users[email], nil
}

func setupRouter(cfg *AuthConfig) *gin.Engine {
	router := gin.New()
	router.Use(AuthMiddleware(cfg))
	handler := func(c *gin.Context) {
		if u, ok := CurrentUser(c); ok {
			c.JSON(http.StatusOK, gin.H{"email": u.Email})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": ""})
	}
	router.GET("/service/get-all-services", handler)
	router.GET("/org/get-org-by-domain", handler)
	router.POST("/user/sync-user-to-db", handler)
	router.GET("/status/get-org-status", handler)
	return router
}

func validConfig() *AuthConfig {
	return &AuthConfig{
		Verifier: &stubVerifier{claims: &token.Claims{Email: "alice@acme.com"}},
		Users: &stubUsers{users: map[string]*domain.User{
			"alice@acme.com": {ID: "user-1", Email: "alice@acme.com"},
		}},
	}
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("valid token resolves user", func(t *testing.T) {
		router := setupRouter(validConfig())

		req := httptest.NewRequest(http.MethodGet, "/service/get-all-services", nil)
		req.Header.Set("Authorization", "Bearer sometoken")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
		}
	})

	t.Run("missing authorization header", func(t *testing.T) {
		router := setupRouter(validConfig())

		req := httptest.NewRequest(http.MethodGet, "/service/get-all-services", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		router := setupRouter(validConfig())

		req := httptest.NewRequest(http.MethodGet, "/service/get-all-services", nil)
		req.Header.Set("Authorization", "NotBearer abc")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})

	t.Run("empty token after Bearer", func(t *testing.T) {
		router := setupRouter(validConfig())

		req := httptest.NewRequest(http.MethodGet, "/service/get-all-services", nil)
		req.Header.Set("Authorization", "Bearer ")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		cfg := validConfig()
		cfg.Verifier = &stubVerifier{err: token.ErrInvalidToken}
		router := setupRouter(cfg)

		req := httptest.NewRequest(http.MethodGet, "/service/get-all-services", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})

	t.Run("user not found returns same 401 body as bad token", func(t *testing.T) {
		badToken := validConfig()
		badToken.Verifier = &stubVerifier{err: token.ErrTokenExpired}
		routerBadToken := setupRouter(badToken)

		noUser := validConfig()
		noUser.Users = &stubUsers{users: map[string]*domain.User{}}
		routerNoUser := setupRouter(noUser)

		reqA := httptest.NewRequest(http.MethodGet, "/service/get-all-services", nil)
		reqA.Header.Set("Authorization", "Bearer expired")
		wA := httptest.NewRecorder()
		routerBadToken.ServeHTTP(wA, reqA)

		reqB := httptest.NewRequest(http.MethodGet, "/service/get-all-services", nil)
		reqB.Header.Set("Authorization", "Bearer valid-but-unknown")
		wB := httptest.NewRecorder()
		routerNoUser.ServeHTTP(wB, reqB)

		if wA.Code != http.StatusUnauthorized || wB.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for both, got %d and %d", wA.Code, wB.Code)
		}
		if wA.Body.String() != wB.Body.String() {
			t.Errorf("expected identical bodies, got %q and %q", wA.Body.String(), wB.Body.String())
		}
	})

	t.Run("resolver error returns 500", func(t *testing.T) {
		cfg := validConfig()
		cfg.Users = &stubUsers{err: errors.New("connection refused")}
		router := setupRouter(cfg)

		req := httptest.NewRequest(http.MethodGet, "/service/get-all-services", nil)
		req.Header.Set("Authorization", "Bearer sometoken")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
	})

	t.Run("bypass paths skip authentication", func(t *testing.T) {
		cfg := validConfig()
		cfg.Verifier = &stubVerifier{err: token.ErrInvalidToken}
		router := setupRouter(cfg)

		for _, path := range []struct {
			method string
			path   string
		}{
			{http.MethodGet, "/org/get-org-by-domain?domain=acme.com"},
			{http.MethodPost, "/user/sync-user-to-db"},
			{http.MethodGet, "/status/get-org-status?org_slug=acme"},
		} {
			req := httptest.NewRequest(path.method, path.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("%s: expected status %d, got %d", path.path, http.StatusOK, w.Code)
			}
		}
	})
}

func TestCurrentUser(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if _, ok := CurrentUser(c); ok {
		t.Error("expected no user in fresh context")
	}

	c.Set(contextKeyUser, &domain.User{ID: "user-1"})
	u, ok := CurrentUser(c)
	if !ok || u.ID != "user-1" {
		t.Errorf("expected user-1, got %+v (ok=%v)", u, ok)
	}
}
