package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polisched/internal/auth"
	"polisched/internal/config"
	"polisched/internal/handler"
	"polisched/internal/router"
	"polisched/mocks"
)

func setupRouter(t *testing.T, cfg *config.Config, authSvc *auth.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return router.Setup(cfg,
		authSvc,
		handler.NewParseHandler(new(mocks.MockParseService)),
		handler.NewDocTypeHandler(),
		nil, // persistence disabled
		handler.NewHealthHandler(nil),
	)
}

func TestRouter_HealthRoutes(t *testing.T) {
	r := setupRouter(t, &config.Config{}, nil)

	for _, path := range []string{"/healthz", "/readyz"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouter_RecordsDisabled(t *testing.T) {
	r := setupRouter(t, &config.Config{}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/records", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "RECORDS_DISABLED")
}

func TestRouter_AuthEnabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.Enabled = true
	authSvc := auth.NewService(&config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "polisched",
		AccessTokenExpiry: time.Hour,
	})
	r := setupRouter(t, cfg, authSvc)

	// Health checks stay open.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// API routes require a bearer token.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/document-types", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := authSvc.IssueToken("ci")
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/document-types", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
