package middleware_test

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
	"polisched/internal/middleware"
)

func setupAuthRouter(svc *auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Auth(svc))
	r.GET("/ping", func(c *gin.Context) {
		claims, _ := c.Get(middleware.ContextKeyClaims)
		c.JSON(http.StatusOK, gin.H{"subject": claims.(*auth.Claims).Subject})
	})
	return r
}

func TestAuth_ValidToken(t *testing.T) {
	svc := auth.NewService(&config.JWTConfig{
		Secret:            "test-secret",
		AccessTokenExpiry: time.Hour,
		Issuer:            "polisched",
	})
	token, err := svc.IssueToken("ci")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	setupAuthRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ci")
}

func TestAuth_MissingHeader(t *testing.T) {
	svc := auth.NewService(&config.JWTConfig{Secret: "test-secret", Issuer: "polisched"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	setupAuthRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestAuth_InvalidToken(t *testing.T) {
	svc := auth.NewService(&config.JWTConfig{Secret: "test-secret", Issuer: "polisched"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	setupAuthRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}
