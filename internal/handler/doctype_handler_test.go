package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"polisched/internal/doctype"
	"polisched/internal/handler"
)

func setupDocTypeRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewDocTypeHandler()

	r := gin.New()
	r.GET("/api/v1/document-types", h.List)
	r.GET("/api/v1/insurers", h.Insurers)
	return r
}

func TestDocTypeHandler_List(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/document-types", nil)
	setupDocTypeRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), doctype.AutoDetect)
	assert.Contains(t, w.Body.String(), doctype.HollardPrivatePortfolioV1)
}

func TestDocTypeHandler_Insurers(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/insurers", nil)
	setupDocTypeRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Discovery Insure")
	assert.Contains(t, w.Body.String(), "Hollard Insurance")
}

func TestHealthHandler_NoDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := handler.NewHealthHandler(nil)

	r := gin.New()
	r.GET("/healthz", h.Liveness)
	r.GET("/readyz", h.Readiness)

	for _, path := range []string{"/healthz", "/readyz"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "ok")
	}
}
