package router

import (
	"github.com/gin-gonic/gin"

	"polisched/internal/auth"
	"polisched/internal/config"
	"polisched/internal/domain"
	"polisched/internal/handler"
	"polisched/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware. The record
// handler is optional; pass nil when record persistence is disabled and the
// history routes answer 503 instead.
func Setup(
	cfg *config.Config,
	authSvc *auth.Service,
	parseH *handler.ParseHandler,
	doctypeH *handler.DocTypeHandler,
	recordH *handler.RecordHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")
	if cfg.Auth.Enabled {
		v1.Use(middleware.Auth(authSvc))
	}

	// Document type registry
	v1.GET("/document-types", doctypeH.List)
	v1.GET("/insurers", doctypeH.Insurers)

	// Parse routes
	parse := v1.Group("/parse")
	parse.POST("", parseH.Upload)
	parse.POST("/url", parseH.FromURL)
	parse.POST("/base64", parseH.FromBase64)
	parse.POST("/path", parseH.FromPath)
	parse.POST("/s3", parseH.FromS3)

	// Parse history routes
	records := v1.Group("/records")
	if recordH != nil {
		records.GET("", recordH.List)
		records.GET("/export", recordH.Export)
		records.GET("/:id", recordH.GetByID)
		records.DELETE("/:id", recordH.Delete)
	} else {
		disabled := func(c *gin.Context) { handler.HandleError(c, domain.ErrRecordsDisabled) }
		records.GET("", disabled)
		records.GET("/export", disabled)
		records.GET("/:id", disabled)
		records.DELETE("/:id", disabled)
	}

	return r
}
