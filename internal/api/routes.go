package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/grievance-analyzer/internal/telemetry"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, tp *telemetry.Provider) {
	// Health and readiness checks
	router.GET("/", handler.Root)
	router.GET("/api/health", handler.Health)
	router.GET("/ready", handler.Ready)
	router.GET("/metrics", gin.WrapH(tp.Handler()))

	// Analysis endpoints
	api := router.Group("/api")
	{
		api.POST("/analyze", handler.Analyze)            // POST /api/analyze
		api.POST("/analyze/batch", handler.AnalyzeBatch) // POST /api/analyze/batch
		api.GET("/model", handler.ModelInfo)             // GET /api/model
	}
}
