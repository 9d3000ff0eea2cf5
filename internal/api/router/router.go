// Package router configures the API routes for the HTTP server.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/sitesafe/sitesafe/internal/api/handler"
	"github.com/sitesafe/sitesafe/internal/api/middleware"
	"github.com/sitesafe/sitesafe/internal/config"
	"github.com/sitesafe/sitesafe/internal/report"
	"github.com/sitesafe/sitesafe/pkg/telemetry"
)

// Setup configures middleware and all API routes
func Setup(r *gin.Engine, cfg *config.Config, generator *report.Generator) {
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(&middleware.LoggerConfig{AccessLog: cfg.Logging.AccessLog}))
	r.Use(middleware.CORS(cfg.Server.CORSOrigins))
	r.Use(middleware.ErrorHandler(cfg.Server.Debug))

	healthHandler := handler.NewHealthHandler()
	reportHandler := handler.NewReportHandler(generator)

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(telemetry.GetMetrics().Handler()))

	v1 := r.Group("/api/v1")
	v1.Use(middleware.BodyLimit(cfg.Report.MaxBodyBytes))
	{
		reports := v1.Group("/reports")
		{
			reports.POST("/construction-phase-plan/pdf", reportHandler.GeneratePDF)
		}
	}
}
