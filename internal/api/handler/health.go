package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sitesafe/sitesafe/consts"
)

// HealthHandler handles health check requests
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health returns service liveness and build information
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": consts.ServiceName,
		"version": consts.Version,
		"uptime":  consts.GetUptime().String(),
	})
}
