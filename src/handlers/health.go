package handlers

import (
	"net/http"

	"github.com/chemical081/nepali-star-buzz-pulse/src/database"
	"github.com/gin-gonic/gin"
)

// Version is set at build time via -ldflags
var Version = "dev"

// HealthHandler answers liveness and readiness probes
type HealthHandler struct {
	db *database.Database
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

// HandleHealth reports process liveness
func (h *HealthHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandleReady reports readiness, including database connectivity
func (h *HealthHandler) HandleReady(c *gin.Context) {
	if err := h.db.Health(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "database unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// HandleInfo returns build information
func (h *HealthHandler) HandleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "star-buzz-api",
		"version": Version,
	})
}
