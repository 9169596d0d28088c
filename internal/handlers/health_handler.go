package handlers

import (
	"net/http"
	"time"

	"github.com/atlasrides/rental-backend/internal/database"
	"github.com/gin-gonic/gin"
)

// HealthHandler reports process and database liveness
type HealthHandler struct {
	db      database.DB
	started time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db, started: time.Now()}
}

// Health reports service status
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "degraded",
			"database": "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "ok",
		"uptime":   time.Since(h.started).Round(time.Second).String(),
	})
}
