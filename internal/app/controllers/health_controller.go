package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"campusblog/internal/app/models/dto"
)

// Pinger verifies database connectivity for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves the liveness and readiness probes.
type HealthController struct {
	db Pinger
}

// NewHealthController creates a new HealthController
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Live reports process liveness. It always succeeds while the process runs.
func (c *HealthController) Live(ctx *gin.Context) {
	ctx.String(http.StatusOK, "OK")
}

// Ready reports whether the database is reachable.
func (c *HealthController) Ready(ctx *gin.Context) {
	if err := c.db.Ping(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:  "Service Unavailable",
			MongoDB: "not connected",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "OK",
		MongoDB: "connected",
	})
}
