package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clubhub-app/clubhub-api/internal/app/models/dto"
	"github.com/clubhub-app/clubhub-api/internal/app/services"
	"github.com/clubhub-app/clubhub-api/internal/middleware"
)

// DBPinger reports database reachability. *pgxpool.Pool satisfies it.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// StatsController serves platform counts and the health probe.
type StatsController struct {
	statsService services.StatsService
	db           DBPinger
}

// NewStatsController creates a new StatsController.
func NewStatsController(statsService services.StatsService, db DBPinger) *StatsController {
	return &StatsController{statsService: statsService, db: db}
}

// GetStats returns live row counts.
func (sc *StatsController) GetStats(c *gin.Context) {
	resp, err := sc.statsService.GetStats(c.Request.Context())
	if err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Health pings the database and reports service status.
func (sc *StatsController) Health(c *gin.Context) {
	resp := dto.HealthResponse{
		Status:    "healthy",
		Message:   "ClubHub API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  "connected",
	}
	if err := sc.db.Ping(c.Request.Context()); err != nil {
		resp.Status = "unhealthy"
		resp.Database = "disconnected"
		c.JSON(http.StatusInternalServerError, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
