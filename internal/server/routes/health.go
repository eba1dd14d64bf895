package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthRoutes registers liveness endpoints.
type HealthRoutes struct {
	db Pinger
}

func NewHealthRoutes(db Pinger) *HealthRoutes {
	return &HealthRoutes{db: db}
}

// RegisterRoutes registers health endpoints.
func (h *HealthRoutes) RegisterRoutes(s *echo.Echo) {
	s.GET("/healthz", h.handleHealth)
}

func (h *HealthRoutes) handleHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
