package http

import (
	"net/http"
	"time"

	"golang-stock-analyzer/internal/analyzer/dto"
	"golang-stock-analyzer/pkg/utils"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness and which provider credentials are configured.
type HealthHandler struct {
	apisConfigured map[string]bool
	now            func() time.Time
}

// NewHealthHandler creates a new HealthHandler. apisConfigured is read once at startup.
func NewHealthHandler(apisConfigured map[string]bool) *HealthHandler {
	return &HealthHandler{apisConfigured: apisConfigured, now: utils.TimeNowUTC}
}

// RegisterRoutes registers the health route to the Echo group.
func (h *HealthHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/health", h.Health)
}

// Health godoc
// @Summary Health check
// @Description Reports service status and whether each provider API key is present
// @Tags health
// @Produce  json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:         "healthy",
		Timestamp:      utils.FormatISO8601(h.now()),
		APIsConfigured: h.apisConfigured,
	})
}
