package router

import (
	"github.com/deppfellow/employee-service/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the API:
// health, metrics and documentation.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.GET("/metrics", h.Metrics.ServeMetrics)

	r.StaticFS("/static", handler.StaticFS())
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
