package handler

import (
	"github.com/deppfellow/employee-service/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler exposes the server's Prometheus registry.
type MetricsHandler struct {
	Handler
	handler echo.HandlerFunc
}

func NewMetricsHandler(s *server.Server) *MetricsHandler {
	return &MetricsHandler{
		Handler: NewHandler(s),
		handler: echo.WrapHandler(promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{
			Registry: s.Registry,
		})),
	}
}

func (h *MetricsHandler) ServeMetrics(c echo.Context) error {
	return h.handler(c)
}
