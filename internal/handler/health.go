package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/employee-service/internal/middleware"
	"github.com/deppfellow/employee-service/internal/server"
	"github.com/labstack/echo/v4"
)

// Pinger is a dependency whose reachability is reported by CheckHealth.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness endpoint under /api and the dependency
// health check on /status.
type HealthHandler struct {
	Handler
	checks map[string]Pinger
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{
		Handler: NewHandler(s),
		checks:  make(map[string]Pinger),
	}

	for _, name := range s.Config.Observability.HealthChecks.Checks {
		if name == "database" && s.DB != nil {
			h.checks[name] = s.DB
		}
	}

	return h
}

// Liveness reports that the process is up. It touches no dependency.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Backend is running",
	})
}

// CheckHealth pings every configured dependency with the configured
// timeout. It returns 200 when all are reachable and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{})
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true
	for _, name := range h.server.Config.Observability.HealthChecks.Checks {
		checkStart := time.Now()

		pinger, ok := h.checks[name]
		if !ok {
			isHealthy = false
			checks[name] = map[string]interface{}{
				"status": "unhealthy",
				"error":  "not configured",
			}
			continue
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), h.server.Config.Observability.HealthChecks.Timeout)
		err := pinger.Ping(ctx)
		cancel()

		if err != nil {
			isHealthy = false
			checks[name] = map[string]interface{}{
				"status":        "unhealthy",
				"response_time": time.Since(checkStart).String(),
				"error":         err.Error(),
			}

			logger.Error().
				Err(err).
				Str("check", name).
				Dur("response_time", time.Since(checkStart)).
				Msg("health check failed")

			if app := h.server.LoggerService.GetApplication(); app != nil {
				app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
					"check_type":       name,
					"operation":        "health_check",
					"error_type":       name + "_unhealthy",
					"response_time_ms": time.Since(checkStart).Milliseconds(),
					"error_message":    err.Error(),
				})
			}
			continue
		}

		checks[name] = map[string]interface{}{
			"status":        "healthy",
			"response_time": time.Since(checkStart).String(),
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
