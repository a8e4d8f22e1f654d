package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// Metrics records request counts and latencies in Prometheus, labelled by
// the route template rather than the raw path to bound cardinality.
func (global *GlobalMiddlewares) Metrics() echo.MiddlewareFunc {
	m := global.server.Metrics
	if m == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(responseStatus(c, err))).Inc()
			m.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
