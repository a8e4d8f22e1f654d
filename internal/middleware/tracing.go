package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/employee-service/internal/server"
)

// TracingMiddleware owns New Relic related Echo middleware.
//
// NewRelicMiddleware starts a transaction per request; EnhanceTracing adds
// custom attributes to it and notices errors.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware returns nrecho.Middleware, or a pass-through when New
// Relic is disabled.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing adds client, request id, route and response status
// attributes to the current transaction. Errors are reported through
// nrpkgerrors so the stack recorded by pkg/errors is kept.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			txn.AddAttribute("http.real_ip", c.RealIP())
			txn.AddAttribute("http.user_agent", c.Request().UserAgent())
			txn.AddAttribute("service.environment", tm.server.Config.Primary.Env)

			if requestID := GetRequestID(c); requestID != "" {
				txn.AddAttribute("request.id", requestID)
			}

			err := next(c)
			if err != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}

			for key, value := range routeAttributes(c) {
				txn.AddAttribute(key, value)
			}

			txn.AddAttribute("http.status_code", responseStatus(c, err))

			return err
		}
	}
}

// routeAttributes names the matched route and, on /employees/:id routes, the
// employee the request targeted. Unmatched requests get no attributes.
func routeAttributes(c echo.Context) map[string]string {
	attrs := map[string]string{}

	route := c.Path()
	if route == "" {
		return attrs
	}
	attrs["http.route"] = route

	if strings.HasPrefix(route, "/api/employees/") {
		if id := c.Param("id"); id != "" {
			attrs["employee.id"] = id
		}
	}
	return attrs
}
