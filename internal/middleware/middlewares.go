package middleware

import (
	"github.com/deppfellow/employee-service/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server so
// they are built once and shared by router setup.
type Middlewares struct {
	// Global holds CORS, request logging, metrics, recovery, secure headers
	// and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer attaches a request-scoped logger to every request.
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic middleware. It degrades to a no-op when New
	// Relic is not configured.
	Tracing *TracingMiddleware
}

func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, s.LoggerService.GetApplication()),
	}
}
