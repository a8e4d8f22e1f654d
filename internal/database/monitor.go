package database

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
)

// commandLogger logs driver commands. It is noisy and only installed in the
// local env; commands slower than slowThreshold are logged at warn level.
type commandLogger struct {
	log           zerolog.Logger
	slowThreshold time.Duration
}

func newCommandLogger(logger *zerolog.Logger, slowThreshold time.Duration) *commandLogger {
	return &commandLogger{
		log:           logger.With().Str("component", "mongo").Logger(),
		slowThreshold: slowThreshold,
	}
}

// loggerFor prefers the request-scoped logger carried by ctx so commands
// are logged with the request id of the call that issued them.
func (cl *commandLogger) loggerFor(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		child := l.With().Str("component", "mongo").Logger()
		return &child
	}
	return &cl.log
}

// Monitor returns the driver hook set.
func (cl *commandLogger) Monitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Started:   cl.started,
		Succeeded: cl.succeeded,
		Failed:    cl.failed,
	}
}

func (cl *commandLogger) started(ctx context.Context, evt *event.CommandStartedEvent) {
	cl.loggerFor(ctx).Debug().
		Str("command", evt.CommandName).
		Str("db", evt.DatabaseName).
		Int64("mongo_request_id", evt.RequestID).
		Str("body", evt.Command.String()).
		Msg("mongo command started")
}

func (cl *commandLogger) succeeded(ctx context.Context, evt *event.CommandSucceededEvent) {
	log := cl.loggerFor(ctx)

	e := log.Debug()
	if cl.slowThreshold > 0 && evt.Duration > cl.slowThreshold {
		e = log.Warn().Bool("slow", true)
	}

	e.Str("command", evt.CommandName).
		Int64("mongo_request_id", evt.RequestID).
		Dur("duration", evt.Duration).
		Msg("mongo command succeeded")
}

func (cl *commandLogger) failed(ctx context.Context, evt *event.CommandFailedEvent) {
	cl.loggerFor(ctx).Error().
		Str("command", evt.CommandName).
		Int64("mongo_request_id", evt.RequestID).
		Dur("duration", evt.Duration).
		Str("failure", evt.Failure).
		Msg("mongo command failed")
}
