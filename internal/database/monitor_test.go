package database

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/event"
)

func TestCommandLogger_FlagsSlowCommands(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	monitor := newCommandLogger(&log, 50*time.Millisecond).Monitor()

	monitor.Succeeded(context.Background(), &event.CommandSucceededEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{CommandName: "find", Duration: 10 * time.Millisecond},
	})
	assert.Contains(t, buf.String(), `"level":"debug"`)
	assert.NotContains(t, buf.String(), `"slow":true`)

	buf.Reset()
	monitor.Succeeded(context.Background(), &event.CommandSucceededEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{CommandName: "find", Duration: time.Second},
	})
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"slow":true`)
}

func TestCommandLogger_PrefersRequestLogger(t *testing.T) {
	var appBuf, reqBuf bytes.Buffer
	appLog := zerolog.New(&appBuf)
	reqLog := zerolog.New(&reqBuf).With().Str("request_id", "req-1").Logger()

	monitor := newCommandLogger(&appLog, 0).Monitor()
	monitor.Failed(reqLog.WithContext(context.Background()), &event.CommandFailedEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{CommandName: "insert"},
		Failure:              "boom",
	})

	assert.Empty(t, appBuf.String())
	assert.Contains(t, reqBuf.String(), `"request_id":"req-1"`)
	assert.Contains(t, reqBuf.String(), `"component":"mongo"`)
}
