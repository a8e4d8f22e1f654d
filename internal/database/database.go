// Package database contains the logic for establishing the connection to
// MongoDB.
//
// It handles:
//   - building a connection URI from config
//   - creating the mongo client and verifying it with a ping
//   - wiring command logging (local env) and New Relic instrumentation (nrmongo)
//   - handing out collections to the repository layer
package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/deppfellow/employee-service/internal/config"
	loggerConfig "github.com/deppfellow/employee-service/internal/logger"
	"github.com/newrelic/go-agent/v3/integrations/nrmongo"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// EmployeesCollection is the collection holding employee documents.
const EmployeesCollection = "employees"

// DatabasePingTimeout is the number of seconds to wait for the startup ping
// before considering the database unreachable.
const DatabasePingTimeout = 10

// Database wraps the mongo client and the selected database.
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
	log    *zerolog.Logger
}

// BuildURI returns the connection string for cfg. An explicit URI wins;
// otherwise one is assembled from host, port and optional credentials.
func BuildURI(cfg config.DatabaseConfig) string {
	if cfg.URI != "" {
		return cfg.URI
	}

	u := url.URL{
		Scheme: "mongodb",
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   "/" + cfg.Name,
	}
	if cfg.User != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}

	return u.String()
}

// New connects to MongoDB.
//
// In the local env every command is logged through the application logger;
// when New Relic is enabled the monitor is wrapped by nrmongo so commands
// show up as datastore segments.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	clientOptions := options.Client().
		ApplyURI(BuildURI(cfg.Database)).
		SetAppName(config.ServiceName).
		SetConnectTimeout(time.Duration(cfg.Database.ConnectTimeout) * time.Second)

	var monitor *event.CommandMonitor
	if cfg.IsLocal() {
		monitor = newCommandLogger(logger, cfg.Observability.Logging.SlowQueryThreshold).Monitor()
	}
	if loggerService.GetApplication() != nil {
		monitor = nrmongo.NewCommandMonitor(monitor)
	}
	if monitor != nil {
		clientOptions.SetMonitor(monitor)
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mongo client")
	}

	pingCtx, cancel := context.WithTimeout(ctx, DatabasePingTimeout*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "failed to ping database")
	}

	logger.Info().
		Str("database", cfg.Database.Name).
		Msg("connected to the database")

	return &Database{
		Client: client,
		DB:     client.Database(cfg.Database.Name),
		log:    logger,
	}, nil
}

// Collection returns a handle to the named collection.
func (db *Database) Collection(name string) *mongo.Collection {
	return db.DB.Collection(name)
}

// Ping verifies the primary is reachable.
func (db *Database) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client, waiting for in-flight operations until ctx
// expires.
func (db *Database) Close(ctx context.Context) error {
	db.log.Info().Msg("closing database connection")
	if err := db.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from database: %w", err)
	}
	return nil
}
