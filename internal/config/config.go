// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// one is present), loads them into structured Go types on top of a set of
// defaults, and validates that required values are present so they can be
// reused across the application runtime.
//
// Responsibilities:
//   - Provide defaults for every block so a local run needs no env at all.
//   - Map EMPLOYEES_ env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad config.
//   - Provide defaults for the optional observability block.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any of the code below reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the EMPLOYEES_ prefix. The prefix is removed, the
	key lowercased and a double underscore marks nesting:

	  EMPLOYEES_SERVER__PORT        -> server.port
	  EMPLOYEES_DATABASE__HOST      -> database.host
	  EMPLOYEES_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level

	Single underscores are kept, so EMPLOYEES_SERVER__READ_TIMEOUT maps to
	server.read_timeout.
*/

// EnvPrefix is the prefix every environment variable of this service carries.
const EnvPrefix = "EMPLOYEES_"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability" validate:"-"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
	Debug              bool     `koanf:"debug"`
}

// DatabaseConfig contains MongoDB connection parameters.
//
// URI, when set, wins over Host/Port/User/Password. Name always selects the
// database holding the employees collection.
type DatabaseConfig struct {
	Host           string `koanf:"host" validate:"required_without=URI"`
	Port           int    `koanf:"port" validate:"required_without=URI"`
	Name           string `koanf:"name" validate:"required"`
	User           string `koanf:"user"`
	Password       string `koanf:"password"`
	URI            string `koanf:"uri"`
	ConnectTimeout int    `koanf:"connect_timeout" validate:"required"`
}

func defaults() map[string]any {
	return map[string]any{
		"primary.env":                 "local",
		"server.port":                 "5000",
		"server.read_timeout":         30,
		"server.write_timeout":        30,
		"server.idle_timeout":         60,
		"server.cors_allowed_origins": []string{"*"},
		"server.debug":                false,
		"database.host":               "localhost",
		"database.port":               27017,
		"database.name":               "trial",
		"database.connect_timeout":    10,
	}
}

// listKeys are config keys whose env value is a comma separated list.
var listKeys = map[string]bool{
	"server.cors_allowed_origins":        true,
	"observability.health_checks.checks": true,
}

func envValue(name, value string) (string, any) {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	key = strings.ReplaceAll(key, "__", ".")

	if !listKeys[key] {
		return key, value
	}

	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

// LoadConfig loads configuration from defaults and environment variables,
// unmarshals it into Config, validates it and applies observability defaults.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("could not load default config: %w", err)
	}

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	// Observability is validated on its own once its defaults are filled in.
	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Partially provided observability env still gets a full default block
	// underneath it, so only the overridden keys differ.
	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	} else {
		mainConfig.Observability.applyDefaults()
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := validate.Struct(mainConfig.Observability); err != nil {
		return nil, fmt.Errorf("observability config validation failed: %w", err)
	}
	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// IsLocal reports whether the service runs on a developer machine.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}
