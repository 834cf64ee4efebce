package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "AGENT_"

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Twilio   TwilioConfig   `koanf:"twilio"`
	Operator OperatorConfig `koanf:"operator"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Ledger   LedgerConfig   `koanf:"ledger"`
	Logger   LoggerConfig   `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

// TwilioConfig holds the outbound gateway credentials. Leaving any of the
// three identity fields empty leaves the gateway unconfigured.
type TwilioConfig struct {
	AccountSID  string        `koanf:"account_sid"`
	AuthToken   string        `koanf:"auth_token"`
	FromNumber  string        `koanf:"from_number"`
	SendTimeout time.Duration `koanf:"send_timeout" validate:"required"`
}

func (c TwilioConfig) Configured() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

type OperatorConfig struct {
	Number string `koanf:"number" validate:"required"`
}

type CatalogConfig struct {
	Path string `koanf:"path"`
}

type LedgerConfig struct {
	RecentOrdersLimit int `koanf:"recent_orders_limit" validate:"min=1"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":                 "development",
		"server.port":                 "8080",
		"server.read_timeout":         "10s",
		"server.write_timeout":        "15s",
		"server.idle_timeout":         "60s",
		"database.driver":             DriverSQLite,
		"database.sqlite_path":        "orders.db",
		"database.port":               5432,
		"database.ssl_mode":           "disable",
		"database.max_open_conns":     10,
		"database.max_idle_conns":     2,
		"database.conn_max_lifetime":  "1h",
		"database.conn_max_idle_time": "30m",
		"twilio.send_timeout":         "5s",
		"ledger.recent_orders_limit":  10,
		"logger.level":                "info",
		"logger.format":               "text",
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load config defaults", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()
	validate.RegisterStructValidation(validateDatabase, DatabaseConfig{})

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
