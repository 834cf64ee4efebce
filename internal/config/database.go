package config

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-playground/validator"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DatabaseConfig struct {
	Driver          string        `koanf:"driver" validate:"required,oneof=postgres sqlite"`
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name"`
	SSLMode         string        `koanf:"ssl_mode"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
	SQLitePath      string        `koanf:"sqlite_path"`
}

// validateDatabase enforces the fields each driver needs.
func validateDatabase(sl validator.StructLevel) {
	c := sl.Current().Interface().(DatabaseConfig)

	switch c.Driver {
	case DriverPostgres:
		if c.Host == "" {
			sl.ReportError(c.Host, "Host", "Host", "required", "")
		}
		if c.User == "" {
			sl.ReportError(c.User, "User", "User", "required", "")
		}
		if c.Password == "" {
			sl.ReportError(c.Password, "Password", "Password", "required", "")
		}
		if c.Name == "" {
			sl.ReportError(c.Name, "Name", "Name", "required", "")
		}
		if c.Port <= 0 {
			sl.ReportError(c.Port, "Port", "Port", "required", "")
		}
		if c.MaxOpenConns <= 0 {
			sl.ReportError(c.MaxOpenConns, "MaxOpenConns", "MaxOpenConns", "min", "1")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			sl.ReportError(c.SQLitePath, "SQLitePath", "SQLitePath", "required", "")
		}
	}
}

// PgxConfig creates and returns a pgxpool.Config with the database connection settings from the DatabaseConfig.
func (c *DatabaseConfig) PgxConfig(ctx context.Context) (*pgxpool.Config, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.Name, c.SSLMode,
	)

	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, err
	}

	cfg.MaxConns = int32(c.MaxOpenConns)
	cfg.MinConns = int32(c.MaxIdleConns)
	cfg.MaxConnLifetime = c.ConnMaxLifetime
	cfg.MaxConnIdleTime = c.ConnMaxIdleTime
	cfg.HealthCheckPeriod = 30 * time.Second

	return cfg, nil
}

// SQLiteDSN returns a modernc.org/sqlite DSN with WAL journaling and a busy
// timeout, so concurrent appends wait on the file lock instead of failing.
func (c *DatabaseConfig) SQLiteDSN() string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", c.SQLitePath)
}
