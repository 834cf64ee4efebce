// Package sqlite stores the order and payment ledgers in a single SQLite
// file through modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/config"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		user_number TEXT NOT NULL,
		product_id  TEXT NOT NULL,
		timestamp   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		mpesa_message TEXT NOT NULL,
		payer_name    TEXT,
		timestamp     TEXT NOT NULL
	)`,
}

type DB struct {
	SQL    *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

// Open opens the database file and creates the ledger tables if missing.
// A single connection serializes writers; the busy timeout in the DSN covers
// other processes holding the file.
func Open(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	logger.Info("opening sqlite database", "path", cfg.SQLitePath)

	sqlDB, err := sql.Open(driverName, cfg.SQLiteDSN())
	if err != nil {
		logger.Error("failed to open sqlite database", "error", err)
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		logger.Error("failed to ping sqlite database", "error", err)
		_ = sqlDB.Close()
		return nil, err
	}

	db := New(sqlDB, logger)
	if err := db.EnsureSchema(ctx); err != nil {
		logger.Error("failed to create schema", "error", err)
		_ = sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// New wraps an existing handle without touching the schema.
func New(sqlDB *sql.DB, logger *slog.Logger) *DB {
	return &DB{
		SQL:    sqlDB,
		logger: logger,
		now:    time.Now,
	}
}

// EnsureSchema creates the ledger tables. Safe to run on every start.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.SQL.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create ledger tables: %w", err)
		}
	}
	return nil
}

func (db *DB) Close() {
	db.logger.Info("closing sqlite database")
	if err := db.SQL.Close(); err != nil {
		db.logger.Error("failed to close sqlite database", "error", err)
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
