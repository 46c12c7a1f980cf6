package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
	_ "modernc.org/sqlite"             // local and in-memory runs
)

type Config struct {
	DSN         string
	DialTimeout time.Duration
}

// Open connects to the run/job store. postgres:// DSNs go through pgx;
// anything else is treated as a sqlite path (":memory:" included). The schema
// is bootstrapped on every open.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	driver := "sqlite"
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		driver = "pgx"
	}
	logger.Info("connecting to database", "driver", driver)

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return nil, err
	}
	if driver == "sqlite" {
		// each sqlite connection sees its own ":memory:" database, so the
		// pool must stay at one connection
		db.SetMaxOpenConns(1)
	}

	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	if err := db.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		_ = db.Close()
		return nil, err
	}

	if err := bootstrap(ctx, db); err != nil {
		logger.Error("failed to bootstrap schema", "error", err)
		_ = db.Close()
		return nil, err
	}

	logger.Info("successfully connected to database")
	return db, nil
}

// Close closes the database connection gracefully
func Close(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	logger.Info("closing database connection")
	if err := db.Close(); err != nil {
		logger.Error("failed to close database", "error", err)
	}
}

// HealthCheck pings to catch DSN issues early.
func HealthCheck(ctx context.Context, db *sql.DB, timeout time.Duration, logger *slog.Logger) error {
	logger.Debug("pinging database")
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return db.PingContext(ctx)
}

func bootstrap(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_run (
			id            TEXT PRIMARY KEY,
			source_path   TEXT NOT NULL,
			responses     INTEGER NOT NULL,
			use_cases     INTEGER NOT NULL,
			uncategorized INTEGER NOT NULL,
			test_cases    INTEGER NOT NULL,
			started_at    TIMESTAMP NOT NULL,
			finished_at   TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS export_job (
			id              TEXT PRIMARY KEY,
			description     TEXT NOT NULL,
			collection      TEXT NOT NULL,
			start_date      TEXT NOT NULL,
			end_date        TEXT NOT NULL,
			folder          TEXT NOT NULL,
			filename_prefix TEXT NOT NULL,
			operation_name  TEXT NOT NULL DEFAULT '',
			status          TEXT NOT NULL,
			error_message   TEXT NOT NULL DEFAULT '',
			submitted_at    TIMESTAMP NOT NULL
		)`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
