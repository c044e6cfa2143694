// Package repository persists case bundles and the lexical index over
// database/sql. Postgres (via a pgx pool) is the service driver; sqlite
// (modernc, cgo-free) backs local batch runs and tests. SQL is written to
// the shared subset of both: $1 placeholders, ON CONFLICT upserts, and
// RETURNING clauses.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Driver           string // postgres | sqlite
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// DB wraps the open handle together with its driver name so repositories
// can branch on the few statements the two engines disagree on.
type DB struct {
	SQL    *sql.DB
	Driver string

	pool *pgxpool.Pool // nil for sqlite
}

// Open connects per cfg.Driver. For postgres a pgx pool is created and
// wrapped as *sql.DB; for sqlite the DSN is passed straight to the driver
// (":memory:" works for ephemeral runs).
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Driver {
	case DriverSQLite:
		logger.Info("db.open", "driver", DriverSQLite, "dsn", cfg.DSN)
		db, err := sql.Open("sqlite", cfg.DSN)
		if err != nil {
			logger.Error("db.open.failed", "driver", DriverSQLite, "error", err)
			return nil, err
		}
		// the sqlite driver serializes writes; one connection avoids
		// SQLITE_BUSY under the worker pool and keeps the pragma below
		// in effect for every statement
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
		return &DB{SQL: db, Driver: DriverSQLite}, nil

	case DriverPostgres, "":
		logger.Info("db.open", "driver", DriverPostgres)
		pc, err := pgxpool.ParseConfig(cfg.DSN)
		if err != nil {
			logger.Error("db.open.failed", "driver", DriverPostgres, "error", err)
			return nil, err
		}
		if cfg.MaxConns > 0 {
			pc.MaxConns = cfg.MaxConns
		}
		if cfg.MinConns > 0 {
			pc.MinConns = cfg.MinConns
		}
		if cfg.MaxConnLifetime > 0 {
			pc.MaxConnLifetime = cfg.MaxConnLifetime
		}
		if cfg.MaxConnIdleTime > 0 {
			pc.MaxConnIdleTime = cfg.MaxConnIdleTime
		}
		pc.ConnConfig.RuntimeParams["application_name"] = "opinion-indexer"
		if cfg.StatementTimeout > 0 {
			pc.ConnConfig.RuntimeParams["statement_timeout"] = cfg.StatementTimeout.String()
		}

		dialCtx := ctx
		if cfg.DialTimeout > 0 {
			var cancel context.CancelFunc
			dialCtx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
			defer cancel()
		}
		pool, err := pgxpool.NewWithConfig(dialCtx, pc)
		if err != nil {
			logger.Error("db.open.failed", "driver", DriverPostgres, "error", err)
			return nil, err
		}
		logger.Info("db.open.ok", "driver", DriverPostgres)
		return &DB{SQL: stdlib.OpenDBFromPool(pool), Driver: DriverPostgres, pool: pool}, nil
	}

	return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
}

func (db *DB) Close(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("db.close")
	if db.SQL != nil {
		if err := db.SQL.Close(); err != nil {
			logger.Error("db.close.failed", "error", err)
		}
	}
	if db.pool != nil {
		db.pool.Close()
	}
}

// HealthCheck pings the database, catching DSN and reachability issues
// before the pipeline starts.
func (db *DB) HealthCheck(ctx context.Context, timeout time.Duration, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	logger.Debug("db.ping")
	if db.pool != nil {
		return db.pool.Ping(ctx)
	}
	return db.SQL.PingContext(ctx)
}
