package postgre

import (
	"context"
	"fmt"
	"time"

	"timeblock/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const connectTimeout = 10 * time.Second

// Connect opens a pgx connection pool and verifies it with a ping.
func Connect(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// Disconnect closes the pool.
func Disconnect(_ context.Context, pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
	}
}

// Migrate creates the tables the service needs when they are missing.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id          UUID PRIMARY KEY,
		google_id   TEXT NOT NULL UNIQUE,
		email       TEXT NOT NULL,
		name        TEXT NOT NULL DEFAULT '',
		picture_url TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS schedules (
		id                UUID PRIMARY KEY,
		user_id           UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title             TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		color             TEXT NOT NULL DEFAULT '',
		start_at          TIMESTAMPTZ NOT NULL,
		duration_minutes  INTEGER NOT NULL,
		recurrence        TEXT NOT NULL DEFAULT '',
		timezone          TEXT NOT NULL DEFAULT 'UTC',
		calendar_event_id TEXT NOT NULL DEFAULT '',
		created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS schedules_user_start_idx ON schedules (user_id, start_at)`,
}
