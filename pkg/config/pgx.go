package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pingAttempts = 3
	pingBackoff  = 500 * time.Millisecond
	pingTimeout  = 5 * time.Second
)

// DSN builds the libpq connection string from the postgres settings.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPass, c.PostgresDatabase, c.PostgresSSLMode,
	)
}

// InitDB opens the pool and pings it up to three times before giving up.
func InitDB(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pool config: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = cfg.HealthCheckPeriod

	ctx, cancel := context.WithTimeout(ctx, pingAttempts*(pingTimeout+pingBackoff))
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	var pingErr error
	for i := 0; i < pingAttempts; i++ {
		pingCtx, pingCancel := context.WithTimeout(ctx, pingTimeout)
		pingErr = pool.Ping(pingCtx)
		pingCancel()

		if pingErr == nil {
			break
		}

		slog.Warn("failed to ping database",
			slog.Int("attempt", i+1),
			slog.String("error", pingErr.Error()),
		)

		if i < pingAttempts-1 {
			time.Sleep(pingBackoff)
		}
	}

	if pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping pool: %w", pingErr)
	}

	return pool, nil
}
