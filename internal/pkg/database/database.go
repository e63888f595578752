// Package database builds PostgreSQL connection pools from configuration.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/mlrlegacy/internal/pkg/config"
)

const pingTimeout = 5 * time.Second

// ParseConfig reads database.url and the database.pool.* keys into a pool config.
// Zero-valued pool keys keep the pgxpool defaults.
func ParseConfig(cfg config.Config) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.GetString("database.url"))
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	if v := cfg.GetInt32("database.pool.max_conns"); v > 0 {
		poolConfig.MaxConns = v
	}
	if v := cfg.GetInt32("database.pool.min_conns"); v > 0 {
		poolConfig.MinConns = v
	}
	if v := cfg.GetSecond("database.pool.max_conn_lifetime_seconds"); v > 0 {
		poolConfig.MaxConnLifetime = v
	}
	if v := cfg.GetSecond("database.pool.max_conn_idle_seconds"); v > 0 {
		poolConfig.MaxConnIdleTime = v
	}
	if v := cfg.GetSecond("database.pool.health_check_period_seconds"); v > 0 {
		poolConfig.HealthCheckPeriod = v
	}

	return poolConfig, nil
}

// NewPool creates a connection pool and verifies it with a ping.
func NewPool(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := ParseConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}
