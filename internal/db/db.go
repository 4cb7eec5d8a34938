package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/vibe-gaming/geo-api/internal/config"
)

// Postgres is a sqlx handle backed by a bounded pgx pool.
type Postgres struct {
	*sqlx.DB
	pool *pgxpool.Pool
}

func New(ctx context.Context, cfg config.Database) (*Postgres, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse postgres config failed: %w", err)
	}
	poolCfg.MinConns = cfg.MinConnections
	poolCfg.MaxConns = cfg.MaxConnections

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("db connection failed: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping failed: %w", err)
	}

	return &Postgres{
		DB:   sqlx.NewDb(stdlib.OpenDBFromPool(pool), "pgx"),
		pool: pool,
	}, nil
}

// Close releases the sql handle first, then the pool behind it.
func (p *Postgres) Close() error {
	err := p.DB.Close()
	p.pool.Close()
	return err
}
