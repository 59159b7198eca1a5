// Package postgres implements the repository against PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"user-management/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id    BIGSERIAL PRIMARY KEY,
    name  TEXT NOT NULL,
    email TEXT NOT NULL
)`

var errNotStarted = errors.New("postgres repository is not started")

// Postgres wraps a pgx pool and configuration.
type Postgres struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	db      *pgxpool.Pool
	cfg     config.PostgresConfig
}

// New creates a Postgres repository instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *Postgres {
	return &Postgres{
		baseCtx: ctx,
		log:     log.Named("repo.postgres"),
		cfg:     cfg.Postgres,
	}
}

// OnStart establishes connection pool and creates the users table when missing.
func (p *Postgres) OnStart(_ context.Context) error {
	poolCfg, err := pgxpool.ParseConfig(p.cfg.DSN())
	if err != nil {
		return fmt.Errorf("parse pool config: %w", err)
	}
	poolCfg.MaxConns = p.cfg.MaxConns
	poolCfg.MinConns = p.cfg.MinConns

	connectCtx, cancelConnect := context.WithTimeout(p.baseCtx, p.cfg.QueryTimeout)
	defer cancelConnect()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolCfg)
	if err != nil {
		return fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return fmt.Errorf("ping pool: %w", err)
	}

	schemaCtx, cancelSchema := context.WithTimeout(p.baseCtx, p.cfg.SchemaTimeout)
	defer cancelSchema()

	if _, err := pool.Exec(schemaCtx, createUsersTable); err != nil {
		pool.Close()
		return fmt.Errorf("create schema: %w", err)
	}

	p.db = pool
	p.log.Infow("postgres ready", "host", p.cfg.Host, "port", p.cfg.Port)
	return nil
}

// OnStop closes pool connections.
func (p *Postgres) OnStop(_ context.Context) error {
	if p.db != nil {
		p.db.Close()
	}
	return nil
}

// Ping checks database connectivity.
func (p *Postgres) Ping(ctx context.Context) error {
	if p.db == nil {
		return errNotStarted
	}
	return p.db.Ping(ctx)
}
