package postgres

import (
	"context"
	"fmt"

	"dbcheck/internal/core/domain"
	"dbcheck/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Pool is the subset of *pgxpool.Pool the diagnostic uses; pgxmock satisfies it.
type Pool interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close()
}

// PoolFactory opens a pool from a parsed configuration.
type PoolFactory func(ctx context.Context, cfg *pgxpool.Config) (Pool, error)

func newPgxPool(ctx context.Context, cfg *pgxpool.Config) (Pool, error) {
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return pool, nil
}

// Connector opens PostgreSQL sessions for postgres:// and postgresql:// URIs.
type Connector struct {
	log     zerolog.Logger
	newPool PoolFactory
}

// NewConnector creates a PostgreSQL connector backed by pgxpool.
func NewConnector(log zerolog.Logger) *Connector {
	return NewConnectorWithFactory(log, newPgxPool)
}

// NewConnectorWithFactory lets tests substitute the pool.
func NewConnectorWithFactory(log zerolog.Logger, factory PoolFactory) *Connector {
	return &Connector{log: log, newPool: factory}
}

// Connect parses the URI, opens a single-connection pool and waits for the
// server to answer a ping.
func (c *Connector) Connect(ctx context.Context, cfg domain.ConnectionConfig) (ports.Session, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URI)
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	poolCfg.MaxConns = 1
	poolCfg.MinConns = 0
	if cfg.ConnectTimeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	pool, err := c.newPool(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	pingCtx := ctx
	if cfg.ServerSelectionTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ServerSelectionTimeout)
		defer cancel()
	}

	// Verify connectivity
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	info := domain.ConnectionInfo{
		Backend:    domain.BackendPostgres,
		Host:       poolCfg.ConnConfig.Host,
		Port:       int(poolCfg.ConnConfig.Port),
		Database:   poolCfg.ConnConfig.Database,
		ReadyState: domain.ReadyStateConnected,
	}

	c.log.Info().
		Str("host", info.Host).
		Int("port", info.Port).
		Str("dbname", info.Database).
		Msg("PostgreSQL connection established")

	return NewSession(pool, info), nil
}
