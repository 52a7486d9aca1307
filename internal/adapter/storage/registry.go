// Package storage selects the database connector for a connection URI.
package storage

import (
	"context"
	"fmt"

	"dbcheck/internal/adapter/storage/mongo"
	"dbcheck/internal/adapter/storage/postgres"
	"dbcheck/internal/adapter/storage/redis"
	"dbcheck/internal/adapter/storage/sqlite"
	"dbcheck/internal/core/domain"
	"dbcheck/internal/core/ports"

	"github.com/rs/zerolog"
)

// Registry implements ports.Connector by dispatching on the URI scheme.
type Registry struct {
	connectors map[domain.Backend]ports.Connector
}

var _ ports.Connector = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{connectors: make(map[domain.Backend]ports.Connector)}
}

// NewDefaultRegistry registers every supported backend.
func NewDefaultRegistry(log zerolog.Logger) *Registry {
	r := NewRegistry()
	r.Register(domain.BackendMongo, mongo.NewConnector(log.With().Str("backend", "mongodb").Logger()))
	r.Register(domain.BackendPostgres, postgres.NewConnector(log.With().Str("backend", "postgres").Logger()))
	r.Register(domain.BackendRedis, redis.NewConnector(log.With().Str("backend", "redis").Logger()))
	r.Register(domain.BackendSQLite, sqlite.NewConnector(log.With().Str("backend", "sqlite").Logger()))
	return r
}

// Register sets the connector for a backend, replacing any previous one.
func (r *Registry) Register(backend domain.Backend, c ports.Connector) {
	r.connectors[backend] = c
}

// Connect resolves the backend from cfg.URI and delegates.
func (r *Registry) Connect(ctx context.Context, cfg domain.ConnectionConfig) (ports.Session, error) {
	ep, err := domain.DescribeURI(cfg.URI)
	if err != nil {
		return nil, fmt.Errorf("invalid connection string: %w", err)
	}
	c, ok := r.connectors[ep.Backend]
	if !ok {
		return nil, fmt.Errorf("no connector registered for %s", ep.Backend.DisplayName())
	}
	return c.Connect(ctx, cfg)
}
