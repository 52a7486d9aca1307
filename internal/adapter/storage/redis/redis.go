package redis

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"dbcheck/internal/core/domain"
	"dbcheck/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Connector opens Redis sessions for redis:// and rediss:// URIs.
type Connector struct {
	log zerolog.Logger
}

// NewConnector creates a Redis connector.
func NewConnector(log zerolog.Logger) *Connector {
	return &Connector{log: log}
}

// Connect creates a Redis client and verifies connectivity.
func (c *Connector) Connect(ctx context.Context, cfg domain.ConnectionConfig) (ports.Session, error) {
	opts, err := goredis.ParseURL(cfg.URI)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	if cfg.ConnectTimeout > 0 {
		opts.DialTimeout = cfg.ConnectTimeout
	}
	opts.PoolSize = 1
	opts.MaxRetries = -1

	client := goredis.NewClient(opts)

	pingCtx := ctx
	if cfg.ServerSelectionTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ServerSelectionTimeout)
		defer cancel()
	}

	// Verify connectivity
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	info := domain.ConnectionInfo{
		Backend:    domain.BackendRedis,
		Host:       opts.Addr,
		Port:       domain.BackendRedis.DefaultPort(),
		Database:   strconv.Itoa(opts.DB),
		ReadyState: domain.ReadyStateConnected,
	}
	if host, port, err := net.SplitHostPort(opts.Addr); err == nil {
		info.Host = host
		if p, err := strconv.Atoi(port); err == nil {
			info.Port = p
		}
	}

	c.log.Info().
		Str("addr", opts.Addr).
		Int("db", opts.DB).
		Msg("Redis connection established")

	return NewSession(client, opts.DB, info), nil
}
