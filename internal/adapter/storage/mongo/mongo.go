// Package mongo implements the connection diagnostic against MongoDB using the
// official driver.
package mongo

import (
	"context"
	"fmt"
	"time"

	"dbcheck/internal/core/domain"
	"dbcheck/internal/core/ports"

	"github.com/rs/zerolog"
	mongodrv "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const disconnectTimeout = 5 * time.Second

// Connector opens MongoDB sessions for mongodb:// and mongodb+srv:// URIs.
type Connector struct {
	log zerolog.Logger
}

// NewConnector creates a MongoDB connector.
func NewConnector(log zerolog.Logger) *Connector {
	return &Connector{log: log}
}

// clientOptions builds driver options. The driver never buffers commands: an
// operation issued before a server is selectable fails once the server
// selection timeout elapses.
func clientOptions(cfg domain.ConnectionConfig) *options.ClientOptions {
	opts := options.Client().ApplyURI(cfg.URI).SetRetryReads(false).SetRetryWrites(false)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.ServerSelectionTimeout > 0 {
		opts.SetServerSelectionTimeout(cfg.ServerSelectionTimeout)
	}
	return opts
}

// Connect creates a client and blocks until the primary answers, so the
// returned session is ready.
func (c *Connector) Connect(ctx context.Context, cfg domain.ConnectionConfig) (ports.Session, error) {
	ep, err := domain.DescribeURI(cfg.URI)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	client, err := mongodrv.Connect(clientOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	s := &Session{
		client: client,
		info: domain.ConnectionInfo{
			Backend:    domain.BackendMongo,
			Host:       ep.Host,
			Port:       ep.Port,
			Database:   ep.Database,
			ReadyState: domain.ReadyStateConnecting,
		},
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), disconnectTimeout)
		defer cancel()
		if derr := s.Close(closeCtx); derr != nil {
			c.log.Warn().Err(derr).Msg("disconnect after failed connect")
		}
		return nil, err
	}
	s.info.ReadyState = domain.ReadyStateConnected

	c.log.Info().
		Str("host", ep.Host).
		Int("port", ep.Port).
		Str("database", ep.Database).
		Msg("MongoDB connection established")

	return s, nil
}
