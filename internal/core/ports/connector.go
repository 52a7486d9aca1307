package ports

import (
	"context"

	"dbcheck/internal/core/domain"
)

//go:generate mockgen -source=connector.go -destination=mocks/mock_connector.go -package=mocks

// Connector opens sessions against a database endpoint.
type Connector interface {
	// Connect opens a session and waits until it is ready. Operations issued
	// before readiness must fail within cfg.ServerSelectionTimeout rather
	// than queue.
	Connect(ctx context.Context, cfg domain.ConnectionConfig) (Session, error)
}

// Session is one live connection handle, exclusively owned by a single run.
type Session interface {
	// Info returns host, port, database and ready state of the handle.
	Info() domain.ConnectionInfo
	// Ping issues a liveness probe against the server administration interface.
	Ping(ctx context.Context) (domain.PingResult, error)
	// ListDatabases returns the databases visible to the connected credentials
	// in server order.
	ListDatabases(ctx context.Context) ([]domain.DatabaseInfo, error)
	// Close releases the handle. It is safe to call more than once.
	Close(ctx context.Context) error
}
