package postgres

import (
	"context"
	"fmt"

	"dbcheck/internal/core/domain"
)

const listDatabasesQuery = `
	SELECT datname, pg_database_size(datname)
	FROM pg_database
	WHERE NOT datistemplate AND datallowconn
	ORDER BY oid`

// Session implements ports.Session for PostgreSQL.
type Session struct {
	pool   Pool
	info   domain.ConnectionInfo
	closed bool
}

// NewSession wraps an already verified pool.
func NewSession(pool Pool, info domain.ConnectionInfo) *Session {
	return &Session{pool: pool, info: info}
}

func (s *Session) Info() domain.ConnectionInfo {
	return s.info
}

// Ping checks PostgreSQL connectivity.
func (s *Session) Ping(ctx context.Context) (domain.PingResult, error) {
	if _, err := s.pool.Exec(ctx, "SELECT 1"); err != nil {
		return domain.PingResult{}, err
	}
	return domain.PingResult{OK: true, Raw: `{"ok":1}`}, nil
}

// ListDatabases returns connectable, non-template databases with their size.
func (s *Session) ListDatabases(ctx context.Context) ([]domain.DatabaseInfo, error) {
	rows, err := s.pool.Query(ctx, listDatabasesQuery)
	if err != nil {
		return nil, fmt.Errorf("list databases: %w", err)
	}
	defer rows.Close()

	var dbs []domain.DatabaseInfo
	for rows.Next() {
		db := domain.DatabaseInfo{}
		if err := rows.Scan(&db.Name, &db.SizeOnDisk); err != nil {
			return nil, fmt.Errorf("scan database row: %w", err)
		}
		dbs = append(dbs, db)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate database rows: %w", err)
	}
	return dbs, nil
}

// Close releases the pool. pgxpool.Close blocks until connections are closed.
func (s *Session) Close(ctx context.Context) error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.info.ReadyState = domain.ReadyStateDisconnecting
	s.pool.Close()
	s.info.ReadyState = domain.ReadyStateDisconnected
	return nil
}
