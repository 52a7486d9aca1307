// Package sqlite checks local SQLite database files referenced as
// sqlite:///path/to/file.db.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"dbcheck/internal/core/domain"
	"dbcheck/internal/core/ports"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

// Connector opens SQLite sessions. Files are opened read-write without
// create, so a wrong path fails instead of leaving an empty database behind.
type Connector struct {
	log zerolog.Logger
}

// NewConnector creates a SQLite connector.
func NewConnector(log zerolog.Logger) *Connector {
	return &Connector{log: log}
}

func dsn(path string) string {
	return "file:" + (&url.URL{Path: path}).EscapedPath() + "?mode=rw&_busy_timeout=5000"
}

func (c *Connector) Connect(ctx context.Context, cfg domain.ConnectionConfig) (ports.Session, error) {
	ep, err := domain.DescribeURI(cfg.URI)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	db, err := sql.Open("sqlite3", dsn(ep.Path))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", ep.Path, err)
	}
	db.SetMaxOpenConns(1)

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("opening %s: %w", ep.Path, err)
	}

	c.log.Info().Str("path", ep.Path).Msg("SQLite database opened")

	return &Session{
		db: db,
		info: domain.ConnectionInfo{
			Backend:    domain.BackendSQLite,
			Host:       ep.Host,
			Database:   ep.Database,
			ReadyState: domain.ReadyStateConnected,
		},
	}, nil
}

// Session implements ports.Session for one SQLite file and its attached schemas.
type Session struct {
	db     *sql.DB
	info   domain.ConnectionInfo
	closed bool
}

func (s *Session) Info() domain.ConnectionInfo {
	return s.info
}

func (s *Session) Ping(ctx context.Context) (domain.PingResult, error) {
	var one int
	if err := s.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return domain.PingResult{}, err
	}
	return domain.PingResult{OK: one == 1, Raw: `{"ok":1}`}, nil
}

// ListDatabases returns every schema of PRAGMA database_list with its size
// computed as page_count * page_size.
func (s *Session) ListDatabases(ctx context.Context) ([]domain.DatabaseInfo, error) {
	rows, err := s.db.QueryContext(ctx, "PRAGMA database_list")
	if err != nil {
		return nil, fmt.Errorf("database_list: %w", err)
	}

	var names []string
	for rows.Next() {
		var (
			seq  int
			name string
			file sql.NullString
		)
		if err := rows.Scan(&seq, &name, &file); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan database_list row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate database_list rows: %w", err)
	}
	// The single connection must be free before querying each schema.
	rows.Close()

	dbs := make([]domain.DatabaseInfo, 0, len(names))
	for _, name := range names {
		size, err := s.schemaSize(ctx, name)
		if err != nil {
			return nil, err
		}
		dbs = append(dbs, domain.DatabaseInfo{Name: name, SizeOnDisk: size, Empty: size == 0})
	}
	return dbs, nil
}

func (s *Session) schemaSize(ctx context.Context, schema string) (int64, error) {
	var pages, pageSize int64
	if err := s.db.QueryRowContext(ctx, fmt.Sprintf("PRAGMA %q.page_count", schema)).Scan(&pages); err != nil {
		return 0, fmt.Errorf("page_count of %s: %w", schema, err)
	}
	if err := s.db.QueryRowContext(ctx, fmt.Sprintf("PRAGMA %q.page_size", schema)).Scan(&pageSize); err != nil {
		return 0, fmt.Errorf("page_size of %s: %w", schema, err)
	}
	return pages * pageSize, nil
}

func (s *Session) Close(ctx context.Context) error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.info.ReadyState = domain.ReadyStateDisconnected
	return s.db.Close()
}
