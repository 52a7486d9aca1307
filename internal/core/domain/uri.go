package domain

import (
	"fmt"
	"net"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
)

// Backend identifies the database family behind a connection URI.
type Backend string

const (
	BackendMongo    Backend = "mongodb"
	BackendPostgres Backend = "postgres"
	BackendRedis    Backend = "redis"
	BackendSQLite   Backend = "sqlite"
)

// DisplayName is the product name used in console output.
func (b Backend) DisplayName() string {
	switch b {
	case BackendMongo:
		return "MongoDB"
	case BackendPostgres:
		return "PostgreSQL"
	case BackendRedis:
		return "Redis"
	case BackendSQLite:
		return "SQLite"
	default:
		return string(b)
	}
}

// DefaultPort returns the well-known port of the backend, 0 if it has none.
func (b Backend) DefaultPort() int {
	switch b {
	case BackendMongo:
		return 27017
	case BackendPostgres:
		return 5432
	case BackendRedis:
		return 6379
	default:
		return 0
	}
}

var schemes = map[string]Backend{
	"mongodb":     BackendMongo,
	"mongodb+srv": BackendMongo,
	"postgres":    BackendPostgres,
	"postgresql":  BackendPostgres,
	"redis":       BackendRedis,
	"rediss":      BackendRedis,
	"sqlite":      BackendSQLite,
	"sqlite3":     BackendSQLite,
}

// Endpoint is what can be learned from a connection URI without any I/O.
type Endpoint struct {
	Backend  Backend
	Scheme   string
	Host     string // first host of a seed list
	Port     int
	Database string
	Path     string // file path, sqlite only
}

const (
	maskHead = 15
	maskTail = 10
	maskSep  = "..."
)

// MaskURI hides the middle of a connection string so credentials never reach
// the console. URIs shorter than head+tail characters are returned unchanged.
func MaskURI(uri string) string {
	runes := []rune(uri)
	if len(runes) < maskHead+maskTail {
		return uri
	}
	return string(runes[:maskHead]) + maskSep + string(runes[len(runes)-maskTail:])
}

// DescribeURI extracts backend, first host, port and database name from a
// connection URI. Seed lists (h1:27017,h2:27018) and SRV URIs are accepted;
// no DNS lookups are made.
func DescribeURI(uri string) (Endpoint, error) {
	uri = strings.TrimSpace(uri)
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok || scheme == "" {
		return Endpoint{}, fmt.Errorf("connection string has no scheme")
	}
	scheme = strings.ToLower(scheme)
	backend, ok := schemes[scheme]
	if !ok {
		return Endpoint{}, fmt.Errorf("unsupported connection scheme %q", scheme)
	}

	ep := Endpoint{Backend: backend, Scheme: scheme}

	if backend == BackendSQLite {
		path, _, _ := strings.Cut(rest, "?")
		if path == "" {
			return Endpoint{}, fmt.Errorf("sqlite connection string has no file path")
		}
		ep.Path = path
		ep.Host = "localhost"
		ep.Database = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return ep, nil
	}

	authority, path := rest, ""
	if i := strings.IndexAny(rest, "/?"); i >= 0 {
		authority, path = rest[:i], rest[i:]
	}

	user := ""
	if at := strings.LastIndex(authority, "@"); at >= 0 {
		user, _, _ = strings.Cut(authority[:at], ":")
		user, _ = url.PathUnescape(user)
		authority = authority[at+1:]
	}

	first, _, _ := strings.Cut(authority, ",")
	if first == "" {
		return Endpoint{}, fmt.Errorf("connection string has no host")
	}

	ep.Host, ep.Port = first, backend.DefaultPort()
	if h, p, err := net.SplitHostPort(first); err == nil {
		port, err := strconv.Atoi(p)
		if err != nil {
			return Endpoint{}, fmt.Errorf("invalid port %q", p)
		}
		ep.Host, ep.Port = h, port
	}

	path, _, _ = strings.Cut(path, "?")
	db, err := url.PathUnescape(strings.TrimPrefix(path, "/"))
	if err != nil {
		return Endpoint{}, fmt.Errorf("invalid database name: %w", err)
	}
	ep.Database = db

	if ep.Database == "" {
		switch backend {
		case BackendMongo:
			ep.Database = "test"
		case BackendRedis:
			ep.Database = "0"
		case BackendPostgres:
			ep.Database = user
			if ep.Database == "" {
				ep.Database = "postgres"
			}
		}
	}

	return ep, nil
}
