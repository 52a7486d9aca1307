package domain

import (
	"strings"
	"time"
)

// URIEnvKey is the environment variable operators set the connection URI in.
const URIEnvKey = "MONGODB_URI"

// Default operational settings for a diagnostic run.
const (
	DefaultDisplayLimit           = 5
	DefaultConnectTimeout         = 10 * time.Second
	DefaultServerSelectionTimeout = 10 * time.Second
)

// ConnectionConfig is everything a diagnostic run needs. It is built from
// config.Config and injected, so nothing below reads the process environment.
type ConnectionConfig struct {
	URI                    string
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	DisplayLimit           int
	SortDatabases          bool
}

// HasURI reports whether a connection URI is configured.
func (c ConnectionConfig) HasURI() bool {
	return strings.TrimSpace(c.URI) != ""
}

// Limit returns the display limit, falling back to DefaultDisplayLimit.
func (c ConnectionConfig) Limit() int {
	if c.DisplayLimit <= 0 {
		return DefaultDisplayLimit
	}
	return c.DisplayLimit
}

// ReadyState mirrors the coarse connection-handle state of the dashboard's
// database client.
type ReadyState int

const (
	ReadyStateDisconnected ReadyState = iota
	ReadyStateConnected
	ReadyStateConnecting
	ReadyStateDisconnecting
)

func (s ReadyState) String() string {
	switch s {
	case ReadyStateConnected:
		return "connected"
	case ReadyStateConnecting:
		return "connecting"
	case ReadyStateDisconnecting:
		return "disconnecting"
	default:
		return "disconnected"
	}
}

// ConnectionInfo is read back from a live session.
type ConnectionInfo struct {
	Backend    Backend
	Host       string
	Port       int
	Database   string
	ReadyState ReadyState
}

// IsConnected reports whether the handle considers itself connected.
func (i ConnectionInfo) IsConnected() bool {
	return i.ReadyState == ReadyStateConnected
}
