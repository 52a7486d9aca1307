package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"dbcheck/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// Session implements ports.Session for Redis. A Redis connection is bound to
// one logical database, so ListDatabases reports only that one.
type Session struct {
	client *goredis.Client
	db     int
	info   domain.ConnectionInfo
	closed bool
}

// NewSession wraps an already verified client selected on db.
func NewSession(client *goredis.Client, db int, info domain.ConnectionInfo) *Session {
	return &Session{client: client, db: db, info: info}
}

func (s *Session) Info() domain.ConnectionInfo {
	return s.info
}

// Ping checks Redis connectivity.
func (s *Session) Ping(ctx context.Context) (domain.PingResult, error) {
	reply, err := s.client.Ping(ctx).Result()
	if err != nil {
		return domain.PingResult{}, err
	}
	return pingResult(reply)
}

// pingResult acknowledges only a PONG reply; the raw payload carries the
// same verdict as OK.
func pingResult(reply string) (domain.PingResult, error) {
	ok := 0
	if reply == "PONG" {
		ok = 1
	}
	raw, err := json.Marshal(struct {
		OK    int    `json:"ok"`
		Reply string `json:"reply"`
	}{OK: ok, Reply: reply})
	if err != nil {
		return domain.PingResult{}, fmt.Errorf("encoding ping reply: %w", err)
	}
	return domain.PingResult{OK: ok == 1, Raw: string(raw)}, nil
}

// ListDatabases reports the selected logical database. Redis exposes no
// per-database disk size, so SizeOnDisk is 0 and Empty reflects DBSIZE.
func (s *Session) ListDatabases(ctx context.Context) ([]domain.DatabaseInfo, error) {
	keys, err := s.client.DBSize(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("dbsize: %w", err)
	}
	return []domain.DatabaseInfo{{
		Name:  fmt.Sprintf("db%d", s.db),
		Empty: keys == 0,
	}}, nil
}

func (s *Session) Close(ctx context.Context) error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.info.ReadyState = domain.ReadyStateDisconnected
	return s.client.Close()
}
