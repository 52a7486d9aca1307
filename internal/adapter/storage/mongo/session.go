package mongo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"dbcheck/internal/core/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	mongodrv "go.mongodb.org/mongo-driver/v2/mongo"
)

// Session implements ports.Session for MongoDB.
type Session struct {
	client *mongodrv.Client
	info   domain.ConnectionInfo
	closed bool
}

func (s *Session) Info() domain.ConnectionInfo {
	return s.info
}

// Ping runs {ping: 1} against the admin database.
func (s *Session) Ping(ctx context.Context) (domain.PingResult, error) {
	var ack bson.M
	err := s.client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Decode(&ack)
	if err != nil {
		return domain.PingResult{}, err
	}
	return pingResult(ack)
}

// pingResult keeps the acknowledgement fields an operator cares about;
// gossiped cluster time and signatures are dropped.
func pingResult(ack bson.M) (domain.PingResult, error) {
	visible := make(map[string]any, len(ack))
	for k, v := range ack {
		if strings.HasPrefix(k, "$") || k == "operationTime" {
			continue
		}
		visible[k] = v
	}
	raw, err := json.Marshal(visible)
	if err != nil {
		return domain.PingResult{}, fmt.Errorf("encoding ping reply: %w", err)
	}
	return domain.PingResult{OK: isOK(ack["ok"]), Raw: string(raw)}, nil
}

func isOK(v any) bool {
	switch ok := v.(type) {
	case float64:
		return ok == 1
	case int32:
		return ok == 1
	case int64:
		return ok == 1
	case bool:
		return ok
	default:
		return false
	}
}

// ListDatabases runs listDatabases against admin and keeps server order.
func (s *Session) ListDatabases(ctx context.Context) ([]domain.DatabaseInfo, error) {
	res, err := s.client.ListDatabases(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	dbs := make([]domain.DatabaseInfo, 0, len(res.Databases))
	for _, db := range res.Databases {
		dbs = append(dbs, domain.DatabaseInfo{
			Name:       db.Name,
			SizeOnDisk: db.SizeOnDisk,
			Empty:      db.Empty,
		})
	}
	return dbs, nil
}

// Close disconnects the client; later calls are no-ops.
func (s *Session) Close(ctx context.Context) error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.info.ReadyState = domain.ReadyStateDisconnecting
	err := s.client.Disconnect(ctx)
	s.info.ReadyState = domain.ReadyStateDisconnected
	return err
}
