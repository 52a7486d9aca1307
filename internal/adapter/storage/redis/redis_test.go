package redis

import (
	"context"
	"io"
	"strconv"
	"testing"
	"time"

	"dbcheck/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestConnector_Connect(t *testing.T) {
	s := miniredis.RunT(t)
	connector := NewConnector(newTestLogger())

	session, err := connector.Connect(context.Background(), domain.ConnectionConfig{
		URI:                    "redis://" + s.Addr() + "/3",
		ConnectTimeout:         time.Second,
		ServerSelectionTimeout: time.Second,
	})
	require.NoError(t, err)
	defer session.Close(context.Background())

	info := session.Info()
	assert.Equal(t, domain.BackendRedis, info.Backend)
	assert.Equal(t, s.Host(), info.Host)
	port, err := strconv.Atoi(s.Port())
	require.NoError(t, err)
	assert.Equal(t, port, info.Port)
	assert.Equal(t, "3", info.Database)
	assert.True(t, info.IsConnected())
}

func TestConnector_Connect_Unreachable(t *testing.T) {
	s := miniredis.RunT(t)
	addr := s.Addr()
	s.Close()

	connector := NewConnector(newTestLogger())
	session, err := connector.Connect(context.Background(), domain.ConnectionConfig{
		URI:                    "redis://" + addr,
		ConnectTimeout:         200 * time.Millisecond,
		ServerSelectionTimeout: 500 * time.Millisecond,
	})
	assert.Nil(t, session)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pinging redis")
}

func TestConnector_Connect_BadURL(t *testing.T) {
	connector := NewConnector(newTestLogger())

	_, err := connector.Connect(context.Background(), domain.ConnectionConfig{URI: "redis://localhost:6379/notadb"})
	assert.Error(t, err)
}

func TestConnector_Connect_RequiresPassword(t *testing.T) {
	s := miniredis.RunT(t)
	s.RequireAuth("s3cret")
	connector := NewConnector(newTestLogger())

	_, err := connector.Connect(context.Background(), domain.ConnectionConfig{URI: "redis://" + s.Addr()})
	assert.Error(t, err)

	session, err := connector.Connect(context.Background(), domain.ConnectionConfig{URI: "redis://:s3cret@" + s.Addr()})
	require.NoError(t, err)
	assert.NoError(t, session.Close(context.Background()))
}
