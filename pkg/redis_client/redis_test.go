package redis_client

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/nextbus/pkg/config"
)

func TestConnect(t *testing.T) {
	server := miniredis.RunT(t)

	client, err := Connect(context.Background(), config.RedisConfig{Address: server.Addr()})
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "routes", "[]", 0).Err())
	assert.True(t, server.Exists("routes"))
}

func TestConnectWithPassword(t *testing.T) {
	server := miniredis.RunT(t)
	server.RequireAuth("secret")

	_, err := Connect(context.Background(), config.RedisConfig{Address: server.Addr()})
	assert.Error(t, err)

	client, err := Connect(context.Background(), config.RedisConfig{Address: server.Addr(), Password: "secret"})
	require.NoError(t, err)
	client.Close()
}

func TestConnectUnreachable(t *testing.T) {
	server := miniredis.RunT(t)
	address := server.Addr()
	server.Close()

	_, err := Connect(context.Background(), config.RedisConfig{Address: address})
	assert.Error(t, err)
}
