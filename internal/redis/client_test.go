package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/interfacing/internal/redis"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := redis.NewClient("", nil)
	assert.Error(t, err)

	_, err = redis.NewClientFromURL("")
	assert.Error(t, err)
}

func TestNewClientFromURL(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	for _, raw := range []string{mr.Addr(), "redis://" + mr.Addr() + "/0"} {
		client, err := redis.NewClientFromURL(raw)
		require.NoError(t, err)

		require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
		got, err := client.Get(context.Background(), "k").Result()
		require.NoError(t, err)
		assert.Equal(t, "v", got)
		_ = client.Close()
	}
}

func TestNewClientFromURLInvalid(t *testing.T) {
	_, err := redis.NewClientFromURL("http://bad host")
	assert.Error(t, err)
}

func TestOpenMemory(t *testing.T) {
	client, closeFn, err := redis.Open(redis.MemoryURL)
	require.NoError(t, err)
	defer closeFn()

	require.NoError(t, client.Set(context.Background(), "scene", "martinaise", 0).Err())
	got, err := client.Get(context.Background(), "scene").Result()
	require.NoError(t, err)
	assert.Equal(t, "martinaise", got)
}

func TestOpenURL(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, closeFn, err := redis.Open("redis://" + mr.Addr())
	require.NoError(t, err)
	defer closeFn()
	assert.NoError(t, client.Ping(context.Background()).Err())

	_, _, err = redis.Open("")
	assert.Error(t, err)
}
