package myredis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Archegon/elixir-discovery/domain"
	"github.com/Archegon/elixir-discovery/service"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRedisAddr = "redis://localhost:6379"

const testPrefix = "probe_test"

func setupTestRedis(t *testing.T) (redis.UniversalClient, func()) {
	client, err := NewRedisUniversalClient(testRedisAddr)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("redis not available at %s: %v", testRedisAddr, err)
	}

	keys, err := client.Keys(ctx, testPrefix+":*").Result()
	if err == nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}

	cleanup := func() {
		keys, _ := client.Keys(ctx, testPrefix+":*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	}
	return client, cleanup
}

func newTestCache(client redis.UniversalClient) *redisCache[domain.CacheEntry] {
	marshal := func(e domain.CacheEntry) ([]byte, error) { return json.Marshal(e) }
	unmarshal := func(b []byte) (domain.CacheEntry, error) {
		var e domain.CacheEntry
		err := json.Unmarshal(b, &e)
		return e, err
	}
	return NewCache[domain.CacheEntry](client, testPrefix, marshal, unmarshal)
}

func TestRedisCache_WriteRead(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := newTestCache(client)

	t.Run("success", func(t *testing.T) {
		item := domain.CacheEntry{Valid: true, CheckedAt: time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)}
		err := cache.WriteValue(ctx, "http://192.168.1.5:8000", item, 60000)
		require.NoError(t, err)

		got, err := cache.ReadValue(ctx, "http://192.168.1.5:8000")
		require.NoError(t, err)
		assert.Equal(t, item.Valid, got.Valid)
		assert.True(t, item.CheckedAt.Equal(got.CheckedAt))
	})

	t.Run("key missing returns entity not found", func(t *testing.T) {
		_, err := cache.ReadValue(ctx, "http://10.0.0.99:8000")
		require.Error(t, err)
		assert.True(t, service.IsEntityNotFoundError(err))
	})

	t.Run("invalid JSON returns error", func(t *testing.T) {
		err := client.Set(ctx, testPrefix+":badjson", "invalid json", 0).Err()
		require.NoError(t, err)

		_, err = cache.ReadValue(ctx, "badjson")
		require.Error(t, err)
		assert.False(t, service.IsEntityNotFoundError(err))
	})
}

func TestRedisCache_ExpiryIsNative(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := newTestCache(client)

	err := cache.WriteValue(ctx, "short", domain.CacheEntry{Valid: true}, 50)
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	_, err = cache.ReadValue(ctx, "short")
	assert.True(t, service.IsEntityNotFoundError(err))
}

func TestRedisCache_Clear(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := newTestCache(client)

	require.NoError(t, cache.WriteValue(ctx, "a", domain.CacheEntry{Valid: true}, 60000))
	require.NoError(t, cache.WriteValue(ctx, "b", domain.CacheEntry{Valid: false}, 60000))

	require.NoError(t, cache.Clear(ctx))

	_, err := cache.ReadValue(ctx, "a")
	assert.True(t, service.IsEntityNotFoundError(err))
	_, err = cache.ReadValue(ctx, "b")
	assert.True(t, service.IsEntityNotFoundError(err))
}
