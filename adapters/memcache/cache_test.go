package memcache

import (
	"context"
	"testing"
	"time"

	"github.com/Archegon/elixir-discovery/domain"
	"github.com/Archegon/elixir-discovery/helpers"
	"github.com/Archegon/elixir-discovery/interfaces/mock"
	"github.com/Archegon/elixir-discovery/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCache_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "adapters.memcache.cache.go: time provider is required", func() {
		NewCache[domain.CacheEntry](nil)
	})
}

func TestCache_WriteRead(t *testing.T) {
	cache := NewCache[domain.CacheEntry](&mock.TimeProviderMock{NowFunc: helpers.TestNow})
	item := domain.CacheEntry{Valid: true, CheckedAt: helpers.TestNow()}

	require.NoError(t, cache.WriteValue(context.Background(), "http://192.168.1.5:8000", item, 60000))

	got, err := cache.ReadValue(context.Background(), "http://192.168.1.5:8000")
	require.NoError(t, err)
	assert.Equal(t, item, got)
}

func TestCache_MissingKey(t *testing.T) {
	cache := NewCache[domain.CacheEntry](&mock.TimeProviderMock{NowFunc: helpers.TestNow})

	_, err := cache.ReadValue(context.Background(), "http://10.0.0.1:8000")

	assert.True(t, service.IsEntityNotFoundError(err))
}

func TestCache_StaleEntryBehavesLikeMiss(t *testing.T) {
	now := helpers.TestNow()
	clock := &mock.TimeProviderMock{NowFunc: func() time.Time { return now }}
	cache := NewCache[domain.CacheEntry](clock)

	require.NoError(t, cache.WriteValue(context.Background(), "key", domain.CacheEntry{Valid: true}, 60000))

	// Still fresh at exactly the expiry instant.
	now = helpers.TestNow().Add(60 * time.Second)
	_, err := cache.ReadValue(context.Background(), "key")
	require.NoError(t, err)

	// One tick past the TTL the entry reads as absent.
	now = helpers.TestNow().Add(60*time.Second + time.Millisecond)
	_, err = cache.ReadValue(context.Background(), "key")
	assert.True(t, service.IsEntityNotFoundError(err))
}

func TestCache_WriteRefreshesExpiry(t *testing.T) {
	now := helpers.TestNow()
	clock := &mock.TimeProviderMock{NowFunc: func() time.Time { return now }}
	cache := NewCache[domain.CacheEntry](clock)

	require.NoError(t, cache.WriteValue(context.Background(), "key", domain.CacheEntry{Valid: false}, 1000))

	now = now.Add(900 * time.Millisecond)
	require.NoError(t, cache.WriteValue(context.Background(), "key", domain.CacheEntry{Valid: true}, 1000))

	// Past the first deadline but within the rewritten one.
	now = now.Add(900 * time.Millisecond)
	got, err := cache.ReadValue(context.Background(), "key")
	require.NoError(t, err)
	assert.True(t, got.Valid)
}

func TestCache_Clear(t *testing.T) {
	cache := NewCache[domain.CacheEntry](&mock.TimeProviderMock{NowFunc: helpers.TestNow})

	require.NoError(t, cache.WriteValue(context.Background(), "a", domain.CacheEntry{Valid: true}, 60000))
	require.NoError(t, cache.WriteValue(context.Background(), "b", domain.CacheEntry{Valid: false}, 60000))
	require.NoError(t, cache.Clear(context.Background()))

	_, err := cache.ReadValue(context.Background(), "a")
	assert.True(t, service.IsEntityNotFoundError(err))
	_, err = cache.ReadValue(context.Background(), "b")
	assert.True(t, service.IsEntityNotFoundError(err))
}
