// Package memcache is the in-process implementation of the generic cache
// interface: a mutex-guarded map where staleness is a read-time check.
// Entries are never proactively evicted; only Clear drops them, which keeps
// the write path single-site and lock contention trivial for the cache's one
// consumer (the verifier).
package memcache

import (
	"context"
	"sync"
	"time"

	"github.com/Archegon/elixir-discovery/helpers"
	"github.com/Archegon/elixir-discovery/interfaces"
	"github.com/Archegon/elixir-discovery/service"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

type memCache[T any] struct {
	timeProvider interfaces.TimeProvider

	mu    sync.Mutex
	items map[string]entry[T]
}

// NewCache creates the in-process implementation of the generic cache interface. Panics on nil timeProvider.
//
// Parameter timeProvider — clock for expiry stamps and read-time staleness checks (fixed clock in tests).
//
// Returns: *memCache[T] (satisfies interfaces.Cache[T]).
//
// Called from cmd/discoveryd when REDIS_ADDR is not configured.
func NewCache[T any](timeProvider interfaces.TimeProvider) *memCache[T] {
	return &memCache[T]{
		timeProvider: helpers.NilPanic(timeProvider, "adapters.memcache.cache.go: time provider is required"),
		items:        make(map[string]entry[T]),
	}
}

func (m *memCache[T]) WriteValue(_ context.Context, key string, item T, ttlMs int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = entry[T]{
		value:     item,
		expiresAt: m.timeProvider.Now().Add(time.Duration(ttlMs) * time.Millisecond),
	}
	return nil
}

// ReadValue returns entity_not_found for absent and stale entries alike; a
// stale entry stays in the map until the next write or Clear.
func (m *memCache[T]) ReadValue(_ context.Context, key string) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.items[key]
	if !ok || m.timeProvider.Now().After(e.expiresAt) {
		var zero T
		return zero, service.NewEntityNotFoundError("Entity not found", nil)
	}
	return e.value, nil
}

func (m *memCache[T]) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[string]entry[T])
	return nil
}
