package interfaces

import "context"

// Cache stores per-key values with a TTL. Discovery uses it keyed by candidate
// address so verification outcomes are not re-fetched over the network within
// the TTL window; entries are never listed, only read back per key.
//
// Implemented by adapters/memcache (in-process, staleness checked at read
// time) and adapters/myredis (shared across agents, Redis-native TTL).
//
//go:generate moq -stub -out mock/cache.go -pkg mock . Cache
type Cache[T any] interface {
	// WriteValue writes value in cache with the given TTL (ms).
	// Returns:
	// 1) nil on success;
	// 2) internal_server_error when marshalling fails or when the storage write fails.
	WriteValue(ctx context.Context, key string, item T, ttlMs int) error

	// ReadValue returns the value stored for key.
	// Returns:
	// 1) (item, nil) when a fresh entry exists;
	// 2) (zero, entity_not_found) when the key is absent or the entry is older than its TTL;
	// 3) (zero, internal_server_error) when the storage read fails.
	ReadValue(ctx context.Context, key string) (T, error)

	// Clear removes every entry owned by this cache.
	// Returns nil on success, internal_server_error when the storage delete fails.
	Clear(ctx context.Context) error
}
