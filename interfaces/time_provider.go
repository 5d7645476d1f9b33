package interfaces

import "time"

// TimeProvider supplies the current time for cache staleness checks.
// Injected so tests can use a fixed clock instead of time.Now().
//
// Used by adapters.VerifierHTTP when stamping CacheEntry.CheckedAt and by
// adapters/memcache when deciding whether an entry outlived its TTL.
// Constructed in cmd/discoveryd as NewTimeProvider(func() time.Time { return time.Now().UTC() }).
//
//go:generate moq -stub -out mock/time_provider.go -pkg mock . TimeProvider
type TimeProvider interface {
	// Now returns current time (UTC in prod; in tests — fixed time for deterministic staleness checks).
	Now() time.Time
}
