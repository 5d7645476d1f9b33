package domain

import (
	"strings"
	"time"
)

// CacheEntry records the outcome of one verification attempt for a candidate
// address. Stored keyed by the candidate address string; stale entries (older
// than the configured TTL) are reported as absent at read time, never evicted.
type CacheEntry struct {
	Valid     bool      // true when the candidate answered and passed identity verification
	CheckedAt time.Time // when the verification attempt settled
}

// DiscoveryResult is the resolved endpoint pair handed to the rest of the
// application: APIAddress for request/response calls, StreamAddress for the
// persistent push connection. Both are derived from the same verified host and
// differ only in scheme.
type DiscoveryResult struct {
	APIAddress    string `json:"api_address"`
	StreamAddress string `json:"stream_address"`
}

// Phase is the coordinator state: idle (nothing resolved, or cache cleared),
// discovering (an attempt is in flight) or resolved (endpoint pair known for
// the process lifetime).
type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhaseDiscovering Phase = "discovering"
	PhaseResolved    Phase = "resolved"
)

// StreamAddressFor derives the push-connection address for a verified API
// address: http becomes ws, https becomes wss, host and port are preserved.
// Addresses without a recognized scheme are returned unchanged.
func StreamAddressFor(apiAddress string) string {
	switch {
	case strings.HasPrefix(apiAddress, "https://"):
		return "wss://" + strings.TrimPrefix(apiAddress, "https://")
	case strings.HasPrefix(apiAddress, "http://"):
		return "ws://" + strings.TrimPrefix(apiAddress, "http://")
	default:
		return apiAddress
	}
}

// ResultFor builds the endpoint pair for a verified candidate address.
func ResultFor(apiAddress string) DiscoveryResult {
	return DiscoveryResult{
		APIAddress:    apiAddress,
		StreamAddress: StreamAddressFor(apiAddress),
	}
}
