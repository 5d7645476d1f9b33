package interfaces

import (
	"context"

	"github.com/Archegon/elixir-discovery/domain"
)

// Coordinator owns the process-wide discovery state: at most one attempt is
// ever in flight, concurrent Discover callers attach to it and observe the
// same eventual result, and a resolved endpoint pair is held for the process
// lifetime until an explicit reset.
//
// Implemented by service.Coordinator. Consumed by handlers.HTTPServer and,
// through it, the dashboard UI.
//
//go:generate moq -stub -out mock/coordinator.go -pkg mock . Coordinator
type Coordinator interface {
	// Discover returns the resolved endpoint pair, triggering a discovery
	// attempt when idle. Idempotent; never fails outright (exhaustion degrades
	// to the fallback address). The only error is ctx cancellation while
	// waiting for an in-flight attempt.
	Discover(ctx context.Context) (domain.DiscoveryResult, error)

	// Reset forces future calls back to idle and clears the verification
	// cache. An in-flight attempt is not aborted and still resolves.
	Reset(ctx context.Context) error

	// Current is a non-blocking read of the resolved pair; ok is false until
	// a discovery attempt has settled.
	Current() (domain.DiscoveryResult, bool)

	// Phase reports the coordinator state (idle, discovering, resolved).
	Phase() domain.Phase

	// Subscribe registers a listener for discovery events and returns the
	// func that unsubscribes it.
	Subscribe(listener DiscoveryListener) func()
}
