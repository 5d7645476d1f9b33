package interfaces

import "context"

// Verifier confirms that a candidate address hosts the expected backend, not
// just any listener on the same port. All failure modes (network error,
// timeout, non-success status, identity mismatch, missing fields) are
// deliberately indistinguishable: an unrelated service must look exactly like
// no service.
//
// Implemented by adapters.VerifierHTTP. Called from service.Prober for every
// candidate in a batch and from service.Coordinator for the override pair.
//
//go:generate moq -stub -out mock/verifier.go -pkg mock . Verifier
type Verifier interface {
	// Verify reports whether the candidate answered a bounded-timeout health
	// check and passed the service-identity contract. ctx bounds the whole
	// attempt; cached outcomes within the TTL are returned without network I/O.
	Verify(ctx context.Context, candidate string) bool
}
