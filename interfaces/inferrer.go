package interfaces

import "context"

// AddressInferrer learns the calling machine's best-guess private network
// address without elevated OS privileges. The result only informs candidate
// prioritization; it never gates discovery, so the interface has no error
// return — every failure collapses to ok == false.
//
// Implemented by adapters/mystun (STUN binding against a public rendezvous
// server, UDP-dial fallback). Narrow on purpose: platforms with a privileged
// interface query can swap the implementation without touching the generator.
//
//go:generate moq -stub -out mock/inferrer.go -pkg mock . AddressInferrer
type AddressInferrer interface {
	// InferLocalAddress returns the machine's private IPv4 address (e.g.
	// "192.168.1.42") and true, or ("", false) when it cannot be determined
	// within the configured timeout.
	InferLocalAddress(ctx context.Context) (string, bool)
}
