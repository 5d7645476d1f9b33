package interfaces

import "context"

// ProgressFunc reports one settled candidate during a scan: the candidate
// address, how many candidates have settled so far and the total list size.
// Called from the prober's collection loop, never concurrently. nil means
// no progress reporting.
type ProgressFunc func(candidate string, tested, total int)

// Prober drives the Verifier over a candidate list in fixed-size concurrent
// batches, strictly in batch order, short-circuiting on the first success.
//
// Implemented by service.Prober. Called from service.Coordinator once per
// discovery attempt.
//
//go:generate moq -stub -out mock/prober.go -pkg mock . Prober
type Prober interface {
	// FindFirst returns the first candidate that verified, or ("", false) when
	// the list is exhausted (an empty list returns immediately). No more than
	// the configured batch size of verification attempts run at any instant.
	FindFirst(ctx context.Context, candidates []string, progress ProgressFunc) (string, bool)
}

// CandidateSource produces the ordered, de-duplicated list of candidate
// addresses worth probing, highest-confidence first. Never fails: with no
// detected private network it simply yields loopback plus fallback addresses.
//
// Implemented by service.CandidateGenerator. Called from service.Coordinator
// when a discovery attempt needs a scan list.
//
//go:generate moq -stub -out mock/candidate_source.go -pkg mock . CandidateSource
type CandidateSource interface {
	// Generate builds the scan list. ctx bounds the local-address inference
	// step only; generation itself is pure.
	Generate(ctx context.Context) []string
}
