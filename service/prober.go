package service

import (
	"context"

	"github.com/Archegon/elixir-discovery/helpers"
	"github.com/Archegon/elixir-discovery/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// outcome is one settled verification attempt inside a batch.
type outcome struct {
	candidate string
	ok        bool
}

// Prober implements interfaces.Prober. It partitions the candidate list into
// fixed-size batches, verifies a whole batch concurrently, and stops after the
// first batch containing a success: the remaining candidates of that batch are
// still awaited (every probe settles via its own timeout) but no further batch
// is started. Concurrency is therefore bounded by batchSize at any instant and
// worst-case latency by len(candidates)/batchSize batch timeouts.
type Prober struct {
	verifier  interfaces.Verifier
	batchSize int
	logger    log.Logger
}

// NewProber creates a prober. Panics on nil verifier or logger; a batchSize
// below one is raised to one.
//
// Parameters: verifier — per-candidate verification (VerifierHTTP in prod, mock in tests); batchSize — concurrent probes per batch (default 20); logger.
//
// Returns: *Prober (satisfies interfaces.Prober).
//
// Called from cmd/discoveryd when building the agent.
func NewProber(verifier interfaces.Verifier, batchSize int, logger log.Logger) *Prober {
	if batchSize < 1 {
		batchSize = 1
	}
	return &Prober{
		verifier:  helpers.NilPanic(verifier, "service.prober.go: verifier is required"),
		batchSize: batchSize,
		logger:    log.With(helpers.NilPanic(logger, "service.prober.go: logger is required"), "component", "prober"),
	}
}

// FindFirst scans candidates batch by batch and returns the first one that
// verified, or ("", false) on exhaustion or ctx cancellation. An empty list
// returns immediately. progress (may be nil) is called once per settled
// candidate, from the collection loop, never concurrently.
func (p *Prober) FindFirst(ctx context.Context, candidates []string, progress interfaces.ProgressFunc) (string, bool) {
	total := len(candidates)
	tested := 0

	for start := 0; start < total; start += p.batchSize {
		if ctx.Err() != nil {
			return "", false
		}

		end := start + p.batchSize
		if end > total {
			end = total
		}
		batch := candidates[start:end]

		results := make(chan outcome, len(batch))
		for _, candidate := range batch {
			go func(candidate string) {
				results <- outcome{candidate: candidate, ok: p.verifier.Verify(ctx, candidate)}
			}(candidate)
		}

		// Drain the whole batch even after a success so no probe goroutine
		// outlives the call; outcomes after the first success are discarded.
		found := ""
		for range batch {
			res := <-results
			tested++
			if progress != nil {
				progress(res.candidate, tested, total)
			}
			if res.ok && found == "" {
				found = res.candidate
			}
		}

		if found != "" {
			level.Info(p.logger).Log("msg", "Candidate verified", "candidate", found, "tested", tested, "total", total)
			return found, true
		}
	}

	level.Info(p.logger).Log("msg", "Candidate list exhausted", "total", total)
	return "", false
}
