package service

import (
	"context"
	"sync"

	"github.com/Archegon/elixir-discovery/domain"
	"github.com/Archegon/elixir-discovery/helpers"
	"github.com/Archegon/elixir-discovery/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// attempt is one in-flight discovery operation. result is written before done
// is closed, so waiters attached to this attempt read it race-free even if a
// reset clears the coordinator's resolved state in between.
type attempt struct {
	done   chan struct{}
	result domain.DiscoveryResult
}

// CoordinatorConfig holds the coordinator settings.
type CoordinatorConfig struct {
	// Override is the operator-configured endpoint pair. When set, it is
	// verified on its own before any candidate generation; a pass means no
	// other candidate is ever probed.
	Override *domain.DiscoveryResult
	// FallbackAddresses mirror the generator's fallback list; on exhaustion
	// the first entry becomes the resolved pair, unverified. Must not be
	// empty: exhaustion always resolves to something.
	FallbackAddresses []string
}

// Coordinator implements interfaces.Coordinator: the process-wide discovery
// state machine (idle → discovering → resolved). At most one attempt is in
// flight; concurrent Discover callers wait on the same attempt and observe the
// same result. Exhaustion degrades to the first fallback address rather than
// failing, with a discovery_failed event for observability. Reset returns
// future calls to idle and clears the cache but never aborts an in-flight
// attempt. Fields under mu: phase, resolved, inflight; listeners under their
// own lock so event fan-out never holds the state lock.
type Coordinator struct {
	cfg      CoordinatorConfig
	source   interfaces.CandidateSource
	prober   interfaces.Prober
	verifier interfaces.Verifier
	cache    interfaces.Cache[domain.CacheEntry]
	logger   log.Logger

	mu       sync.Mutex
	phase    domain.Phase
	resolved *domain.DiscoveryResult
	inflight *attempt

	listenerMu sync.Mutex
	listeners  map[int]interfaces.DiscoveryListener
	nextID     int
}

// NewCoordinator creates the coordinator. Panics on nil source, prober,
// verifier, cache or logger, and on an empty fallback list.
//
// Parameters: cfg — override pair and fallback list; source — candidate generator; prober — batch scanner; verifier — override pre-check; cache — verification cache cleared on reset; logger.
//
// Returns: *Coordinator (satisfies interfaces.Coordinator).
//
// Called from cmd/discoveryd when building the agent.
func NewCoordinator(
	cfg CoordinatorConfig,
	source interfaces.CandidateSource,
	prober interfaces.Prober,
	verifier interfaces.Verifier,
	cache interfaces.Cache[domain.CacheEntry],
	logger log.Logger,
) *Coordinator {
	if len(cfg.FallbackAddresses) == 0 {
		panic("service.coordinator.go: at least one fallback address is required")
	}
	return &Coordinator{
		cfg:       cfg,
		source:    helpers.NilPanic(source, "service.coordinator.go: source is required"),
		prober:    helpers.NilPanic(prober, "service.coordinator.go: prober is required"),
		verifier:  helpers.NilPanic(verifier, "service.coordinator.go: verifier is required"),
		cache:     helpers.NilPanic(cache, "service.coordinator.go: cache is required"),
		logger:    log.With(helpers.NilPanic(logger, "service.coordinator.go: logger is required"), "component", "coordinator"),
		phase:     domain.PhaseIdle,
		listeners: make(map[int]interfaces.DiscoveryListener),
	}
}

// Discover returns the resolved endpoint pair, starting an attempt when idle
// or attaching to the in-flight one. The attempt itself runs detached from the
// caller's ctx (every probe carries its own timeout, so it is bounded); ctx
// only limits how long this caller waits. The only error is ctx cancellation.
func (c *Coordinator) Discover(ctx context.Context) (domain.DiscoveryResult, error) {
	c.mu.Lock()
	if c.resolved != nil {
		result := *c.resolved
		c.mu.Unlock()
		return result, nil
	}
	if c.inflight == nil {
		c.inflight = &attempt{done: make(chan struct{})}
		c.phase = domain.PhaseDiscovering
		go c.run(c.inflight)
	}
	a := c.inflight
	c.mu.Unlock()

	select {
	case <-ctx.Done():
		return domain.DiscoveryResult{}, NewInternalServerError("discovery wait cancelled", ctx.Err())
	case <-a.done:
	}

	return a.result, nil
}

// Reset forces future Discover calls back to idle and clears the verification
// cache. A discovering attempt is left to complete and will still resolve.
func (c *Coordinator) Reset(ctx context.Context) error {
	c.mu.Lock()
	if c.phase == domain.PhaseResolved {
		c.resolved = nil
		c.phase = domain.PhaseIdle
	}
	c.mu.Unlock()

	if err := c.cache.Clear(ctx); err != nil {
		level.Error(c.logger).Log("msg", "Cache clear failed on reset", "err", err)
		return err
	}
	level.Info(c.logger).Log("msg", "Discovery state reset")
	return nil
}

// Current is a non-blocking read of the resolved pair.
func (c *Coordinator) Current() (domain.DiscoveryResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.resolved == nil {
		return domain.DiscoveryResult{}, false
	}
	return *c.resolved, true
}

// Phase reports the coordinator state.
func (c *Coordinator) Phase() domain.Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Subscribe registers a listener for discovery events and returns its
// unsubscribe func. Unsubscribing twice is harmless.
func (c *Coordinator) Subscribe(listener interfaces.DiscoveryListener) func() {
	helpers.NilPanic(listener, "service.coordinator.go: listener is required")
	c.listenerMu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = listener
	c.listenerMu.Unlock()

	return func() {
		c.listenerMu.Lock()
		delete(c.listeners, id)
		c.listenerMu.Unlock()
	}
}

// run executes one discovery attempt and publishes the result. It always
// resolves; a reset issued while it runs does not stop it, only calls made
// after the in-flight attempt settles start fresh.
//
// Called only from Discover in a separate goroutine; a.done is closed once
// a.result and the resolved state are in place.
func (c *Coordinator) run(a *attempt) {
	ctx := context.Background()

	c.publish(domain.Event{Type: domain.EventStarted})

	result, verified := c.scan(ctx)

	c.mu.Lock()
	c.resolved = &result
	c.phase = domain.PhaseResolved
	c.inflight = nil
	c.mu.Unlock()

	if verified {
		c.publish(domain.Event{Type: domain.EventCompleted, Result: &result})
	} else {
		c.publish(domain.Event{Type: domain.EventFailed, Result: &result})
	}

	// Waiters wake only after the final event is out, so a caller returning
	// from Discover never observes a stream missing its completion event.
	a.result = result
	close(a.done)
}

// scan produces the endpoint pair for one discovery cycle: override
// pre-check, then the batch scan, then fallback degradation. verified is false
// only on the fallback path.
func (c *Coordinator) scan(ctx context.Context) (result domain.DiscoveryResult, verified bool) {
	if c.cfg.Override != nil {
		if c.verifier.Verify(ctx, c.cfg.Override.APIAddress) {
			level.Info(c.logger).Log("msg", "Override endpoint verified", "api_address", c.cfg.Override.APIAddress)
			return *c.cfg.Override, true
		}
		level.Info(c.logger).Log("msg", "Override endpoint failed verification, scanning", "api_address", c.cfg.Override.APIAddress)
	}

	candidates := c.source.Generate(ctx)
	progress := func(candidate string, tested, total int) {
		c.publish(domain.Event{Type: domain.EventProgress, Candidate: candidate, Tested: tested, Total: total})
	}

	if found, ok := c.prober.FindFirst(ctx, candidates, progress); ok {
		return domain.ResultFor(found), true
	}

	fallback := c.cfg.FallbackAddresses[0]
	level.Error(c.logger).Log("msg", "No candidate verified, degrading to fallback", "fallback", fallback)
	return domain.ResultFor(fallback), false
}

// publish fans one event out to the current listeners. Listener set is copied
// under its own lock so a listener may unsubscribe from inside the callback.
func (c *Coordinator) publish(event domain.Event) {
	c.listenerMu.Lock()
	listeners := make([]interfaces.DiscoveryListener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.listenerMu.Unlock()

	for _, l := range listeners {
		l.OnDiscoveryEvent(event)
	}
}
