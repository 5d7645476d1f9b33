package domain

// EventType identifies a coordinator lifecycle event published to subscribers.
type EventType string

const (
	// EventStarted is emitted once when a discovery attempt begins.
	EventStarted EventType = "discovery_started"
	// EventProgress is emitted per settled candidate while scanning.
	EventProgress EventType = "discovery_progress"
	// EventCompleted is emitted when a candidate verified and the endpoint pair is resolved.
	EventCompleted EventType = "discovery_completed"
	// EventFailed is emitted when the candidate list was exhausted and the
	// coordinator degraded to the fallback address. The attempt still resolves.
	EventFailed EventType = "discovery_failed"
)

// Event is one discovery lifecycle notification. Candidate/Tested/Total are
// set on progress events; Result is set on completed and failed events (for
// failed it carries the fallback pair the coordinator degraded to).
type Event struct {
	Type      EventType        `json:"type"`
	Candidate string           `json:"candidate,omitempty"`
	Tested    int              `json:"tested,omitempty"`
	Total     int              `json:"total,omitempty"`
	Result    *DiscoveryResult `json:"result,omitempty"`
}
