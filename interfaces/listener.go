package interfaces

import "github.com/Archegon/elixir-discovery/domain"

// DiscoveryListener receives coordinator lifecycle events (started, progress,
// completed, failed). Listeners must not block: the coordinator calls them
// synchronously from the discovery goroutine.
//
// Subscribed via Coordinator.Subscribe, which returns an unsubscribe func so
// consumers (the websocket handler) detach deterministically.
//
//go:generate moq -stub -out mock/listener.go -pkg mock . DiscoveryListener
type DiscoveryListener interface {
	// OnDiscoveryEvent delivers one event.
	OnDiscoveryEvent(event domain.Event)
}

// DiscoveryListenerFunc adapts a func to the DiscoveryListener interface.
type DiscoveryListenerFunc func(event domain.Event)

// OnDiscoveryEvent calls f(event).
func (f DiscoveryListenerFunc) OnDiscoveryEvent(event domain.Event) {
	f(event)
}
