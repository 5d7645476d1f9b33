package handlers

import (
	"net/http"

	"github.com/Archegon/elixir-discovery/domain"
	"github.com/Archegon/elixir-discovery/interfaces"

	"github.com/go-kit/log/level"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// upgrader accepts any origin: the agent binds to the operator's machine and
// the dashboard may be served from the backend it is about to discover.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// eventBuffer bounds the per-subscriber queue; a subscriber that cannot keep
// up drops events rather than stalling the discovery goroutine.
const eventBuffer = 64

// StreamEvents (GET /v1/events) upgrades to a websocket and forwards
// discovery events (started, progress, completed, failed) as JSON until the
// peer closes. The listener subscription lives exactly as long as the socket.
func (h *HTTPServer) StreamEvents(ectx echo.Context) error {
	conn, err := upgrader.Upgrade(ectx.Response(), ectx.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	events := make(chan domain.Event, eventBuffer)
	unsubscribe := h.coordinator.Subscribe(interfaces.DiscoveryListenerFunc(func(event domain.Event) {
		select {
		case events <- event:
		default:
		}
	}))
	defer unsubscribe()

	closed := make(chan struct{})
	go func() {
		// Reads are discarded; the pump exists to observe the peer closing.
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return nil
		case event := <-events:
			if err := conn.WriteJSON(event); err != nil {
				level.Debug(h.logger).Log("msg", "Event write failed, closing stream", "err", err)
				return nil
			}
		}
	}
}
