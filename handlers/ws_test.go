package handlers

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Archegon/elixir-discovery/domain"
	"github.com/Archegon/elixir-discovery/interfaces"
	"github.com/Archegon/elixir-discovery/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// publisher captures websocket subscribers the way the coordinator does, so
// tests can push events into a live stream.
type publisher struct {
	mu        sync.Mutex
	listeners []interfaces.DiscoveryListener
	dropped   int
}

func (p *publisher) subscribe(listener interfaces.DiscoveryListener) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, listener)
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.dropped++
	}
}

func (p *publisher) publish(event domain.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, l := range p.listeners {
		l.OnDiscoveryEvent(event)
	}
}

func (p *publisher) subscriberCount(t *testing.T) int {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.listeners) - p.dropped
}

func newEventServer(t *testing.T) (*httptest.Server, *publisher) {
	t.Helper()
	pub := &publisher{}
	coordinator := &mock.CoordinatorMock{SubscribeFunc: pub.subscribe}

	e := echo.New()
	RegisterHandlers(e, NewHTTPServer(coordinator, log.NewNopLogger()))
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv, pub
}

func dialEvents(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/events"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestStreamEvents_ForwardsEventsAsJSON(t *testing.T) {
	srv, pub := newEventServer(t)
	conn := dialEvents(t, srv)

	// The subscription is installed during the upgrade handshake; wait for it
	// before publishing.
	require.Eventually(t, func() bool {
		return pub.subscriberCount(t) == 1
	}, time.Second, 5*time.Millisecond)

	pub.publish(domain.Event{Type: domain.EventStarted, Total: 3})
	pub.publish(domain.Event{Type: domain.EventProgress, Candidate: "http://192.168.1.5:8000", Tested: 1, Total: 3})
	result := domain.ResultFor("http://192.168.1.5:8000")
	pub.publish(domain.Event{Type: domain.EventCompleted, Result: &result})

	conn.SetReadDeadline(time.Now().Add(time.Second))

	var started domain.Event
	require.NoError(t, conn.ReadJSON(&started))
	assert.Equal(t, domain.EventStarted, started.Type)
	assert.Equal(t, 3, started.Total)

	var progress domain.Event
	require.NoError(t, conn.ReadJSON(&progress))
	assert.Equal(t, domain.EventProgress, progress.Type)
	assert.Equal(t, "http://192.168.1.5:8000", progress.Candidate)
	assert.Equal(t, 1, progress.Tested)

	var completed domain.Event
	require.NoError(t, conn.ReadJSON(&completed))
	assert.Equal(t, domain.EventCompleted, completed.Type)
	require.NotNil(t, completed.Result)
	assert.Equal(t, "ws://192.168.1.5:8000", completed.Result.StreamAddress)
}

func TestStreamEvents_UnsubscribesOnClose(t *testing.T) {
	srv, pub := newEventServer(t)
	conn := dialEvents(t, srv)

	require.Eventually(t, func() bool {
		return pub.subscriberCount(t) == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return pub.subscriberCount(t) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestStreamEvents_SupportsMultipleSubscribers(t *testing.T) {
	srv, pub := newEventServer(t)
	first := dialEvents(t, srv)
	second := dialEvents(t, srv)

	require.Eventually(t, func() bool {
		return pub.subscriberCount(t) == 2
	}, time.Second, 5*time.Millisecond)

	pub.publish(domain.Event{Type: domain.EventStarted, Total: 1})

	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(time.Second))
		var event domain.Event
		require.NoError(t, conn.ReadJSON(&event))
		assert.Equal(t, domain.EventStarted, event.Type)
	}
}

func TestStreamEvents_RejectsPlainHTTP(t *testing.T) {
	srv, _ := newEventServer(t)

	resp, err := srv.Client().Get(srv.URL + "/v1/events")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 400, resp.StatusCode)
}
