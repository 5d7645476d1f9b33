// Package handlers contains the http handlers the dashboard UI talks to.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/Archegon/elixir-discovery/domain"
	"github.com/Archegon/elixir-discovery/helpers"
	"github.com/Archegon/elixir-discovery/interfaces"
	"github.com/Archegon/elixir-discovery/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// HTTPServer serves the discovery agent API: resolved endpoint pair, state,
// reset and the websocket event stream.
type HTTPServer struct {
	coordinator interfaces.Coordinator
	logger      log.Logger
}

// NewHTTPServer creates a new HTTPServer. Panics on nil coordinator or logger.
func NewHTTPServer(coordinator interfaces.Coordinator, logger log.Logger) *HTTPServer {
	return &HTTPServer{
		coordinator: helpers.NilPanic(coordinator, "handlers.http.go: coordinator is required"),
		logger:      log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer"),
	}
}

// RegisterHandlers wires the agent routes on e.
func RegisterHandlers(e *echo.Echo, s *HTTPServer) {
	e.GET("/v1/endpoint", s.GetEndpoint)
	e.GET("/v1/status", s.GetStatus)
	e.POST("/v1/reset", s.Reset)
	e.GET("/v1/events", s.StreamEvents)
}

// endpointResponse is the JSON shape of GET /v1/endpoint.
type endpointResponse struct {
	APIAddress    string `json:"api_address"`
	StreamAddress string `json:"stream_address"`
}

// statusResponse is the JSON shape of GET /v1/status: phase plus the resolved
// pair when there is one.
type statusResponse struct {
	Phase  domain.Phase      `json:"phase"`
	Result *endpointResponse `json:"result,omitempty"`
}

// GetEndpoint (GET /v1/endpoint) resolves and returns the endpoint pair,
// triggering a discovery attempt when idle. Blocks until the attempt settles;
// returns 500 only when the request context is cancelled first.
func (h *HTTPServer) GetEndpoint(ectx echo.Context) error {
	ctx := ectx.Request().Context()
	result, err := h.coordinator.Discover(ctx)
	if err != nil {
		return fmt.Errorf("getEndpoint failed to resolve endpoint, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toEndpointResponse(result))
}

// GetStatus (GET /v1/status) is the non-blocking state read backing the
// dashboard's connection indicator.
func (h *HTTPServer) GetStatus(ectx echo.Context) error {
	resp := statusResponse{Phase: h.coordinator.Phase()}
	if result, ok := h.coordinator.Current(); ok {
		resp.Result = service.Ptr(toEndpointResponse(result))
	}

	return ectx.JSON(http.StatusOK, resp)
}

// Reset (POST /v1/reset) forces the coordinator back to idle and clears the
// verification cache; the dashboard's manual "retry discovery" action.
func (h *HTTPServer) Reset(ectx echo.Context) error {
	ctx := ectx.Request().Context()
	if err := h.coordinator.Reset(ctx); err != nil {
		return fmt.Errorf("reset failed to clear discovery state, err: %w", err)
	}

	return ectx.NoContent(http.StatusOK)
}

func toEndpointResponse(result domain.DiscoveryResult) endpointResponse {
	return endpointResponse{
		APIAddress:    result.APIAddress,
		StreamAddress: result.StreamAddress,
	}
}
