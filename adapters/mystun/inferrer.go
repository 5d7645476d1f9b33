// Package mystun infers the machine's private network address by negotiating
// against a public rendezvous (STUN) server. Only the locally-assigned source
// address of the negotiation socket is of interest; the exchange is torn down
// as soon as it settles. No elevated OS privileges are needed, which is the
// point: direct interface enumeration is kept out of the primary path and
// used only as a silent fallback.
package mystun

import (
	"context"
	"net"
	"time"

	"github.com/Archegon/elixir-discovery/helpers"
	"github.com/Archegon/elixir-discovery/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pion/stun"
)

// Config holds the inferrer settings.
type Config struct {
	// Server is the rendezvous server, host:port (e.g. stun.l.google.com:19302).
	Server string
	// Timeout bounds the whole inference including the binding exchange.
	Timeout time.Duration
}

// NewInferrer creates an interfaces.AddressInferrer backed by a STUN binding exchange with a UDP-dial fallback. Panics on empty server; a non-positive timeout defaults to three seconds.
//
// Parameters: cfg — rendezvous server and timeout; logger.
//
// Returns: interfaces.AddressInferrer (*inferrer).
//
// Called from cmd/discoveryd when building the agent.
func NewInferrer(cfg Config, logger log.Logger) interfaces.AddressInferrer {
	helpers.StrPanic(cfg.Server, "adapters.mystun.inferrer.go: stun server is required")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}
	return &inferrer{
		cfg:    cfg,
		logger: log.With(helpers.NilPanic(logger, "adapters.mystun.inferrer.go: logger is required"), "component", "inferrer"),
	}
}

// inferrer implements interfaces.AddressInferrer. Every failure collapses to
// ("", false); inference only informs candidate prioritization, never gates
// discovery.
type inferrer struct {
	cfg    Config
	logger log.Logger
}

// InferLocalAddress tries the binding exchange first, then the unconnected
// UDP dial. Both observe the same thing: the source address the OS assigns
// for traffic toward the rendezvous server. Loopback, link-local and IPv6
// results are rejected.
func (i *inferrer) InferLocalAddress(ctx context.Context) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, i.cfg.Timeout)
	defer cancel()

	if addr, ok := i.bindingAddr(ctx); ok {
		return addr, true
	}
	return i.dialAddr()
}

// bindingAddr runs one STUN binding request and, when the server answers
// within the deadline, reports the negotiation socket's local address.
func (i *inferrer) bindingAddr(ctx context.Context) (string, bool) {
	conn, err := net.Dial("udp4", i.cfg.Server)
	if err != nil {
		level.Debug(i.logger).Log("msg", "Rendezvous dial failed", "server", i.cfg.Server, "err", err)
		return "", false
	}

	client, err := stun.NewClient(conn)
	if err != nil {
		_ = conn.Close()
		return "", false
	}
	defer client.Close()

	settled := make(chan error, 1)
	if err := client.Start(stun.MustBuild(stun.TransactionID, stun.BindingRequest), func(event stun.Event) {
		settled <- event.Error
	}); err != nil {
		return "", false
	}

	select {
	case <-ctx.Done():
		level.Debug(i.logger).Log("msg", "Binding exchange timed out", "server", i.cfg.Server)
		return "", false
	case err := <-settled:
		if err != nil {
			level.Debug(i.logger).Log("msg", "Binding exchange failed", "err", err)
			return "", false
		}
	}

	return usableAddr(conn.LocalAddr())
}

// dialAddr is the fallback: an unconnected UDP dial toward the rendezvous
// server assigns a local source address without sending a single packet.
func (i *inferrer) dialAddr() (string, bool) {
	conn, err := net.Dial("udp4", i.cfg.Server)
	if err != nil {
		return "", false
	}
	defer conn.Close()
	return usableAddr(conn.LocalAddr())
}

// usableAddr extracts a non-loopback, non-link-local IPv4 address from a
// socket address.
func usableAddr(addr net.Addr) (string, bool) {
	udp, ok := addr.(*net.UDPAddr)
	if !ok || udp.IP == nil {
		return "", false
	}
	ip := udp.IP.To4()
	if ip == nil || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsUnspecified() {
		return "", false
	}
	return ip.String(), true
}
