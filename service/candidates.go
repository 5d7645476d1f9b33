package service

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/Archegon/elixir-discovery/helpers"
	"github.com/Archegon/elixir-discovery/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// quickScanHosts are the commonly-used host numbers substituted for the full
// 1–254 expansion when quick-scan mode is on: routers (.1, .2, .254) and the
// addresses installers tend to pin backends to (.10, .100).
var quickScanHosts = []int{1, 2, 10, 100, 254}

// GeneratorConfig holds the candidate generation settings. Zero values are
// not defaulted here; cmd/discoveryd.LoadConfig supplies defaults.
type GeneratorConfig struct {
	// Port the backend listens on for every generated candidate.
	Port int
	// NetworkPrefixes are /24 private-network prefixes to expand, e.g. "192.168.1".
	NetworkPrefixes []string
	// HostFirst and HostLast bound the host-number expansion (default 1 and 254).
	HostFirst int
	HostLast  int
	// QuickScan replaces the full host range with quickScanHosts per prefix.
	QuickScan bool
	// FallbackAddresses are appended last, lowest confidence.
	FallbackAddresses []string
}

// CandidateGenerator implements interfaces.CandidateSource. It builds the
// ordered scan list: loopback (two forms), the machine's own inferred address,
// prefix × host-range expansion with the observed prefix promoted to the
// front, then fallbacks. The operator override pair is not generated here; the
// coordinator probes it before asking for a scan list at all.
type CandidateGenerator struct {
	cfg      GeneratorConfig
	inferrer interfaces.AddressInferrer
	logger   log.Logger
}

// NewCandidateGenerator creates a generator. Panics on nil inferrer or logger.
//
// Parameters: cfg — generation settings; inferrer — local address source (mystun in prod, mock in tests); logger.
//
// Returns: *CandidateGenerator (satisfies interfaces.CandidateSource).
//
// Called from cmd/discoveryd when building the agent.
func NewCandidateGenerator(cfg GeneratorConfig, inferrer interfaces.AddressInferrer, logger log.Logger) *CandidateGenerator {
	return &CandidateGenerator{
		cfg:      cfg,
		inferrer: helpers.NilPanic(inferrer, "service.candidates.go: inferrer is required"),
		logger:   log.With(helpers.NilPanic(logger, "service.candidates.go: logger is required"), "component", "candidate_generator"),
	}
}

// Generate builds the ordered, de-duplicated candidate list. Never fails: a
// failed inference or an empty prefix list just shrinks the output; loopback
// and fallback addresses are always present.
//
// Parameter ctx bounds the local-address inference step only.
func (g *CandidateGenerator) Generate(ctx context.Context) []string {
	candidates := []string{
		g.address("localhost"),
		g.address("127.0.0.1"),
	}

	prefixes := append([]string(nil), g.cfg.NetworkPrefixes...)

	local, ok := g.inferrer.InferLocalAddress(ctx)
	if ok {
		candidates = append(candidates, g.address(local))
		if prefix, private := privatePrefix(local); private {
			prefixes = promote(prefixes, prefix)
			level.Info(g.logger).Log("msg", "Observed local network promoted", "prefix", prefix)
		}
	}

	for _, prefix := range prefixes {
		for _, host := range g.hostNumbers() {
			candidates = append(candidates, g.address(fmt.Sprintf("%s.%d", prefix, host)))
		}
	}

	candidates = append(candidates, g.cfg.FallbackAddresses...)

	return dedupe(candidates)
}

// address renders one candidate for the configured port.
func (g *CandidateGenerator) address(host string) string {
	return fmt.Sprintf("http://%s:%d", host, g.cfg.Port)
}

// hostNumbers returns the host-number expansion: the quick-scan set, or the
// configured inclusive range.
func (g *CandidateGenerator) hostNumbers() []int {
	if g.cfg.QuickScan {
		return quickScanHosts
	}
	hosts := make([]int, 0, g.cfg.HostLast-g.cfg.HostFirst+1)
	for h := g.cfg.HostFirst; h <= g.cfg.HostLast; h++ {
		hosts = append(hosts, h)
	}
	return hosts
}

// privatePrefix returns the /24 prefix of addr (e.g. "192.168.1") and whether
// addr is a private IPv4 address worth promoting.
func privatePrefix(addr string) (string, bool) {
	ip := net.ParseIP(addr)
	if ip == nil || ip.To4() == nil || !ip.IsPrivate() {
		return "", false
	}
	idx := strings.LastIndex(addr, ".")
	return addr[:idx], true
}

// promote moves prefix to the front of prefixes, inserting it when absent.
func promote(prefixes []string, prefix string) []string {
	out := []string{prefix}
	for _, p := range prefixes {
		if p != prefix {
			out = append(out, p)
		}
	}
	return out
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(candidates []string) []string {
	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
