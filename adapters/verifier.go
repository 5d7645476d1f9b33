package adapters

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/Archegon/elixir-discovery/domain"
	"github.com/Archegon/elixir-discovery/helpers"
	"github.com/Archegon/elixir-discovery/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// VerifyConfig holds the service-identity contract a candidate must satisfy.
type VerifyConfig struct {
	// HealthPath is the primary check path, e.g. "/health".
	HealthPath string
	// Timeout bounds every individual request (primary and secondary).
	Timeout time.Duration
	// IdentityField names the JSON field carrying the service identity.
	IdentityField string
	// ExpectedService must appear in the identity field, case-insensitive.
	ExpectedService string
	// VersionField names the JSON version field; checked only when
	// VersionPattern is set, in which case an absent field fails.
	VersionField string
	// VersionPattern, when non-nil, must match the version field.
	VersionPattern *regexp.Regexp
	// RequiredFields must all be present in the health response body.
	RequiredFields []string
	// VerificationPaths are secondary paths probed after the primary check;
	// any non-success response fails the candidate.
	VerificationPaths []string
	// CacheTTLMs is the lifetime of recorded outcomes.
	CacheTTLMs int
}

// VerifierHTTP creates an interfaces.Verifier that grades candidates over HTTP: GET candidate+HealthPath, JSON identity/version/field checks, then the secondary paths. Outcomes are read from and written to the cache so a candidate is probed at most once per TTL window. Panics on empty paths/fields, nil client, cache, timeProvider or logger.
//
// Parameters: cfg — identity contract; client — HTTP client shared across probes (per-request deadlines come from cfg.Timeout, not the client); cache — verification outcome store; timeProvider — stamps CheckedAt; logger.
//
// Returns: interfaces.Verifier (*verifierHTTP).
//
// Called from cmd/discoveryd when building the agent.
func VerifierHTTP(
	cfg VerifyConfig,
	client *http.Client,
	cache interfaces.Cache[domain.CacheEntry],
	timeProvider interfaces.TimeProvider,
	logger log.Logger,
) interfaces.Verifier {
	helpers.StrPanic(cfg.HealthPath, "adapters.verifier.go: health path is required")
	helpers.StrPanic(cfg.IdentityField, "adapters.verifier.go: identity field is required")
	helpers.StrPanic(cfg.ExpectedService, "adapters.verifier.go: expected service is required")
	return &verifierHTTP{
		cfg:          cfg,
		client:       helpers.NilPanic(client, "adapters.verifier.go: http client is required"),
		cache:        helpers.NilPanic(cache, "adapters.verifier.go: cache is required"),
		timeProvider: helpers.NilPanic(timeProvider, "adapters.verifier.go: time provider is required"),
		logger:       log.With(helpers.NilPanic(logger, "adapters.verifier.go: logger is required"), "component", "verifier"),
	}
}

// verifierHTTP implements interfaces.Verifier. All failure modes collapse to
// false so an unrelated service on the port is indistinguishable from no
// service; the reason is logged at debug level only.
type verifierHTTP struct {
	cfg          VerifyConfig
	client       *http.Client
	cache        interfaces.Cache[domain.CacheEntry]
	timeProvider interfaces.TimeProvider
	logger       log.Logger
}

// Verify returns the cached outcome when a fresh entry exists; otherwise it
// runs the checks and records the outcome, success or failure, so a flapping
// or slow endpoint is not re-probed every cycle within the TTL window.
func (v *verifierHTTP) Verify(ctx context.Context, candidate string) bool {
	if entry, err := v.cache.ReadValue(ctx, candidate); err == nil {
		return entry.Valid
	}

	ok := v.check(ctx, candidate)

	entry := domain.CacheEntry{Valid: ok, CheckedAt: v.timeProvider.Now()}
	if err := v.cache.WriteValue(ctx, candidate, entry, v.cfg.CacheTTLMs); err != nil {
		level.Error(v.logger).Log("msg", "Cache write failed", "candidate", candidate, "err", err)
	}
	return ok
}

// check runs the full contract against one candidate: primary health check,
// identity substring, version pattern, required fields, secondary paths.
func (v *verifierHTTP) check(ctx context.Context, candidate string) bool {
	body, ok := v.fetch(ctx, candidate+v.cfg.HealthPath)
	if !ok {
		return v.fail(candidate, "health request failed")
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return v.fail(candidate, "malformed health body")
	}

	identity, _ := payload[v.cfg.IdentityField].(string)
	if !strings.Contains(strings.ToLower(identity), strings.ToLower(v.cfg.ExpectedService)) {
		return v.fail(candidate, "identity mismatch")
	}

	if v.cfg.VersionPattern != nil {
		version, present := payload[v.cfg.VersionField].(string)
		if !present || !v.cfg.VersionPattern.MatchString(version) {
			return v.fail(candidate, "version mismatch")
		}
	}

	for _, field := range v.cfg.RequiredFields {
		if _, present := payload[field]; !present {
			return v.fail(candidate, "required field missing")
		}
	}

	for _, path := range v.cfg.VerificationPaths {
		if _, ok := v.fetch(ctx, candidate+path); !ok {
			return v.fail(candidate, "secondary check failed")
		}
	}

	return true
}

// fetch performs one bounded-timeout GET and returns the body on a 2xx
// response. The parent ctx still applies, so a cancelled discovery run does
// not keep probing.
func (v *verifierHTTP) fetch(ctx context.Context, url string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(ctx, v.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, false
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false
	}
	return body, true
}

// fail logs the rejection reason and returns false. The reason never reaches
// the caller: not-our-backend and no-backend must look the same.
func (v *verifierHTTP) fail(candidate string, reason string) bool {
	level.Debug(v.logger).Log("msg", "Candidate rejected", "candidate", candidate, "reason", reason)
	return false
}
