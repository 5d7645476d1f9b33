package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Archegon/elixir-discovery/domain"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envHTTPPort          = "DISCOVERY_PORT_HTTP"
	envBackendPort       = "BACKEND_PORT"
	envRequestTimeoutMs  = "REQUEST_TIMEOUT_MS"
	envOverrideAPI       = "OVERRIDE_API_ADDRESS"
	envOverrideStream    = "OVERRIDE_STREAM_ADDRESS"
	envBatchSize         = "BATCH_SIZE"
	envQuickScan         = "QUICK_SCAN"
	envStunServer        = "STUN_SERVER"
	envInferTimeoutMs    = "INFER_TIMEOUT_MS"
	envExpectedService   = "EXPECTED_SERVICE"
	envVersionPattern    = "EXPECTED_VERSION_PATTERN"
	envHealthPath        = "HEALTH_PATH"
	envRedisAddr         = "REDIS_ADDR"
	envConfigPath        = "CONFIG_PATH"
)

// Defaults keep the agent runnable with no environment at all.
const (
	defaultHTTPPort       = 8787
	defaultBackendPort    = 8000
	defaultRequestTimeout = 2 * time.Second
	defaultBatchSize      = 20
	defaultStunServer     = "stun.l.google.com:19302"
	defaultInferTimeout   = 3 * time.Second
	defaultExpectedSvc    = "elixir"
	defaultHealthPath     = "/health"
	defaultCacheTTLMs     = 5 * 60 * 1000
	defaultHostFirst      = 1
	defaultHostLast       = 254
)

var (
	defaultNetworkPrefixes   = []string{"192.168.1", "192.168.0", "10.0.0"}
	defaultRequiredFields    = []string{"status"}
	defaultFallbackAddresses = []string{"http://localhost:8000", "http://192.168.1.100:8000"}
)

// Config holds the full agent configuration loaded by LoadConfig from
// environment variables and the optional YAML file at CONFIG_PATH.
type Config struct {
	HTTPPort          int
	BackendPort       int
	RequestTimeout    time.Duration
	Override          *domain.DiscoveryResult
	BatchSize         int
	QuickScan         bool
	StunServer        string
	InferTimeout      time.Duration
	ExpectedService   string
	IdentityField     string
	VersionField      string
	VersionPattern    *regexp.Regexp
	HealthPath        string
	RedisAddr         string
	CacheTTLMs        int
	NetworkPrefixes   []string
	HostFirst         int
	HostLast          int
	RequiredFields    []string
	VerificationPaths []string
	FallbackAddresses []string
}

// yamlConfig is the root struct for YAML unmarshalling: the list-valued
// settings that do not fit an environment variable.
type yamlConfig struct {
	NetworkPrefixes   []string      `yaml:"network_prefixes"`
	HostRange         yamlHostRange `yaml:"host_range"`
	RequiredFields    []string      `yaml:"required_fields"`
	VerificationPaths []string      `yaml:"verification_paths"`
	FallbackAddresses []string      `yaml:"fallback_addresses"`
}

// yamlHostRange bounds the per-prefix host-number expansion, inclusive.
type yamlHostRange struct {
	First int `yaml:"first"`
	Last  int `yaml:"last"`
}

// loadYAMLConfig reads the YAML file at path and unmarshals it into yamlConfig.
//
// Parameter path — absolute path to the file (LoadConfig converts CONFIG_PATH to absolute via filepath.Abs).
//
// Returns: (*yamlConfig, nil) on successful read and yaml.Unmarshal; (nil, error) on os.ReadFile or yaml.Unmarshal error.
//
// Called only from LoadConfig.
func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig builds the agent config from environment variables plus the optional YAML file at CONFIG_PATH. Every setting has a default; validation fails on malformed numbers, a port outside 1–65535, an invalid version regexp, a half-configured override pair or a host range outside 1–254.
//
// Parameters: none (source — os.Getenv and the file at CONFIG_PATH).
//
// Returns: (*Config, nil) on success; (nil, error) on any invalid setting.
//
// Called only from main at startup.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		HTTPPort:          defaultHTTPPort,
		BackendPort:       defaultBackendPort,
		RequestTimeout:    defaultRequestTimeout,
		BatchSize:         defaultBatchSize,
		StunServer:        defaultStunServer,
		InferTimeout:      defaultInferTimeout,
		ExpectedService:   defaultExpectedSvc,
		IdentityField:     "service",
		VersionField:      "version",
		HealthPath:        defaultHealthPath,
		CacheTTLMs:        defaultCacheTTLMs,
		NetworkPrefixes:   defaultNetworkPrefixes,
		HostFirst:         defaultHostFirst,
		HostLast:          defaultHostLast,
		RequiredFields:    defaultRequiredFields,
		FallbackAddresses: defaultFallbackAddresses,
	}

	var err error
	if cfg.HTTPPort, err = intEnv(envHTTPPort, cfg.HTTPPort); err != nil {
		return nil, err
	}
	if cfg.HTTPPort <= 0 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("%s must be 1-65535, got %d", envHTTPPort, cfg.HTTPPort)
	}
	if cfg.BackendPort, err = intEnv(envBackendPort, cfg.BackendPort); err != nil {
		return nil, err
	}
	if cfg.BackendPort <= 0 || cfg.BackendPort > 65535 {
		return nil, fmt.Errorf("%s must be 1-65535, got %d", envBackendPort, cfg.BackendPort)
	}
	if cfg.RequestTimeout, err = durationEnvMs(envRequestTimeoutMs, cfg.RequestTimeout); err != nil {
		return nil, err
	}
	if cfg.BatchSize, err = intEnv(envBatchSize, cfg.BatchSize); err != nil {
		return nil, err
	}
	if cfg.BatchSize < 1 {
		return nil, fmt.Errorf("%s must be positive, got %d", envBatchSize, cfg.BatchSize)
	}
	if cfg.InferTimeout, err = durationEnvMs(envInferTimeoutMs, cfg.InferTimeout); err != nil {
		return nil, err
	}

	cfg.QuickScan = boolEnv(envQuickScan)
	cfg.StunServer = strEnv(envStunServer, cfg.StunServer)
	cfg.ExpectedService = strEnv(envExpectedService, cfg.ExpectedService)
	cfg.HealthPath = strEnv(envHealthPath, cfg.HealthPath)
	cfg.RedisAddr = strings.TrimSpace(os.Getenv(envRedisAddr))

	if pattern := strings.TrimSpace(os.Getenv(envVersionPattern)); pattern != "" {
		re, reErr := regexp.Compile(pattern)
		if reErr != nil {
			return nil, fmt.Errorf("invalid %s: %w", envVersionPattern, reErr)
		}
		cfg.VersionPattern = re
	}

	overrideAPI := strings.TrimSpace(os.Getenv(envOverrideAPI))
	overrideStream := strings.TrimSpace(os.Getenv(envOverrideStream))
	switch {
	case overrideAPI != "" && overrideStream != "":
		cfg.Override = &domain.DiscoveryResult{APIAddress: overrideAPI, StreamAddress: overrideStream}
	case overrideAPI != "":
		cfg.Override = &domain.DiscoveryResult{APIAddress: overrideAPI, StreamAddress: domain.StreamAddressFor(overrideAPI)}
	case overrideStream != "":
		return nil, fmt.Errorf("%s requires %s", envOverrideStream, envOverrideAPI)
	}

	if configPath := strings.TrimSpace(os.Getenv(envConfigPath)); configPath != "" {
		if !filepath.IsAbs(configPath) {
			abs, absErr := filepath.Abs(configPath)
			if absErr != nil {
				return nil, absErr
			}
			configPath = abs
		}
		raw, loadErr := loadYAMLConfig(configPath)
		if loadErr != nil {
			return nil, fmt.Errorf("load config %s: %w", configPath, loadErr)
		}
		applyYAML(cfg, raw)
	}

	if cfg.HostFirst < 1 || cfg.HostLast > 254 || cfg.HostFirst > cfg.HostLast {
		return nil, fmt.Errorf("host range must satisfy 1 <= first <= last <= 254, got %d-%d", cfg.HostFirst, cfg.HostLast)
	}

	return cfg, nil
}

// applyYAML overlays the non-empty parts of raw onto cfg.
func applyYAML(cfg *Config, raw *yamlConfig) {
	if len(raw.NetworkPrefixes) > 0 {
		cfg.NetworkPrefixes = raw.NetworkPrefixes
	}
	if raw.HostRange.First != 0 || raw.HostRange.Last != 0 {
		cfg.HostFirst = raw.HostRange.First
		cfg.HostLast = raw.HostRange.Last
	}
	if len(raw.RequiredFields) > 0 {
		cfg.RequiredFields = raw.RequiredFields
	}
	if len(raw.VerificationPaths) > 0 {
		cfg.VerificationPaths = raw.VerificationPaths
	}
	if len(raw.FallbackAddresses) > 0 {
		cfg.FallbackAddresses = raw.FallbackAddresses
	}
}

func strEnv(name string, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}

func intEnv(name string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return n, nil
}

func durationEnvMs(name string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return fallback, nil
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		return 0, fmt.Errorf("%s must be a positive millisecond count", name)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func boolEnv(name string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	return v == "1" || v == "true" || v == "yes"
}
