package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearDiscoveryEnv blanks every setting so each test starts from defaults;
// t.Setenv restores the original values afterwards.
func clearDiscoveryEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		envHTTPPort, envBackendPort, envRequestTimeoutMs, envOverrideAPI,
		envOverrideStream, envBatchSize, envQuickScan, envStunServer,
		envInferTimeoutMs, envExpectedService, envVersionPattern,
		envHealthPath, envRedisAddr, envConfigPath,
	} {
		t.Setenv(name, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearDiscoveryEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 8787, cfg.HTTPPort)
	assert.Equal(t, 8000, cfg.BackendPort)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 20, cfg.BatchSize)
	assert.False(t, cfg.QuickScan)
	assert.Equal(t, "stun.l.google.com:19302", cfg.StunServer)
	assert.Equal(t, 3*time.Second, cfg.InferTimeout)
	assert.Equal(t, "elixir", cfg.ExpectedService)
	assert.Equal(t, "/health", cfg.HealthPath)
	assert.Nil(t, cfg.Override)
	assert.Nil(t, cfg.VersionPattern)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, []string{"192.168.1", "192.168.0", "10.0.0"}, cfg.NetworkPrefixes)
	assert.Equal(t, 1, cfg.HostFirst)
	assert.Equal(t, 254, cfg.HostLast)
	assert.Equal(t, []string{"status"}, cfg.RequiredFields)
	assert.Equal(t, []string{"http://localhost:8000", "http://192.168.1.100:8000"}, cfg.FallbackAddresses)
}

func TestLoadConfig_CustomValues(t *testing.T) {
	clearDiscoveryEnv(t)
	t.Setenv(envHTTPPort, "9090")
	t.Setenv(envBackendPort, "8001")
	t.Setenv(envRequestTimeoutMs, "500")
	t.Setenv(envBatchSize, "5")
	t.Setenv(envQuickScan, "true")
	t.Setenv(envExpectedService, "elixir-test")
	t.Setenv(envVersionPattern, `^2\.`)
	t.Setenv(envRedisAddr, "redis://localhost:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, 8001, cfg.BackendPort)
	assert.Equal(t, 500*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, 5, cfg.BatchSize)
	assert.True(t, cfg.QuickScan)
	assert.Equal(t, "elixir-test", cfg.ExpectedService)
	require.NotNil(t, cfg.VersionPattern)
	assert.True(t, cfg.VersionPattern.MatchString("2.4.1"))
	assert.False(t, cfg.VersionPattern.MatchString("1.0.0"))
	assert.Equal(t, "redis://localhost:6379", cfg.RedisAddr)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		value   string
		wantErr string
	}{
		{name: "port not a number", env: envHTTPPort, value: "not-a-number", wantErr: envHTTPPort},
		{name: "port zero", env: envHTTPPort, value: "0", wantErr: "must be 1-65535"},
		{name: "port too large", env: envHTTPPort, value: "70000", wantErr: "must be 1-65535"},
		{name: "backend port zero", env: envBackendPort, value: "0", wantErr: "must be 1-65535"},
		{name: "timeout negative", env: envRequestTimeoutMs, value: "-100", wantErr: envRequestTimeoutMs},
		{name: "timeout not a number", env: envRequestTimeoutMs, value: "soon", wantErr: envRequestTimeoutMs},
		{name: "batch size zero", env: envBatchSize, value: "0", wantErr: "must be positive"},
		{name: "version pattern invalid", env: envVersionPattern, value: "([", wantErr: envVersionPattern},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearDiscoveryEnv(t)
			t.Setenv(tt.env, tt.value)

			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_Override(t *testing.T) {
	t.Run("api and stream", func(t *testing.T) {
		clearDiscoveryEnv(t)
		t.Setenv(envOverrideAPI, "http://10.0.0.5:8000")
		t.Setenv(envOverrideStream, "ws://10.0.0.5:9000")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.NotNil(t, cfg.Override)
		assert.Equal(t, "http://10.0.0.5:8000", cfg.Override.APIAddress)
		assert.Equal(t, "ws://10.0.0.5:9000", cfg.Override.StreamAddress)
	})

	t.Run("api alone derives stream", func(t *testing.T) {
		clearDiscoveryEnv(t)
		t.Setenv(envOverrideAPI, "https://10.0.0.5:8000")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.NotNil(t, cfg.Override)
		assert.Equal(t, "wss://10.0.0.5:8000", cfg.Override.StreamAddress)
	})

	t.Run("stream alone is an error", func(t *testing.T) {
		clearDiscoveryEnv(t)
		t.Setenv(envOverrideStream, "ws://10.0.0.5:9000")

		cfg, err := LoadConfig()
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), envOverrideAPI)
	})
}

func TestLoadConfig_YAMLOverlay(t *testing.T) {
	clearDiscoveryEnv(t)

	path := filepath.Join(t.TempDir(), "discovery.yaml")
	content := `
network_prefixes:
  - "10.1.2"
host_range:
  first: 10
  last: 20
required_fields:
  - status
  - uptime
verification_paths:
  - /api/system/info
fallback_addresses:
  - "http://10.1.2.3:8000"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv(envConfigPath, path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, []string{"10.1.2"}, cfg.NetworkPrefixes)
	assert.Equal(t, 10, cfg.HostFirst)
	assert.Equal(t, 20, cfg.HostLast)
	assert.Equal(t, []string{"status", "uptime"}, cfg.RequiredFields)
	assert.Equal(t, []string{"/api/system/info"}, cfg.VerificationPaths)
	assert.Equal(t, []string{"http://10.1.2.3:8000"}, cfg.FallbackAddresses)
}

func TestLoadConfig_YAMLErrors(t *testing.T) {
	t.Run("file missing", func(t *testing.T) {
		clearDiscoveryEnv(t)
		t.Setenv(envConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))

		cfg, err := LoadConfig()
		require.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		clearDiscoveryEnv(t)
		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("network_prefixes: [unclosed"), 0o600))
		t.Setenv(envConfigPath, path)

		cfg, err := LoadConfig()
		require.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("invalid host range", func(t *testing.T) {
		clearDiscoveryEnv(t)
		path := filepath.Join(t.TempDir(), "range.yaml")
		require.NoError(t, os.WriteFile(path, []byte("host_range:\n  first: 200\n  last: 10\n"), 0o600))
		t.Setenv(envConfigPath, path)

		cfg, err := LoadConfig()
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "host range")
	})
}
