package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Archegon/elixir-discovery/adapters"
	"github.com/Archegon/elixir-discovery/adapters/memcache"
	"github.com/Archegon/elixir-discovery/adapters/myredis"
	"github.com/Archegon/elixir-discovery/adapters/mystun"
	"github.com/Archegon/elixir-discovery/domain"
	"github.com/Archegon/elixir-discovery/handlers"
	"github.com/Archegon/elixir-discovery/interfaces"
	"github.com/Archegon/elixir-discovery/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting discovery agent")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"discovery_port_http", config.HTTPPort,
		"backend_port", config.BackendPort,
		"batch_size", config.BatchSize,
		"quick_scan", config.QuickScan,
	)

	timeProvider := service.NewTimeProvider(func() time.Time { return time.Now().UTC() })

	// Verification cache: Redis when configured (shared across agents),
	// in-process otherwise.
	var cache interfaces.Cache[domain.CacheEntry]
	if config.RedisAddr != "" {
		redisClient, err := myredis.NewRedisUniversalClient(config.RedisAddr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis")

		marshal := func(e domain.CacheEntry) ([]byte, error) { return json.Marshal(e) }
		unmarshal := func(b []byte) (domain.CacheEntry, error) {
			var e domain.CacheEntry
			err := json.Unmarshal(b, &e)
			return e, err
		}
		cache = myredis.NewCache[domain.CacheEntry](redisClient, "probe", marshal, unmarshal)
	} else {
		cache = memcache.NewCache[domain.CacheEntry](timeProvider)
	}

	// Create verifier
	var verifier interfaces.Verifier
	{
		verifier = adapters.VerifierHTTP(adapters.VerifyConfig{
			HealthPath:        config.HealthPath,
			Timeout:           config.RequestTimeout,
			IdentityField:     config.IdentityField,
			ExpectedService:   config.ExpectedService,
			VersionField:      config.VersionField,
			VersionPattern:    config.VersionPattern,
			RequiredFields:    config.RequiredFields,
			VerificationPaths: config.VerificationPaths,
			CacheTTLMs:        config.CacheTTLMs,
		}, &http.Client{}, cache, timeProvider, logger)
	}

	// Create candidate generator
	var source interfaces.CandidateSource
	{
		inferrer := mystun.NewInferrer(mystun.Config{
			Server:  config.StunServer,
			Timeout: config.InferTimeout,
		}, logger)
		source = service.NewCandidateGenerator(service.GeneratorConfig{
			Port:              config.BackendPort,
			NetworkPrefixes:   config.NetworkPrefixes,
			HostFirst:         config.HostFirst,
			HostLast:          config.HostLast,
			QuickScan:         config.QuickScan,
			FallbackAddresses: config.FallbackAddresses,
		}, inferrer, logger)
	}

	// Create coordinator
	var coordinator interfaces.Coordinator
	{
		prober := service.NewProber(verifier, config.BatchSize, logger)
		coordinator = service.NewCoordinator(service.CoordinatorConfig{
			Override:          config.Override,
			FallbackAddresses: config.FallbackAddresses,
		}, source, prober, verifier, cache, logger)
	}

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		e = echo.New()
		e.HideBanner = true
		service.RegisterErrorHandler(e, logger)
		handlers.RegisterHandlers(e, handlers.NewHTTPServer(coordinator, logger))
	}

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	// Resolve eagerly so the first dashboard call is served from memory.
	go func() {
		if result, err := coordinator.Discover(context.Background()); err == nil {
			level.Info(logger).Log("msg", "Endpoint resolved", "api_address", result.APIAddress, "stream_address", result.StreamAddress)
		}
	}()

	// Wait for interrupt signal
	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}
