package myredis

import (
	"fmt"

	"github.com/go-redis/redis/v8"
)

// ConfigOption adjusts the parsed client options before the client is built
// (tests shorten dial timeouts this way).
type ConfigOption func(*redis.Options)

// NewRedisUniversalClient builds the client for the REDIS_ADDR URL. The agent
// talks to exactly one Redis, so the URL carries everything: address,
// credentials, DB number.
//
// Returns: (client, nil) on a parseable URL; (nil, error) otherwise. The
// connection itself is not checked here; cmd/discoveryd pings at startup.
func NewRedisUniversalClient(redisAddr string, options ...ConfigOption) (redis.UniversalClient, error) {
	redisOptions, err := redis.ParseURL(redisAddr)
	if err != nil {
		return nil, fmt.Errorf("cant parse redis url: %w", err)
	}
	for _, opt := range options {
		opt(redisOptions)
	}
	return redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:        []string{redisOptions.Addr},
		DB:           redisOptions.DB,
		Username:     redisOptions.Username,
		Password:     redisOptions.Password,
		WriteTimeout: redisOptions.WriteTimeout,
		ReadTimeout:  redisOptions.ReadTimeout,
		DialTimeout:  redisOptions.DialTimeout,
		MaxRetries:   redisOptions.MaxRetries,
		PoolSize:     redisOptions.PoolSize,
		PoolTimeout:  redisOptions.PoolTimeout,
	}), nil
}
