// Package myredis is the shared implementation of the generic cache
// interface, for facilities running several dashboard agents: one agent's
// scan outcomes prime its peers through Redis, and Redis-native expiry
// replaces the read-time staleness check.
package myredis

import (
	"context"
	"fmt"
	"time"

	"github.com/Archegon/elixir-discovery/service"

	"github.com/go-redis/redis/v8"
)

type redisCache[T any] struct {
	client    redis.UniversalClient
	prefix    string
	marshal   func(T) ([]byte, error)
	unmarshal func([]byte) (T, error)
	zero      T
}

// NewCache creates redis implementation of generic cache interface.
func NewCache[T any](client redis.UniversalClient, prefix string, marshal func(T) ([]byte, error), unmarshal func([]byte) (T, error)) *redisCache[T] {
	var zero T
	return &redisCache[T]{
		client:    client,
		prefix:    prefix,
		zero:      zero,
		marshal:   marshal,
		unmarshal: unmarshal,
	}
}

func (r *redisCache[T]) WriteValue(ctx context.Context, key string, item T, ttlMs int) error {
	bytes, err := r.marshal(item)
	if err != nil {
		return service.NewInternalServerError("Redis marshal item error", fmt.Errorf("can't marshal item of type %T, err: %w", item, err))
	}

	err = r.client.Set(ctx, r.generateKey(key), bytes, time.Duration(ttlMs)*time.Millisecond).Err()
	if err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("can't write item of type %T to redis (key='%s'), err: %w", item, key, err))
	}

	return nil
}

// ReadValue fetches one key; an expired entry is already gone on the Redis
// side, so redis.Nil maps straight to entity_not_found.
func (r *redisCache[T]) ReadValue(ctx context.Context, key string) (T, error) {
	bytes, err := r.client.Get(ctx, r.generateKey(key)).Bytes()
	if err == redis.Nil {
		return r.zero, service.NewEntityNotFoundError("Entity not found", nil)
	}
	if err != nil {
		return r.zero, service.NewInternalServerError("Redis read key error", fmt.Errorf("can't read item of type %T from redis (key='%s'), err: %w", r.zero, key, err))
	}

	item, err := r.unmarshal(bytes)
	if err != nil {
		return r.zero, service.NewInternalServerError("Redis unmarshal item error", fmt.Errorf("can't unmarshal item of type %T (key='%s'), err: %w", r.zero, key, err))
	}

	return item, nil
}

// Clear deletes every key under the cache prefix.
func (r *redisCache[T]) Clear(ctx context.Context) error {
	fullKeys, err := r.client.Keys(ctx, r.prefix+":*").Result()
	if err != nil {
		return service.NewInternalServerError("Redis get keys error", fmt.Errorf("redis get keys error, err: %w", err))
	}
	if len(fullKeys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, fullKeys...).Err(); err != nil {
		return service.NewInternalServerError("Redis delete keys error", fmt.Errorf("can't clear items of type %T from redis, err: %w", r.zero, err))
	}
	return nil
}

func (r *redisCache[T]) generateKey(key string) string {
	return r.prefix + ":" + key
}
