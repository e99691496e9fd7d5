package kv

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Client is the small key-value surface the planner needs for session state.
type Client interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Del(key string) error
}

// RedisClient wraps a go-redis client behind the Client interface.
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient wraps an existing Redis connection after verifying it.
func NewRedisClient(ctx context.Context, client *redis.Client) (*RedisClient, error) {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}
	return &RedisClient{client: client, ctx: ctx}, nil
}

// Set stores a key-value pair without expiry.
func (r *RedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a key. A missing key is returned as an empty
// string with no error, matching the planner's "nothing saved yet" reads.
func (r *RedisClient) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Del removes a key.
func (r *RedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}
