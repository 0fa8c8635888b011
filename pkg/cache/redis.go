// Package cache wraps the optional Redis connection. The shop itself
// never caches domain data; Redis only backs shared rate-limit counters
// so limits hold across replicas. Everything here degrades to a no-op
// when Redis is unreachable.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shashiranjanraj/sweetshop/config"
)

// Client is a connected Redis client, or nil when Redis is unavailable.
type Client struct {
	rdb *redis.Client
}

// Connect initialises the Redis client and verifies it with a ping.
// On failure the returned client is still usable; every method no-ops.
func Connect() (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return &Client{}, fmt.Errorf("cache: redis ping: %w", err)
	}
	return &Client{rdb: rdb}, nil
}

// Available reports whether a live Redis connection is held.
func (c *Client) Available() bool {
	return c != nil && c.rdb != nil
}

// Incr increments key and sets its expiry on first increment. Returns
// the post-increment count, or an error when Redis is unavailable.
func (c *Client) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	if !c.Available() {
		return 0, fmt.Errorf("cache: redis not connected")
	}

	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		_ = c.rdb.Expire(ctx, key, ttl).Err()
	}
	return n, nil
}

// Close releases the connection. Safe on a disconnected client.
func (c *Client) Close() error {
	if !c.Available() {
		return nil
	}
	return c.rdb.Close()
}
