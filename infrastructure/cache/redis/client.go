// ABOUTME: Redis cache implementation using the go-redis client
// ABOUTME: Alternative Cache backend for multi-process deployments

package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"feedscout/core/interfaces"
	"feedscout/pkg/config"
)

// Client implements the Cache interface using Redis. TTL expiry is
// enforced by Redis itself; the entry bound of the in-memory backend is
// delegated to the server's maxmemory eviction policy.
type Client struct {
	client *redis.Client
}

// NewClient creates a new Redis cache instance
func NewClient(cfg config.RedisConfig) (*Client, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Client{
		client: client,
	}, nil
}

// Get retrieves a value from Redis
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, interfaces.ErrCacheMiss
		}
		return nil, err
	}

	return val, nil
}

// Set stores a value in Redis with the given TTL
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis. Deleting a non-existent key is not an
// error.
func (c *Client) Delete(ctx context.Context, key string) error {
	c.client.Del(ctx, key)
	return nil
}
