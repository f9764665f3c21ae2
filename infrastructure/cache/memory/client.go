// ABOUTME: Bounded in-memory cache built on the go-cache library
// ABOUTME: Adds a maximum entry count with oldest-insertion eviction

package memory

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"feedscout/core/interfaces"
)

// Client implements the Cache interface with a hard entry bound.
// TTL expiry is handled by go-cache; the bound is enforced here by
// tracking insertion order and evicting the least-recently-inserted key
// on overflow. Expiry and eviction are independent: either one causes a
// miss on its own.
type Client struct {
	cache *gocache.Cache
	max   int

	mu    sync.Mutex
	order []string
}

// NewClient creates a bounded cache. maxEntries must be positive;
// cleanupInterval controls how often expired items are purged.
func NewClient(maxEntries int, cleanupInterval time.Duration) *Client {
	return &Client{
		cache: gocache.New(gocache.NoExpiration, cleanupInterval),
		max:   maxEntries,
	}
}

// Get retrieves a value from the cache. Absent or expired keys return
// ErrCacheMiss.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, found := c.cache.Get(key)
	if !found {
		return nil, interfaces.ErrCacheMiss
	}

	data := value.([]byte)
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// Set stores a value with the given TTL, evicting the oldest still-present
// entry when the bound is reached. Re-setting a live key refreshes its
// insertion position instead of consuming a slot.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	data := make([]byte, len(value))
	copy(data, value)

	c.mu.Lock()
	defer c.mu.Unlock()

	// Drop any previous occurrence first, live or already purged, so the
	// key holds exactly one queue slot and cannot be evicted by its own
	// stale entry.
	c.cache.Delete(key)
	c.removeFromOrder(key)

	// ItemCount includes expired items not yet cleaned up, so popping
	// the front converges the count either way.
	for len(c.order) > 0 && c.cache.ItemCount() >= c.max {
		oldest := c.order[0]
		c.order = c.order[1:]
		c.cache.Delete(oldest)
	}

	c.cache.Set(key, data, ttl)
	c.order = append(c.order, key)
	return nil
}

// Delete removes a key from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Delete(key)
	c.removeFromOrder(key)
	return nil
}

// removeFromOrder drops the first occurrence of key from the insertion
// queue. Callers must hold the mutex.
func (c *Client) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
