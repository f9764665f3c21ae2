// Package interfaces defines the core interfaces used throughout the module.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is the error returned by Cache.Get when a key is absent,
// expired, or has been evicted.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache defines the interface for the bounded TTL caches.
// Implementations must be safe for concurrent use on the same key, but a
// duplicate-work race between two concurrent misses is accepted: both
// callers may fetch and both may write back.
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns ErrCacheMiss if the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
