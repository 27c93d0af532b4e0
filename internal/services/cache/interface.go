package cache

import (
	"context"
	"time"
)

// Cache stores serialized search results with a per-entry TTL
type Cache interface {
	// Get retrieves a value; expired or missing keys report false
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a value with a TTL. A non-positive ttl uses the cache default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	// Clear removes all values owned by this cache
	Clear(ctx context.Context) error
}

// Clock supplies the current time. Tests inject a fake to control expiry.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock
type SystemClock struct{}

// Now returns time.Now
func (SystemClock) Now() time.Time { return time.Now() }

// CacheStats provides statistics about cache usage
type CacheStats struct {
	Hits      int64
	Misses    int64
	Sets      int64
	Deletes   int64
	Evictions int64
	Size      int64
	MaxSize   int64
}

// StatsProvider interface for caches that provide statistics
type StatsProvider interface {
	Stats() CacheStats
}
