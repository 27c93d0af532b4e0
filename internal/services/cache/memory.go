package cache

import (
	"context"
	"sync"
	"time"
)

const defaultTTL = 10 * time.Minute

// MemoryCache is an in-process cache bounded by entry count. It is owned by
// whoever constructs it; there is no package-level instance.
type MemoryCache struct {
	mu         sync.Mutex
	items      map[string]*cacheItem
	clock      Clock
	defaultTTL time.Duration
	maxEntries int
	seq        uint64
	stats      CacheStats
}

type cacheItem struct {
	value  []byte
	expiry time.Time
	seq    uint64
}

// MemoryOption configures a MemoryCache
type MemoryOption func(*MemoryCache)

// WithClock replaces the wall clock
func WithClock(clock Clock) MemoryOption {
	return func(mc *MemoryCache) { mc.clock = clock }
}

// NewMemoryCache creates an in-memory cache. maxEntries <= 0 means unbounded.
func NewMemoryCache(ttl time.Duration, maxEntries int, opts ...MemoryOption) *MemoryCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	mc := &MemoryCache{
		items:      make(map[string]*cacheItem),
		clock:      SystemClock{},
		defaultTTL: ttl,
		maxEntries: maxEntries,
	}
	for _, opt := range opts {
		opt(mc)
	}
	return mc
}

// Get retrieves a value from the cache
func (mc *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	item, exists := mc.items[key]
	if !exists {
		mc.stats.Misses++
		return nil, false
	}
	if !mc.clock.Now().Before(item.expiry) {
		delete(mc.items, key)
		mc.stats.Evictions++
		mc.stats.Misses++
		return nil, false
	}

	mc.stats.Hits++
	return item.value, true
}

// Set stores a value in the cache with a TTL
func (mc *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = mc.defaultTTL
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	if _, exists := mc.items[key]; !exists {
		mc.makeRoom()
	}
	mc.seq++
	mc.items[key] = &cacheItem{
		value:  value,
		expiry: mc.clock.Now().Add(ttl),
		seq:    mc.seq,
	}
	mc.stats.Sets++
	return nil
}

// Delete removes a value from the cache
func (mc *MemoryCache) Delete(ctx context.Context, key string) error {
	mc.mu.Lock()
	if _, exists := mc.items[key]; exists {
		delete(mc.items, key)
		mc.stats.Deletes++
	}
	mc.mu.Unlock()
	return nil
}

// Clear removes all values from the cache
func (mc *MemoryCache) Clear(ctx context.Context) error {
	mc.mu.Lock()
	mc.items = make(map[string]*cacheItem)
	mc.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, including expired ones not yet evicted
func (mc *MemoryCache) Len() int {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return len(mc.items)
}

// Stats returns cache statistics
func (mc *MemoryCache) Stats() CacheStats {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	stats := mc.stats
	stats.Size = int64(len(mc.items))
	stats.MaxSize = int64(mc.maxEntries)
	return stats
}

// makeRoom evicts expired entries and then the oldest insertions until a new
// entry fits. Callers hold mc.mu.
func (mc *MemoryCache) makeRoom() {
	if mc.maxEntries <= 0 || len(mc.items) < mc.maxEntries {
		return
	}

	now := mc.clock.Now()
	for key, item := range mc.items {
		if !now.Before(item.expiry) {
			delete(mc.items, key)
			mc.stats.Evictions++
		}
	}

	for len(mc.items) >= mc.maxEntries {
		var oldestKey string
		var oldest *cacheItem
		for key, item := range mc.items {
			if oldest == nil || item.seq < oldest.seq {
				oldestKey, oldest = key, item
			}
		}
		delete(mc.items, oldestKey)
		mc.stats.Evictions++
	}
}
