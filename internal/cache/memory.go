package cache

import (
	"sync"
	"time"

	"github.com/searchbridge/search-proxy/internal/metrics"
)

const (
	defaultCapacity = 100
	defaultTTL      = time.Hour
)

// memoryEntry holds a cached translation with its expiry.
type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is a thread-safe, bounded in-memory cache with TTL expiry.
//
// Eviction is strictly insertion-ordered (FIFO): when the cache is full, the
// earliest-inserted resident entry is evicted. Reads do not reorder entries,
// and overwriting an existing key refreshes its expiry but keeps its original
// insertion slot. Expired entries are purged lazily on access; there is no
// background sweep.
type MemoryCache struct {
	mu       sync.Mutex
	entries  map[string]memoryEntry
	order    []string
	capacity int
	ttl      time.Duration
}

// NewMemoryCache creates a new in-memory cache with the given capacity and
// TTL. Non-positive values fall back to safe defaults.
func NewMemoryCache(capacity int, ttl time.Duration) *MemoryCache {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &MemoryCache{
		entries:  make(map[string]memoryEntry, capacity),
		order:    make([]string, 0, capacity),
		capacity: capacity,
		ttl:      ttl,
	}
}

// Get retrieves a live translation for the given source text.
// An expired entry is deleted as a side effect and reported as a miss.
func (c *MemoryCache) Get(sourceText string) (string, bool) {
	key := Normalize(sourceText)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		metrics.RecordCacheOperation("get", "miss")
		return "", false
	}

	if time.Now().After(entry.expiresAt) {
		c.remove(key)
		metrics.RecordCacheOperation("get", "expired")
		return "", false
	}

	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Set stores a translation. When the cache is at capacity and the key is new,
// the earliest-inserted resident entry is evicted first.
func (c *MemoryCache) Set(sourceText, translated string) error {
	key := Normalize(sourceText)
	expiresAt := time.Now().Add(c.ttl)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		// Refresh the value and expiry; the insertion slot is kept.
		c.entries[key] = memoryEntry{value: translated, expiresAt: expiresAt}
		metrics.RecordCacheOperation("set", "refresh")
		return nil
	}

	if len(c.entries) >= c.capacity {
		c.remove(c.order[0])
		metrics.RecordCacheOperation("evict", "capacity")
	}

	c.entries[key] = memoryEntry{value: translated, expiresAt: expiresAt}
	c.order = append(c.order, key)
	metrics.RecordCacheOperation("set", "success")
	metrics.UpdateCacheSize(len(c.entries))
	return nil
}

// Clear removes all entries from the cache.
func (c *MemoryCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]memoryEntry, c.capacity)
	c.order = c.order[:0]
	metrics.RecordCacheOperation("clear", "success")
	metrics.UpdateCacheSize(0)
	return nil
}

// Len returns the number of resident entries, including not-yet-purged
// expired ones.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// remove deletes a key from the map and its insertion-order slot.
// Caller must hold the lock.
func (c *MemoryCache) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

var _ TranslationCache = (*MemoryCache)(nil)
