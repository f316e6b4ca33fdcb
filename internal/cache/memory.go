package cache

import (
	"sync"
	"time"

	"github.com/seoscribe/seoscribe/internal/model"
)

// ContextCache is an in-memory TTL cache for retrieved keyword contexts.
// It holds at most maxEntries items; inserting beyond that evicts the
// oldest entry by insertion time.
type ContextCache struct {
	mu         sync.Mutex
	entries    map[string]*contextEntry
	ttl        time.Duration
	maxEntries int
}

type contextEntry struct {
	value      *model.SEOContext
	insertedAt time.Time
	expiresAt  time.Time
}

// NewContextCache creates a cache with the given TTL and capacity.
func NewContextCache(ttl time.Duration, maxEntries int) *ContextCache {
	return &ContextCache{
		entries:    make(map[string]*contextEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

// Get returns the cached context for key, or nil on a miss. Expired
// entries are removed and reported as misses.
func (c *ContextCache) Get(key string) *model.SEOContext {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil
	}
	return entry.value
}

// Set stores the context under key, evicting the oldest entry if full.
func (c *ContextCache) Set(key string, value *model.SEOContext) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictOldestLocked()
	}

	c.entries[key] = &contextEntry{
		value:      value,
		insertedAt: now,
		expiresAt:  now.Add(c.ttl),
	}
}

// Len returns the number of entries currently held, including any
// not-yet-collected expired entries.
func (c *ContextCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *ContextCache) evictOldestLocked() {
	var oldestKey string
	var oldestAt time.Time

	for key, entry := range c.entries {
		if oldestKey == "" || entry.insertedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.insertedAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}
