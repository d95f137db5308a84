package cards

import (
	"sync"
	"time"
)

// Cache provides in-memory caching of fetched set card lists.
type Cache struct {
	mu       sync.RWMutex
	sets     map[string]*cacheEntry
	maxSize  int
	ttl      time.Duration
	eviction []string
}

// cacheEntry represents a cached set with expiration.
type cacheEntry struct {
	data      []*CardData
	expiresAt time.Time
}

// NewCache creates a cache holding up to maxSize sets for ttl each.
func NewCache(maxSize int, ttl time.Duration) *Cache {
	return &Cache{
		sets:     make(map[string]*cacheEntry, maxSize),
		maxSize:  maxSize,
		ttl:      ttl,
		eviction: make([]string, 0, maxSize),
	}
}

// Get retrieves a set from the cache, or nil on miss or expiry.
func (c *Cache) Get(setCode string) []*CardData {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.sets[setCode]
	if !exists {
		return nil
	}
	if time.Now().After(entry.expiresAt) {
		return nil
	}
	return entry.data
}

// Set adds a set to the cache, evicting the oldest entry when full.
// Refreshing an existing key keeps its eviction position.
func (c *Cache) Set(setCode string, data []*CardData) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := &cacheEntry{
		data:      data,
		expiresAt: time.Now().Add(c.ttl),
	}

	if _, exists := c.sets[setCode]; exists {
		c.sets[setCode] = entry
		return
	}

	if len(c.sets) >= c.maxSize {
		c.evictOldest()
	}
	c.sets[setCode] = entry
	c.eviction = append(c.eviction, setCode)
}

func (c *Cache) evictOldest() {
	if len(c.eviction) == 0 {
		return
	}
	oldest := c.eviction[0]
	delete(c.sets, oldest)
	c.eviction = c.eviction[1:]
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets = make(map[string]*cacheEntry, c.maxSize)
	c.eviction = make([]string, 0, c.maxSize)
}

// Size returns the current number of cached sets.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sets)
}
