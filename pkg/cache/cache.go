package cache

import (
	"sync"
	"time"
)

// Clock returns the current time. Injected so tests can control expiry.
type Clock func() time.Time

type entry struct {
	value     string
	expiresAt time.Time
}

// Cache is a bounded in-memory string cache with TTL expiry and
// insertion-order (FIFO) eviction. It is best-effort: concurrent misses
// for the same key may each populate it independently.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]entry
	order    []string
	capacity int
	ttl      time.Duration
	clock    Clock
}

func New(capacity int, ttl time.Duration, clock Clock) *Cache {
	if clock == nil {
		clock = time.Now
	}
	return &Cache{
		entries:  make(map[string]entry),
		capacity: capacity,
		ttl:      ttl,
		clock:    clock,
	}
}

func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.clock().After(e.expiresAt) {
		c.remove(key)
		return "", false
	}
	return e.value, true
}

func (c *Cache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		c.order = append(c.order, key)
	}
	c.entries[key] = entry{value: value, expiresAt: c.clock().Add(c.ttl)}

	// Evict the oldest inserted entry once over capacity. FIFO, not LRU:
	// reads never refresh an entry's position.
	if len(c.entries) > c.capacity {
		c.remove(c.order[0])
	}
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// remove assumes c.mu is held.
func (c *Cache) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
