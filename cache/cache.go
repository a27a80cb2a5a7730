// Package cache provides a bounded, time-expiring memo cache for repeated
// provider lookups. Entries are evicted oldest-inserted-first when the cache
// is full; expiry is checked lazily on access, there is no background sweep.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value      any
	insertedAt time.Time
}

// Cache is a capacity-bounded store with per-instance TTL. It is safe for
// concurrent use.
type Cache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[string]*entry
	order    []string // insertion order, oldest first
	now      func() time.Time
}

// New returns a cache holding at most capacity entries, each valid for ttl
// after insertion. A non-positive capacity is pinned to 1.
func New(capacity int, ttl time.Duration) *Cache {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]*entry, capacity),
		now:      time.Now,
	}
}

// Get returns the cached value for key. An entry past its TTL is removed and
// reported as a miss.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.insertedAt) > c.ttl {
		c.remove(key)
		return nil, false
	}
	return e.value, true
}

// Set inserts or overwrites the value for key. When the cache is at capacity
// the single oldest-inserted entry is evicted first. Overwriting an existing
// key refreshes its timestamp but keeps its insertion position.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		e.insertedAt = c.now()
		return
	}
	if len(c.entries) >= c.capacity {
		c.remove(c.order[0])
	}
	c.entries[key] = &entry{value: value, insertedAt: c.now()}
	c.order = append(c.order, key)
}

// Len reports the number of entries currently held, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry, c.capacity)
	c.order = c.order[:0]
}

// remove deletes key from the map and the order slice. Caller holds the lock.
func (c *Cache) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
