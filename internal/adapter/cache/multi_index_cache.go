package cache

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cacheable is implemented by cached entities which can be looked up by more
// than one identifier. A user is reachable by its id, its email and its
// handle.
type Cacheable interface {
	CacheKeys() []string
}

// MultiIndexCache keeps entities in an expirable LRU under each of their
// lookup keys. Evicting one key of an entity evicts all of its other keys, so
// a user updated through its id can never be served stale through its email.
type MultiIndexCache[V Cacheable] struct {
	entries *expirable.LRU[string, V]
	mu      sync.RWMutex
}

func NewMultiIndexCache[V Cacheable](size int, ttl time.Duration) *MultiIndexCache[V] {
	return &MultiIndexCache[V]{
		entries: expirable.NewLRU[string, V](size, nil, ttl),
	}
}

// Add indexes each entity under all of its keys.
func (c *MultiIndexCache[V]) Add(entities ...V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, entity := range entities {
		for _, key := range entity.CacheKeys() {
			c.entries.Add(key, entity)
		}
	}
}

func (c *MultiIndexCache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.entries.Get(key)
}

// Remove evicts the entities indexed by the given keys, under every key they
// are known by.
func (c *MultiIndexCache[V]) Remove(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		entity, exists := c.entries.Peek(key)
		if !exists {
			continue
		}

		for _, k := range entity.CacheKeys() {
			c.entries.Remove(k)
		}
	}
}

// Len returns the number of cached keys, not the number of entities.
func (c *MultiIndexCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.entries.Len()
}
