// Package cache provides the small caching primitives used by schedgo:
// a construct-once memoization map and a capacity-bounded LRU.
package cache

import "sync"

// Memo is a construct-once memoization map.
//
// Values are set at most once per key and never evicted or replaced, so
// every Get for a key observes the same instance. Safe for concurrent use.
type Memo[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

// NewMemo creates an empty Memo.
func NewMemo[K comparable, V any]() *Memo[K, V] {
	return &Memo[K, V]{m: make(map[K]V)}
}

// Get returns the memoized value for key. ok=false if missing.
func (c *Memo[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[key]
	return v, ok
}

// Set memoizes the value for key and returns it.
//
// If the key was already set by a concurrent caller, the existing value
// wins and is returned instead; the map never replaces an entry.
func (c *Memo[K, V]) Set(key K, value V) V {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.m[key]; ok {
		return existing
	}
	c.m[key] = value
	return value
}

// Len returns the number of memoized entries.
func (c *Memo[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
