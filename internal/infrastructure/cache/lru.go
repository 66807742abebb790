// Package cache holds in-memory caches used by the thumbnail pipeline.
package cache

import (
	"container/list"
	"sync"
)

// Stats counts cache traffic since creation or the last Clear.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// LRU is a bounded, concurrency-safe least-recently-used cache.
// It implements port.Cache[K, V].
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*list.Element
	order    *list.List // front is most recent
	stats    Stats
	onEvict  func(K, V)
}

type slot[K comparable, V any] struct {
	key   K
	value V
}

// Option configures an LRU.
type Option[K comparable, V any] func(*LRU[K, V])

// WithEvictHook registers fn to run, outside the lock, for every entry
// pushed out by capacity.
func WithEvictHook[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *LRU[K, V]) { c.onEvict = fn }
}

// NewLRU creates a cache holding at most capacity entries (minimum 1).
func NewLRU[K comparable, V any](capacity int, opts ...Option[K, V]) *LRU[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	c := &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached value and marks it recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		var zero V
		return zero, false
	}
	c.stats.Hits++
	c.order.MoveToFront(el)
	return el.Value.(*slot[K, V]).value, true
}

// Set stores value under key, evicting the least recently used entry when full.
func (c *LRU[K, V]) Set(key K, value V) {
	evicted, ok := c.set(key, value)
	if ok && c.onEvict != nil {
		c.onEvict(evicted.key, evicted.value)
	}
}

func (c *LRU[K, V]) set(key K, value V) (slot[K, V], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*slot[K, V]).value = value
		c.order.MoveToFront(el)
		return slot[K, V]{}, false
	}

	var evicted slot[K, V]
	var didEvict bool
	if c.order.Len() >= c.capacity {
		if back := c.order.Back(); back != nil {
			evicted = *c.order.Remove(back).(*slot[K, V])
			delete(c.items, evicted.key)
			c.stats.Evictions++
			didEvict = true
		}
	}

	c.items[key] = c.order.PushFront(&slot[K, V]{key: key, value: value})
	return evicted, didEvict
}

// Remove drops key if present.
func (c *LRU[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.Remove(el)
		delete(c.items, key)
	}
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int { return c.capacity }

// Stats returns a copy of the traffic counters.
func (c *LRU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Clear drops every entry and resets the counters. The evict hook is not called.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*list.Element, c.capacity)
	c.order.Init()
	c.stats = Stats{}
}
