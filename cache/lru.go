// Package cache provides a size bounded least recently used cache.
package cache

import (
	"container/list"
	"sync"
)

// Limits bounds cache size. MaxItems <= 0 disables caching.
type Limits struct {
	MaxItems int `yaml:"max_items" validate:"gte=0"`
}

type item[V any] struct {
	key   string
	value V
}

// LRU is safe for concurrent use. Nil LRU behaves as disabled cache.
type LRU[V any] struct {
	mu    sync.Mutex
	max   int
	items map[string]*list.Element
	order *list.List // front is most recently used
}

func New[V any](limits Limits) *LRU[V] {
	return &LRU[V]{
		max:   limits.MaxItems,
		items: make(map[string]*list.Element),
		order: list.New(),
	}
}

// Get returns cached value and marks key as most recently used.
func (c *LRU[V]) Get(key string) (V, bool) {
	var zero V
	if c == nil || c.max <= 0 {
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return zero, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*item[V]).value, true
}

// Set inserts or updates value under key. When new key is added to a full
// cache least recently used entry is evicted first.
func (c *LRU[V]) Set(key string, value V) {
	if c == nil || c.max <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*item[V]).value = value
		c.order.MoveToFront(el)
		return
	}

	for c.order.Len() >= c.max {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*item[V]).key)
	}
	c.items[key] = c.order.PushFront(&item[V]{key: key, value: value})
}

// Len returns number of cached entries.
func (c *LRU[V]) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
