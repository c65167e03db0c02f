package pooled

import (
	"sync"
)

// Cache is an in-memory cache. Implementations decide the eviction policy.
type Cache[K any, V any] interface {
	// Put adds the given key and value to the Cache, possibly evicting another key.
	Put(K, V)
	// Get returns the value associated with the given key, or false in the second return if the key
	// is not resident.
	Get(K) (V, bool)
	// Forget removes the given key from the cache.
	Forget(K)
}

// LRU is a least-recently-used eviction policy cache. It has a defined size in number of items. If
// the LRU is full when putting an item, the key that was least recently Get or Put is evicted to
// make space.
//
// Recency is kept in a List whose nodes are recycled, so once the LRU is full, Put reuses the node
// of the evicted key instead of allocating.
//
// LRU's methods may be called concurrently.
type LRU[K comparable, V any] struct {
	m sync.Mutex

	items map[K]*Node[lruEntry[K, V]]
	order *List[lruEntry[K, V]]
	size  int
}

type lruEntry[K comparable, V any] struct {
	k K
	v V
}

var _ Cache[byte, int] = &LRU[byte, int]{}

func NewLRU[K comparable, V any](size int) *LRU[K, V] {
	return &LRU[K, V]{
		items: make(map[K]*Node[lruEntry[K, V]], size),
		order: New[lruEntry[K, V]](NewBoundedNodePool[lruEntry[K, V]](size)),
		size:  size,
	}
}

func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.m.Lock()
	defer c.m.Unlock()
	node, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.moveToBack(node)
	return node.value.v, true
}

func (c *LRU[K, V]) Put(key K, value V) {
	c.m.Lock()
	defer c.m.Unlock()
	if c.size <= 0 {
		return
	}
	if node, ok := c.items[key]; ok {
		node.value.v = value
		c.order.moveToBack(node)
		return
	}
	if c.order.Len() >= c.size {
		oldest := c.order.main.next
		delete(c.items, oldest.value.k)
		c.order.remove(oldest)
	}
	c.items[key] = c.order.insert(lruEntry[K, V]{k: key, v: value}, &c.order.main)
}

func (c *LRU[K, V]) Forget(key K) {
	c.m.Lock()
	defer c.m.Unlock()
	node, ok := c.items[key]
	if !ok {
		return
	}
	delete(c.items, key)
	c.order.remove(node)
}

// Len returns the number of resident keys.
func (c *LRU[K, V]) Len() int {
	c.m.Lock()
	defer c.m.Unlock()
	return c.order.Len()
}
