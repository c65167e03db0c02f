package pooled

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	c.Put("c", 3)

	_, ok = c.Get("b")
	require.False(t, ok)
	v, ok = c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	v, ok = c.Get("c")
	require.True(t, ok)
	require.Equal(t, 3, v)
	require.Equal(t, 2, c.Len())
}

func TestLRUPutOverwrites(t *testing.T) {
	c := NewLRU[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("a", 10)
	c.Put("c", 3)

	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 10, v)
	_, ok = c.Get("b")
	require.False(t, ok)
	require.Equal(t, 2, c.Len())
}

func TestLRUForget(t *testing.T) {
	c := NewLRU[int, int](4)
	c.Put(1, 1)
	c.Put(2, 2)
	c.Forget(1)
	c.Forget(5)

	_, ok := c.Get(1)
	require.False(t, ok)
	require.Equal(t, 1, c.Len())
}

func TestLRURecyclesNodes(t *testing.T) {
	c := NewLRU[int, int](3)
	pool := c.order.pool.(*NodePool[lruEntry[int, int]])

	for i := 0; i < 100; i++ {
		c.Put(i, i)
		require.LessOrEqual(t, pool.Available(), 1)
	}
	require.Equal(t, 3, c.Len())
	require.Equal(t, []int{97, 98, 99}, keys(c))

	c.Forget(98)
	require.Equal(t, 1, pool.Available())
	c.Put(100, 100)
	require.Equal(t, 0, pool.Available())
	require.Equal(t, []int{97, 99, 100}, keys(c))
}

func TestLRUZeroSize(t *testing.T) {
	c := NewLRU[int, int](0)
	c.Put(1, 1)
	_, ok := c.Get(1)
	require.False(t, ok)
	require.Equal(t, 0, c.Len())
}

func TestLRUConcurrent(t *testing.T) {
	c := NewLRU[int, int](16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				k := (g*31 + i) % 64
				if v, ok := c.Get(k); ok {
					assert.Equal(t, k*2, v)
					continue
				}
				c.Put(k, k*2)
				if i%7 == 0 {
					c.Forget(k)
				}
			}
		}(g)
	}
	wg.Wait()
	require.LessOrEqual(t, c.Len(), 16)
}

func keys[V any](c *LRU[int, V]) []int {
	c.m.Lock()
	defer c.m.Unlock()
	var out []int
	c.order.Each(func(e lruEntry[int, V]) { out = append(out, e.k) })
	return out
}
