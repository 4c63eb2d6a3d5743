package main

import (
	"fmt"
	"sync"

	"github.com/edwingeng/deque"
	"github.com/zeebo/blake3"
)

type cacheKey [32]byte

// renderKey hashes everything a rendered image depends on.
func renderKey(expr string, size float64, colors string) cacheKey {
	h := blake3.New()
	h.WriteString(fmt.Sprintf("e:%s\ns:%g\nc:%s\n", expr, size, colors))
	var key cacheKey
	copy(key[:], h.Sum(nil))
	return key
}

// pngCache is a bounded cache of encoded images. When full, the oldest
// entry is evicted.
type pngCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[cacheKey][]byte
	order    deque.Deque // keys in insertion order
}

func newPNGCache(capacity int) *pngCache {
	if capacity < 1 {
		return nil
	}
	return &pngCache{
		capacity: capacity,
		entries:  make(map[cacheKey][]byte, capacity),
		order:    deque.NewDeque(),
	}
}

// get returns a cached image. A nil cache never hits.
func (c *pngCache) get(key cacheKey) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	return data, ok
}

func (c *pngCache) put(key cacheKey, data []byte) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; ok {
		return
	}
	for c.order.Len() >= c.capacity {
		oldest := c.order.PopFront().(cacheKey)
		delete(c.entries, oldest)
		tracer().Debugf("cache: evicted %x", oldest[:6])
	}
	c.order.PushBack(key)
	c.entries[key] = data
}

func (c *pngCache) len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
