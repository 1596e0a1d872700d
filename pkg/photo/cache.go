// Package photo renders dish photos as terminal escape sequences. It
// picks a graphics protocol from terminal capabilities, scales images
// to a cell budget, and memoizes rendered output per path and size.
package photo

import (
	"container/list"
	"sync"
)

// cacheKey identifies one rendered photo. Photos are static files on
// disk, so the path plus target dimensions and protocol is enough.
type cacheKey struct {
	Path     string
	Width    int
	Height   int
	Protocol string
}

type cacheEntry struct {
	key      cacheKey
	rendered string
}

// CacheStats reports hit/miss counts.
type CacheStats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// renderCache is an entry-count LRU for rendered escape strings. A
// rendered photo at card size is a few KB, so counting entries keeps
// the bound predictable without byte accounting.
type renderCache struct {
	mu         sync.Mutex
	items      map[cacheKey]*list.Element
	order      *list.List // front = most recent
	maxEntries int
	hits       uint64
	misses     uint64
}

func newRenderCache(maxEntries int) *renderCache {
	if maxEntries <= 0 {
		maxEntries = 64
	}
	return &renderCache{
		items:      make(map[cacheKey]*list.Element),
		order:      list.New(),
		maxEntries: maxEntries,
	}
}

func (c *renderCache) get(key cacheKey) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		c.misses++
		return "", false
	}
	c.order.MoveToFront(elem)
	c.hits++
	return elem.Value.(*cacheEntry).rendered, true
}

func (c *renderCache) put(key cacheKey, rendered string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		elem.Value.(*cacheEntry).rendered = rendered
		c.order.MoveToFront(elem)
		return
	}

	for c.order.Len() >= c.maxEntries {
		back := c.order.Back()
		if back == nil {
			break
		}
		evicted := c.order.Remove(back).(*cacheEntry)
		delete(c.items, evicted.key)
	}

	c.items[key] = c.order.PushFront(&cacheEntry{key: key, rendered: rendered})
}

func (c *renderCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[cacheKey]*list.Element)
	c.order.Init()
}

func (c *renderCache) stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Hits: c.hits, Misses: c.misses, Entries: c.order.Len()}
}
