// Package infra provides shared infrastructure for the YouTube MCP server:
// a TTL response cache and in-flight request deduplication. Both keep the
// one-request-per-invocation contract intact; there is no retry machinery here.
package infra

import (
	"container/list"
	"sync"
	"time"
)

const (
	// DefaultMaxCacheEntries bounds memory used by cached API responses
	DefaultMaxCacheEntries = 500

	// DefaultCacheSweep is how often expired entries are swept
	DefaultCacheSweep = 2 * time.Minute
)

// cacheEntry holds one cached response with its expiry.
type cacheEntry struct {
	key       string
	data      any
	expiresAt time.Time
}

// Cache is a TTL cache with LRU eviction, keyed by sanitized request URL.
// All methods are safe for concurrent use.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]*list.Element
	order      *list.List // front = most recently used
	maxEntries int
	evictions  int64

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewCache creates a cache holding at most maxEntries responses.
// A background sweeper removes expired entries until Close is called.
func NewCache(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxCacheEntries
	}
	c := &Cache{
		entries:    make(map[string]*list.Element),
		order:      list.New(),
		maxEntries: maxEntries,
		stopCh:     make(chan struct{}),
	}
	go c.sweepLoop()
	return c
}

// Get returns the cached value for key if present and not expired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	entry := el.Value.(*cacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.removeLocked(el)
		return nil, false
	}
	c.order.MoveToFront(el)
	return entry.data, true
}

// Set stores a value under key with the given TTL, evicting the least
// recently used entry if the cache is full.
func (c *Cache) Set(key string, data any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		entry := el.Value.(*cacheEntry)
		entry.data = data
		entry.expiresAt = time.Now().Add(ttl)
		c.order.MoveToFront(el)
		return
	}

	for len(c.entries) >= c.maxEntries {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.removeLocked(oldest)
		c.evictions++
	}

	el := c.order.PushFront(&cacheEntry{
		key:       key,
		data:      data,
		expiresAt: time.Now().Add(ttl),
	})
	c.entries[key] = el
}

// Delete removes key from the cache if present.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.removeLocked(el)
	}
}

// Size returns the current number of cached entries.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Evictions returns the number of entries evicted for capacity.
func (c *Cache) Evictions() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictions
}

// Close stops the background sweeper.
func (c *Cache) Close() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

func (c *Cache) removeLocked(el *list.Element) {
	entry := el.Value.(*cacheEntry)
	c.order.Remove(el)
	delete(c.entries, entry.key)
}

func (c *Cache) sweepLoop() {
	ticker := time.NewTicker(DefaultCacheSweep)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}

func (c *Cache) sweep() {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()

	var next *list.Element
	for el := c.order.Front(); el != nil; el = next {
		next = el.Next()
		if now.After(el.Value.(*cacheEntry).expiresAt) {
			c.removeLocked(el)
		}
	}
}
