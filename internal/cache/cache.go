// Package cache provides the TTL document cache shared by all upstream
// fetches. Documents are keyed by source URL; an entry older than the TTL
// is treated as absent and overwritten on the next fetch, never purged.
// Concurrent misses on the same URL are collapsed into a single upstream
// call via singleflight.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultTTL is how long a fetched document stays fresh.
	DefaultTTL = 10 * time.Minute
	// DefaultCapacity bounds the number of cached documents.
	DefaultCapacity = 1000
)

// FillFunc fetches the document for a URL on a cache miss.
type FillFunc func(ctx context.Context) (json.RawMessage, error)

// entry is one cached document stamped with its fetch time.
type entry struct {
	doc       json.RawMessage
	fetchedAt time.Time
}

// Cache is a TTL-bounded LRU of raw JSON documents keyed by URL.
type Cache struct {
	ttl   time.Duration
	now   func() time.Time
	mu    sync.RWMutex
	lru   *lru.Cache[string, entry]
	group singleflight.Group
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock injects a time source. Used by tests to control expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New creates a Cache. Non-positive ttl or capacity fall back to the
// package defaults.
func New(ttl time.Duration, capacity int, opts ...Option) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	store, err := lru.New[string, entry](capacity)
	if err != nil {
		// Capacity is validated above; lru.New only fails on size < 1.
		panic(fmt.Sprintf("failed to create LRU cache: %v", err))
	}

	c := &Cache{
		ttl: ttl,
		now: time.Now,
		lru: store,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrFetch returns the cached document for url if it is still fresh,
// otherwise invokes fill and stores the result. Concurrent callers for the
// same url share one fill invocation. Fill errors are not cached.
func (c *Cache) GetOrFetch(ctx context.Context, url string, fill FillFunc) (json.RawMessage, error) {
	if doc, ok := c.get(url); ok {
		return doc, nil
	}

	v, err, _ := c.group.Do(url, func() (any, error) {
		// Re-check under singleflight: another caller may have filled
		// the entry while this one waited.
		if doc, ok := c.get(url); ok {
			return doc, nil
		}

		doc, err := fill(ctx)
		if err != nil {
			return nil, err
		}
		c.put(url, doc)
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}

// Len returns the number of stored entries, fresh or stale.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lru.Len()
}

func (c *Cache) get(url string) (json.RawMessage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.lru.Get(url)
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.fetchedAt) >= c.ttl {
		// Stale entries stay in place until the next put overwrites them.
		return nil, false
	}
	return e.doc, true
}

func (c *Cache) put(url string, doc json.RawMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(url, entry{doc: doc, fetchedAt: c.now()})
}
