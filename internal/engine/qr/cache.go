package qr

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

type cachedExport struct {
	export   *Export
	cachedAt time.Time
}

// ExportCache keeps recently encoded PNGs keyed by URL and color.
type ExportCache struct {
	store      sync.Map // map[string]*cachedExport
	ttl        time.Duration
	maxEntries int
	size       atomic.Int64
	hits       atomic.Int64
	now        func() time.Time
}

func NewExportCache(ttl time.Duration, maxEntries int) *ExportCache {
	return &ExportCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func cacheKey(url string, fg Color) string {
	return string(fg) + "|" + url
}

func (c *ExportCache) Get(url string, fg Color) (*Export, bool) {
	key := cacheKey(url, fg)
	val, ok := c.store.Load(key)
	if !ok {
		return nil, false
	}

	entry := val.(*cachedExport)
	if c.now().Sub(entry.cachedAt) > c.ttl {
		if c.store.CompareAndDelete(key, val) {
			c.size.Add(-1)
		}
		return nil, false
	}

	c.hits.Add(1)
	return entry.export, true
}

// Set stores an export. When the cache is full the entry is dropped rather
// than evicting a live one. A slot is reserved on size before the store is
// touched, so concurrent writers never exceed maxEntries.
func (c *ExportCache) Set(url string, fg Color, export *Export) {
	if !c.reserve() {
		return
	}
	entry := &cachedExport{export: export, cachedAt: c.now()}
	if _, loaded := c.store.Swap(cacheKey(url, fg), entry); loaded {
		// replaced an existing entry, give the slot back
		c.size.Add(-1)
	}
}

func (c *ExportCache) reserve() bool {
	for {
		n := c.size.Load()
		if c.maxEntries > 0 && n >= int64(c.maxEntries) {
			return false
		}
		if c.size.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (c *ExportCache) Len() int {
	return int(c.size.Load())
}

func (c *ExportCache) Hits() int64 {
	return c.hits.Load()
}

// Sweep removes expired entries and returns how many were dropped.
func (c *ExportCache) Sweep() int {
	now := c.now()
	removed := 0
	c.store.Range(func(key, value interface{}) bool {
		entry := value.(*cachedExport)
		if now.Sub(entry.cachedAt) > c.ttl {
			if c.store.CompareAndDelete(key, value) {
				c.size.Add(-1)
				removed++
			}
		}
		return true
	})
	return removed
}

// Run sweeps the cache every interval until ctx is cancelled.
func (c *ExportCache) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Sweep()
		}
	}
}
