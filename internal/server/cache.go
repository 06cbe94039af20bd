package server

import (
	"sync"
	"time"

	"github.com/uiscout/uiscout/internal/engine"
)

// seeEntry holds a cached capture with its timestamp.
type seeEntry struct {
	result    *engine.SeeResult
	timestamp time.Time
}

// seeCache is a TTL-based cache of capture results per application. Agents
// driving the MCP server tend to re-observe the same app between actions;
// within the TTL they get the existing session back instead of a fresh walk.
type seeCache struct {
	mu      sync.Mutex
	entries map[string]seeEntry
	ttl     time.Duration
}

// newSeeCache creates a cache. A ttl of 0 disables caching.
func newSeeCache(ttl time.Duration) *seeCache {
	return &seeCache{
		entries: make(map[string]seeEntry),
		ttl:     ttl,
	}
}

func (c *seeCache) get(app string) (*engine.SeeResult, bool) {
	if c.ttl == 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[app]
	if !ok || time.Since(entry.timestamp) >= c.ttl {
		return nil, false
	}
	return entry.result, true
}

func (c *seeCache) put(app string, result *engine.SeeResult) {
	if c.ttl == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[app] = seeEntry{result: result, timestamp: time.Now()}
}

// invalidateApp removes the cache entry for the given app.
func (c *seeCache) invalidateApp(app string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, app)
}

// invalidateAll clears the entire cache.
func (c *seeCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]seeEntry)
}
