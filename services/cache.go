package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type cacheEntry struct {
	value  interface{}
	expiry time.Time
}

// QueryCache is a process-wide TTL cache for read-heavy list queries.
// Keys are prefixed with the container name so that any write to a
// container can invalidate every cached query against it. That trades
// precision for correctness: a single game update drops all cached
// game lists, which is fine at manual-scorekeeping write rates.
type QueryCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewQueryCache builds an empty cache.
func NewQueryCache() *QueryCache {
	return &QueryCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached value for key, lazily dropping it when
// expired.
func (c *QueryCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiry) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

// Set stores a value with a TTL.
func (c *QueryCache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, expiry: c.now().Add(ttl)}
}

// InvalidatePrefix drops every entry whose key starts with the prefix.
func (c *QueryCache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Len reports the number of live entries (expired ones included until
// swept or read).
func (c *QueryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *QueryCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	removed := 0
	for key, entry := range c.entries {
		if now.After(entry.expiry) {
			delete(c.entries, key)
			removed++
		}
	}
	if removed > 0 {
		log.Debug().Int("removed", removed).Msg("cache sweep")
	}
}

// Start runs the background sweep until the context is cancelled.
func (c *QueryCache) Start(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}
