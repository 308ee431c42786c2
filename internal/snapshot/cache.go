package snapshot

import (
	"fmt"
	"sync"
)

// Cache stores composed snapshots keyed by league content. The cache is
// explicit and externally owned: the composer never keeps ambient state, so
// callers decide the cache's scope and lifetime.
type Cache interface {
	Get(key string) (*Snapshot, bool)
	Put(key string, snap *Snapshot) error
}

// CacheKey derives the cache key for a league state and sampling parameters.
// The fingerprint covers the result list, so any new result invalidates the
// key by construction.
func CacheKey(fingerprint string, sims int, seed int64) string {
	return fmt.Sprintf("%s/%d/%d", fingerprint, sims, seed)
}

// MemoryCache is a process-local Cache for callers that do not want the
// database-backed store.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*Snapshot
}

// Ensure MemoryCache implements Cache
var _ Cache = (*MemoryCache)(nil)

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]*Snapshot)}
}

// Get returns the cached snapshot for key, if any.
func (c *MemoryCache) Get(key string) (*Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap, ok := c.entries[key]
	return snap, ok
}

// Put stores snap under key, replacing any previous entry.
func (c *MemoryCache) Put(key string, snap *Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = snap
	return nil
}
