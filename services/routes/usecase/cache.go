package usecase

import (
	"sync"

	"github.com/piresc/sparkrides/internal/pkg/models"
)

// RouteCache remembers resolved routes for the life of the process. A
// stored nil path records a failed lookup.
type RouteCache struct {
	mu      sync.RWMutex
	entries map[string]models.RoutePath
}

// NewRouteCache creates an empty cache
func NewRouteCache() *RouteCache {
	return &RouteCache{entries: make(map[string]models.RoutePath)}
}

// Get returns the stored path and whether key has been resolved
func (c *RouteCache) Get(key string) (models.RoutePath, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	path, ok := c.entries[key]
	return path, ok
}

// Set stores path under key, replacing any previous value
func (c *RouteCache) Set(key string, path models.RoutePath) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = path
}

// Len returns the number of resolved keys
func (c *RouteCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Reset drops every entry and returns how many there were
func (c *RouteCache) Reset() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	c.entries = make(map[string]models.RoutePath)
	return n
}
