package themes

import (
	"context"
	"sync"
)

// Cache is the in-memory copy of the theme list. The record store remains the
// source of truth: the cache is refreshed wholesale on load and patched in
// place only from the confirmed result of a mutation round trip.
type Cache struct {
	mu     sync.RWMutex
	themes []Theme
	loaded bool
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Refresh replaces the cached list with a fresh read from the store.
func (c *Cache) Refresh(ctx context.Context, store *Store) error {
	themes, err := store.List(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.themes = themes
	c.loaded = true
	c.mu.Unlock()
	return nil
}

// Loaded reports whether the cache has completed at least one refresh.
func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// All returns a copy of the cached theme list in store order.
func (c *Cache) All() []Theme {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Theme, len(c.themes))
	copy(out, c.themes)
	return out
}

// Get returns the cached theme with the given id.
func (c *Cache) Get(id string) (Theme, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, t := range c.themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// Put patches a confirmed theme into the cache: replaces the record in place
// if present, appends otherwise.
func (c *Cache) Put(t Theme) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.themes {
		if c.themes[i].ID == t.ID {
			c.themes[i] = t
			return
		}
	}
	c.themes = append(c.themes, t)
}

// Remove drops a theme from the cache after a confirmed delete.
func (c *Cache) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.themes {
		if c.themes[i].ID == id {
			c.themes = append(c.themes[:i], c.themes[i+1:]...)
			return
		}
	}
}

// ZeroUsage sets every cached theme's usage count to zero, mirroring a
// successful bulk reset.
func (c *Cache) ZeroUsage() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.themes {
		c.themes[i].UsageCount = 0
	}
}

// Len returns the number of cached themes.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.themes)
}
