package cache

import (
	"sync"

	"pos_service/internal/domain"
)

// CatalogCache holds the last successfully fetched catalog snapshot.
// Mutations never patch it in place; they call Invalidate so the next
// read goes back to the store for the authoritative state.
type CatalogCache struct {
	mu    sync.RWMutex
	items []domain.MenuItem
	valid bool
}

func NewCatalogCache() *CatalogCache {
	return &CatalogCache{}
}

// Get returns the cached snapshot and whether it is still valid.
func (c *CatalogCache) Get() ([]domain.MenuItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid {
		return nil, false
	}
	items := make([]domain.MenuItem, len(c.items))
	copy(items, c.items)
	return items, true
}

// Set replaces the snapshot with a freshly fetched catalog.
func (c *CatalogCache) Set(items []domain.MenuItem) {
	snapshot := make([]domain.MenuItem, len(items))
	copy(snapshot, items)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = snapshot
	c.valid = true
}

// Invalidate drops the snapshot after any mutating operation.
func (c *CatalogCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.valid = false
}
