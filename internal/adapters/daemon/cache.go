// Package daemon provides the daemon server and client implementations.
package daemon

import (
	"sync"

	"github.com/bytes00000111/nativelink/internal/core/ports"
)

// manifestEntry is a parsed pins file together with the modification times of
// the files it was derived from.
type manifestEntry struct {
	pins   *ports.Pins
	mtimes map[string]int64
}

// ManifestCache holds the daemon's parsed-pins cache keyed by workspace root.
//
// Validation compares the stored config file mtimes against freshly discovered
// ones. The daemon and its callers share a filesystem, so mtimes are a
// reliable staleness signal for a local Unix-socket daemon.
type ManifestCache struct {
	mu      sync.RWMutex
	entries map[string]*manifestEntry
}

// NewManifestCache creates an empty ManifestCache.
func NewManifestCache() *ManifestCache {
	return &ManifestCache{
		entries: make(map[string]*manifestEntry),
	}
}

// Get returns the cached pins for root when the stored mtimes match the given
// ones. It reports false on a miss or a stale entry.
func (c *ManifestCache) Get(root string, mtimes map[string]int64) (*ports.Pins, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[root]
	if !exists {
		return nil, false
	}

	if len(mtimes) != len(entry.mtimes) {
		return nil, false
	}
	for path, mtime := range mtimes {
		stored, ok := entry.mtimes[path]
		if !ok || mtime != stored {
			return nil, false
		}
	}

	return entry.pins, true
}

// Set stores parsed pins for root with the mtimes they were derived from.
func (c *ManifestCache) Set(root string, pins *ports.Pins, mtimes map[string]int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := make(map[string]int64, len(mtimes))
	for path, mtime := range mtimes {
		stored[path] = mtime
	}
	c.entries[root] = &manifestEntry{pins: pins, mtimes: stored}
}

// Invalidate drops the cached entry for root, if any.
func (c *ManifestCache) Invalidate(root string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, root)
}
