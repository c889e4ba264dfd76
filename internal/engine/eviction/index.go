package eviction

import (
	"context"
	"time"

	"github.com/bytes00000111/nativelink/internal/core/domain"
)

// BuildIndex snapshots the current eviction order, oldest entry first.
// Entries due for eviction are removed before the snapshot is taken.
func (m *Map[V]) BuildIndex(ctx context.Context) domain.CacheIndex {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictItems(ctx)

	idx := domain.CacheIndex{
		AnchorUnix: m.anchor.Unix(),
		Entries:    make([]domain.CacheIndexEntry, 0, m.lru.Len()),
	}
	for _, key := range m.lru.Keys() {
		it, ok := m.lru.Peek(key)
		if !ok {
			continue
		}
		idx.Entries = append(idx.Entries, domain.CacheIndexEntry{
			Digest:             key,
			SecondsSinceAnchor: it.secondsSinceAnchor,
		})
	}
	return idx
}

// RestoreIndex rebuilds the map from a snapshot. The builder materializes the
// entry for a digest; returning false skips it (the backing data is gone).
// Existing entries are dropped without Unref, so restore only into a fresh
// map. Entries that aged out while the snapshot was on disk are evicted at
// the end.
func (m *Map[V]) RestoreIndex(ctx context.Context, idx domain.CacheIndex, builder func(domain.Digest) (V, bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.anchor = time.Unix(idx.AnchorUnix, 0)
	m.lru.Purge()
	m.sumBytes = 0

	// Oldest first, so recency order survives the round trip.
	for _, e := range idx.Entries {
		value, ok := builder(e.Digest)
		if !ok {
			continue
		}
		m.lru.Add(e.Digest, &item[V]{
			secondsSinceAnchor: e.SecondsSinceAnchor,
			value:              value,
		})
		m.sumBytes += value.Size()
	}

	m.evictItems(ctx)
}
