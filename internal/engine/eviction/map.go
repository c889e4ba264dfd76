// Package eviction implements an LRU map bounded by total bytes, entry age
// and entry count. It is the in-memory index behind the content addressable
// store: entries carry hooks that tie their lifetime to data owned elsewhere.
package eviction

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/bytes00000111/nativelink/internal/core/domain"
	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

// Entry is stored in the map. Implementations own the data the entry refers
// to (typically a file on disk).
type Entry interface {
	// Size returns the byte size accounted against the policy.
	Size() int64

	// Touch is called when the entry is used. Returning false removes the
	// entry from the map; implementations return false when the underlying
	// data has gone away.
	Touch(ctx context.Context) bool

	// Unref is called exactly once when the entry leaves the map, whether
	// by eviction, replacement or explicit removal. It runs with the map
	// lock held: implementations must not call back into the map.
	Unref(ctx context.Context)
}

// Pair is one key/value insert for InsertMany.
type Pair[V Entry] struct {
	Key   domain.Digest
	Value V
}

type item[V Entry] struct {
	// secondsSinceAnchor is the insert time relative to the map's anchor.
	// It is not refreshed on Get, so age eviction is by insert time.
	secondsSinceAnchor int32
	value              V
}

type removeReason uint8

const (
	reasonEvicted removeReason = iota
	reasonReplaced
	reasonRemoved
)

// Map is a thread-safe evicting LRU keyed by content digest.
type Map[V Entry] struct {
	mu       sync.Mutex
	lru      *simplelru.LRU[domain.Digest, *item[V]]
	sumBytes int64

	anchor   time.Time
	clock    clockwork.Clock
	policy   domain.EvictionPolicy
	counters *Counters
}

// NewMap creates a Map with the given policy. The clock is injected so age
// based eviction is testable; pass clockwork.NewRealClock() in production.
func NewMap[V Entry](policy domain.EvictionPolicy, clock clockwork.Clock) *Map[V] {
	// The LRU is effectively unbounded; the policy drives all evictions so
	// that Unref always runs under our control.
	lru, err := simplelru.NewLRU[domain.Digest, *item[V]](math.MaxInt32, nil)
	if err != nil {
		// simplelru only rejects non-positive sizes.
		panic(err)
	}
	return &Map[V]{
		lru:      lru,
		anchor:   clock.Now(),
		clock:    clock,
		policy:   policy,
		counters: &Counters{},
	}
}

// Counters returns the map's lifetime counters.
func (m *Map[V]) Counters() *Counters {
	return m.counters
}

// Len returns the number of live entries.
func (m *Map[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lru.Len()
}

// TotalBytes returns the byte sum over live entries.
func (m *Map[V]) TotalBytes() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sumBytes
}

func (m *Map[V]) elapsedSeconds() int32 {
	return int32(m.clock.Since(m.anchor) / time.Second)
}

// shouldEvict reports whether the oldest entry must go, given the candidate
// limits. maxBytes is passed explicitly because a triggered eviction lowers
// the effective ceiling to the low-water mark.
func (m *Map[V]) shouldEvict(lruLen int, oldest *item[V], sumBytes, maxBytes int64) bool {
	overSize := maxBytes != 0 && sumBytes >= maxBytes

	evictOlderThan := m.elapsedSeconds() - m.policy.MaxAgeSeconds
	oldItem := m.policy.MaxAgeSeconds != 0 && oldest.secondsSinceAnchor < evictOlderThan

	overCount := m.policy.MaxCount != 0 && int64(lruLen) > m.policy.MaxCount

	return overSize || oldItem || overCount
}

// evictItems removes oldest entries until the policy is satisfied.
// Callers must hold the lock.
func (m *Map[V]) evictItems(ctx context.Context) {
	_, oldest, ok := m.lru.GetOldest()
	if !ok {
		return
	}

	maxBytes := m.policy.MaxBytes
	if m.policy.MaxBytes != 0 && m.policy.EvictBytes != 0 &&
		m.shouldEvict(m.lru.Len(), oldest, m.sumBytes, m.policy.MaxBytes) {
		if m.policy.MaxBytes > m.policy.EvictBytes {
			maxBytes = m.policy.MaxBytes - m.policy.EvictBytes
		} else {
			maxBytes = 0
		}
	}

	for m.shouldEvict(m.lru.Len(), oldest, m.sumBytes, maxBytes) {
		_, it, _ := m.lru.RemoveOldest()
		m.removeLocked(ctx, it, reasonEvicted)

		_, oldest, ok = m.lru.GetOldest()
		if !ok {
			return
		}
	}
}

// removeLocked updates accounting and releases the entry.
// Callers must hold the lock and must already have taken the item out of the
// LRU.
func (m *Map[V]) removeLocked(ctx context.Context, it *item[V], reason removeReason) {
	size := it.value.Size()
	m.sumBytes -= size

	switch reason {
	case reasonReplaced:
		m.counters.ReplacedItems.Add(1)
		m.counters.ReplacedBytes.Add(size)
	case reasonRemoved:
		m.counters.RemovedItems.Add(1)
		m.counters.RemovedBytes.Add(size)
	default:
		m.counters.EvictedItems.Add(1)
		m.counters.EvictedBytes.Add(size)
	}

	it.value.Unref(ctx)
}

// touchOrRemove runs the entry's Touch hook outside the lock. A failed touch
// removes the entry.
func (m *Map[V]) touchOrRemove(ctx context.Context, key domain.Digest, value V) (V, bool) {
	if value.Touch(ctx) {
		return value, true
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if it, ok := m.lru.Peek(key); ok {
		m.lru.Remove(key)
		m.removeLocked(ctx, it, reasonEvicted)
	}

	var zero V
	return zero, false
}

// Get returns the entry for key, marking it recently used. A failed Touch
// counts as a miss.
func (m *Map[V]) Get(ctx context.Context, key domain.Digest) (V, bool) {
	m.mu.Lock()
	m.evictItems(ctx)

	it, ok := m.lru.Get(key)
	if !ok {
		m.mu.Unlock()
		var zero V
		return zero, false
	}
	value := it.value
	m.mu.Unlock()

	return m.touchOrRemove(ctx, key, value)
}

// Insert adds or replaces the entry for key. The replaced entry, if any, is
// unreferenced and returned.
func (m *Map[V]) Insert(ctx context.Context, key domain.Digest, value V) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	replaced := m.insertManyLocked(ctx, []Pair[V]{{Key: key, Value: value}}, m.elapsedSeconds())
	if len(replaced) == 0 {
		var zero V
		return zero, false
	}
	return replaced[0], true
}

// InsertMany is Insert optimized for batches; it takes the lock once.
// It returns the replaced entries, if any.
func (m *Map[V]) InsertMany(ctx context.Context, pairs []Pair[V]) []V {
	if len(pairs) == 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insertManyLocked(ctx, pairs, m.elapsedSeconds())
}

func (m *Map[V]) insertManyLocked(ctx context.Context, pairs []Pair[V], secondsSinceAnchor int32) []V {
	var replaced []V
	for _, p := range pairs {
		newSize := p.Value.Size()

		if old, ok := m.lru.Peek(p.Key); ok {
			m.lru.Remove(p.Key)
			m.removeLocked(ctx, old, reasonReplaced)
			replaced = append(replaced, old.value)
		}

		m.lru.Add(p.Key, &item[V]{
			secondsSinceAnchor: secondsSinceAnchor,
			value:              p.Value,
		})
		m.sumBytes += newSize
		m.counters.InsertedBytes.Add(newSize)
		m.evictItems(ctx)
	}
	return replaced
}

// Remove deletes the entry for key. It reports whether the entry existed.
func (m *Map[V]) Remove(ctx context.Context, key domain.Digest) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removeInner(ctx, key)
}

func (m *Map[V]) removeInner(ctx context.Context, key domain.Digest) bool {
	m.evictItems(ctx)
	if it, ok := m.lru.Peek(key); ok {
		m.lru.Remove(key)
		m.removeLocked(ctx, it, reasonRemoved)
		return true
	}
	return false
}

// RemoveIf removes the entry for key only when cond holds, atomically with
// respect to other map operations.
func (m *Map[V]) RemoveIf(ctx context.Context, key domain.Digest, cond func(V) bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if it, ok := m.lru.Peek(key); ok {
		if !cond(it.value) {
			return false
		}
		return m.removeInner(ctx, key)
	}
	return false
}

// SizesForKeys returns the size for each key, -1 for misses. Each hit is
// marked recently used; entries due for eviction are removed instead of
// reported.
func (m *Map[V]) SizesForKeys(ctx context.Context, keys []domain.Digest) []int64 {
	results := make([]int64, len(keys))
	for i := range results {
		results[i] = -1
	}

	type touchCandidate struct {
		idx   int
		key   domain.Digest
		value V
	}
	var toTouch []touchCandidate

	m.mu.Lock()
	// Track projected occupancy while scanning so a batch at the limit does
	// not condemn every key.
	lruLen := m.lru.Len()
	sumBytes := m.sumBytes
	for i, key := range keys {
		it, ok := m.lru.Get(key)
		if !ok {
			continue
		}
		if m.shouldEvict(lruLen, it, sumBytes, m.policy.MaxBytes) {
			sumBytes -= it.value.Size()
			lruLen--
			m.lru.Remove(key)
			m.removeLocked(ctx, it, reasonEvicted)
			continue
		}
		toTouch = append(toTouch, touchCandidate{idx: i, key: key, value: it.value})
	}
	m.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	for _, c := range toTouch {
		g.Go(func() error {
			if v, ok := m.touchOrRemove(ctx, c.key, c.value); ok {
				results[c.idx] = v.Size()
			}
			return nil
		})
	}
	// Touch hooks never return errors through the group.
	_ = g.Wait()

	return results
}

// SizeForKey returns the size of a single key, or -1 on miss.
func (m *Map[V]) SizeForKey(ctx context.Context, key domain.Digest) int64 {
	return m.SizesForKeys(ctx, []domain.Digest{key})[0]
}
