package eviction_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bytes00000111/nativelink/internal/core/domain"
	"github.com/bytes00000111/nativelink/internal/engine/eviction"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEntry tracks its lifecycle hooks so tests can assert Unref is called
// exactly once.
type testEntry struct {
	name    string
	size    int64
	touchOK atomic.Bool
	touches atomic.Int64
	unrefs  atomic.Int64
}

func newTestEntry(name string, size int64) *testEntry {
	e := &testEntry{name: name, size: size}
	e.touchOK.Store(true)
	return e
}

func (e *testEntry) Size() int64 { return e.size }

func (e *testEntry) Touch(_ context.Context) bool {
	e.touches.Add(1)
	return e.touchOK.Load()
}

func (e *testEntry) Unref(_ context.Context) {
	e.unrefs.Add(1)
}

func digestOf(s string) domain.Digest {
	return domain.DigestFromBytes([]byte(s))
}

func TestMap_InsertGet(t *testing.T) {
	ctx := context.Background()
	m := eviction.NewMap[*testEntry](domain.EvictionPolicy{}, clockwork.NewFakeClock())

	key := digestOf("a")
	entry := newTestEntry("a", 10)

	_, replaced := m.Insert(ctx, key, entry)
	assert.False(t, replaced)

	got, ok := m.Get(ctx, key)
	require.True(t, ok)
	assert.Same(t, entry, got)
	assert.Equal(t, int64(1), entry.touches.Load())

	_, ok = m.Get(ctx, digestOf("missing"))
	assert.False(t, ok)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, int64(10), m.TotalBytes())
}

func TestMap_InsertReplace(t *testing.T) {
	ctx := context.Background()
	m := eviction.NewMap[*testEntry](domain.EvictionPolicy{}, clockwork.NewFakeClock())

	key := digestOf("a")
	first := newTestEntry("first", 10)
	second := newTestEntry("second", 20)

	_, replaced := m.Insert(ctx, key, first)
	assert.False(t, replaced)

	old, replaced := m.Insert(ctx, key, second)
	require.True(t, replaced)
	assert.Same(t, first, old)
	assert.Equal(t, int64(1), first.unrefs.Load())

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, int64(20), m.TotalBytes())

	counters := m.Counters().Snapshot()
	assert.Equal(t, int64(1), counters.ReplacedItems)
	assert.Equal(t, int64(10), counters.ReplacedBytes)
	assert.Equal(t, int64(30), counters.InsertedBytes)
}

func TestMap_MaxCountEvictsOldest(t *testing.T) {
	ctx := context.Background()
	m := eviction.NewMap[*testEntry](domain.EvictionPolicy{MaxCount: 2}, clockwork.NewFakeClock())

	a := newTestEntry("a", 1)
	b := newTestEntry("b", 1)
	c := newTestEntry("c", 1)

	m.Insert(ctx, digestOf("a"), a)
	m.Insert(ctx, digestOf("b"), b)
	m.Insert(ctx, digestOf("c"), c)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, int64(1), a.unrefs.Load(), "oldest entry should be evicted")
	assert.Equal(t, int64(0), b.unrefs.Load())

	_, ok := m.Get(ctx, digestOf("a"))
	assert.False(t, ok)
}

func TestMap_GetRefreshesRecency(t *testing.T) {
	ctx := context.Background()
	m := eviction.NewMap[*testEntry](domain.EvictionPolicy{MaxCount: 2}, clockwork.NewFakeClock())

	a := newTestEntry("a", 1)
	b := newTestEntry("b", 1)

	m.Insert(ctx, digestOf("a"), a)
	m.Insert(ctx, digestOf("b"), b)

	// Using a makes b the eviction candidate.
	_, ok := m.Get(ctx, digestOf("a"))
	require.True(t, ok)

	m.Insert(ctx, digestOf("c"), newTestEntry("c", 1))

	_, ok = m.Get(ctx, digestOf("a"))
	assert.True(t, ok)
	_, ok = m.Get(ctx, digestOf("b"))
	assert.False(t, ok)
	assert.Equal(t, int64(1), b.unrefs.Load())
}

func TestMap_MaxBytesEviction(t *testing.T) {
	ctx := context.Background()
	m := eviction.NewMap[*testEntry](domain.EvictionPolicy{MaxBytes: 100}, clockwork.NewFakeClock())

	a := newTestEntry("a", 40)
	b := newTestEntry("b", 40)
	c := newTestEntry("c", 40)

	m.Insert(ctx, digestOf("a"), a)
	m.Insert(ctx, digestOf("b"), b)
	assert.Equal(t, int64(80), m.TotalBytes())

	m.Insert(ctx, digestOf("c"), c)

	assert.Equal(t, int64(80), m.TotalBytes())
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, int64(1), a.unrefs.Load())

	counters := m.Counters().Snapshot()
	assert.Equal(t, int64(1), counters.EvictedItems)
	assert.Equal(t, int64(40), counters.EvictedBytes)
}

func TestMap_EvictBytesLowWater(t *testing.T) {
	ctx := context.Background()
	policy := domain.EvictionPolicy{MaxBytes: 100, EvictBytes: 60}
	m := eviction.NewMap[*testEntry](policy, clockwork.NewFakeClock())

	a := newTestEntry("a", 40)
	b := newTestEntry("b", 40)
	c := newTestEntry("c", 40)

	m.Insert(ctx, digestOf("a"), a)
	m.Insert(ctx, digestOf("b"), b)
	// Third insert crosses the ceiling; eviction continues to the low-water
	// mark of 40 bytes instead of stopping just under 100.
	m.Insert(ctx, digestOf("c"), c)

	assert.Equal(t, int64(40), m.TotalBytes())
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, int64(1), a.unrefs.Load())
	assert.Equal(t, int64(1), b.unrefs.Load())
	assert.Equal(t, int64(0), c.unrefs.Load())
}

func TestMap_MaxAgeEviction(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	m := eviction.NewMap[*testEntry](domain.EvictionPolicy{MaxAgeSeconds: 5}, clock)

	a := newTestEntry("a", 1)
	m.Insert(ctx, digestOf("a"), a)

	clock.Advance(3 * time.Second)
	b := newTestEntry("b", 1)
	m.Insert(ctx, digestOf("b"), b)

	// At t=10 the cutoff is t=5: a (t=0) and b (t=3) are both past it.
	clock.Advance(7 * time.Second)
	m.Insert(ctx, digestOf("c"), newTestEntry("c", 1))

	assert.Equal(t, int64(1), a.unrefs.Load())
	assert.Equal(t, int64(1), b.unrefs.Load())
	assert.Equal(t, 1, m.Len())
}

func TestMap_TouchFailureRemovesEntry(t *testing.T) {
	ctx := context.Background()
	m := eviction.NewMap[*testEntry](domain.EvictionPolicy{}, clockwork.NewFakeClock())

	key := digestOf("a")
	entry := newTestEntry("a", 10)
	m.Insert(ctx, key, entry)

	entry.touchOK.Store(false)

	_, ok := m.Get(ctx, key)
	assert.False(t, ok)
	assert.Equal(t, int64(1), entry.unrefs.Load())
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, int64(0), m.TotalBytes())
}

func TestMap_Remove(t *testing.T) {
	ctx := context.Background()
	m := eviction.NewMap[*testEntry](domain.EvictionPolicy{}, clockwork.NewFakeClock())

	key := digestOf("a")
	entry := newTestEntry("a", 10)
	m.Insert(ctx, key, entry)

	assert.True(t, m.Remove(ctx, key))
	assert.Equal(t, int64(1), entry.unrefs.Load())
	assert.False(t, m.Remove(ctx, key))

	counters := m.Counters().Snapshot()
	assert.Equal(t, int64(1), counters.RemovedItems)
	assert.Equal(t, int64(10), counters.RemovedBytes)
}

func TestMap_RemoveIf(t *testing.T) {
	ctx := context.Background()
	m := eviction.NewMap[*testEntry](domain.EvictionPolicy{}, clockwork.NewFakeClock())

	key := digestOf("a")
	entry := newTestEntry("a", 10)
	m.Insert(ctx, key, entry)

	assert.False(t, m.RemoveIf(ctx, key, func(e *testEntry) bool { return e.size > 100 }))
	assert.Equal(t, 1, m.Len())

	assert.True(t, m.RemoveIf(ctx, key, func(e *testEntry) bool { return e.size == 10 }))
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, int64(1), entry.unrefs.Load())

	assert.False(t, m.RemoveIf(ctx, key, func(*testEntry) bool { return true }))
}

func TestMap_SizesForKeys(t *testing.T) {
	ctx := context.Background()
	m := eviction.NewMap[*testEntry](domain.EvictionPolicy{}, clockwork.NewFakeClock())

	m.Insert(ctx, digestOf("a"), newTestEntry("a", 10))
	m.Insert(ctx, digestOf("b"), newTestEntry("b", 20))

	sizes := m.SizesForKeys(ctx, []domain.Digest{
		digestOf("a"),
		digestOf("missing"),
		digestOf("b"),
	})

	assert.Equal(t, []int64{10, -1, 20}, sizes)
}

func TestMap_SizesForKeys_TouchFailure(t *testing.T) {
	ctx := context.Background()
	m := eviction.NewMap[*testEntry](domain.EvictionPolicy{}, clockwork.NewFakeClock())

	broken := newTestEntry("broken", 10)
	broken.touchOK.Store(false)
	m.Insert(ctx, digestOf("broken"), broken)
	m.Insert(ctx, digestOf("ok"), newTestEntry("ok", 20))

	sizes := m.SizesForKeys(ctx, []domain.Digest{digestOf("broken"), digestOf("ok")})

	assert.Equal(t, []int64{-1, 20}, sizes)
	assert.Equal(t, int64(1), broken.unrefs.Load())
	assert.Equal(t, 1, m.Len())
}

func TestMap_SizeForKey(t *testing.T) {
	ctx := context.Background()
	m := eviction.NewMap[*testEntry](domain.EvictionPolicy{}, clockwork.NewFakeClock())

	m.Insert(ctx, digestOf("a"), newTestEntry("a", 7))

	assert.Equal(t, int64(7), m.SizeForKey(ctx, digestOf("a")))
	assert.Equal(t, int64(-1), m.SizeForKey(ctx, digestOf("b")))
}

func TestMap_InsertMany(t *testing.T) {
	ctx := context.Background()
	m := eviction.NewMap[*testEntry](domain.EvictionPolicy{}, clockwork.NewFakeClock())

	first := newTestEntry("first", 5)
	m.Insert(ctx, digestOf("a"), first)

	replaced := m.InsertMany(ctx, []eviction.Pair[*testEntry]{
		{Key: digestOf("a"), Value: newTestEntry("a2", 6)},
		{Key: digestOf("b"), Value: newTestEntry("b", 7)},
	})

	require.Len(t, replaced, 1)
	assert.Same(t, first, replaced[0])
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, int64(13), m.TotalBytes())

	assert.Empty(t, m.InsertMany(ctx, nil))
}
