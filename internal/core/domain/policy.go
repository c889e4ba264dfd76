package domain

// EvictionPolicy bounds the in-memory cache index and, through it, the data
// on disk. A zero value for any field disables that limit.
type EvictionPolicy struct {
	// MaxBytes is the byte ceiling over all live entries.
	MaxBytes int64
	// EvictBytes, when set together with MaxBytes, makes a triggered
	// eviction continue down to MaxBytes-EvictBytes instead of stopping at
	// the ceiling. This batches evictions instead of evicting one entry on
	// every insert at the boundary.
	EvictBytes int64
	// MaxAgeSeconds evicts entries that have not been touched for longer
	// than this many seconds.
	MaxAgeSeconds int32
	// MaxCount is the ceiling on the number of live entries.
	MaxCount int64
}

// Unbounded reports whether no limit is configured at all.
func (p EvictionPolicy) Unbounded() bool {
	return p.MaxBytes == 0 && p.MaxAgeSeconds == 0 && p.MaxCount == 0
}
