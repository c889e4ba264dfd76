package eviction

import "sync/atomic"

// Counters are the map's lifetime counters. They are read by the metrics
// adapter and by daemon status reporting.
type Counters struct {
	EvictedItems  atomic.Int64
	EvictedBytes  atomic.Int64
	ReplacedItems atomic.Int64
	ReplacedBytes atomic.Int64
	RemovedItems  atomic.Int64
	RemovedBytes  atomic.Int64
	InsertedBytes atomic.Int64
}

// Snapshot is a point-in-time copy of Counters.
type Snapshot struct {
	EvictedItems  int64
	EvictedBytes  int64
	ReplacedItems int64
	ReplacedBytes int64
	RemovedItems  int64
	RemovedBytes  int64
	InsertedBytes int64
}

// Snapshot returns a consistent-enough copy for reporting. Individual loads
// are atomic; the set is not taken under a lock.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		EvictedItems:  c.EvictedItems.Load(),
		EvictedBytes:  c.EvictedBytes.Load(),
		ReplacedItems: c.ReplacedItems.Load(),
		ReplacedBytes: c.ReplacedBytes.Load(),
		RemovedItems:  c.RemovedItems.Load(),
		RemovedBytes:  c.RemovedBytes.Load(),
		InsertedBytes: c.InsertedBytes.Load(),
	}
}
