package cas

import (
	"context"
	"os"

	"github.com/jonboulle/clockwork"
)

// blobEntry ties an eviction map entry to its blob file. The map owns the
// file: when the entry leaves the map, the file goes with it.
type blobEntry struct {
	path  string
	size  int64
	clock clockwork.Clock
}

// Size implements eviction.Entry.
func (e *blobEntry) Size() int64 { return e.size }

// Touch bumps the file mtime so an on-disk scan after a crash approximates
// the true recency order. A missing file fails the touch, which drops the
// entry from the map.
func (e *blobEntry) Touch(_ context.Context) bool {
	now := e.clock.Now()
	return os.Chtimes(e.path, now, now) == nil
}

// Unref deletes the blob file. It runs with the map lock held, so it must
// not call back into the store.
func (e *blobEntry) Unref(_ context.Context) {
	_ = os.Remove(e.path)
}
