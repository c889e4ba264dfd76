// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"github.com/bytes00000111/nativelink/internal/core/domain"
)

// BlobStore defines the interface for the evicting content addressable store.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BlobStore interface {
	// Put streams r into the store and returns the resulting digest.
	Put(ctx context.Context, r io.Reader) (domain.Digest, error)

	// PutVerified streams r into the store, failing with ErrDigestMismatch
	// when the bytes do not hash to want.
	PutVerified(ctx context.Context, want domain.Digest, r io.Reader) error

	// Get opens the blob for reading and marks it recently used.
	// A missing digest returns ErrBlobNotFound.
	Get(ctx context.Context, digest domain.Digest) (io.ReadCloser, error)

	// Sizes returns the stored size for each digest, -1 for misses.
	// Hits are marked recently used.
	Sizes(ctx context.Context, digests []domain.Digest) []int64

	// Remove deletes a blob. It reports whether the blob existed.
	Remove(ctx context.Context, digest domain.Digest) bool

	// Stats returns current store counters.
	Stats() StoreStats

	// Flush persists the eviction index so a restart keeps entry ages.
	Flush(ctx context.Context) error
}

// StoreStats is a snapshot of store occupancy.
type StoreStats struct {
	// Items is the number of live blobs.
	Items int64
	// TotalBytes is the byte sum over live blobs.
	TotalBytes int64
	// EvictedItems counts entries removed by policy since startup.
	EvictedItems int64
	// EvictedBytes counts bytes removed by policy since startup.
	EvictedBytes int64
}
