package ports

import (
	"context"

	"github.com/bytes00000111/nativelink/internal/core/domain"
)

// FetchResult describes the outcome of fetching one derivation source.
type FetchResult struct {
	// Digest is the verified content address of the fetched archive.
	Digest domain.Digest
	// FromCache reports whether the archive was already in the store.
	FromCache bool
}

// Fetcher defines the interface for fetching pinned source archives into the
// store.
//
//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// Fetch downloads the derivation's source archive, verifies it against
	// the pinned hash and inserts it into the store. Concurrent fetches of
	// the same pin are collapsed into one download.
	Fetch(ctx context.Context, deriv *domain.ToolchainDerivation) (FetchResult, error)
}
