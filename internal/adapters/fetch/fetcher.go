// Package fetch downloads pinned toolchain sources into the blob store.
package fetch

import (
	"context"
	"net/http"
	"time"

	"github.com/bytes00000111/nativelink/internal/core/domain"
	"github.com/bytes00000111/nativelink/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

const downloadTimeout = 5 * time.Minute

var _ ports.Fetcher = (*Fetcher)(nil)

// Fetcher implements ports.Fetcher over HTTP. Concurrent fetches of the same
// source hash are collapsed into a single download.
type Fetcher struct {
	store      ports.BlobStore
	logger     ports.Logger
	httpClient *http.Client
	group      singleflight.Group
}

// NewFetcher creates a Fetcher storing verified archives in store.
func NewFetcher(store ports.BlobStore, logger ports.Logger) *Fetcher {
	return newFetcherWithClient(store, logger, &http.Client{Timeout: downloadTimeout})
}

// newFetcherWithClient creates a Fetcher with a custom http client (used for testing).
func newFetcherWithClient(store ports.BlobStore, logger ports.Logger, client *http.Client) *Fetcher {
	return &Fetcher{
		store:      store,
		logger:     logger,
		httpClient: client,
	}
}

// Fetch downloads the derivation's pinned source archive, verifies it against
// the pinned hash and inserts it into the store. Archives already present are
// not downloaded again.
func (f *Fetcher) Fetch(ctx context.Context, derivation *domain.ToolchainDerivation) (ports.FetchResult, error) {
	want, err := derivation.SrcDigest()
	if err != nil {
		return ports.FetchResult{}, zerr.With(err, "pname", derivation.Pname.String())
	}

	if sizes := f.store.Sizes(ctx, []domain.Digest{want}); sizes[0] >= 0 {
		return ports.FetchResult{Digest: want, FromCache: true}, nil
	}

	result, err, _ := f.group.Do(want.String(), func() (any, error) {
		return f.download(ctx, derivation, want)
	})
	if err != nil {
		return ports.FetchResult{}, err
	}

	fetched, ok := result.(ports.FetchResult)
	if !ok {
		return ports.FetchResult{}, domain.ErrFetchFailed
	}
	return fetched, nil
}

func (f *Fetcher) download(ctx context.Context, derivation *domain.ToolchainDerivation, want domain.Digest) (ports.FetchResult, error) {
	// A concurrent fetch may have completed while this call waited its turn.
	if sizes := f.store.Sizes(ctx, []domain.Digest{want}); sizes[0] >= 0 {
		return ports.FetchResult{Digest: want, FromCache: true}, nil
	}

	f.logger.Debug("fetching " + derivation.SrcURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, derivation.SrcURL, http.NoBody)
	if err != nil {
		return ports.FetchResult{}, zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return ports.FetchResult{}, zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		fetchErr := zerr.With(domain.ErrFetchFailed, "status_code", resp.StatusCode)
		return ports.FetchResult{}, zerr.With(fetchErr, "url", derivation.SrcURL)
	}

	if derivation.SrcSize > 0 {
		if err := f.store.PutVerified(ctx, want, resp.Body); err != nil {
			return ports.FetchResult{}, zerr.With(err, "url", derivation.SrcURL)
		}
		return ports.FetchResult{Digest: want}, nil
	}

	// Size unpinned: store first, then compare hashes.
	got, err := f.store.Put(ctx, resp.Body)
	if err != nil {
		return ports.FetchResult{}, zerr.With(err, "url", derivation.SrcURL)
	}
	if got.Hash() != want.Hash() {
		f.store.Remove(ctx, got)
		mismatchErr := zerr.With(domain.ErrDigestMismatch, "expected_sha256", want.Hash())
		mismatchErr = zerr.With(mismatchErr, "actual_sha256", got.Hash())
		return ports.FetchResult{}, zerr.With(mismatchErr, "url", derivation.SrcURL)
	}

	return ports.FetchResult{Digest: got}, nil
}
