// Package cas implements the evicting content addressable blob store.
package cas

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bytes00000111/nativelink/internal/core/domain"
	"github.com/bytes00000111/nativelink/internal/core/ports"
	"github.com/bytes00000111/nativelink/internal/engine/eviction"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/zerr"
)

var _ ports.BlobStore = (*Store)(nil)

// Store implements ports.BlobStore with one file per blob under
// <root>/.nativelink/store/<aa>/<digest>, bounded by an eviction map.
type Store struct {
	dir       string
	indexPath string
	index     *eviction.Map[*blobEntry]
	clock     clockwork.Clock
	logger    ports.Logger
}

// NewStore opens (or creates) the store for the given workspace root. The
// in-memory index is restored from the persisted index file when present,
// otherwise rebuilt by scanning the store directory.
func NewStore(root string, policy domain.EvictionPolicy, clock clockwork.Clock, logger ports.Logger) (*Store, error) {
	dir := domain.DefaultStorePath(root)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	s := &Store{
		dir:       dir,
		indexPath: domain.DefaultIndexPath(root),
		index:     eviction.NewMap[*blobEntry](policy, clock),
		clock:     clock,
		logger:    logger,
	}

	if err := s.restoreIndex(context.Background()); err != nil {
		// A corrupt index is not fatal; fall back to scanning the files.
		logger.Warn("cache index unreadable, rescanning store: " + err.Error())
		if scanErr := s.scan(context.Background()); scanErr != nil {
			return nil, scanErr
		}
	}

	return s, nil
}

// Counters exposes the eviction counters for metrics collection.
func (s *Store) Counters() *eviction.Counters {
	return s.index.Counters()
}

func (s *Store) blobPath(digest domain.Digest) string {
	name := digest.String()
	return filepath.Join(s.dir, name[:2], name)
}

// Put streams r into the store and returns the resulting digest.
func (s *Store) Put(ctx context.Context, r io.Reader) (domain.Digest, error) {
	digest, tmpPath, err := s.writeTemp(r)
	if err != nil {
		return domain.Digest{}, err
	}
	if err := s.commit(ctx, digest, tmpPath); err != nil {
		return domain.Digest{}, err
	}
	return digest, nil
}

// PutVerified streams r into the store, failing when the bytes do not hash
// to want.
func (s *Store) PutVerified(ctx context.Context, want domain.Digest, r io.Reader) error {
	digest, tmpPath, err := s.writeTemp(r)
	if err != nil {
		return err
	}
	if digest != want {
		_ = os.Remove(tmpPath)
		err := zerr.With(domain.ErrDigestMismatch, "want", want.String())
		return zerr.With(err, "got", digest.String())
	}
	return s.commit(ctx, digest, tmpPath)
}

// writeTemp copies r to a temp file in the store directory, hashing as it
// goes, and returns the content digest and temp path.
func (s *Store) writeTemp(r io.Reader) (domain.Digest, string, error) {
	f, err := os.CreateTemp(s.dir, "tmp-*")
	if err != nil {
		return domain.Digest{}, "", zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	tmpPath := f.Name()

	hasher := sha256.New()
	size, err := io.Copy(io.MultiWriter(f, hasher), r)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return domain.Digest{}, "", zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	digest, err := domain.NewDigest(hex.EncodeToString(hasher.Sum(nil)), size)
	if err != nil {
		_ = os.Remove(tmpPath)
		return domain.Digest{}, "", err
	}
	return digest, tmpPath, nil
}

// commit moves a verified temp file into place and indexes it.
func (s *Store) commit(ctx context.Context, digest domain.Digest, tmpPath string) error {
	// Fast path: the blob is already live. Touch it instead of replacing,
	// because replacement would unref (and delete) the file the new entry
	// shares. Two racing first-time puts of the same digest can still
	// collide; the loser's entry fails its next Touch and self-heals as a
	// miss.
	if s.index.SizeForKey(ctx, digest) >= 0 {
		_ = os.Remove(tmpPath)
		return nil
	}

	path := s.blobPath(digest)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	s.index.Insert(ctx, digest, &blobEntry{path: path, size: digest.Size(), clock: s.clock})
	return nil
}

// Get opens the blob for reading and marks it recently used.
func (s *Store) Get(ctx context.Context, digest domain.Digest) (io.ReadCloser, error) {
	entry, ok := s.index.Get(ctx, digest)
	if !ok {
		return nil, zerr.With(domain.ErrBlobNotFound, "digest", digest.String())
	}

	f, err := os.Open(entry.path) //nolint:gosec // Path is derived from the digest, not user input
	if err != nil {
		// The file vanished underneath the index.
		s.index.Remove(ctx, digest)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrBlobNotFound, "digest", digest.String())
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	return f, nil
}

// Sizes returns the stored size for each digest, -1 for misses.
func (s *Store) Sizes(ctx context.Context, digests []domain.Digest) []int64 {
	return s.index.SizesForKeys(ctx, digests)
}

// Remove deletes a blob. It reports whether the blob existed.
func (s *Store) Remove(ctx context.Context, digest domain.Digest) bool {
	return s.index.Remove(ctx, digest)
}

// Stats returns current store counters.
func (s *Store) Stats() ports.StoreStats {
	counters := s.index.Counters().Snapshot()
	return ports.StoreStats{
		Items:        int64(s.index.Len()),
		TotalBytes:   s.index.TotalBytes(),
		EvictedItems: counters.EvictedItems,
		EvictedBytes: counters.EvictedBytes,
	}
}

// Flush persists the eviction index so a restart keeps entry ages.
func (s *Store) Flush(ctx context.Context) error {
	idx := s.index.BuildIndex(ctx)

	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrIndexMarshalFailed.Error())
	}

	tmpPath := s.indexPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(tmpPath, s.indexPath); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

// restoreIndex loads the persisted index. Entries whose blob file is gone or
// has an unexpected size are skipped.
func (s *Store) restoreIndex(ctx context.Context) error {
	data, err := os.ReadFile(s.indexPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s.scan(ctx)
		}
		return zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var idx domain.CacheIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		return zerr.Wrap(err, domain.ErrIndexUnmarshalFailed.Error())
	}

	s.index.RestoreIndex(ctx, idx, func(digest domain.Digest) (*blobEntry, bool) {
		path := s.blobPath(digest)
		info, err := os.Stat(path)
		if err != nil || info.Size() != digest.Size() {
			return nil, false
		}
		return &blobEntry{path: path, size: digest.Size(), clock: s.clock}, true
	})
	return nil
}

// scan rebuilds the index from the store directory, oldest mtime first so
// recency order approximates the pre-crash state.
func (s *Store) scan(ctx context.Context) error {
	type scanned struct {
		digest domain.Digest
		path   string
		mtime  int64
	}
	var found []scanned

	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		digest, parseErr := domain.ParseDigest(d.Name())
		if parseErr != nil {
			// Stale temp file from an interrupted put.
			_ = os.Remove(path)
			return nil
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			return nil
		}
		if info.Size() != digest.Size() {
			s.logger.Warn(fmt.Sprintf("removing truncated blob %s", digest.ShortHash()))
			_ = os.Remove(path)
			return nil
		}
		found = append(found, scanned{digest: digest, path: path, mtime: info.ModTime().UnixNano()})
		return nil
	})
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	sort.Slice(found, func(i, j int) bool { return found[i].mtime < found[j].mtime })

	pairs := make([]eviction.Pair[*blobEntry], 0, len(found))
	for _, f := range found {
		pairs = append(pairs, eviction.Pair[*blobEntry]{
			Key:   f.digest,
			Value: &blobEntry{path: f.path, size: f.digest.Size(), clock: s.clock},
		})
	}
	s.index.InsertMany(ctx, pairs)
	return nil
}
