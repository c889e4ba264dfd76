package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytes00000111/nativelink/internal/core/domain"
	"github.com/bytes00000111/nativelink/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier re-hashes stored blobs against the digests they are filed under.
type Verifier struct {
	hasher ports.Hasher
	walker *Walker
	logger ports.Logger
}

// NewVerifier creates a new Verifier.
func NewVerifier(hasher ports.Hasher, walker *Walker, logger ports.Logger) *Verifier {
	return &Verifier{
		hasher: hasher,
		walker: walker,
		logger: logger,
	}
}

// Verify re-hashes every blob under the workspace's store and reports digest
// mismatches. Files that do not parse as digests (temp files, strays) are
// skipped. A non-empty mismatch list is not an error.
func (v *Verifier) Verify(ctx context.Context, root string) (ports.VerifyReport, error) {
	storeDir := domain.DefaultStorePath(root)
	if _, err := os.Stat(storeDir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ports.VerifyReport{}, nil
		}
		return ports.VerifyReport{}, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var report ports.VerifyReport
	for path := range v.walker.WalkFiles(storeDir, nil) {
		if err := ctx.Err(); err != nil {
			return ports.VerifyReport{}, err
		}

		want, err := domain.ParseDigest(filepath.Base(path))
		if err != nil {
			if !strings.HasPrefix(filepath.Base(path), "tmp-") {
				v.logger.Warn("skipping unrecognized store file " + path)
			}
			continue
		}

		got, err := v.hasher.DigestFile(path)
		if err != nil {
			return ports.VerifyReport{}, err
		}

		report.Checked++
		if got != want {
			report.Mismatches = append(report.Mismatches, ports.VerifyMismatch{
				Path: path,
				Want: want,
				Got:  got,
			})
		}
	}

	return report, nil
}
