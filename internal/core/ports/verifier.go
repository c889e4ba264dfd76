package ports

import (
	"context"

	"github.com/bytes00000111/nativelink/internal/core/domain"
)

// VerifyMismatch records one blob whose content no longer matches its digest.
type VerifyMismatch struct {
	// Path is the blob file on disk.
	Path string
	// Want is the digest the file is stored under.
	Want domain.Digest
	// Got is the digest the file currently hashes to.
	Got domain.Digest
}

// VerifyReport summarizes a store integrity check.
type VerifyReport struct {
	// Checked is the number of blobs re-hashed.
	Checked int
	// Mismatches lists corrupt blobs, empty when the store is intact.
	Mismatches []VerifyMismatch
}

// Verifier defines the interface for checking store integrity.
//
//go:generate mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// Verify re-hashes every blob under the workspace's store and reports
	// digest mismatches. A non-empty mismatch list is not an error.
	Verify(ctx context.Context, root string) (VerifyReport, error)
}
