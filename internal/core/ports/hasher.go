package ports

import "github.com/bytes00000111/nativelink/internal/core/domain"

// Hasher defines the interface for hashing file contents.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash computes the XXHash of a file's content. It is the
	// cheap hash used for change detection, not for content addressing.
	ComputeFileHash(path string) (uint64, error)

	// DigestFile computes the content address (SHA-256 + size) of a file.
	DigestFile(path string) (domain.Digest, error)
}
