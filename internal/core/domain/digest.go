// Package domain contains the core domain types for nativelink.
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Sha256HexLen is the length of a lowercase hex encoded SHA-256 hash.
const Sha256HexLen = 64

// Digest is the content address of a blob: the SHA-256 of its bytes plus its
// size. The size participates in the identity so that a truncated blob can
// never alias a complete one.
type Digest struct {
	hash string
	size int64
}

// NewDigest creates a Digest from a lowercase hex SHA-256 string and a size.
func NewDigest(hexHash string, size int64) (Digest, error) {
	if len(hexHash) != Sha256HexLen {
		return Digest{}, zerr.With(ErrInvalidDigest, "hash", hexHash)
	}
	if _, err := hex.DecodeString(hexHash); err != nil {
		return Digest{}, zerr.With(ErrInvalidDigest, "hash", hexHash)
	}
	if strings.ToLower(hexHash) != hexHash {
		return Digest{}, zerr.With(ErrInvalidDigest, "hash", hexHash)
	}
	if size < 0 {
		return Digest{}, zerr.With(ErrInvalidDigest, "size", strconv.FormatInt(size, 10))
	}
	return Digest{hash: hexHash, size: size}, nil
}

// DigestFromBytes computes the Digest of a byte slice.
func DigestFromBytes(data []byte) Digest {
	sum := sha256.Sum256(data)
	return Digest{hash: hex.EncodeToString(sum[:]), size: int64(len(data))}
}

// ParseDigest parses the "<hex>-<size>" form produced by String.
func ParseDigest(s string) (Digest, error) {
	idx := strings.LastIndexByte(s, '-')
	if idx < 0 {
		return Digest{}, zerr.With(ErrInvalidDigest, "digest", s)
	}
	size, err := strconv.ParseInt(s[idx+1:], 10, 64)
	if err != nil {
		return Digest{}, zerr.With(ErrInvalidDigest, "digest", s)
	}
	return NewDigest(s[:idx], size)
}

// Hash returns the lowercase hex SHA-256 of the blob.
func (d Digest) Hash() string { return d.hash }

// Size returns the blob size in bytes.
func (d Digest) Size() int64 { return d.size }

// IsZero reports whether the digest is the zero value.
func (d Digest) IsZero() bool { return d.hash == "" }

// String returns the canonical "<hex>-<size>" form.
func (d Digest) String() string {
	return fmt.Sprintf("%s-%d", d.hash, d.size)
}

// ShortHash returns a truncated hash suitable for log lines.
func (d Digest) ShortHash() string {
	if len(d.hash) < 12 {
		return d.hash
	}
	return d.hash[:12]
}

// MarshalText implements encoding.TextMarshaler.
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Digest) UnmarshalText(text []byte) error {
	parsed, err := ParseDigest(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
