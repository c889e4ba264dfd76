package domain

// ToolchainDerivation describes how to obtain and verify a pinned third-party
// toolchain: a source archive addressed by content hash, the hash over its
// vendored dependencies and optional local patches applied on top.
type ToolchainDerivation struct {
	// Pname is the package name without version.
	Pname InternedString
	// Version is the upstream version string.
	Version string
	// SrcURL is where the source archive is fetched from.
	SrcURL string
	// SrcSha256 is the expected lowercase hex SHA-256 of the archive bytes.
	SrcSha256 string
	// SrcSize is the expected archive size in bytes when known; zero means
	// unknown and only the hash is checked.
	SrcSize int64
	// VendorSha256 pins the vendored third-party dependency tree.
	VendorSha256 string
	// Patches are local patch files applied after fetching, relative to the
	// pins file directory.
	Patches []string
	// Meta carries descriptive metadata that never affects the build.
	Meta DerivationMeta
}

// DerivationMeta is the non-functional metadata of a derivation.
type DerivationMeta struct {
	Description string
	Homepage    string
	License     string
}

// SrcDigest returns the Digest of the pinned source archive. An error means
// the pinned hash itself is malformed.
func (d *ToolchainDerivation) SrcDigest() (Digest, error) {
	return NewDigest(d.SrcSha256, d.SrcSize)
}
