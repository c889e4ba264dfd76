package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidDigest is returned when a digest string or hash is malformed.
	ErrInvalidDigest = zerr.New("invalid digest")

	// ErrBlobNotFound is returned when a requested blob is not in the store.
	ErrBlobNotFound = zerr.New("blob not found")

	// ErrDigestMismatch is returned when fetched or stored bytes do not hash
	// to the expected digest.
	ErrDigestMismatch = zerr.New("digest mismatch")

	// ErrStoreCreateFailed is returned when the store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create store directory")

	// ErrStoreReadFailed is returned when a blob cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read blob")

	// ErrStoreWriteFailed is returned when a blob cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write blob")

	// ErrIndexMarshalFailed is returned when the cache index cannot be marshaled.
	ErrIndexMarshalFailed = zerr.New("failed to marshal cache index")

	// ErrIndexUnmarshalFailed is returned when the cache index cannot be unmarshaled.
	ErrIndexUnmarshalFailed = zerr.New("failed to unmarshal cache index")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file is found walking up
	// from the working directory.
	ErrConfigNotFound = zerr.New("could not find nativelink.yaml")

	// ErrPinsReadFailed is returned when the pins file cannot be read.
	ErrPinsReadFailed = zerr.New("failed to read pins file")

	// ErrPinsParseFailed is returned when the pins file cannot be parsed.
	ErrPinsParseFailed = zerr.New("failed to parse pins file")

	// ErrPinsNotFound is returned when the pins file does not exist.
	ErrPinsNotFound = zerr.New("could not find nativelink.pins.yaml")

	// ErrInvalidModuleName is returned when a module or dependency name
	// contains invalid characters.
	ErrInvalidModuleName = zerr.New("module name can only contain lowercase letters, digits, dots, hyphens and underscores")

	// ErrMissingVersion is returned when a dependency pin has no version.
	ErrMissingVersion = zerr.New("missing version")

	// ErrDuplicateDep is returned when the same dependency is pinned twice.
	ErrDuplicateDep = zerr.New("duplicate dependency pin")

	// ErrInvalidCompatLevel is returned when the compatibility level is negative.
	ErrInvalidCompatLevel = zerr.New("compatibility level must not be negative")

	// ErrOverridePathOutsideRoot is returned when a path override escapes the
	// workspace root.
	ErrOverridePathOutsideRoot = zerr.New("override path is outside the workspace")

	// ErrOverrideUnknownModule is returned when a path override names a
	// module that is not a declared dependency.
	ErrOverrideUnknownModule = zerr.New("override names an unpinned module")

	// ErrPatchNotFound is returned when a declared patch file does not exist.
	ErrPatchNotFound = zerr.New("patch file not found")

	// ErrFetchFailed is returned when a pinned source archive cannot be fetched.
	ErrFetchFailed = zerr.New("failed to fetch source archive")

	// ErrDerivationNotFound is returned when a requested derivation is not
	// declared in the pins file.
	ErrDerivationNotFound = zerr.New("derivation not found")

	// ErrDaemonNotRunning is returned when a command requires a running daemon.
	ErrDaemonNotRunning = zerr.New("daemon is not running")

	// ErrDaemonSpawnFailed is returned when the background daemon process
	// cannot be started.
	ErrDaemonSpawnFailed = zerr.New("failed to spawn daemon")

	// ErrVerifyFailed is returned when store verification finds corrupt blobs.
	ErrVerifyFailed = zerr.New("store verification failed")
)
