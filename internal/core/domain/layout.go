package domain

import (
	"os"
	"path/filepath"
)

const (
	// NativeLinkDirName is the name of the internal workspace directory.
	NativeLinkDirName = ".nativelink"

	// StoreDirName is the name of the content addressable store directory.
	StoreDirName = "store"

	// IndexFileName is the name of the persisted cache index file.
	IndexFileName = "index.json"

	// ConfigFileName is the name of the workspace configuration file.
	ConfigFileName = "nativelink.yaml"

	// PinsFileName is the name of the pins file.
	PinsFileName = "nativelink.pins.yaml"

	// SocketFileName is the name of the daemon Unix socket.
	SocketFileName = "daemon.sock"

	// PIDFileName is the name of the daemon pidfile.
	PIDFileName = "daemon.pid"

	// LogFileName is the name of the daemon log file.
	LogFileName = "daemon.log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600

	// SocketPerm restricts the daemon socket to the owning user.
	SocketPerm = os.FileMode(0o600)
)

// DefaultNativeLinkPath returns the root directory for nativelink metadata
// under the given workspace root.
func DefaultNativeLinkPath(root string) string {
	return filepath.Join(root, NativeLinkDirName)
}

// DefaultStorePath returns the path of the content addressable store.
func DefaultStorePath(root string) string {
	return filepath.Join(root, NativeLinkDirName, StoreDirName)
}

// DefaultIndexPath returns the path of the persisted cache index.
func DefaultIndexPath(root string) string {
	return filepath.Join(root, NativeLinkDirName, IndexFileName)
}

// DefaultDaemonSocketPath returns the path of the daemon Unix socket.
func DefaultDaemonSocketPath(root string) string {
	return filepath.Join(root, NativeLinkDirName, SocketFileName)
}

// DefaultDaemonPIDPath returns the path of the daemon pidfile.
func DefaultDaemonPIDPath(root string) string {
	return filepath.Join(root, NativeLinkDirName, PIDFileName)
}

// DefaultDaemonLogPath returns the path of the daemon log file.
func DefaultDaemonLogPath(root string) string {
	return filepath.Join(root, NativeLinkDirName, LogFileName)
}
