package domain

import "time"

const (
	// DefaultDaemonIdleTimeout is how long the daemon lingers without
	// activity before shutting itself down.
	DefaultDaemonIdleTimeout = 15 * time.Minute

	// DefaultMaxBytes bounds the store when no config file sets a policy.
	DefaultMaxBytes = 10 << 30 // 10 GiB
)

// Settings is the resolved workspace configuration.
type Settings struct {
	// Root is the workspace root directory.
	Root string
	// Policy bounds the content addressable store.
	Policy EvictionPolicy
	// DaemonIdleTimeout is the daemon inactivity timeout.
	DaemonIdleTimeout time.Duration
	// MetricsAddr is the optional "host:port" for the Prometheus listener.
	// Empty disables the listener.
	MetricsAddr string
	// Verbose enables debug logging.
	Verbose bool
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings(root string) *Settings {
	return &Settings{
		Root:              root,
		Policy:            EvictionPolicy{MaxBytes: DefaultMaxBytes},
		DaemonIdleTimeout: DefaultDaemonIdleTimeout,
	}
}
