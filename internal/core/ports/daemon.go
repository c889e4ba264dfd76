package ports

import (
	"context"
	"time"

	"github.com/bytes00000111/nativelink/internal/core/domain"
)

//go:generate mockgen -source=daemon.go -destination=mocks/mock_daemon.go -package=mocks

// DaemonStatus represents the current state of the daemon.
type DaemonStatus struct {
	Running       bool
	PID           int
	Uptime        time.Duration
	IdleRemaining time.Duration
	Cache         StoreStats
}

// DaemonClient defines the interface for communicating with the daemon.
type DaemonClient interface {
	// Ping checks if the daemon is alive and resets the inactivity timer.
	Ping(ctx context.Context) error

	// Status returns the current daemon status including cache stats.
	Status(ctx context.Context) (*DaemonStatus, error)

	// Shutdown requests a graceful daemon shutdown.
	Shutdown(ctx context.Context) error

	// Put stores a blob in the daemon's cache and returns its digest.
	Put(ctx context.Context, data []byte) (domain.Digest, error)

	// Get retrieves a blob by digest. A miss returns ErrBlobNotFound.
	Get(ctx context.Context, digest domain.Digest) ([]byte, error)

	// Sizes returns the stored size for each digest, -1 for misses.
	Sizes(ctx context.Context, digests []domain.Digest) ([]int64, error)

	// Close releases client resources.
	Close() error
}

// DaemonConnector manages daemon lifecycle from the CLI perspective.
type DaemonConnector interface {
	// Connect returns a client to the daemon, spawning it if necessary.
	Connect(ctx context.Context, root string) (DaemonClient, error)

	// IsRunning checks if the daemon process is currently running.
	IsRunning(root string) bool

	// Spawn starts a new daemon process in the background.
	Spawn(ctx context.Context, root string) error
}
