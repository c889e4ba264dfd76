// Package app implements the application layer for nativelink.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytes00000111/nativelink/internal/adapters/daemon"
	"github.com/bytes00000111/nativelink/internal/adapters/detector"
	"github.com/bytes00000111/nativelink/internal/adapters/fs"
	"github.com/bytes00000111/nativelink/internal/adapters/linear"
	"github.com/bytes00000111/nativelink/internal/adapters/metrics"
	"github.com/bytes00000111/nativelink/internal/adapters/pins"
	"github.com/bytes00000111/nativelink/internal/adapters/tui"
	"github.com/bytes00000111/nativelink/internal/adapters/watcher"
	"github.com/bytes00000111/nativelink/internal/core/domain"
	"github.com/bytes00000111/nativelink/internal/core/ports"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	store        ports.BlobStore
	pinsLoader   ports.PinsLoader
	fetcher      ports.Fetcher
	verifier     ports.Verifier
	connector    ports.DaemonConnector
	logger       ports.Logger
	tracer       ports.Tracer
	stdout       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	store ports.BlobStore,
	pinsLoader ports.PinsLoader,
	fetcher ports.Fetcher,
	verifier ports.Verifier,
	connector ports.DaemonConnector,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		store:        store,
		pinsLoader:   pinsLoader,
		fetcher:      fetcher,
		verifier:     verifier,
		connector:    connector,
		logger:       log,
		tracer:       tracer,
		stdout:       os.Stdout,
	}
}

// WithOutput redirects user-facing output.
// This is primarily used for testing.
func (a *App) WithOutput(stdout io.Writer) *App {
	a.stdout = stdout
	return a
}

func (a *App) root() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to determine working directory")
	}
	return a.configLoader.DiscoverRoot(cwd)
}

// Put streams r into the cache through the daemon, spawning it when needed,
// and returns the resulting digest.
func (a *App) Put(ctx context.Context, r io.Reader) (domain.Digest, error) {
	ctx, span := a.tracer.Start(ctx, "cache.put")
	defer span.End()

	root, err := a.root()
	if err != nil {
		span.SetError(err)
		return domain.Digest{}, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		span.SetError(err)
		return domain.Digest{}, zerr.Wrap(err, "failed to read input")
	}

	client, err := a.connector.Connect(ctx, root)
	if err != nil {
		span.SetError(err)
		return domain.Digest{}, err
	}
	defer func() { _ = client.Close() }()

	digest, err := client.Put(ctx, data)
	if err != nil {
		span.SetError(err)
		return domain.Digest{}, err
	}
	return digest, nil
}

// Get retrieves a blob from the cache through the daemon and writes it to w.
func (a *App) Get(ctx context.Context, rawDigest string, w io.Writer) error {
	ctx, span := a.tracer.Start(ctx, "cache.get", ports.WithAttribute("digest", rawDigest))
	defer span.End()

	digest, err := domain.ParseDigest(rawDigest)
	if err != nil {
		span.SetError(err)
		return err
	}

	root, err := a.root()
	if err != nil {
		span.SetError(err)
		return err
	}

	client, err := a.connector.Connect(ctx, root)
	if err != nil {
		span.SetError(err)
		return err
	}
	defer func() { _ = client.Close() }()

	data, err := client.Get(ctx, digest)
	if err != nil {
		span.SetError(err)
		return err
	}
	if _, err := w.Write(data); err != nil {
		span.SetError(err)
		return zerr.Wrap(err, "failed to write blob")
	}
	return nil
}

// Contains reports the cached size of each digest, -1 for misses.
func (a *App) Contains(ctx context.Context, rawDigests []string) ([]int64, error) {
	digests := make([]domain.Digest, len(rawDigests))
	for i, raw := range rawDigests {
		digest, err := domain.ParseDigest(raw)
		if err != nil {
			return nil, err
		}
		digests[i] = digest
	}

	root, err := a.root()
	if err != nil {
		return nil, err
	}

	client, err := a.connector.Connect(ctx, root)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()

	return client.Sizes(ctx, digests)
}

// Verify re-hashes every blob in the workspace store and reports mismatches.
func (a *App) Verify(ctx context.Context) (ports.VerifyReport, error) {
	ctx, span := a.tracer.Start(ctx, "store.verify")
	defer span.End()

	root, err := a.root()
	if err != nil {
		span.SetError(err)
		return ports.VerifyReport{}, err
	}

	report, err := a.verifier.Verify(ctx, root)
	if err != nil {
		span.SetError(err)
		return ports.VerifyReport{}, err
	}
	if len(report.Mismatches) > 0 {
		span.SetError(domain.ErrVerifyFailed)
	}
	return report, nil
}

// FetchOutcome pairs one derivation with its fetch result.
type FetchOutcome struct {
	Pname  string
	Result ports.FetchResult
}

// Fetch downloads the named toolchain sources into the store. With no names
// every pinned derivation is fetched. Fetches run concurrently.
func (a *App) Fetch(ctx context.Context, names []string) ([]FetchOutcome, error) {
	ctx, span := a.tracer.Start(ctx, "pins.fetch")
	defer span.End()

	root, err := a.root()
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	pinned, err := a.pinsLoader.Load(root)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	var targets []*domain.ToolchainDerivation
	if len(names) == 0 {
		for i := range pinned.Derivations {
			targets = append(targets, &pinned.Derivations[i])
		}
	} else {
		for _, name := range names {
			deriv := pinned.Derivation(name)
			if deriv == nil {
				err := zerr.With(domain.ErrDerivationNotFound, "pname", name)
				span.SetError(err)
				return nil, err
			}
			targets = append(targets, deriv)
		}
	}

	outcomes := make([]FetchOutcome, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	for i, deriv := range targets {
		g.Go(func() error {
			result, err := a.fetcher.Fetch(gctx, deriv)
			if err != nil {
				return err
			}
			outcomes[i] = FetchOutcome{Pname: deriv.Pname.String(), Result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.SetError(err)
		return nil, err
	}
	return outcomes, nil
}

// Render returns the canonical text form of the workspace's pin manifest.
func (a *App) Render(_ context.Context) (string, error) {
	root, err := a.root()
	if err != nil {
		return "", err
	}
	pinned, err := a.pinsLoader.Load(root)
	if err != nil {
		return "", err
	}
	return pins.Render(&pinned.Manifest), nil
}

// GCResult summarizes a garbage collection pass.
type GCResult struct {
	// Removed is the number of unpinned blobs deleted.
	Removed int
	// FreedBytes is the total size of the deleted blobs.
	FreedBytes int64
}

// GC removes cached blobs that no pinned derivation references. Without a
// pins file nothing is considered garbage and the store is left untouched.
func (a *App) GC(ctx context.Context) (GCResult, error) {
	ctx, span := a.tracer.Start(ctx, "store.gc")
	defer span.End()

	root, err := a.root()
	if err != nil {
		span.SetError(err)
		return GCResult{}, err
	}

	pinned, err := a.pinsLoader.Load(root)
	if err != nil {
		if strings.Contains(err.Error(), domain.ErrPinsNotFound.Error()) {
			a.logger.Debug("no pins file, skipping garbage collection")
			return GCResult{}, nil
		}
		span.SetError(err)
		return GCResult{}, err
	}

	keep := make(map[domain.Digest]bool, len(pinned.Derivations))
	for i := range pinned.Derivations {
		digest, err := pinned.Derivations[i].SrcDigest()
		if err != nil {
			continue
		}
		keep[digest] = true
	}

	var result GCResult
	walker := fs.NewWalker()
	for path := range walker.WalkFiles(domain.DefaultStorePath(root), nil) {
		digest, err := domain.ParseDigest(filepath.Base(path))
		if err != nil {
			// Index file or leftover temp file, not a blob.
			continue
		}
		if keep[digest] {
			continue
		}
		if a.store.Remove(ctx, digest) {
			result.Removed++
			result.FreedBytes += digest.Size()
			a.logger.Debug(fmt.Sprintf("collected %s (%d bytes)", digest.ShortHash(), digest.Size()))
		}
	}

	if err := a.store.Flush(ctx); err != nil {
		span.SetError(err)
		return result, err
	}
	return result, nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Store  bool
	Daemon bool
}

// Clean removes cache state based on the provided options. The daemon is
// stopped first so it cannot resurrect the index from memory.
func (a *App) Clean(ctx context.Context, options CleanOptions) error {
	root, err := a.root()
	if err != nil {
		return err
	}

	if a.connector.IsRunning(root) {
		if err := a.StopDaemon(ctx); err != nil {
			return err
		}
	}

	var errs error

	// Helper to remove a path and log the action
	remove := func(path string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	if options.Store {
		remove(domain.DefaultStorePath(root), "blob store")
		remove(domain.DefaultIndexPath(root), "cache index")
	}

	if options.Daemon {
		remove(domain.DefaultDaemonSocketPath(root), "daemon socket")
		remove(domain.DefaultDaemonPIDPath(root), "daemon pidfile")
		remove(domain.DefaultDaemonLogPath(root), "daemon log")
	}

	return errs
}

// DaemonStatus reports the daemon's state without spawning it.
func (a *App) DaemonStatus(ctx context.Context) (*ports.DaemonStatus, error) {
	root, err := a.root()
	if err != nil {
		return nil, err
	}

	if !a.connector.IsRunning(root) {
		return &ports.DaemonStatus{Running: false}, nil
	}

	client, err := a.connector.Connect(ctx, root)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()

	return client.Status(ctx)
}

// StopDaemon asks a running daemon to shut down.
func (a *App) StopDaemon(ctx context.Context) error {
	root, err := a.root()
	if err != nil {
		return err
	}

	if !a.connector.IsRunning(root) {
		return domain.ErrDaemonNotRunning
	}

	client, err := a.connector.Connect(ctx, root)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	return client.Shutdown(ctx)
}

// ServeDaemon runs the daemon server in the current process until the
// context is cancelled or the idle timeout fires. The optional Prometheus
// listener runs alongside it when the config sets a metrics address.
func (a *App) ServeDaemon(ctx context.Context) error {
	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to determine working directory")
	}
	settings, err := a.configLoader.Load(cwd)
	if err != nil {
		return err
	}

	configWatcher, err := watcher.NewWatcher()
	if err != nil {
		return err
	}

	lifecycle := daemon.NewLifecycle(clockwork.NewRealClock(), settings.DaemonIdleTimeout)
	server := daemon.NewServerWithDeps(
		settings.Root,
		lifecycle,
		a.store,
		a.pinsLoader,
		a.configLoader,
		configWatcher,
		a.logger,
		a.tracer,
	)
	defer func() {
		_ = a.tracer.Shutdown(ctx)
	}()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Serve(ctx)
	})
	if settings.MetricsAddr != "" {
		exporter := metrics.NewExporter(a.store)
		g.Go(func() error {
			return exporter.Serve(ctx, settings.MetricsAddr)
		})
	}
	return g.Wait()
}

// StatusOptions configuration for the Status method.
type StatusOptions struct {
	Watch      bool
	OutputMode string
}

// Status prints the daemon status once, or keeps a live view open with
// Watch. The live view picks the bubbletea UI on a TTY and a line printer
// under CI, overridable through OutputMode.
func (a *App) Status(ctx context.Context, opts StatusOptions) error {
	fetch := func(ctx context.Context) (*ports.DaemonStatus, error) {
		status, err := a.DaemonStatus(ctx)
		if err != nil {
			return nil, err
		}
		if !status.Running {
			return nil, domain.ErrDaemonNotRunning
		}
		return status, nil
	}

	if !opts.Watch {
		status, err := fetch(ctx)
		linear.NewPrinter(a.stdout).Print(status, err)
		return nil
	}

	autoMode := detector.DetectEnvironment()
	mode := detector.ResolveMode(autoMode, opts.OutputMode)
	if mode == detector.ModeTUI {
		return tui.Run(ctx, fetch)
	}
	return linear.NewPrinter(a.stdout).Watch(ctx, fetch, time.Second)
}
