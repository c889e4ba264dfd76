package daemon

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"

	daemonv1 "github.com/bytes00000111/nativelink/api/daemon/v1"
	"github.com/bytes00000111/nativelink/internal/core/domain"
	"github.com/bytes00000111/nativelink/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server implements the gRPC daemon service on top of the blob store.
type Server struct {
	daemonv1.UnimplementedDaemonServer
	root         string
	lifecycle    *Lifecycle
	store        ports.BlobStore
	cache        *ManifestCache
	pinsLoader   ports.PinsLoader
	configLoader ports.ConfigLoader
	watcher      ports.Watcher
	logger       ports.Logger
	grpcServer   *grpc.Server
	listener     net.Listener
}

// NewServer creates a daemon server serving the given store.
func NewServer(root string, lifecycle *Lifecycle, store ports.BlobStore, logger ports.Logger) *Server {
	s := &Server{
		root:      root,
		lifecycle: lifecycle,
		store:     store,
		logger:    logger,
	}
	s.grpcServer = grpc.NewServer()
	daemonv1.RegisterDaemonServer(s.grpcServer, s)
	return s
}

// NewServerWithDeps creates a daemon server that additionally keeps a warm
// parsed-pins cache, invalidated by config file watch events.
func NewServerWithDeps(
	root string,
	lifecycle *Lifecycle,
	store ports.BlobStore,
	pinsLoader ports.PinsLoader,
	configLoader ports.ConfigLoader,
	watcher ports.Watcher,
	logger ports.Logger,
	tracer ports.Tracer,
) *Server {
	s := &Server{
		root:         root,
		lifecycle:    lifecycle,
		store:        store,
		cache:        NewManifestCache(),
		pinsLoader:   pinsLoader,
		configLoader: configLoader,
		watcher:      watcher,
		logger:       logger,
	}
	var opts []grpc.ServerOption
	if tracer != nil {
		opts = append(opts, grpc.UnaryInterceptor(traceUnary(tracer)))
	}
	s.grpcServer = grpc.NewServer(opts...)
	daemonv1.RegisterDaemonServer(s.grpcServer, s)
	return s
}

// traceUnary wraps every RPC handler in a span named after the method.
func traceUnary(tracer ports.Tracer) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		ctx, span := tracer.Start(ctx, info.FullMethod)
		defer span.End()

		resp, err := handler(ctx, req)
		if err != nil {
			span.SetError(err)
		}
		return resp, err
	}
}

// Serve starts the gRPC server on the workspace Unix socket and blocks until
// shutdown is triggered or ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	socketPath := domain.DefaultDaemonSocketPath(s.root)

	if err := os.MkdirAll(filepath.Dir(socketPath), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create daemon directory")
	}

	if err := os.Remove(socketPath); err != nil && !os.IsNotExist(err) {
		return zerr.Wrap(err, "failed to remove stale socket")
	}

	lis, err := net.Listen("unix", socketPath)
	if err != nil {
		return zerr.Wrap(err, "failed to listen on UDS")
	}
	s.listener = lis
	// Note: there is a brief window between socket creation and chmod where
	// the socket has default permissions.

	if err := os.Chmod(socketPath, domain.SocketPerm); err != nil {
		_ = lis.Close()
		return zerr.Wrap(err, "failed to set socket permissions")
	}

	if err := s.writePIDFile(); err != nil {
		return err
	}

	defer s.cleanup(ctx)

	watchCtx, cancelWatch := context.WithCancel(ctx)
	defer cancelWatch()
	if s.watcher != nil {
		go s.watchConfig(watchCtx)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.grpcServer.GracefulStop()
		return ctx.Err()
	case <-s.lifecycle.ShutdownChan():
		s.grpcServer.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) cleanup(ctx context.Context) {
	if err := s.store.Flush(ctx); err != nil {
		s.logger.Error(zerr.Wrap(err, "failed to flush store index"))
	}
	_ = os.Remove(domain.DefaultDaemonSocketPath(s.root))
	_ = os.Remove(domain.DefaultDaemonPIDPath(s.root))
}

// watchConfig keeps the parsed-pins cache in sync with the config and pins
// files on disk. Every change invalidates the cache and triggers a reload, so
// validation errors surface in the daemon log while the files are edited.
func (s *Server) watchConfig(ctx context.Context) {
	paths, err := s.configLoader.DiscoverConfigPaths(s.root)
	if err != nil {
		s.logger.Error(zerr.Wrap(err, "failed to discover config paths"))
		return
	}
	watchPaths := make([]string, 0, len(paths))
	for path := range paths {
		watchPaths = append(watchPaths, path)
	}
	if len(watchPaths) == 0 {
		return
	}

	if err := s.watcher.Start(ctx, watchPaths); err != nil {
		s.logger.Error(zerr.Wrap(err, "failed to start config watcher"))
		return
	}
	defer func() { _ = s.watcher.Stop() }()

	s.refreshPins(ctx)

	for event := range s.watcher.Events() {
		if ctx.Err() != nil {
			return
		}
		s.logger.Debug("config changed: " + event.Path)
		s.cache.Invalidate(s.root)
		s.refreshPins(ctx)
	}
}

// refreshPins reloads the pins file into the cache, logging validation
// failures.
func (s *Server) refreshPins(_ context.Context) {
	mtimes, err := s.configLoader.DiscoverConfigPaths(s.root)
	if err != nil {
		s.logger.Error(zerr.Wrap(err, "failed to discover config paths"))
		return
	}

	pins, err := s.pinsLoader.Load(s.root)
	if err != nil {
		if strings.Contains(err.Error(), domain.ErrPinsNotFound.Error()) {
			s.logger.Debug("no pins file in workspace")
			return
		}
		s.logger.Error(zerr.Wrap(err, "pins file is invalid"))
		return
	}

	s.cache.Set(s.root, pins, mtimes)
	s.logger.Debug(fmt.Sprintf("pins reloaded: %d toolchains", len(pins.Derivations)))
}

// Pins returns the cached parsed pins for the workspace, loading them when
// the cache is cold or stale.
func (s *Server) Pins() (*ports.Pins, error) {
	mtimes, err := s.configLoader.DiscoverConfigPaths(s.root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to discover config paths")
	}

	if pins, ok := s.cache.Get(s.root, mtimes); ok {
		return pins, nil
	}

	pins, err := s.pinsLoader.Load(s.root)
	if err != nil {
		return nil, err
	}
	s.cache.Set(s.root, pins, mtimes)
	return pins, nil
}

// Ping implements Daemon.Ping.
func (s *Server) Ping(_ context.Context, _ *daemonv1.PingRequest) (*daemonv1.PingResponse, error) {
	s.lifecycle.ResetTimer()
	return &daemonv1.PingResponse{
		Pid: int64(os.Getpid()),
	}, nil
}

// Status implements Daemon.Status.
func (s *Server) Status(_ context.Context, _ *daemonv1.StatusRequest) (*daemonv1.StatusResponse, error) {
	s.lifecycle.ResetTimer()
	stats := s.store.Stats()
	return &daemonv1.StatusResponse{
		Pid:                  int64(os.Getpid()),
		UptimeSeconds:        int64(s.lifecycle.Uptime().Seconds()),
		IdleRemainingSeconds: int64(s.lifecycle.IdleRemaining().Seconds()),
		Items:                stats.Items,
		TotalBytes:           stats.TotalBytes,
		EvictedItems:         stats.EvictedItems,
		EvictedBytes:         stats.EvictedBytes,
	}, nil
}

// Shutdown implements Daemon.Shutdown.
func (s *Server) Shutdown(_ context.Context, _ *daemonv1.ShutdownRequest) (*daemonv1.ShutdownResponse, error) {
	s.lifecycle.Shutdown()
	return &daemonv1.ShutdownResponse{}, nil
}

// Put implements Daemon.Put.
func (s *Server) Put(ctx context.Context, req *daemonv1.PutRequest) (*daemonv1.PutResponse, error) {
	s.lifecycle.ResetTimer()
	digest, err := s.store.Put(ctx, bytes.NewReader(req.GetData()))
	if err != nil {
		return nil, err
	}
	return &daemonv1.PutResponse{Digest: digest.String()}, nil
}

// Get implements Daemon.Get.
func (s *Server) Get(ctx context.Context, req *daemonv1.GetRequest) (*daemonv1.GetResponse, error) {
	s.lifecycle.ResetTimer()
	digest, err := domain.ParseDigest(req.GetDigest())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	rc, err := s.store.Get(ctx, digest)
	if err != nil {
		if strings.Contains(err.Error(), domain.ErrBlobNotFound.Error()) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	return &daemonv1.GetResponse{Data: data}, nil
}

// Contains implements Daemon.Contains.
func (s *Server) Contains(ctx context.Context, req *daemonv1.ContainsRequest) (*daemonv1.ContainsResponse, error) {
	s.lifecycle.ResetTimer()
	digests := make([]domain.Digest, 0, len(req.GetDigests()))
	for _, raw := range req.GetDigests() {
		digest, err := domain.ParseDigest(raw)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		digests = append(digests, digest)
	}

	return &daemonv1.ContainsResponse{
		Sizes: s.store.Sizes(ctx, digests),
	}, nil
}

func (s *Server) writePIDFile() error {
	pidPath := domain.DefaultDaemonPIDPath(s.root)
	pid := os.Getpid()
	return os.WriteFile(pidPath, []byte(fmt.Sprintf("%d", pid)), domain.PrivateFilePerm)
}
