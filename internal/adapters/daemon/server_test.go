package daemon_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	daemonv1 "github.com/bytes00000111/nativelink/api/daemon/v1"
	"github.com/bytes00000111/nativelink/internal/adapters/cas"
	"github.com/bytes00000111/nativelink/internal/adapters/config"
	"github.com/bytes00000111/nativelink/internal/adapters/daemon"
	"github.com/bytes00000111/nativelink/internal/adapters/pins"
	"github.com/bytes00000111/nativelink/internal/core/domain"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type testLogger struct{}

func (testLogger) Debug(string)        {}
func (testLogger) Info(string)         {}
func (testLogger) Warn(string)         {}
func (testLogger) Error(error)         {}
func (testLogger) SetOutput(io.Writer) {}
func (testLogger) SetJSON(bool)        {}
func (testLogger) SetVerbose(bool)     {}

func newTestServer(t *testing.T) *daemon.Server {
	t.Helper()
	root := t.TempDir()
	store, err := cas.NewStore(root, domain.EvictionPolicy{}, clockwork.NewRealClock(), testLogger{})
	require.NoError(t, err)
	lc := daemon.NewLifecycle(clockwork.NewRealClock(), time.Hour)
	t.Cleanup(lc.Shutdown)
	return daemon.NewServer(root, lc, store, testLogger{})
}

func TestServer_Ping(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Ping(context.Background(), &daemonv1.PingRequest{})

	require.NoError(t, err)
	assert.Positive(t, resp.GetPid())
}

func TestServer_PutGetRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	data := []byte("toolchain archive bytes")

	putResp, err := srv.Put(ctx, &daemonv1.PutRequest{Data: data})
	require.NoError(t, err)

	want := domain.DigestFromBytes(data)
	assert.Equal(t, want.String(), putResp.GetDigest())

	getResp, err := srv.Get(ctx, &daemonv1.GetRequest{Digest: putResp.GetDigest()})
	require.NoError(t, err)
	assert.Equal(t, data, getResp.GetData())
}

func TestServer_Get_NotFound(t *testing.T) {
	srv := newTestServer(t)

	missing := domain.DigestFromBytes([]byte("never stored"))
	_, err := srv.Get(context.Background(), &daemonv1.GetRequest{Digest: missing.String()})

	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestServer_Get_InvalidDigest(t *testing.T) {
	srv := newTestServer(t)

	_, err := srv.Get(context.Background(), &daemonv1.GetRequest{Digest: "not-a-digest"})

	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_Contains(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	stored := []byte("present blob")
	putResp, err := srv.Put(ctx, &daemonv1.PutRequest{Data: stored})
	require.NoError(t, err)

	missing := domain.DigestFromBytes([]byte("absent blob"))
	resp, err := srv.Contains(ctx, &daemonv1.ContainsRequest{
		Digests: []string{putResp.GetDigest(), missing.String()},
	})

	require.NoError(t, err)
	require.Len(t, resp.GetSizes(), 2)
	assert.Equal(t, int64(len(stored)), resp.GetSizes()[0])
	assert.Equal(t, int64(-1), resp.GetSizes()[1])
}

func TestServer_Contains_InvalidDigest(t *testing.T) {
	srv := newTestServer(t)

	_, err := srv.Contains(context.Background(), &daemonv1.ContainsRequest{
		Digests: []string{"garbage"},
	})

	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_Status(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	data := []byte("counted blob")
	_, err := srv.Put(ctx, &daemonv1.PutRequest{Data: data})
	require.NoError(t, err)

	resp, err := srv.Status(ctx, &daemonv1.StatusRequest{})
	require.NoError(t, err)

	assert.Positive(t, resp.GetPid())
	assert.Equal(t, int64(1), resp.GetItems())
	assert.Equal(t, int64(len(data)), resp.GetTotalBytes())
}

func TestServer_Shutdown_TriggersLifecycle(t *testing.T) {
	root := t.TempDir()
	store, err := cas.NewStore(root, domain.EvictionPolicy{}, clockwork.NewRealClock(), testLogger{})
	require.NoError(t, err)
	lc := daemon.NewLifecycle(clockwork.NewRealClock(), time.Hour)
	srv := daemon.NewServer(root, lc, store, testLogger{})

	_, err = srv.Shutdown(context.Background(), &daemonv1.ShutdownRequest{})
	require.NoError(t, err)

	select {
	case <-lc.ShutdownChan():
	case <-time.After(time.Second):
		t.Fatal("shutdown should have closed the lifecycle channel")
	}
}

func TestServer_Pins_CachesUntilFileChanges(t *testing.T) {
	root := t.TempDir()
	pinsPath := filepath.Join(root, domain.PinsFileName)
	writePins := func(version string) {
		content := fmt.Sprintf("module:\n  name: demo\n  version: %s\n", version)
		require.NoError(t, os.WriteFile(pinsPath, []byte(content), 0o644))
	}
	writePins("1.0.0")

	store, err := cas.NewStore(root, domain.EvictionPolicy{}, clockwork.NewRealClock(), testLogger{})
	require.NoError(t, err)
	lc := daemon.NewLifecycle(clockwork.NewRealClock(), time.Hour)
	t.Cleanup(lc.Shutdown)
	srv := daemon.NewServerWithDeps(root, lc, store, pins.NewLoader(), config.NewLoader(), nil, testLogger{}, nil)

	first, err := srv.Pins()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", first.Manifest.Version)

	// Unchanged file serves the same parsed value.
	again, err := srv.Pins()
	require.NoError(t, err)
	assert.Same(t, first, again)

	writePins("2.0.0")
	// Bump the mtime past filesystem timestamp granularity.
	future := time.Now().Add(time.Second)
	require.NoError(t, os.Chtimes(pinsPath, future, future))

	reloaded, err := srv.Pins()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", reloaded.Manifest.Version)
}
