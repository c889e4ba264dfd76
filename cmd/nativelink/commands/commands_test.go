package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/bytes00000111/nativelink/cmd/nativelink/commands"
	"github.com/bytes00000111/nativelink/internal/app"
	"github.com/bytes00000111/nativelink/internal/build"
	"github.com/bytes00000111/nativelink/internal/core/domain"
	"github.com/bytes00000111/nativelink/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockApp struct {
	putFunc      func(ctx context.Context, r io.Reader) (domain.Digest, error)
	getFunc      func(ctx context.Context, digest string, w io.Writer) error
	containsFunc func(ctx context.Context, digests []string) ([]int64, error)
	verifyFunc   func(ctx context.Context) (ports.VerifyReport, error)
	fetchFunc    func(ctx context.Context, names []string) ([]app.FetchOutcome, error)
	renderFunc   func(ctx context.Context) (string, error)
	gcFunc       func(ctx context.Context) (app.GCResult, error)
	cleanFunc    func(ctx context.Context, opts app.CleanOptions) error
	statusFunc   func(ctx context.Context, opts app.StatusOptions) error
	stopFunc     func(ctx context.Context) error
}

func (m *mockApp) Put(ctx context.Context, r io.Reader) (domain.Digest, error) {
	if m.putFunc != nil {
		return m.putFunc(ctx, r)
	}
	return domain.Digest{}, nil
}

func (m *mockApp) Get(ctx context.Context, digest string, w io.Writer) error {
	if m.getFunc != nil {
		return m.getFunc(ctx, digest, w)
	}
	return nil
}

func (m *mockApp) Contains(ctx context.Context, digests []string) ([]int64, error) {
	if m.containsFunc != nil {
		return m.containsFunc(ctx, digests)
	}
	return make([]int64, len(digests)), nil
}

func (m *mockApp) Verify(ctx context.Context) (ports.VerifyReport, error) {
	if m.verifyFunc != nil {
		return m.verifyFunc(ctx)
	}
	return ports.VerifyReport{}, nil
}

func (m *mockApp) Fetch(ctx context.Context, names []string) ([]app.FetchOutcome, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, names)
	}
	return nil, nil
}

func (m *mockApp) Render(ctx context.Context) (string, error) {
	if m.renderFunc != nil {
		return m.renderFunc(ctx)
	}
	return "", nil
}

func (m *mockApp) GC(ctx context.Context) (app.GCResult, error) {
	if m.gcFunc != nil {
		return m.gcFunc(ctx)
	}
	return app.GCResult{}, nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Status(ctx context.Context, opts app.StatusOptions) error {
	if m.statusFunc != nil {
		return m.statusFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) DaemonStatus(context.Context) (*ports.DaemonStatus, error) {
	return &ports.DaemonStatus{}, nil
}

func (m *mockApp) ServeDaemon(context.Context) error { return nil }

func (m *mockApp) StopDaemon(ctx context.Context) error {
	if m.stopFunc != nil {
		return m.stopFunc(ctx)
	}
	return nil
}

func execute(t *testing.T, mock *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Put(t *testing.T) {
	digest := domain.DigestFromBytes([]byte("hello"))

	var captured []byte
	mock := &mockApp{
		putFunc: func(_ context.Context, r io.Reader) (domain.Digest, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			captured = data
			return digest, nil
		},
	}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"put"})
	cli.SetInput(bytes.NewReader([]byte("hello")))

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), captured)
	assert.Contains(t, buf.String(), digest.String())
}

func TestCommands_Get(t *testing.T) {
	digest := domain.DigestFromBytes([]byte("payload"))

	mock := &mockApp{
		getFunc: func(_ context.Context, raw string, w io.Writer) error {
			assert.Equal(t, digest.String(), raw)
			_, err := w.Write([]byte("payload"))
			return err
		},
	}

	out, err := execute(t, mock, "get", digest.String())
	require.NoError(t, err)
	assert.Equal(t, "payload", out)
}

func TestCommands_Contains(t *testing.T) {
	hit := domain.DigestFromBytes([]byte("hit"))
	miss := domain.DigestFromBytes([]byte("miss"))

	mock := &mockApp{
		containsFunc: func(_ context.Context, digests []string) ([]int64, error) {
			assert.Len(t, digests, 2)
			return []int64{3, -1}, nil
		},
	}

	out, err := execute(t, mock, "contains", hit.String(), miss.String())
	require.NoError(t, err)
	assert.Contains(t, out, hit.String()+" 3")
	assert.Contains(t, out, miss.String()+" missing")
}

func TestCommands_Verify(t *testing.T) {
	t.Run("intact store", func(t *testing.T) {
		mock := &mockApp{
			verifyFunc: func(context.Context) (ports.VerifyReport, error) {
				return ports.VerifyReport{Checked: 7}, nil
			},
		}

		out, err := execute(t, mock, "verify")
		require.NoError(t, err)
		assert.Contains(t, out, "verified 7 blobs")
	})

	t.Run("corrupt blob fails", func(t *testing.T) {
		want := domain.DigestFromBytes([]byte("want"))
		got := domain.DigestFromBytes([]byte("got"))
		mock := &mockApp{
			verifyFunc: func(context.Context) (ports.VerifyReport, error) {
				return ports.VerifyReport{
					Checked: 1,
					Mismatches: []ports.VerifyMismatch{
						{Path: "/store/aa/blob", Want: want, Got: got},
					},
				}, nil
			},
		}

		out, err := execute(t, mock, "verify")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrVerifyFailed)
		assert.Contains(t, out, "corrupt /store/aa/blob")
	})
}

func TestCommands_Fetch(t *testing.T) {
	digest := domain.DigestFromBytes([]byte("archive"))

	mock := &mockApp{
		fetchFunc: func(_ context.Context, names []string) ([]app.FetchOutcome, error) {
			assert.Equal(t, []string{"go"}, names)
			return []app.FetchOutcome{
				{Pname: "go", Result: ports.FetchResult{Digest: digest, FromCache: true}},
			}, nil
		},
	}

	out, err := execute(t, mock, "fetch", "go")
	require.NoError(t, err)
	assert.Contains(t, out, "cached go "+digest.String())
}

func TestCommands_GC(t *testing.T) {
	mock := &mockApp{
		gcFunc: func(context.Context) (app.GCResult, error) {
			return app.GCResult{Removed: 3, FreedBytes: 2048}, nil
		},
	}

	out, err := execute(t, mock, "gc")
	require.NoError(t, err)
	assert.Contains(t, out, "removed 3 blobs (2.0 KiB freed)")
}

func TestCommands_Clean(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want app.CleanOptions
	}{
		{
			name: "default cleans store",
			args: []string{"clean"},
			want: app.CleanOptions{Store: true},
		},
		{
			name: "daemon flag cleans daemon state",
			args: []string{"clean", "--daemon"},
			want: app.CleanOptions{Daemon: true},
		},
		{
			name: "all cleans everything",
			args: []string{"clean", "--all"},
			want: app.CleanOptions{Store: true, Daemon: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured app.CleanOptions
			mock := &mockApp{
				cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
					captured = opts
					return nil
				},
			}

			_, err := execute(t, mock, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, captured)
		})
	}
}

func TestCommands_Status(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.StatusOptions
		mock := &mockApp{
			statusFunc: func(_ context.Context, opts app.StatusOptions) error {
				captured = opts
				return nil
			},
		}

		_, err := execute(t, mock, "status", "--watch", "--ci")
		require.NoError(t, err)
		assert.True(t, captured.Watch)
		assert.Equal(t, "linear", captured.OutputMode)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			statusFunc: func(context.Context, app.StatusOptions) error {
				return errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "status")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_DaemonStop(t *testing.T) {
	called := false
	mock := &mockApp{
		stopFunc: func(context.Context) error {
			called = true
			return nil
		},
	}

	_, err := execute(t, mock, "daemon", "stop")
	require.NoError(t, err)
	assert.True(t, called)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}
