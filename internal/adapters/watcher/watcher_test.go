package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bytes00000111/nativelink/internal/adapters/watcher"
	"github.com/bytes00000111/nativelink/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectOne(t *testing.T, w ports.Watcher, timeout time.Duration) (ports.WatchEvent, bool) {
	t.Helper()

	eventCh := make(chan ports.WatchEvent, 1)
	go func() {
		for event := range w.Events() {
			eventCh <- event
			return
		}
	}()

	select {
	case event := <-eventCh:
		return event, true
	case <-time.After(timeout):
		return ports.WatchEvent{}, false
	}
}

func TestWatcher_Write(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "nativelink.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("cache:\n"), 0o600))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, []string{configPath}))

	require.NoError(t, os.WriteFile(configPath, []byte("cache:\n  max_size: 1GB\n"), 0o600))

	event, ok := collectOne(t, w, 5*time.Second)
	require.True(t, ok, "expected a watch event")
	assert.Equal(t, configPath, event.Path)
}

func TestWatcher_IgnoresUnwatchedFiles(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "nativelink.yaml")
	otherPath := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(configPath, []byte("cache:\n"), 0o600))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, []string{configPath}))

	// A file in the same directory that is not watched must not surface.
	require.NoError(t, os.WriteFile(otherPath, []byte("scratch"), 0o600))

	_, ok := collectOne(t, w, 500*time.Millisecond)
	assert.False(t, ok, "unwatched file should not produce an event")
}

func TestWatcher_Remove(t *testing.T) {
	dir := t.TempDir()
	pinsPath := filepath.Join(dir, "nativelink.pins.yaml")
	require.NoError(t, os.WriteFile(pinsPath, []byte("module:\n"), 0o600))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, []string{pinsPath}))

	require.NoError(t, os.Remove(pinsPath))

	event, ok := collectOne(t, w, 5*time.Second)
	require.True(t, ok, "expected a watch event")
	assert.Equal(t, pinsPath, event.Path)
	assert.Equal(t, ports.OpRemove, event.Operation)
}

func TestWatcher_StopClosesEvents(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "nativelink.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("cache:\n"), 0o600))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, []string{configPath}))

	require.NoError(t, w.Stop())

	drained := make(chan struct{})
	go func() {
		for range w.Events() {
			continue
		}
		close(drained)
	}()

	select {
	case <-drained:
	case <-time.After(5 * time.Second):
		t.Fatal("events iterator should terminate after Stop")
	}
}

func TestWatcher_StartMissingDirectory(t *testing.T) {
	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = w.Start(ctx, []string{"/does/not/exist/nativelink.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch directory")
}
