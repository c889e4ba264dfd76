package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bytes00000111/nativelink/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load_Defaults(t *testing.T) {
	root := t.TempDir()

	settings, err := NewLoader().Load(root)

	require.NoError(t, err)
	assert.Equal(t, root, settings.Root)
	assert.Equal(t, int64(domain.DefaultMaxBytes), settings.Policy.MaxBytes)
	assert.Equal(t, domain.DefaultDaemonIdleTimeout, settings.DaemonIdleTimeout)
}

func TestLoader_Load_FullConfig(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
version: 1
cache:
  maxBytes: 2GiB
  evictBytes: 512MiB
  maxAge: 48h
  maxCount: 1000
daemon:
  idleTimeout: 5m
metrics:
  addr: "127.0.0.1:9464"
verbose: true
`)

	settings, err := NewLoader().Load(root)

	require.NoError(t, err)
	assert.Equal(t, root, settings.Root)
	assert.Equal(t, int64(2<<30), settings.Policy.MaxBytes)
	assert.Equal(t, int64(512<<20), settings.Policy.EvictBytes)
	assert.Equal(t, int32(48*3600), settings.Policy.MaxAgeSeconds)
	assert.Equal(t, int64(1000), settings.Policy.MaxCount)
	assert.Equal(t, 5*time.Minute, settings.DaemonIdleTimeout)
	assert.Equal(t, "127.0.0.1:9464", settings.MetricsAddr)
	assert.True(t, settings.Verbose)
}

func TestLoader_Load_CacheSectionReplacesDefaults(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
cache:
  maxCount: 50
`)

	settings, err := NewLoader().Load(root)

	require.NoError(t, err)
	assert.Equal(t, int64(50), settings.Policy.MaxCount)
	assert.Zero(t, settings.Policy.MaxBytes)
}

func TestLoader_Load_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid yaml", content: "cache: [not a map"},
		{name: "bad size", content: "cache:\n  maxBytes: twelve\n"},
		{name: "bad duration", content: "cache:\n  maxAge: 2fortnights\n"},
		{name: "bad idle timeout", content: "daemon:\n  idleTimeout: soon\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeConfig(t, root, tt.content)

			_, err := NewLoader().Load(root)

			assert.Error(t, err)
		})
	}
}

func TestLoader_Load_DiscoversRootFromSubdirectory(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "verbose: true\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	settings, err := NewLoader().Load(nested)

	require.NoError(t, err)
	assert.Equal(t, root, settings.Root)
	assert.True(t, settings.Verbose)
}

func TestLoader_Load_PinsFileMarksRoot(t *testing.T) {
	root := t.TempDir()
	pinsPath := filepath.Join(root, domain.PinsFileName)
	require.NoError(t, os.WriteFile(pinsPath, []byte("module:\n  name: demo\n"), 0o644))
	nested := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	settings, err := NewLoader().Load(nested)

	require.NoError(t, err)
	assert.Equal(t, root, settings.Root)
	assert.Equal(t, int64(domain.DefaultMaxBytes), settings.Policy.MaxBytes)
}

func TestLoader_DiscoverRoot_NotFound(t *testing.T) {
	dir := t.TempDir()

	_, err := NewLoader().DiscoverRoot(dir)

	assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}

func TestLoader_DiscoverConfigPaths(t *testing.T) {
	root := t.TempDir()
	configPath := writeConfig(t, root, "verbose: true\n")

	paths, err := NewLoader().DiscoverConfigPaths(root)

	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Contains(t, paths, configPath)
	assert.Positive(t, paths[configPath])
}
