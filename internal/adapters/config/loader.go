// Package config provides the workspace configuration loader.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/bytes00000111/nativelink/internal/core/domain"
	"github.com/bytes00000111/nativelink/internal/core/ports"
	"github.com/dustin/go-humanize"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration for the workspace containing cwd. When no
// config file exists anywhere up the tree, cwd becomes the root and defaults
// apply.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	root, err := l.DiscoverRoot(cwd)
	if err != nil {
		if errors.Is(err, domain.ErrConfigNotFound) {
			return domain.DefaultSettings(cwd), nil
		}
		return nil, err
	}

	configPath := filepath.Join(root, domain.ConfigFileName)
	data, err := os.ReadFile(configPath) //nolint:gosec // Path is rooted at the discovered workspace
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Root was discovered via the pins file alone.
			return domain.DefaultSettings(root), nil
		}
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var file ConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return l.resolve(root, &file)
}

func (l *Loader) resolve(root string, file *ConfigFile) (*domain.Settings, error) {
	settings := domain.DefaultSettings(root)

	policy := domain.EvictionPolicy{MaxCount: file.Cache.MaxCount}
	var err error
	if policy.MaxBytes, err = parseSize(file.Cache.MaxBytes); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "field", "cache.maxBytes")
	}
	if policy.EvictBytes, err = parseSize(file.Cache.EvictBytes); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "field", "cache.evictBytes")
	}
	if file.Cache.MaxAge != "" {
		maxAge, err := time.ParseDuration(file.Cache.MaxAge)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "field", "cache.maxAge")
		}
		policy.MaxAgeSeconds = int32(maxAge / time.Second)
	}
	// An explicit cache section replaces the default policy wholesale, so a
	// config that only sets maxCount is not silently also size-bounded.
	if file.Cache != (CacheDTO{}) {
		settings.Policy = policy
	}

	if file.Daemon.IdleTimeout != "" {
		timeout, err := time.ParseDuration(file.Daemon.IdleTimeout)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "field", "daemon.idleTimeout")
		}
		settings.DaemonIdleTimeout = timeout
	}

	settings.MetricsAddr = file.Metrics.Addr
	settings.Verbose = file.Verbose
	return settings, nil
}

func parseSize(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, err
	}
	return int64(n), nil //nolint:gosec // Sizes from config fit in int64
}

// DiscoverRoot walks up from cwd to the first directory containing a config
// or pins file.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigNotFound.Error())
	}

	for {
		for _, name := range []string{domain.ConfigFileName, domain.PinsFileName} {
			if _, err := os.Stat(filepath.Join(currentDir, name)); err == nil {
				return currentDir, nil
			}
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
		}
		currentDir = parent
	}
}

// DiscoverConfigPaths finds config and pins file paths under root and their
// modification times in UnixNano.
func (l *Loader) DiscoverConfigPaths(root string) (map[string]int64, error) {
	paths := make(map[string]int64)
	for _, name := range []string{domain.ConfigFileName, domain.PinsFileName} {
		path := filepath.Join(root, name)
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		}
		paths[path] = info.ModTime().UnixNano()
	}
	return paths, nil
}
