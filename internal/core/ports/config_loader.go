package ports

import "github.com/bytes00000111/nativelink/internal/core/domain"

// ConfigLoader defines the interface for loading the workspace configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration for the workspace containing cwd.
	// A missing config file yields defaults, not an error.
	Load(cwd string) (*domain.Settings, error)

	// DiscoverRoot walks up from cwd to find the workspace root: the
	// directory containing nativelink.yaml or nativelink.pins.yaml.
	DiscoverRoot(cwd string) (string, error)

	// DiscoverConfigPaths finds config and pins file paths under root and
	// their modification times in UnixNano.
	DiscoverConfigPaths(root string) (map[string]int64, error)
}
