// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/bytes00000111/nativelink/internal/adapters/cas"
	_ "github.com/bytes00000111/nativelink/internal/adapters/config"
	_ "github.com/bytes00000111/nativelink/internal/adapters/daemon"
	_ "github.com/bytes00000111/nativelink/internal/adapters/fetch"
	_ "github.com/bytes00000111/nativelink/internal/adapters/fs"
	_ "github.com/bytes00000111/nativelink/internal/adapters/logger"
	_ "github.com/bytes00000111/nativelink/internal/adapters/pins"
	_ "github.com/bytes00000111/nativelink/internal/adapters/telemetry"
	// Register app nodes.
	_ "github.com/bytes00000111/nativelink/internal/app"
)
