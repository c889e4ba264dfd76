package app

import (
	"context"

	"github.com/bytes00000111/nativelink/internal/adapters/cas"
	"github.com/bytes00000111/nativelink/internal/adapters/config"
	"github.com/bytes00000111/nativelink/internal/adapters/daemon"
	"github.com/bytes00000111/nativelink/internal/adapters/fetch"
	"github.com/bytes00000111/nativelink/internal/adapters/fs"
	"github.com/bytes00000111/nativelink/internal/adapters/logger"
	"github.com/bytes00000111/nativelink/internal/adapters/pins"
	"github.com/bytes00000111/nativelink/internal/adapters/telemetry"
	"github.com/bytes00000111/nativelink/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app.components"

// Components bundles the constructed application with the dependencies the
// command layer needs directly.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cas.NodeID,
			pins.NodeID,
			fetch.NodeID,
			fs.VerifierNodeID,
			daemon.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.BlobStore](ctx)
			if err != nil {
				return nil, err
			}
			pinsLoader, err := graft.Dep[ports.PinsLoader](ctx)
			if err != nil {
				return nil, err
			}
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}
			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}
			connector, err := graft.Dep[ports.DaemonConnector](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(loader, store, pinsLoader, fetcher, verifier, connector, log, tracer),
				Logger: log,
			}, nil
		},
	})
}
