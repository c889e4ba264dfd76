package cas

import (
	"context"
	"os"

	"github.com/bytes00000111/nativelink/internal/adapters/config"
	"github.com/bytes00000111/nativelink/internal/adapters/logger"
	"github.com/bytes00000111/nativelink/internal/core/ports"
	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
)

// NodeID is the unique identifier for the blob store Graft node.
const NodeID graft.ID = "adapter.blob_store"

func init() {
	graft.Register(graft.Node[ports.BlobStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.BlobStore, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			settings, err := loader.Load(cwd)
			if err != nil {
				return nil, err
			}

			return NewStore(settings.Root, settings.Policy, clockwork.NewRealClock(), log)
		},
	})
}
