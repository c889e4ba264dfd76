package fetch

import (
	"context"

	"github.com/bytes00000111/nativelink/internal/adapters/cas"
	"github.com/bytes00000111/nativelink/internal/adapters/logger"
	"github.com/bytes00000111/nativelink/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the fetcher Graft node.
const NodeID graft.ID = "adapter.fetcher"

func init() {
	graft.Register(graft.Node[ports.Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cas.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Fetcher, error) {
			store, err := graft.Dep[ports.BlobStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(store, log), nil
		},
	})
}
