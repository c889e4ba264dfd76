package fs

import (
	"context"

	"github.com/bytes00000111/nativelink/internal/adapters/logger"
	"github.com/bytes00000111/nativelink/internal/core/ports"
	"github.com/grindlemire/graft"
)

// HasherNodeID is the unique identifier for the hasher Graft node.
const HasherNodeID graft.ID = "adapter.hasher"

// VerifierNodeID is the unique identifier for the verifier Graft node.
const VerifierNodeID graft.ID = "adapter.verifier"

func init() {
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.Verifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Verifier, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewVerifier(hasher, NewWalker(), log), nil
		},
	})
}
