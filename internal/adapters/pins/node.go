package pins

import (
	"context"

	"github.com/bytes00000111/nativelink/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the pins loader Graft node.
const NodeID graft.ID = "adapter.pins_loader"

func init() {
	graft.Register(graft.Node[ports.PinsLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PinsLoader, error) {
			return NewLoader(), nil
		},
	})
}
