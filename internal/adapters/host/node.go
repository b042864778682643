package host

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/moditems/internal/core/ports"
)

// LoaderNodeID is the unique identifier for the world loader Graft node.
const LoaderNodeID graft.ID = "adapter.world_loader"

func init() {
	graft.Register(graft.Node[ports.WorldLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WorldLoader, error) {
			return NewLoader(), nil
		},
	})
}
