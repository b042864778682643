package indexer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/moditems/internal/core/ports"
)

// NodeID is the unique identifier for the indexer Graft node.
const NodeID graft.ID = "engine.indexer"

func init() {
	graft.Register(graft.Node[ports.Indexer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Indexer, error) {
			return New(), nil
		},
	})
}
