package statcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/moditems/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/moditems/internal/core/ports"
	"go.trai.ch/moditems/internal/engine/indexer"
)

// NodeID is the unique identifier for the stat cache Graft node.
const NodeID graft.ID = "engine.statcache"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{indexer.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Cache, error) {
			ix, err := graft.Dep[ports.Indexer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(ix, WithBuildHook(LogReadFailures(log))), nil
		},
	})
}
