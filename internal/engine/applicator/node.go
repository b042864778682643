package applicator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/moditems/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/moditems/internal/core/ports"
)

// NodeID is the unique identifier for the applicator Graft node.
const NodeID graft.ID = "engine.applicator"

func init() {
	graft.Register(graft.Node[*Applicator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Applicator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
