package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/moditems/internal/adapters/logger"
	"go.trai.ch/moditems/internal/core/ports"
)

const (
	// RegistryNodeID is the unique identifier for the definition registry Graft node.
	RegistryNodeID graft.ID = "adapter.registry"
	// LoaderNodeID is the unique identifier for the definition loader Graft node.
	LoaderNodeID graft.ID = "adapter.definition_loader"
)

func init() {
	graft.Register(graft.Node[ports.DefinitionCatalog]{
		ID:        RegistryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DefinitionCatalog, error) {
			return NewRegistry(), nil
		},
	})

	graft.Register(graft.Node[ports.DefinitionLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DefinitionLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
