package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/moditems/internal/adapters/host"      //nolint:depguard // Wired in app layer
	"go.trai.ch/moditems/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/moditems/internal/adapters/registry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/moditems/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/moditems/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/moditems/internal/core/ports"
	"go.trai.ch/moditems/internal/engine/applicator"
	"go.trai.ch/moditems/internal/engine/indexer"
	"go.trai.ch/moditems/internal/engine/statcache"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			registry.RegistryNodeID,
			registry.LoaderNodeID,
			host.LoaderNodeID,
			indexer.NodeID,
			statcache.NodeID,
			applicator.NodeID,
			watcher.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			catalog, err := graft.Dep[ports.DefinitionCatalog](ctx)
			if err != nil {
				return nil, err
			}

			defLoader, err := graft.Dep[ports.DefinitionLoader](ctx)
			if err != nil {
				return nil, err
			}

			worldLoader, err := graft.Dep[ports.WorldLoader](ctx)
			if err != nil {
				return nil, err
			}

			ix, err := graft.Dep[ports.Indexer](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[*statcache.Cache](ctx)
			if err != nil {
				return nil, err
			}

			apply, err := graft.Dep[*applicator.Applicator](ctx)
			if err != nil {
				return nil, err
			}

			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(catalog, defLoader, worldLoader, ix, cache, apply, w, tracer, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(a, log), nil
		},
	})
}
