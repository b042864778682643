// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/moditems/internal/adapters/host"
	_ "go.trai.ch/moditems/internal/adapters/logger"
	_ "go.trai.ch/moditems/internal/adapters/registry"
	_ "go.trai.ch/moditems/internal/adapters/telemetry"
	_ "go.trai.ch/moditems/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/moditems/internal/app"
	_ "go.trai.ch/moditems/internal/engine/applicator"
	_ "go.trai.ch/moditems/internal/engine/indexer"
	_ "go.trai.ch/moditems/internal/engine/statcache"
)
