package ports

import "go.trai.ch/moditems/internal/core/statgraph"

// Indexer builds a stat index from a graph root.
//
//go:generate mockgen -source=indexer.go -destination=mocks/mock_indexer.go -package=mocks
type Indexer interface {
	// Build traverses root and returns the index with a per-member report.
	// It never fails; an unusable graph yields an empty index.
	Build(root statgraph.Node) (*statgraph.Index, statgraph.Report)
}
