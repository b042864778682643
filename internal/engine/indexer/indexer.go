// Package indexer builds stat indexes by walking a stats graph.
package indexer

import (
	"cmp"
	"slices"
	"sync/atomic"

	"go.trai.ch/moditems/internal/core/ports"
	"go.trai.ch/moditems/internal/core/statgraph"
)

var _ ports.Indexer = (*Indexer)(nil)

// Indexer walks a stats graph depth-first and records every attribute under its member name.
type Indexer struct {
	builds atomic.Int64
}

// New creates a new Indexer.
func New() *Indexer {
	return &Indexer{}
}

// Builds returns the number of completed Build calls.
func (ix *Indexer) Builds() int64 {
	return ix.builds.Load()
}

// Build traverses root and returns the resulting index together with a report of every member visited.
// Fields are visited before properties. A later attribute with an already indexed key replaces the earlier one.
// A node already on the current descent path is not entered again.
func (ix *Indexer) Build(root statgraph.Node) (*statgraph.Index, statgraph.Report) {
	defer ix.builds.Add(1)

	w := &walk{
		builder: statgraph.NewIndexBuilder(),
		onPath:  make(map[statgraph.Node]struct{}),
	}
	if root != nil {
		w.node(root, "")
	}
	return w.builder.Build(), statgraph.Report{Visits: w.visits}
}

type walk struct {
	builder *statgraph.IndexBuilder
	onPath  map[statgraph.Node]struct{}
	visits  []statgraph.Visit
}

func (w *walk) node(n statgraph.Node, prefix string) {
	w.onPath[n] = struct{}{}
	defer delete(w.onPath, n)

	for _, m := range orderMembers(n.Members()) {
		w.member(m, joinPath(prefix, m.Name))
	}
}

func (w *walk) member(m statgraph.Member, path string) {
	visit := statgraph.Visit{Path: path, Key: m.Name, Kind: m.Kind}

	val, err := m.Read()
	if err != nil {
		visit.Outcome = statgraph.ReadFailed
		visit.Err = err
		w.visits = append(w.visits, visit)
		return
	}

	switch val.Kind() {
	case statgraph.KindAttribute:
		attr, _ := val.Attribute()
		if w.builder.Put(m.Name, attr) {
			visit.Outcome = statgraph.Overwritten
		} else {
			visit.Outcome = statgraph.Indexed
		}
	case statgraph.KindNode:
		child, _ := val.Node()
		if _, cyclic := w.onPath[child]; cyclic {
			visit.Outcome = statgraph.SkippedCycle
			break
		}
		visit.Outcome = statgraph.Descended
		w.visits = append(w.visits, visit)
		w.node(child, path)
		return
	case statgraph.KindScalar:
		visit.Outcome = statgraph.SkippedScalar
	case statgraph.KindText:
		visit.Outcome = statgraph.SkippedText
	case statgraph.KindEngine:
		visit.Outcome = statgraph.SkippedEngine
	default:
		visit.Outcome = statgraph.SkippedNil
	}
	w.visits = append(w.visits, visit)
}

// orderMembers returns the fields in declaration order followed by the properties in declaration order.
func orderMembers(members []statgraph.Member) []statgraph.Member {
	ordered := slices.Clone(members)
	slices.SortStableFunc(ordered, func(a, b statgraph.Member) int {
		return cmp.Compare(a.Kind, b.Kind)
	})
	return ordered
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
