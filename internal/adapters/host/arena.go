// Package host simulates the entity framework that owns stats graphs.
//
// Stats roots live in an Arena and are referred to by generation-checked handles.
// Freeing a root notifies subscribers, which is how caches keyed by handle learn
// that an entry must go.
package host

import (
	"slices"
	"sync"

	"go.trai.ch/moditems/internal/core/domain"
	"go.trai.ch/moditems/internal/core/statgraph"
	"go.trai.ch/zerr"
)

type slot struct {
	generation uint32
	live       bool
	node       statgraph.Node
}

// Arena owns stats roots.
type Arena struct {
	mu     sync.Mutex
	slots  []slot
	free   []uint32
	onFree []func(domain.RootHandle)
}

// NewArena creates an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// Alloc stores node and returns its handle. Freed slots are reused with a new generation.
func (a *Arena) Alloc(node statgraph.Node) domain.RootHandle {
	a.mu.Lock()
	defer a.mu.Unlock()

	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots)) //nolint:gosec // Slot count never approaches MaxUint32.
		a.slots = append(a.slots, slot{})
	}

	s := &a.slots[idx]
	s.generation++
	s.live = true
	s.node = node

	return domain.RootHandle{Slot: idx, Generation: s.generation}
}

// Resolve returns the node for h if h is still live.
func (a *Arena) Resolve(h domain.RootHandle) (statgraph.Node, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.lookup(h)
	if !ok {
		return nil, false
	}
	return s.node, true
}

// Free releases the root behind h and notifies OnFree subscribers.
func (a *Arena) Free(h domain.RootHandle) error {
	a.mu.Lock()
	s, ok := a.lookup(h)
	if !ok {
		a.mu.Unlock()
		return zerr.With(domain.ErrStaleHandle, "handle", h.String())
	}
	s.live = false
	s.node = nil
	a.free = append(a.free, h.Slot)
	subscribers := slices.Clone(a.onFree)
	a.mu.Unlock()

	for _, fn := range subscribers {
		fn(h)
	}
	return nil
}

// OnFree registers fn to be called after every successful Free.
func (a *Arena) OnFree(fn func(domain.RootHandle)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onFree = append(a.onFree, fn)
}

// Live returns the number of allocated roots.
func (a *Arena) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.slots) - len(a.free)
}

func (a *Arena) lookup(h domain.RootHandle) (*slot, bool) {
	if h.IsZero() || int(h.Slot) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.Slot]
	if !s.live || s.generation != h.Generation {
		return nil, false
	}
	return s, true
}
