package host

import (
	"slices"
	"sync"

	"go.trai.ch/moditems/internal/core/domain"
	"go.trai.ch/moditems/internal/core/ports"
	"go.trai.ch/moditems/internal/core/statgraph"
	"go.trai.ch/zerr"
)

var (
	_ ports.World  = (*World)(nil)
	_ ports.Entity = (*Entity)(nil)
)

// Entity is a named world entity with an optional stats root.
type Entity struct {
	name   string
	arena  *Arena
	handle domain.RootHandle
}

// Name returns the entity's name.
func (e *Entity) Name() string {
	return e.name
}

// StatsRoot returns the entity's stats root while it is live.
func (e *Entity) StatsRoot() (statgraph.Root, bool) {
	if e.handle.IsZero() {
		return statgraph.Root{}, false
	}
	node, ok := e.arena.Resolve(e.handle)
	if !ok {
		return statgraph.Root{}, false
	}
	return statgraph.Root{Handle: e.handle, Node: node}, true
}

// World is a set of entities whose stats roots share one Arena.
type World struct {
	arena *Arena

	mu       sync.RWMutex
	order    []string
	entities map[string]*Entity
}

// NewWorld creates an empty World with its own Arena.
func NewWorld() *World {
	return &World{
		arena:    NewArena(),
		entities: make(map[string]*Entity),
	}
}

// Arena returns the arena that owns the world's stats roots.
func (w *World) Arena() *Arena {
	return w.arena
}

// Spawn adds an entity. A nil root spawns an entity without a stats root.
func (w *World) Spawn(name string, root *Object) (*Entity, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.entities[name]; exists {
		return nil, zerr.With(domain.ErrDuplicateEntity, "entity", name)
	}

	e := &Entity{name: name, arena: w.arena}
	if root != nil {
		e.handle = w.arena.Alloc(root)
	}
	w.entities[name] = e
	w.order = append(w.order, name)
	return e, nil
}

// Entity returns the named entity.
func (w *World) Entity(name string) (ports.Entity, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	e, ok := w.entities[name]
	if !ok {
		return nil, false
	}
	return e, true
}

// Names returns entity names in spawn order.
func (w *World) Names() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.order)
}

// Destroy removes the named entity and frees its stats root.
func (w *World) Destroy(name string) error {
	w.mu.Lock()
	e, ok := w.entities[name]
	if !ok {
		w.mu.Unlock()
		return zerr.With(domain.ErrEntityNotFound, "entity", name)
	}
	delete(w.entities, name)
	w.order = slices.DeleteFunc(w.order, func(n string) bool { return n == name })
	w.mu.Unlock()

	if e.handle.IsZero() {
		return nil
	}
	return w.arena.Free(e.handle)
}

// OnRootFreed registers fn to be called with the handle of every freed stats root.
func (w *World) OnRootFreed(fn func(domain.RootHandle)) {
	w.arena.OnFree(fn)
}
