package registry

import (
	"maps"
	"slices"
	"sync"

	"go.trai.ch/moditems/internal/core/domain"
	"go.trai.ch/moditems/internal/core/ports"
)

var _ ports.DefinitionCatalog = (*Registry)(nil)

// Registry is an in-memory definition catalog keyed by canonical identifier.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]domain.ItemDefinition
}

// NewRegistry creates a Registry holding defs.
func NewRegistry(defs ...domain.ItemDefinition) *Registry {
	r := &Registry{}
	r.Replace(defs)
	return r
}

// Lookup returns the definition for identifier. The namespace prefix is matched case-insensitively.
func (r *Registry) Lookup(identifier string) (domain.ItemDefinition, bool) {
	id, ok := domain.CanonicalID(identifier)
	if !ok {
		return domain.ItemDefinition{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[id]
	return def, ok
}

// Replace swaps the registry contents for defs. Readers see either the old or the new set.
// Definitions with a non-canonical id are ignored.
func (r *Registry) Replace(defs []domain.ItemDefinition) {
	next := make(map[string]domain.ItemDefinition, len(defs))
	for _, def := range defs {
		id, ok := domain.CanonicalID(def.ID)
		if !ok {
			continue
		}
		def.ID = id
		next[id] = def
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs = next
}

// IDs returns the registered identifiers in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.defs))
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}
