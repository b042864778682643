package ports

import (
	"go.trai.ch/moditems/internal/core/domain"
	"go.trai.ch/moditems/internal/core/statgraph"
)

// Entity is a host entity that can receive mod items.
//
//go:generate mockgen -source=entity.go -destination=mocks/mock_entity.go -package=mocks
type Entity interface {
	// Name returns the entity's display name.
	Name() string

	// StatsRoot returns the root of the entity's attribute graph.
	// It returns false when the entity has no stats root.
	StatsRoot() (statgraph.Root, bool)
}

// World is a loaded set of host entities whose stats roots live in one arena.
type World interface {
	// Entity returns the named entity.
	Entity(name string) (Entity, bool)

	// Names returns entity names in load order.
	Names() []string

	// Destroy frees the named entity's stats root.
	Destroy(name string) error

	// OnRootFreed registers fn to be called with the handle of every freed stats root.
	OnRootFreed(fn func(domain.RootHandle))
}

// WorldLoader reads a world description from a file.
type WorldLoader interface {
	// Load parses the world file at path.
	Load(path string) (World, error)
}
