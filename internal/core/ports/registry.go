// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/moditems/internal/core/domain"

// DefinitionRegistry resolves mod item identifiers to their definitions.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type DefinitionRegistry interface {
	// Lookup returns the definition registered for identifier.
	// The namespace prefix is matched case-insensitively.
	Lookup(identifier string) (domain.ItemDefinition, bool)
}

// DefinitionLoader reads item definitions from a directory.
type DefinitionLoader interface {
	// Load parses every definition file in dir.
	// It returns an error if any file is unreadable or invalid, or if two definitions share an id.
	Load(dir string) ([]domain.ItemDefinition, error)
}

// DefinitionCatalog is a DefinitionRegistry whose contents can be swapped as a whole.
type DefinitionCatalog interface {
	DefinitionRegistry

	// Replace atomically swaps the registered definitions for defs.
	Replace(defs []domain.ItemDefinition)

	// IDs returns the registered identifiers in sorted order.
	IDs() []string
}
