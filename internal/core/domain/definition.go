package domain

import (
	"path/filepath"
	"strings"
)

// ItemDefinition is an externally authored mod item. It is read-only once registered.
type ItemDefinition struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Cost        int
	StatMods    []ModifierSpec
}

// Presentation holds the values the host shows for an item.
type Presentation struct {
	Title       string
	Description string
	Icon        string
	Cost        int
}

// Present overlays the definition onto base.
// Text fields are taken from the definition only when non-empty; cost always comes from the definition.
func (d ItemDefinition) Present(base Presentation) Presentation {
	out := base
	if d.Title != "" {
		out.Title = d.Title
	}
	if d.Description != "" {
		out.Description = d.Description
	}
	if d.Icon != "" {
		out.Icon = d.Icon
	}
	out.Cost = d.Cost
	return out
}

// IsDefinitionFile reports whether path has a definitions file extension (.yaml, .yml or .toml).
func IsDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".toml":
		return true
	default:
		return false
	}
}
