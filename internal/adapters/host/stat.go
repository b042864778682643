package host

import (
	"slices"

	"go.trai.ch/moditems/internal/core/domain"
	"go.trai.ch/moditems/internal/core/statgraph"
)

var _ statgraph.Inspectable = (*Stat)(nil)

// Stat is a host attribute: a base value plus an ordered modifier list.
// Combining modifiers into a final value is the host's business and not modelled here.
type Stat struct {
	base float64
	mods []domain.StatModifier
}

// NewStat creates a Stat with the given base value.
func NewStat(base float64) *Stat {
	return &Stat{base: base}
}

// BaseValue returns the unmodified value.
func (s *Stat) BaseValue() float64 {
	return s.base
}

// AddModifier appends mod to the modifier list.
func (s *Stat) AddModifier(mod domain.StatModifier) {
	s.mods = append(s.mods, mod)
}

// Modifiers returns a copy of the modifier list.
func (s *Stat) Modifiers() []domain.StatModifier {
	return slices.Clone(s.mods)
}

// RemoveAllModifiers clears modifiers and returns how many were removed.
// Without force only modifiers with the default origin are removed.
func (s *Stat) RemoveAllModifiers(force bool) int {
	before := len(s.mods)
	if force {
		s.mods = nil
		return before
	}
	s.mods = slices.DeleteFunc(s.mods, func(m domain.StatModifier) bool {
		return m.Origin == domain.DefaultOrigin
	})
	return before - len(s.mods)
}
