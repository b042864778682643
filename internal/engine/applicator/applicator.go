// Package applicator applies item definition modifiers to indexed stats.
package applicator

import (
	"go.trai.ch/moditems/internal/core/domain"
	"go.trai.ch/moditems/internal/core/ports"
	"go.trai.ch/moditems/internal/core/statgraph"
)

// Applicator adds one host modifier per authored modifier spec.
type Applicator struct {
	logger ports.Logger
}

// New creates a new Applicator that reports missing stats through logger.
func New(logger ports.Logger) *Applicator {
	return &Applicator{logger: logger}
}

// ApplyAll applies every modifier spec of def through index, in list order.
// A spec whose key is not indexed is skipped with a warning; the rest still apply.
// Specs authored with the default origin are stamped with the mod origin so that
// non-forced bulk removal by the host leaves them in place.
func (a *Applicator) ApplyAll(def domain.ItemDefinition, index *statgraph.Index) domain.ApplyOutcome {
	out := domain.ApplyOutcome{DefinitionID: def.ID}

	for _, spec := range def.StatMods {
		attr, ok := index.Lookup(spec.Key)
		if !ok {
			a.logger.Warn(domain.ErrStatNotFound.Error(), "item", def.ID, "stat", spec.Key)
			out.Skipped = append(out.Skipped, spec.Key)
			continue
		}
		attr.AddModifier(domain.NewStatModifier(spec))
		out.Applied++
	}

	return out
}
