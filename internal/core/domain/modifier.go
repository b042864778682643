package domain

import (
	"fmt"
	"strings"
)

// ModifierKind is the combination kind authored in a mod item definition.
// Values outside the known set are preserved so the host mapping can decide how to treat them.
type ModifierKind int

const (
	// KindFlat adds the value to the stat.
	KindFlat ModifierKind = iota
	// KindPercentAdd sums with other percent-add modifiers before multiplying.
	KindPercentAdd
	// KindPercentMult multiplies the stat independently.
	KindPercentMult
)

var modifierKindNames = map[string]ModifierKind{
	"flat":        KindFlat,
	"percentadd":  KindPercentAdd,
	"percentmult": KindPercentMult,
}

// ParseModifierKind parses an authored kind name. Matching ignores case, '-' and '_'.
// The boolean is false for unrecognized names; the returned kind is then KindFlat.
func ParseModifierKind(s string) (ModifierKind, bool) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(strings.TrimSpace(s)))
	if norm == "" {
		return KindFlat, true
	}
	k, ok := modifierKindNames[norm]
	if !ok {
		return KindFlat, false
	}
	return k, true
}

func (k ModifierKind) String() string {
	switch k {
	case KindFlat:
		return "Flat"
	case KindPercentAdd:
		return "PercentAdd"
	case KindPercentMult:
		return "PercentMult"
	default:
		return fmt.Sprintf("ModifierKind(%d)", int(k))
	}
}

// StatModifierType is the host framework's modifier kind.
type StatModifierType int

const (
	// StatFlat is the host's flat modifier type.
	StatFlat StatModifierType = iota
	// StatPercentAdd is the host's additive percentage modifier type.
	StatPercentAdd
	// StatPercentMult is the host's multiplicative percentage modifier type.
	StatPercentMult
)

func (t StatModifierType) String() string {
	switch t {
	case StatFlat:
		return "Flat"
	case StatPercentAdd:
		return "PercentAdd"
	case StatPercentMult:
		return "PercentMult"
	default:
		return fmt.Sprintf("StatModifierType(%d)", int(t))
	}
}

// HostType maps an authored kind 1:1 onto the host type. Unknown kinds map to StatFlat.
func (k ModifierKind) HostType() StatModifierType {
	switch k {
	case KindFlat:
		return StatFlat
	case KindPercentAdd:
		return StatPercentAdd
	case KindPercentMult:
		return StatPercentMult
	default:
		return StatFlat
	}
}

const (
	// DefaultOrigin is the host's default origin. Non-forced bulk removal strips modifiers with this origin.
	DefaultOrigin = 0
	// ModOrigin is the reserved origin stamped on mod modifiers authored with the default origin.
	ModOrigin = -1
)

// ResolveOrigin rewrites the default origin to ModOrigin and passes every other origin through.
func ResolveOrigin(origin int) int {
	if origin == DefaultOrigin {
		return ModOrigin
	}
	return origin
}

// ModifierSpec is one authored stat modifier inside an item definition.
type ModifierSpec struct {
	Key    string
	Value  float64
	Kind   ModifierKind
	Origin int
}

// StatModifier is the record handed to a host attribute. Ownership passes to the attribute.
type StatModifier struct {
	Value    float64
	Type     StatModifierType
	Priority int
	Origin   int
}

// NewStatModifier builds the record for spec. Priority is always zero.
func NewStatModifier(spec ModifierSpec) StatModifier {
	return StatModifier{
		Value:    spec.Value,
		Type:     spec.Kind.HostType(),
		Priority: 0,
		Origin:   ResolveOrigin(spec.Origin),
	}
}
