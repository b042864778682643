// Package statgraph models the attribute-bearing object graph attached to an entity.
//
// The graph is not inspected at runtime. Every container node declares its own members,
// and every member value belongs to a closed set of kinds, so the indexer can decide
// whether to record, descend into, or skip a value without knowing concrete host types.
package statgraph

import "go.trai.ch/moditems/internal/core/domain"

// Attribute is a single numeric stat owned by some node in the graph.
// The index holds attributes without owning them.
type Attribute interface {
	// AddModifier hands ownership of mod to the attribute's modifier list.
	AddModifier(mod domain.StatModifier)
}

// Node is a container in the stats graph.
// Implementations must be comparable (pointer types in practice).
type Node interface {
	// Members returns the node's exposed members in declaration order.
	Members() []Member
}

// Root is a stats root together with the arena handle that identifies it.
type Root struct {
	Handle domain.RootHandle
	Node   Node
}

// MemberKind separates plain data members from computed ones.
type MemberKind uint8

const (
	// FieldMember is a plain data member. Fields are visited before properties.
	FieldMember MemberKind = iota
	// PropertyMember is a computed member whose read may fail.
	PropertyMember
)

func (k MemberKind) String() string {
	if k == PropertyMember {
		return "property"
	}
	return "field"
}

// Member is a named slot on a node.
type Member struct {
	Name string
	Kind MemberKind
	read func() (Value, error)
}

// Field declares a data member holding v.
func Field(name string, v Value) Member {
	return Member{
		Name: name,
		Kind: FieldMember,
		read: func() (Value, error) { return v, nil },
	}
}

// Property declares a computed member. get may fail; the failure only affects this member.
func Property(name string, get func() (Value, error)) Member {
	return Member{
		Name: name,
		Kind: PropertyMember,
		read: get,
	}
}

// Read returns the member's current value.
func (m Member) Read() (Value, error) {
	if m.read == nil {
		return Nil(), nil
	}
	return m.read()
}

// Inspectable is implemented by attributes that can report their current state for display.
type Inspectable interface {
	Attribute
	BaseValue() float64
	Modifiers() []domain.StatModifier
}
