package host

import "go.trai.ch/moditems/internal/core/statgraph"

// Object is a plain container node with ordered members.
type Object struct {
	members []statgraph.Member
}

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{}
}

// Field appends a data member and returns o.
func (o *Object) Field(name string, v statgraph.Value) *Object {
	o.members = append(o.members, statgraph.Field(name, v))
	return o
}

// Property appends a computed member and returns o.
func (o *Object) Property(name string, get func() (statgraph.Value, error)) *Object {
	o.members = append(o.members, statgraph.Property(name, get))
	return o
}

// Members returns the declared members.
func (o *Object) Members() []statgraph.Member {
	if o == nil {
		return nil
	}
	return o.members
}

// Value returns o as a traversable member value.
func (o *Object) Value() statgraph.Value {
	if o == nil {
		return statgraph.Nil()
	}
	return statgraph.Nested(o)
}

// EngineObject is an object owned by the host engine, such as a sprite or a scene node.
// It may carry its own members, but they belong to the engine and are never indexed.
type EngineObject struct {
	Payload *Object
}

// Value returns e as an engine member value.
func (e *EngineObject) Value() statgraph.Value {
	if e == nil || e.Payload == nil {
		return statgraph.Engine(nil)
	}
	return statgraph.Engine(e.Payload)
}
