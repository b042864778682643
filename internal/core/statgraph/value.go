package statgraph

// ValueKind is the closed set of things a member can hold.
type ValueKind uint8

const (
	// KindNil is an absent value.
	KindNil ValueKind = iota
	// KindScalar is a primitive number or boolean.
	KindScalar
	// KindText is a string.
	KindText
	// KindEngine is a host-engine object. It is never traversed.
	KindEngine
	// KindAttribute is an indexable stat.
	KindAttribute
	// KindNode is a plain container that is traversed.
	KindNode
)

var valueKindNames = [...]string{
	KindNil:       "nil",
	KindScalar:    "scalar",
	KindText:      "text",
	KindEngine:    "engine",
	KindAttribute: "attribute",
	KindNode:      "node",
}

func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return "unknown"
}

// Value is a tagged member value.
type Value struct {
	kind ValueKind
	attr Attribute
	node Node
}

// Nil returns the absent value.
func Nil() Value { return Value{kind: KindNil} }

// Scalar returns a primitive value. The payload is irrelevant to indexing and not kept.
func Scalar() Value { return Value{kind: KindScalar} }

// Text returns a string value.
func Text() Value { return Value{kind: KindText} }

// Engine returns a host-engine object value.
// payload may be the object's own member graph; it is kept for the host but never indexed.
func Engine(payload Node) Value { return Value{kind: KindEngine, node: payload} }

// Attr returns an attribute value, or Nil when a is nil.
func Attr(a Attribute) Value {
	if a == nil {
		return Nil()
	}
	return Value{kind: KindAttribute, attr: a}
}

// Nested returns a traversable node value, or Nil when n is nil.
func Nested(n Node) Value {
	if n == nil {
		return Nil()
	}
	return Value{kind: KindNode, node: n}
}

// Kind returns the value's kind.
func (v Value) Kind() ValueKind { return v.kind }

// Attribute returns the attribute held by v, if any.
func (v Value) Attribute() (Attribute, bool) {
	return v.attr, v.kind == KindAttribute
}

// Node returns the node held by v if v is traversable.
func (v Value) Node() (Node, bool) {
	return v.node, v.kind == KindNode
}

// Payload returns the member graph of an engine object, if one was supplied.
func (v Value) Payload() (Node, bool) {
	return v.node, v.kind == KindEngine && v.node != nil
}
