// Package schema models structural type descriptions as node graphs: nested
// field maps, sequences, sets, enumerations, optional and union wrappers, and
// identity-based recursive references. It also provides the registry and
// collector that discover every named model reachable from a set of roots.
package schema

// Node is one node in a structural type-description graph. The concrete
// variants are Primitive, Enum, Optional, Union, Recursive, Literal, Sequence,
// Set and *Model.
type Node interface {
	node()
}

// Primitive is a leaf scalar type.
type Primitive string

// Primitive variants.
const (
	Long     Primitive = "long"
	Double   Primitive = "double"
	String   Primitive = "string"
	Boolean  Primitive = "boolean"
	Keyword  Primitive = "keyword"
	DateTime Primitive = "date-time"
	Date     Primitive = "date"
)

func (Primitive) node() {}

// Enum is a closed set of allowed values. Values keeps declaration order; all
// values are expected to share one scalar class.
type Enum struct {
	Values []any
}

func (Enum) node() {}

// Optional wraps a node whose presence is not required. Optionality is carried
// outside the type descriptor, so classification passes through to Inner.
type Optional struct {
	Inner Node
}

func (Optional) node() {}

// Union holds one or more alternative shapes in declaration order. Swagger 1.2
// has no union type, so downstream typing uses the first alternative only.
type Union struct {
	Alternatives []Node
}

func (Union) node() {}

// Recursive points at a Model by identity instead of embedding its structure.
// Cycles in a schema graph are representable only through Recursive nodes.
type Recursive struct {
	TargetID string
}

func (Recursive) node() {}

// Literal is a single concrete value; it types as the class of that value.
type Literal struct {
	Value any
}

func (Literal) node() {}

// Sequence is an ordered collection of Elem.
type Sequence struct {
	Elem Node
}

func (Sequence) node() {}

// Set is an unordered collection of distinct Elem values.
type Set struct {
	Elem Node
}

func (Set) node() {}
