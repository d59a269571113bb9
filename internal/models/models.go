// Package models defines the parsed JSON value model and the TypeNode
// intermediate representation shared by the inference engine and every
// language emitter.
package models

import "github.com/goccy/go-json"

// Value is a parsed JSON value. It is one of: string, json.Number, bool,
// nil, *Object, or Array.
type Value interface{}

// Member is a single key/value pair of a JSON object. Key is the original
// JSON key, preserved verbatim.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object with member order preserved. encoding/json maps
// enumerate in random order, which would make emitted field order
// non-deterministic, so objects are decoded from the token stream instead.
type Object struct {
	Members []Member
}

// Get returns the value for a key and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	for _, m := range o.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Array is a JSON array.
type Array []Value

// Number re-exports the decoder's number type so callers constructing
// values by hand do not need a direct goccy/go-json import.
type Number = json.Number

// Kind discriminates the three TypeNode variants.
type Kind int

const (
	KindPrimitive Kind = iota
	KindArray
	KindObject
)

// Primitive is the scalar category of a primitive TypeNode. PrimAny is the
// sentinel element type of an empty array; every emitter renders it as its
// closest untyped equivalent.
type Primitive int

const (
	PrimString Primitive = iota
	PrimNumber
	PrimBoolean
	PrimNull
	PrimAny
)

// TypeNode is one inferred type. Exactly one variant is populated,
// according to Kind. Nodes are immutable once inference returns them;
// emitters only read.
type TypeNode struct {
	// Name is the structural identifier: the configured root name for the
	// root, the PascalCase field name for object-valued fields, and
	// "<parent>Item" for array element types. Only meaningful for objects.
	Name string

	Kind Kind

	// Prim is set when Kind == KindPrimitive.
	Prim Primitive

	// Elem is set when Kind == KindArray.
	Elem *TypeNode

	// Fields is set when Kind == KindObject, in original JSON key order.
	Fields []Field
}

// Field is one object field: the verbatim JSON key plus its inferred type.
// The key is kept unconverted because emitters need it for rename
// annotations and quoted literal keys.
type Field struct {
	Key  string
	Type *TypeNode
}

// IsObject reports whether the node is an object type.
func (n *TypeNode) IsObject() bool { return n != nil && n.Kind == KindObject }

// IsArray reports whether the node is an array type.
func (n *TypeNode) IsArray() bool { return n != nil && n.Kind == KindArray }

// IsPrimitive reports whether the node is a primitive type.
func (n *TypeNode) IsPrimitive() bool { return n != nil && n.Kind == KindPrimitive }
