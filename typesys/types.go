package typesys

import (
	"fmt"
	"sort"
	"strings"
)

// Type is the capability every structural type exposes to the adaptation
// core. AssignableFrom answers "can a value of type other be used where this
// type is expected".
type Type interface {
	fmt.Stringer

	// AssignableFrom reports whether a value of type other is acceptable
	// where this type is expected. A nil other is never assignable.
	AssignableFrom(other Type) bool
}

// Scalar is an atomic structural type. The zero value is not a valid scalar;
// use the exported constants.
type Scalar int

// Scalar kinds supported by the core type system.
const (
	Bool Scalar = iota + 1
	Int
	Float
	String
)

// String returns the scalar's display name.
func (s Scalar) String() string {
	switch s {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	default:
		return fmt.Sprintf("scalar(%d)", int(s))
	}
}

// AssignableFrom reports scalar compatibility. Scalars are only assignable
// from the identical scalar kind; there are no implicit widenings.
func (s Scalar) AssignableFrom(other Type) bool {
	o, ok := other.(Scalar)
	return ok && o == s
}

// TupleElement is one slot of a named tuple type. An empty Name marks an
// unnamed (positional) element.
type TupleElement struct {
	Name string
	Type Type
}

// NamedTuple is an ordered sequence of optionally named element types. It is
// the structural shape of a bundled call argument.
type NamedTuple struct {
	elements []TupleElement
}

// NewNamedTuple constructs a named tuple type from the given elements. The
// element order is preserved verbatim; no shape constraints are imposed at
// construction time (see tuple.IsArgumentTuple for the argument-tuple
// predicate).
func NewNamedTuple(elements ...TupleElement) *NamedTuple {
	return &NamedTuple{elements: append([]TupleElement(nil), elements...)}
}

// Elements returns a copy of the element list.
func (t *NamedTuple) Elements() []TupleElement {
	return append([]TupleElement(nil), t.elements...)
}

// Len returns the number of elements.
func (t *NamedTuple) Len() int { return len(t.elements) }

// String renders the tuple as <name=type, type, ...>.
func (t *NamedTuple) String() string {
	var b strings.Builder
	b.WriteByte('<')
	for i, e := range t.elements {
		if i > 0 {
			b.WriteByte(',')
		}
		if e.Name != "" {
			b.WriteString(e.Name)
			b.WriteByte('=')
		}
		if e.Type != nil {
			b.WriteString(e.Type.String())
		} else {
			b.WriteByte('?')
		}
	}
	b.WriteByte('>')
	return b.String()
}

// AssignableFrom reports structural tuple compatibility: same arity, equal
// element names (including emptiness) and pairwise assignable element types.
func (t *NamedTuple) AssignableFrom(other Type) bool {
	o, ok := other.(*NamedTuple)
	if !ok || o == nil || len(o.elements) != len(t.elements) {
		return false
	}
	for i, e := range t.elements {
		oe := o.elements[i]
		if e.Name != oe.Name {
			return false
		}
		if e.Type == nil || oe.Type == nil || !e.Type.AssignableFrom(oe.Type) {
			return false
		}
	}
	return true
}

// ToType coerces a type-like specification into a Type, returning nil when
// the value is not type-shaped. Accepted forms:
//
//   - Type: returned as is
//   - []Type: unnamed tuple elements in order
//   - []TupleElement: tuple elements verbatim
//   - map[string]Type: named tuple elements in lexicographic name order
func ToType(x any) Type {
	switch v := x.(type) {
	case nil:
		return nil
	case Type:
		return v
	case []Type:
		elements := make([]TupleElement, len(v))
		for i, et := range v {
			elements[i] = TupleElement{Type: et}
		}
		return NewNamedTuple(elements...)
	case []TupleElement:
		return NewNamedTuple(v...)
	case map[string]Type:
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		elements := make([]TupleElement, len(names))
		for i, name := range names {
			elements[i] = TupleElement{Name: name, Type: v[name]}
		}
		return NewNamedTuple(elements...)
	default:
		return nil
	}
}
