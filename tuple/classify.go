package tuple

import (
	"fmt"

	"github.com/hupe1980/argmesh/typesys"
)

// NotArgumentTupleError reports a value or type spec that lacks the argument
// tuple structure, either because it is not tuple-shaped at all or because a
// named element precedes an unnamed one.
type NotArgumentTupleError struct {
	Value  any    // offending value or type spec
	Reason string // human-readable detail
}

// Error implements the error interface.
func (e *NotArgumentTupleError) Error() string {
	return fmt.Sprintf("not an argument tuple (%T): %s", e.Value, e.Reason)
}

// Classify resolves x to tuple elements. A *Tuple yields its elements
// verbatim; anything else is coerced through typesys.ToType and, if the
// result is a named tuple type, yields elements whose values are the element
// types. Everything else fails with *NotArgumentTupleError.
func Classify(x any) ([]Element, error) {
	if t, ok := x.(*Tuple); ok {
		return t.Elements(), nil
	}
	ct := typesys.ToType(x)
	if nt, ok := ct.(*typesys.NamedTuple); ok {
		typeElements := nt.Elements()
		elements := make([]Element, len(typeElements))
		for i, te := range typeElements {
			elements[i] = Element{Name: te.Name, Value: te.Type}
		}
		return elements, nil
	}
	return nil, &NotArgumentTupleError{Value: x, Reason: "neither a runtime tuple nor a named tuple type"}
}

// IsArgumentTuple reports whether x is interpretable as an argument tuple:
// classifiable into elements where the last unnamed element precedes the
// first named one. The empty tuple qualifies; unclassifiable values simply
// report false.
func IsArgumentTuple(x any) bool {
	elements, err := Classify(x)
	if err != nil {
		return false
	}
	maxUnnamed := -1
	minNamed := len(elements)
	for i, e := range elements {
		if e.Name != "" {
			if i < minNamed {
				minNamed = i
			}
		} else {
			maxUnnamed = i
		}
	}
	return maxUnnamed < minNamed
}

// Unpack splits an argument tuple (runtime tuple or named tuple type) into
// its positional values, order preserved, and its named values. For type
// specs the returned values are typesys.Type. Fails with
// *NotArgumentTupleError when x does not satisfy IsArgumentTuple.
func Unpack(x any) ([]any, map[string]any, error) {
	elements, err := Classify(x)
	if err != nil {
		return nil, nil, err
	}
	var pos []any
	kw := make(map[string]any)
	for _, e := range elements {
		if e.Name != "" {
			kw[e.Name] = e.Value
		} else {
			if len(kw) > 0 {
				return nil, nil, &NotArgumentTupleError{Value: x, Reason: "a named element precedes an unnamed one"}
			}
			pos = append(pos, e.Value)
		}
	}
	return pos, kw, nil
}
