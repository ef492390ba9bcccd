package typesys

// ElementLister is implemented by runtime containers (notably tuple.Tuple)
// that can describe themselves as named tuple elements. It keeps inference
// total over bundled arguments without this package depending on the tuple
// package.
type ElementLister interface {
	TypeElements() []TupleElement
}

// Infer derives the structural type of a runtime value. It covers the scalar
// kinds, runtime tuples via ElementLister, and values that already are types
// (a Type infers to itself, so pre-typed element lists survive inference
// unchanged). Unknown values infer to nil; callers treat a nil type as
// never assignable.
func Infer(v any) Type {
	switch x := v.(type) {
	case nil:
		return nil
	case bool:
		return Bool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Int
	case float32, float64:
		return Float
	case string:
		return String
	case Type:
		return x
	case ElementLister:
		return NewNamedTuple(x.TypeElements()...)
	default:
		return nil
	}
}
