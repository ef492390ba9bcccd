package typesys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalar_AssignableFrom(t *testing.T) {
	assert.True(t, Int.AssignableFrom(Int))
	assert.False(t, Int.AssignableFrom(Float))
	assert.False(t, Int.AssignableFrom(nil))
	assert.False(t, Bool.AssignableFrom(NewNamedTuple()))
}

func TestNamedTuple_AssignableFrom(t *testing.T) {
	ab := NewNamedTuple(
		TupleElement{Name: "a", Type: Int},
		TupleElement{Name: "b", Type: Bool},
	)

	assert.True(t, ab.AssignableFrom(NewNamedTuple(
		TupleElement{Name: "a", Type: Int},
		TupleElement{Name: "b", Type: Bool},
	)))

	// Arity mismatch.
	assert.False(t, ab.AssignableFrom(NewNamedTuple(TupleElement{Name: "a", Type: Int})))
	// Name mismatch, including named vs unnamed.
	assert.False(t, ab.AssignableFrom(NewNamedTuple(
		TupleElement{Name: "a", Type: Int},
		TupleElement{Name: "c", Type: Bool},
	)))
	assert.False(t, ab.AssignableFrom(NewNamedTuple(
		TupleElement{Type: Int},
		TupleElement{Name: "b", Type: Bool},
	)))
	// Element type mismatch.
	assert.False(t, ab.AssignableFrom(NewNamedTuple(
		TupleElement{Name: "a", Type: Float},
		TupleElement{Name: "b", Type: Bool},
	)))
	// Not a tuple.
	assert.False(t, ab.AssignableFrom(Int))
	assert.False(t, ab.AssignableFrom(nil))
}

func TestNamedTuple_String(t *testing.T) {
	nt := NewNamedTuple(
		TupleElement{Type: Int},
		TupleElement{Name: "flag", Type: Bool},
	)
	assert.Equal(t, "<int,flag=bool>", nt.String())
	assert.Equal(t, "<>", NewNamedTuple().String())
}

func TestToType(t *testing.T) {
	assert.Nil(t, ToType(nil))
	assert.Nil(t, ToType(42))
	assert.Equal(t, Int, ToType(Int))

	fromSlice := ToType([]Type{Int, Bool})
	require.IsType(t, &NamedTuple{}, fromSlice)
	assert.Equal(t, []TupleElement{{Type: Int}, {Type: Bool}}, fromSlice.(*NamedTuple).Elements())

	fromElements := ToType([]TupleElement{{Name: "x", Type: Int}})
	require.IsType(t, &NamedTuple{}, fromElements)
	assert.Equal(t, []TupleElement{{Name: "x", Type: Int}}, fromElements.(*NamedTuple).Elements())

	// Map form sorts names for determinism.
	fromMap := ToType(map[string]Type{"b": Bool, "a": Int})
	require.IsType(t, &NamedTuple{}, fromMap)
	assert.Equal(t, []TupleElement{
		{Name: "a", Type: Int},
		{Name: "b", Type: Bool},
	}, fromMap.(*NamedTuple).Elements())
}

func TestInfer_Scalars(t *testing.T) {
	assert.Equal(t, Bool, Infer(true))
	assert.Equal(t, Int, Infer(7))
	assert.Equal(t, Int, Infer(uint8(7)))
	assert.Equal(t, Float, Infer(1.5))
	assert.Equal(t, String, Infer("s"))
	assert.Nil(t, Infer(nil))
	assert.Nil(t, Infer(struct{}{}))
	// A type infers to itself, so pre-typed elements survive inference.
	assert.Equal(t, Int, Infer(Int))
}

type fakeLister struct{ elements []TupleElement }

func (f fakeLister) TypeElements() []TupleElement { return f.elements }

func TestInfer_ElementLister(t *testing.T) {
	got := Infer(fakeLister{elements: []TupleElement{
		{Type: Int},
		{Name: "b", Type: Bool},
	}})
	require.IsType(t, &NamedTuple{}, got)
	assert.Equal(t, "<int,b=bool>", got.String())
}
