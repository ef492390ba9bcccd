package argmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/argmesh/adapter"
	"github.com/hupe1980/argmesh/logging"
	"github.com/hupe1980/argmesh/sig"
	"github.com/hupe1980/argmesh/tuple"
	"github.com/hupe1980/argmesh/typesys"
)

func TestWrap(t *testing.T) {
	m := New(func(o *Options) {
		o.Logger = logging.NoOpLogger{}
	})

	add, err := sig.NativeFunc("add", func(x, y int) int { return x + y }, "x", "y")
	require.NoError(t, err)

	paramType := typesys.NewNamedTuple(
		typesys.TupleElement{Type: typesys.Int},
		typesys.TupleElement{Type: typesys.Int},
	)
	a, err := m.Wrap(add, paramType, adapter.Infer)
	require.NoError(t, err)
	require.True(t, a.Unpacks())

	got, err := a.Invoke(tuple.New(tuple.Element{Value: 2}, tuple.Element{Value: 3}))
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestPolymorphicEndToEnd(t *testing.T) {
	m := New()

	add, err := sig.NativeFunc("add", func(x, y int) int { return x + y }, "x", "y")
	require.NoError(t, err)

	pf := m.Polymorphic(m.WrapFactory(add, adapter.Infer))

	// Positional calling convention.
	got, err := pf.Invoke([]any{2, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	// Mixed positional/keyword convention specializes separately but hits
	// the same underlying callable.
	got, err = pf.Invoke([]any{2}, map[string]any{"y": 40})
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	assert.Equal(t, 2, pf.Specializations())

	// Incompatible argument shapes surface the build failure.
	_, err = pf.Invoke([]any{"two", "three", "four"}, nil)
	assert.Error(t, err)
}
