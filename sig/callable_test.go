package sig

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgSpecOf(t *testing.T) {
	f := NewFunc("noop", ArgSpec{Names: []string{"x"}}, func(pos []any, kw map[string]any) (any, error) {
		return nil, nil
	})
	spec, err := ArgSpecOf(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, spec.Names)

	_, err = ArgSpecOf(42)
	var unsupported *UnsupportedCallableError
	require.ErrorAs(t, err, &unsupported)

	// Plain Go funcs are not introspectable either; they carry no
	// parameter names.
	_, err = ArgSpecOf(func(x int) int { return x })
	require.ErrorAs(t, err, &unsupported)
}

func TestNewFunc_InvalidConstruction(t *testing.T) {
	assert.Panics(t, func() {
		NewFunc("bad", ArgSpec{Names: []string{"x"}, Defaults: []any{1, 2}}, func([]any, map[string]any) (any, error) {
			return nil, nil
		})
	})
	assert.Panics(t, func() {
		NewFunc("nobody", ArgSpec{}, nil)
	})
}

func TestNativeFunc_BindsKeywords(t *testing.T) {
	add, err := NativeFunc("add", func(x, y int) int { return x + y }, "x", "y")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, add.Spec().Names)

	got, err := add.Call([]any{2}, map[string]any{"y": 3})
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	// Keyword for a positionally bound name fails through Bind.
	_, err = add.Call([]any{2, 3}, map[string]any{"x": 1})
	var bindErr *BindError
	require.ErrorAs(t, err, &bindErr)
	assert.Equal(t, CodeDuplicateArgument, bindErr.Code)
}

func TestNativeFunc_Variadic(t *testing.T) {
	sum, err := NativeFunc("sum", func(base int, rest ...int) int {
		for _, r := range rest {
			base += r
		}
		return base
	}, "base", "rest")
	require.NoError(t, err)
	assert.Equal(t, []string{"base"}, sum.Spec().Names)
	assert.Equal(t, "rest", sum.Spec().VarPositional)

	got, err := sum.Call([]any{1, 2, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestNativeFunc_ErrorResult(t *testing.T) {
	boom := errors.New("boom")
	fail, err := NativeFunc("fail", func(x int) (int, error) { return 0, boom }, "x")
	require.NoError(t, err)

	_, err = fail.Call([]any{1}, nil)
	assert.ErrorIs(t, err, boom)
}

func TestNativeFunc_Validation(t *testing.T) {
	_, err := NativeFunc("notafunc", 42)
	var unsupported *UnsupportedCallableError
	require.ErrorAs(t, err, &unsupported)

	_, err = NativeFunc("wrongnames", func(x int) int { return x }, "x", "y")
	assert.Error(t, err)

	// More than one non-error result is unsupported.
	_, err = NativeFunc("twovalues", func() (int, int) { return 1, 2 })
	require.ErrorAs(t, err, &unsupported)
}

func TestNativeFunc_NumericConversion(t *testing.T) {
	half, err := NativeFunc("half", func(x float64) float64 { return x / 2 }, "x")
	require.NoError(t, err)

	got, err := half.Call([]any{3}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.5, got)

	_, err = half.Call([]any{"nope"}, nil)
	assert.Error(t, err)
}
