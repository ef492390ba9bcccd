package dispatch

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/argmesh/adapter"
	"github.com/hupe1980/argmesh/sig"
	"github.com/hupe1980/argmesh/typesys"
)

// countingFactory builds pass-through adapters and counts its invocations.
type countingFactory struct {
	calls int32
	delay time.Duration
	fail  error
}

func (f *countingFactory) factory(argType typesys.Type) (*adapter.Adapter, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.fail != nil {
		return nil, f.fail
	}
	echo := sig.NewFunc("echo", sig.ArgSpec{Names: []string{"arg"}}, func(pos []any, kw map[string]any) (any, error) {
		return pos[0], nil
	})
	return adapter.Build(echo, argType, adapter.Forbidden)
}

func (f *countingFactory) count() int32 { return atomic.LoadInt32(&f.calls) }

func TestPolymorphicFunction_SpecializesPerType(t *testing.T) {
	cf := &countingFactory{}
	pf := NewPolymorphicFunction(cf.factory)
	assert.NotEmpty(t, pf.ID())

	// Two calls with the same inferred type build once.
	_, err := pf.Invoke([]any{1}, nil)
	require.NoError(t, err)
	_, err = pf.Invoke([]any{2}, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, cf.count())
	assert.Equal(t, 1, pf.Specializations())

	// A different inferred type builds a second specialization.
	_, err = pf.Invoke([]any{"s"}, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, cf.count())
	assert.Equal(t, 2, pf.Specializations())

	// Keyword shape participates in the type, positional order does not
	// change across equal shapes.
	_, err = pf.Invoke([]any{1}, map[string]any{"a": true})
	require.NoError(t, err)
	_, err = pf.Invoke([]any{5}, map[string]any{"a": false})
	require.NoError(t, err)
	assert.EqualValues(t, 3, cf.count())
}

func TestPolymorphicFunction_ForwardsOriginalArguments(t *testing.T) {
	cf := &countingFactory{}
	pf := NewPolymorphicFunction(cf.factory)

	got, err := pf.Invoke([]any{41}, nil)
	require.NoError(t, err)

	// The pass-through adapter receives the packed tuple itself.
	packed, ok := got.(interface{ Value(int) any })
	require.True(t, ok, "expected the packed tuple, got %T", got)
	assert.Equal(t, 41, packed.Value(0))
}

func TestPolymorphicFunction_FactoryFailureNotCached(t *testing.T) {
	cf := &countingFactory{fail: assert.AnError}
	pf := NewPolymorphicFunction(cf.factory)

	_, err := pf.Invoke([]any{1}, nil)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, pf.Specializations())

	// The next call for the same type retries the factory.
	cf.fail = nil
	_, err = pf.Invoke([]any{1}, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, cf.count())
	assert.Equal(t, 1, pf.Specializations())
}

func TestPolymorphicFunction_ConcurrentMissesBuildOnce(t *testing.T) {
	cf := &countingFactory{delay: 20 * time.Millisecond}
	pf := NewPolymorphicFunction(cf.factory)

	const callers = 16
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = pf.Invoke([]any{i}, nil)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "caller %d", i)
	}
	// All callers share one inferred type; misses are serialized so exactly
	// one build occurs.
	assert.EqualValues(t, 1, cf.count())
	assert.Equal(t, 1, pf.Specializations())
}

func TestNewPolymorphicFunction_NilFactoryPanics(t *testing.T) {
	assert.Panics(t, func() { NewPolymorphicFunction(nil) })
}
