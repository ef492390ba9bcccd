package adapter

import (
	"fmt"

	"github.com/hupe1980/argmesh/sig"
	"github.com/hupe1980/argmesh/tuple"
	"github.com/hupe1980/argmesh/typesys"
)

// Adapter is an immutable zero-or-one-argument wrapper around a callable,
// closed over the unpack decision resolved at build time. It is safe for
// concurrent use.
type Adapter struct {
	id        string
	callable  sig.Callable
	takesArg  bool
	unpack    bool
	paramType typesys.Type
	posTypes  []typesys.Type
	kwTypes   map[string]typesys.Type
	kwNames   []string // deterministic validation order
}

// ID returns the adapter's unique identifier, surfaced in log lines.
func (a *Adapter) ID() string { return a.id }

// TakesArgument reports whether Invoke expects an argument.
func (a *Adapter) TakesArgument() bool { return a.takesArg }

// Unpacks reports whether the adapter decomposes its argument before
// forwarding.
func (a *Adapter) Unpacks() bool { return a.takesArg && a.unpack }

// Invoke runs the wrapped callable. Zero-parameter adapters require a nil
// argument; one-parameter adapters require a non-nil one. Unpacking adapters
// demand an argument tuple and re-validate every element's runtime type
// before forwarding; pass-through adapters validate the whole value against
// the declared parameter type.
func (a *Adapter) Invoke(arg any) (any, error) {
	if !a.takesArg {
		if arg != nil {
			return nil, fmt.Errorf("adapter %s: no argument expected, got %T", a.id, arg)
		}
		return a.callable.Call(nil, nil)
	}
	if arg == nil {
		return nil, fmt.Errorf("adapter %s: an argument is required", a.id)
	}
	if a.unpack {
		return a.invokeUnpacked(arg)
	}
	inferred := typesys.Infer(arg)
	if inferred == nil || !a.paramType.AssignableFrom(inferred) {
		return nil, &TypeMismatchError{Position: -1, Expected: a.paramType, Actual: inferred}
	}
	return a.callable.Call([]any{arg}, nil)
}

// invokeUnpacked validates and splits an argument tuple, then forwards its
// raw element values positionally and by keyword.
func (a *Adapter) invokeUnpacked(arg any) (any, error) {
	t, ok := arg.(*tuple.Tuple)
	if !ok {
		return nil, &tuple.NotArgumentTupleError{Value: arg, Reason: "unpacking adapter requires a runtime tuple"}
	}
	pos := make([]any, 0, len(a.posTypes))
	for i, expected := range a.posTypes {
		if i >= t.Len() {
			return nil, &TypeMismatchError{Position: i, Expected: expected}
		}
		v := t.Value(i)
		actual := typesys.Infer(v)
		if actual == nil || !expected.AssignableFrom(actual) {
			return nil, &TypeMismatchError{Position: i, Expected: expected, Actual: actual}
		}
		pos = append(pos, v)
	}
	kw := make(map[string]any, len(a.kwNames))
	for _, name := range a.kwNames {
		expected := a.kwTypes[name]
		v, found := t.ByName(name)
		if !found {
			return nil, &TypeMismatchError{Position: -1, Name: name, Expected: expected}
		}
		actual := typesys.Infer(v)
		if actual == nil || !expected.AssignableFrom(actual) {
			return nil, &TypeMismatchError{Position: -1, Name: name, Expected: expected, Actual: actual}
		}
		kw[name] = v
	}
	return a.callable.Call(pos, kw)
}
