package sig

import (
	"fmt"
	"reflect"

	"github.com/hupe1980/argmesh/internal/util"
)

// Callable is the capability a callable representation must implement to
// participate in adaptation: an introspectable signature plus an invocation
// method. Implementations should be stateless or safe for concurrent use.
type Callable interface {
	// Spec returns the declared parameter list.
	Spec() ArgSpec

	// Call invokes the callable with bound positional and keyword
	// arguments.
	Call(pos []any, kw map[string]any) (any, error)
}

// UnsupportedCallableError reports a value whose signature cannot be
// introspected because it implements no supported callable representation.
type UnsupportedCallableError struct {
	Value any
}

// Error implements the error interface.
func (e *UnsupportedCallableError) Error() string {
	return fmt.Sprintf("unsupported callable kind %T: implement sig.Callable or wrap with sig.NativeFunc", e.Value)
}

// ArgSpecOf returns the declared parameter list of a callable value. Only
// values implementing Callable are introspectable; everything else fails
// with *UnsupportedCallableError.
func ArgSpecOf(callable any) (ArgSpec, error) {
	if c, ok := callable.(Callable); ok {
		return c.Spec(), nil
	}
	return ArgSpec{}, &UnsupportedCallableError{Value: callable}
}

// Body is the generic invocation form behind Func.
type Body func(pos []any, kw map[string]any) (any, error)

// Func is the standard Callable: an explicit ArgSpec paired with a body.
// The zero value is not usable; construct with NewFunc or NativeFunc.
type Func struct {
	name string
	spec ArgSpec
	body Body
}

// NewFunc pairs an explicit parameter spec with a body. The name is used in
// log lines and error messages only. Panics if the spec violates its
// structural invariant, mirroring the construct-time contract of
// regexp.MustCompile.
func NewFunc(name string, spec ArgSpec, body Body) *Func {
	if err := spec.Validate(); err != nil {
		panic(err)
	}
	if body == nil {
		panic("sig: nil body")
	}
	return &Func{name: name, spec: spec, body: body}
}

// Name returns the callable's display name.
func (f *Func) Name() string { return f.name }

// Spec returns the declared parameter list.
func (f *Func) Spec() ArgSpec { return f.spec }

// Call invokes the body.
func (f *Func) Call(pos []any, kw map[string]any) (any, error) {
	return f.body(pos, kw)
}

// NativeFunc derives a Func from a plain Go function using reflection. Go
// reflection exposes parameter types but not names, so the caller supplies
// one name per parameter; for a variadic function the final name becomes the
// variadic-positional collector. Keyword arguments are bound to the named
// parameters through Bind before the underlying function is called.
func NativeFunc(name string, fn any, paramNames ...string) (*Func, error) {
	info, err := util.InspectFunc(fn)
	if err != nil {
		return nil, &UnsupportedCallableError{Value: fn}
	}
	spec := ArgSpec{}
	want := info.NumIn
	if info.Variadic {
		if len(paramNames) != want {
			return nil, fmt.Errorf("sig: %s takes %d parameters (last variadic), got %d names", name, want, len(paramNames))
		}
		spec.Names = append([]string(nil), paramNames[:want-1]...)
		spec.VarPositional = paramNames[want-1]
	} else {
		if len(paramNames) != want {
			return nil, fmt.Errorf("sig: %s takes %d parameters, got %d names", name, want, len(paramNames))
		}
		spec.Names = append([]string(nil), paramNames...)
	}
	fv := reflect.ValueOf(fn)
	body := func(pos []any, kw map[string]any) (any, error) {
		binding, err := Bind(spec, pos, kw)
		if err != nil {
			return nil, err
		}
		in := make([]any, 0, len(spec.Names))
		for _, pn := range spec.Names {
			in = append(in, binding[pn])
		}
		if spec.VarPositional != "" {
			rest, _ := binding[spec.VarPositional].([]any)
			in = append(in, rest...)
		}
		return util.CallFunc(fv, info, in)
	}
	return NewFunc(name, spec, body), nil
}
