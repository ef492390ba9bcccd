package adapter

import (
	"sort"

	"github.com/google/uuid"

	"github.com/hupe1980/argmesh/logging"
	"github.com/hupe1980/argmesh/sig"
	"github.com/hupe1980/argmesh/tuple"
	"github.com/hupe1980/argmesh/typesys"
)

// Preference expresses the caller's unpacking intent for the declared
// parameter type. The zero value is Infer.
type Preference int

const (
	// Infer lets Build choose, failing when both forms are viable.
	Infer Preference = iota

	// Required demands that the parameter be unpacked into constituent
	// arguments.
	Required

	// Forbidden demands that the parameter be passed through as a single
	// value.
	Forbidden
)

// String returns the preference's display name.
func (p Preference) String() string {
	switch p {
	case Infer:
		return "infer"
	case Required:
		return "required"
	case Forbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Options configures adapter construction.
type Options struct {
	// Logger receives debug lines about build decisions. Defaults to NoOp.
	Logger logging.Logger
}

// Build wraps callable so it is invocable with zero or one argument.
//
// With no parameter type, the callable must be compatible with an empty
// argument list and the adapter takes no argument. With a parameter type,
// Build decides between passing the value through unchanged and unpacking it
// into positional/keyword arguments:
//
//   - unpack is required when the callable cannot bind the whole parameter
//     type as its single positional argument
//   - unpack is possible when the parameter type is argument-tuple shaped
//     and the callable binds its split elements
//
// A stated preference that contradicts feasibility, or an unresolvable
// ambiguity under Infer, fails with *BuildError. The callable must implement
// sig.Callable; anything else fails with *sig.UnsupportedCallableError.
func Build(callable any, parameterType typesys.Type, pref Preference, optFns ...func(o *Options)) (*Adapter, error) {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	spec, err := sig.ArgSpecOf(callable)
	if err != nil {
		return nil, err
	}
	target := callable.(sig.Callable)

	if parameterType == nil {
		if !sig.Compatible(spec, nil, nil) {
			return nil, &BuildError{Code: CodeIncompatibleNoParameter, Spec: spec}
		}
		a := &Adapter{id: uuid.NewString(), callable: target}
		opts.Logger.Debug("adapter built", "adapter_id", a.id, "form", "no-argument", "signature", spec.String())
		return a, nil
	}

	unpackRequired := !sig.Compatible(spec, []typesys.Type{parameterType}, nil)

	var (
		unpackPossible bool
		posTypes       []typesys.Type
		kwTypes        map[string]typesys.Type
	)
	if tuple.IsArgumentTuple(parameterType) {
		pos, kw, uerr := tuple.Unpack(parameterType)
		if uerr != nil {
			return nil, uerr
		}
		posTypes = make([]typesys.Type, len(pos))
		for i, v := range pos {
			posTypes[i], _ = v.(typesys.Type)
		}
		kwTypes = make(map[string]typesys.Type, len(kw))
		for name, v := range kw {
			kwTypes[name], _ = v.(typesys.Type)
		}
		unpackPossible = sig.Compatible(spec, posTypes, kwTypes)
	}

	fail := func(code string) (*Adapter, error) {
		return nil, &BuildError{Code: code, Spec: spec, ParameterType: parameterType}
	}
	switch {
	case unpackRequired && pref == Forbidden:
		return fail(CodeSingleArgumentRejected)
	case !unpackPossible && pref == Required:
		return fail(CodeMultipleArgumentsRejected)
	case unpackRequired && !unpackPossible:
		return fail(CodeNoViableForm)
	case !unpackRequired && unpackPossible && pref == Infer:
		return fail(CodeAmbiguousUnpacking)
	}
	unpack := pref == Required || (pref == Infer && unpackPossible)

	a := &Adapter{
		id:        uuid.NewString(),
		callable:  target,
		takesArg:  true,
		unpack:    unpack,
		paramType: parameterType,
	}
	if unpack {
		a.posTypes = posTypes
		a.kwTypes = kwTypes
		a.kwNames = sortedNames(kwTypes)
	}
	opts.Logger.Debug("adapter built",
		"adapter_id", a.id,
		"form", map[bool]string{true: "unpack", false: "pass-through"}[unpack],
		"preference", pref.String(),
		"parameter_type", parameterType.String(),
		"signature", spec.String(),
	)
	return a, nil
}

func sortedNames(kwTypes map[string]typesys.Type) []string {
	names := make([]string, 0, len(kwTypes))
	for name := range kwTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
