package adapter

import (
	"fmt"

	"github.com/hupe1980/argmesh/sig"
	"github.com/hupe1980/argmesh/typesys"
)

// Build failure codes.
const (
	// CodeIncompatibleNoParameter: no parameter type was declared but the
	// callable cannot be invoked with zero arguments.
	CodeIncompatibleNoParameter = "incompatible_no_parameter"

	// CodeSingleArgumentRejected: unpacking is required but the caller
	// forbade it.
	CodeSingleArgumentRejected = "single_argument_rejected"

	// CodeMultipleArgumentsRejected: unpacking is impossible but the caller
	// required it.
	CodeMultipleArgumentsRejected = "multiple_arguments_rejected"

	// CodeNoViableForm: the callable accepts the parameter type neither as
	// a single argument nor unpacked.
	CodeNoViableForm = "no_viable_form"

	// CodeAmbiguousUnpacking: both forms are viable and the caller
	// expressed no preference.
	CodeAmbiguousUnpacking = "ambiguous_unpacking"
)

// BuildError reports a failed adapter build with a stable code.
type BuildError struct {
	Code          string
	Spec          sig.ArgSpec
	ParameterType typesys.Type
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	switch e.Code {
	case CodeIncompatibleNoParameter:
		return fmt.Sprintf("adapter: signature %s cannot be interpreted as a no-parameter computation", e.Spec)
	case CodeSingleArgumentRejected:
		return fmt.Sprintf("adapter: signature %s cannot accept a value of type %s as a single argument", e.Spec, e.ParameterType)
	case CodeMultipleArgumentsRejected:
		return fmt.Sprintf("adapter: signature %s cannot accept a value of type %s as multiple positional and/or keyword arguments", e.Spec, e.ParameterType)
	case CodeNoViableForm:
		return fmt.Sprintf("adapter: signature %s cannot accept a value of type %s as either a single argument or multiple arguments", e.Spec, e.ParameterType)
	case CodeAmbiguousUnpacking:
		return fmt.Sprintf("adapter: signature %s could accept a value of type %s either as a single argument or unpacked, and no preference was given", e.Spec, e.ParameterType)
	default:
		return fmt.Sprintf("adapter: build failed (%s) for signature %s", e.Code, e.Spec)
	}
}

// TypeMismatchError reports a runtime value whose inferred type is not
// assignable to the expected type. Position is the offending positional
// index, or -1 when the mismatch concerns a named element (Name set) or the
// whole argument (Name empty).
type TypeMismatchError struct {
	Position int
	Name     string
	Expected typesys.Type
	Actual   typesys.Type
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	switch {
	case e.Name != "":
		return fmt.Sprintf("adapter: expected element named %s to be of type %s, found %s", e.Name, e.Expected, typeOrNone(e.Actual))
	case e.Position >= 0:
		return fmt.Sprintf("adapter: expected element at position %d to be of type %s, found %s", e.Position, e.Expected, typeOrNone(e.Actual))
	default:
		return fmt.Sprintf("adapter: expected an argument of type %s, found %s", e.Expected, typeOrNone(e.Actual))
	}
}

func typeOrNone(t typesys.Type) string {
	if t == nil {
		return "<none>"
	}
	return t.String()
}
