package sig

import (
	"fmt"
	"sort"
	"strings"
)

// Binding codes categorize the ways a bind attempt can fail.
const (
	// CodeTooManyPositional: more positional values than declared names and
	// no variadic-positional collector.
	CodeTooManyPositional = "too_many_positional"

	// CodeDuplicateArgument: a parameter received both a positional and a
	// keyword value.
	CodeDuplicateArgument = "duplicate_argument"

	// CodeMissingArgument: a parameter received no value and declares no
	// default.
	CodeMissingArgument = "missing_argument"

	// CodeUnexpectedKeyword: leftover keyword arguments with no
	// variadic-keyword collector.
	CodeUnexpectedKeyword = "unexpected_keyword"
)

// BindError reports a failed bind attempt with a stable code and the names
// involved.
type BindError struct {
	Code  string   // one of the Code* constants
	Spec  ArgSpec  // the spec being bound against
	Names []string // offending parameter or keyword names, if any
	Want  int      // expected count (CodeTooManyPositional)
	Got   int      // supplied count (CodeTooManyPositional)
}

// Error implements the error interface.
func (e *BindError) Error() string {
	switch e.Code {
	case CodeTooManyPositional:
		return fmt.Sprintf("bind %s: too many positional arguments: expected at most %d, found %d", e.Spec, e.Want, e.Got)
	case CodeDuplicateArgument:
		return fmt.Sprintf("bind %s: argument %s specified twice", e.Spec, strings.Join(e.Names, ", "))
	case CodeMissingArgument:
		return fmt.Sprintf("bind %s: argument %s was not specified and has no default", e.Spec, strings.Join(e.Names, ", "))
	case CodeUnexpectedKeyword:
		return fmt.Sprintf("bind %s: unexpected keyword arguments: %s", e.Spec, strings.Join(e.Names, ", "))
	default:
		return fmt.Sprintf("bind %s: %s", e.Spec, e.Code)
	}
}

// Binding maps parameter names to their bound values. When collectors are
// declared, the variadic-positional name maps to a []any of leftover
// positional values and the variadic-keyword name to a map[string]any of
// leftover keyword values.
type Binding map[string]any

// Bind assigns positional and keyword arguments to the declared parameters
// of spec. Each declared name is bound from, in order of precedence, its
// positional slot, a keyword value, or its default; binding a name both
// positionally and by keyword fails regardless of value equality. Leftover
// positional and keyword values go to the variadic collectors when declared
// and fail the bind otherwise.
func Bind(spec ArgSpec, pos []any, kw map[string]any) (Binding, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if len(pos) > len(spec.Names) && spec.VarPositional == "" {
		return nil, &BindError{
			Code: CodeTooManyPositional,
			Spec: spec,
			Want: len(spec.Names),
			Got:  len(pos),
		}
	}
	result := make(Binding, len(spec.Names))
	for i, name := range spec.Names {
		_, inKw := kw[name]
		switch {
		case i < len(pos):
			if inKw {
				return nil, &BindError{Code: CodeDuplicateArgument, Spec: spec, Names: []string{name}}
			}
			result[name] = pos[i]
		case inKw:
			result[name] = kw[name]
		default:
			def, ok := spec.defaultFor(i)
			if !ok {
				return nil, &BindError{Code: CodeMissingArgument, Spec: spec, Names: []string{name}}
			}
			result[name] = def
		}
	}
	if spec.VarPositional != "" {
		var rest []any
		if len(pos) > len(spec.Names) {
			rest = append(rest, pos[len(spec.Names):]...)
		}
		result[spec.VarPositional] = rest
	}
	leftover := make(map[string]any)
	for name, v := range kw {
		if !containsName(spec.Names, name) {
			leftover[name] = v
		}
	}
	if spec.VarKeyword != "" {
		result[spec.VarKeyword] = leftover
	} else if len(leftover) > 0 {
		names := make([]string, 0, len(leftover))
		for name := range leftover {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, &BindError{Code: CodeUnexpectedKeyword, Spec: spec, Names: names}
	}
	return result, nil
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
