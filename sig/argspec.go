package sig

import (
	"fmt"
	"strings"
)

// noDefault is the unexported sentinel type behind NoDefault.
type noDefault struct{}

func (noDefault) String() string { return "<no default>" }

// NoDefault marks a declared default whose value carries no checkable type:
// Compatible skips the default typing rule for parameters defaulted to it
// (or to nil).
var NoDefault = noDefault{}

// ArgSpec declares a callable's parameter list: ordered parameter names, a
// right-aligned sequence of default values for the trailing names, and
// optional variadic collectors. The zero value declares a niladic callable.
type ArgSpec struct {
	// Names lists the declared parameters in order.
	Names []string

	// Defaults holds default values for the last len(Defaults) names.
	Defaults []any

	// VarPositional names the collector for excess positional arguments
	// ("" means none is declared).
	VarPositional string

	// VarKeyword names the collector for excess keyword arguments
	// ("" means none is declared).
	VarKeyword string
}

// Validate checks the structural invariant: defaults may not outnumber
// declared names.
func (s ArgSpec) Validate() error {
	if len(s.Defaults) > len(s.Names) {
		return fmt.Errorf("sig: %d defaults for %d parameters", len(s.Defaults), len(s.Names))
	}
	return nil
}

// String renders the spec in a compact signature-like form, used by error
// messages and debug logs.
func (s ArgSpec) String() string {
	parts := make([]string, 0, len(s.Names)+2)
	firstDefault := len(s.Names) - len(s.Defaults)
	for i, name := range s.Names {
		if i >= firstDefault {
			parts = append(parts, fmt.Sprintf("%s=%v", name, s.Defaults[i-firstDefault]))
		} else {
			parts = append(parts, name)
		}
	}
	if s.VarPositional != "" {
		parts = append(parts, "*"+s.VarPositional)
	}
	if s.VarKeyword != "" {
		parts = append(parts, "**"+s.VarKeyword)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// defaultFor returns the default value for parameter index i, if one is
// declared.
func (s ArgSpec) defaultFor(i int) (any, bool) {
	firstDefault := len(s.Names) - len(s.Defaults)
	if i < firstDefault {
		return nil, false
	}
	return s.Defaults[i-firstDefault], true
}
