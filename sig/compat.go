package sig

import (
	"reflect"

	"github.com/hupe1980/argmesh/typesys"
)

// Compatible reports whether a callable declared with spec accepts arguments
// of the given types. Binding failure of any kind means incompatible. When
// the spec carries defaults, every defaulted parameter for which the caller
// supplied an explicit type must declare that type at least as general as
// the default value's own inferred type; otherwise substituting a value of
// the declared type could break the contract the default establishes.
//
// Two deliberate skips, both policy (see DESIGN.md):
//   - defaults equal to NoDefault or nil carry no checkable type
//   - a bound object identical to the default value (same interface value,
//     or same slice/map/func reference) means "not overridden" and is not
//     type checked
func Compatible(spec ArgSpec, pos []typesys.Type, kw map[string]typesys.Type) bool {
	posVals := make([]any, len(pos))
	for i, t := range pos {
		posVals[i] = t
	}
	kwVals := make(map[string]any, len(kw))
	for name, t := range kw {
		kwVals[name] = t
	}
	binding, err := Bind(spec, posVals, kwVals)
	if err != nil {
		return false
	}
	if len(spec.Defaults) == 0 {
		return true
	}
	firstDefault := len(spec.Names) - len(spec.Defaults)
	for i, def := range spec.Defaults {
		if def == nil || def == NoDefault {
			continue
		}
		name := spec.Names[firstDefault+i]
		bound := binding[name]
		if identical(bound, def) {
			continue
		}
		declared := typesys.ToType(bound)
		if declared == nil {
			return false
		}
		if !declared.AssignableFrom(typesys.Infer(def)) {
			return false
		}
	}
	return true
}

// identical reports whether a and b are the same object: equal as comparable
// interface values, or the same underlying slice/map/func reference. It is
// deliberately stricter than deep equality.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	if ra.Type().Comparable() {
		return a == b
	}
	switch ra.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func:
		return ra.Pointer() == rb.Pointer()
	default:
		return false
	}
}
