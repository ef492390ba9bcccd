package util

import (
	"fmt"
	"reflect"
)

// FuncInfo summarizes the reflected shape of a Go function.
type FuncInfo struct {
	Type     reflect.Type
	NumIn    int  // declared parameter count (the variadic slice counts as one)
	Variadic bool // final parameter is variadic
	NumOut   int
	ErrOut   bool // final result is an error
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// InspectFunc validates that fn is a Go function with at most one non-error
// result followed by an optional error, and returns its reflected shape.
// This lives in internal to avoid committing to public API stability
// prematurely.
func InspectFunc(fn any) (FuncInfo, error) {
	if fn == nil {
		return FuncInfo{}, fmt.Errorf("util: nil function")
	}
	t := reflect.TypeOf(fn)
	if t.Kind() != reflect.Func {
		return FuncInfo{}, fmt.Errorf("util: expected func, got %s", t.Kind())
	}
	info := FuncInfo{Type: t, NumIn: t.NumIn(), Variadic: t.IsVariadic(), NumOut: t.NumOut()}
	if info.NumOut > 0 && t.Out(info.NumOut-1) == errType {
		info.ErrOut = true
	}
	if info.NumOut-boolToInt(info.ErrOut) > 1 {
		return FuncInfo{}, fmt.Errorf("util: func returns %d non-error values, at most 1 supported", info.NumOut-boolToInt(info.ErrOut))
	}
	return info, nil
}

// CallFunc invokes fv with the given argument values, converting each to the
// declared parameter type when Go allows the conversion. The returned value
// is the single non-error result (or nil) and the trailing error result, if
// declared.
func CallFunc(fv reflect.Value, info FuncInfo, args []any) (any, error) {
	fixed := info.NumIn - boolToInt(info.Variadic)
	if len(args) < fixed {
		return nil, fmt.Errorf("util: expected at least %d arguments, got %d", fixed, len(args))
	}
	if !info.Variadic && len(args) != info.NumIn {
		return nil, fmt.Errorf("util: expected %d arguments, got %d", info.NumIn, len(args))
	}
	in := make([]reflect.Value, 0, len(args))
	for i, a := range args {
		pt := paramType(info, i)
		v, err := coerce(a, pt)
		if err != nil {
			return nil, fmt.Errorf("util: argument %d: %w", i, err)
		}
		in = append(in, v)
	}
	out := fv.Call(in)
	var result any
	var callErr error
	if info.ErrOut {
		if e := out[len(out)-1]; !e.IsNil() {
			callErr = e.Interface().(error)
		}
		out = out[:len(out)-1]
	}
	if len(out) == 1 {
		result = out[0].Interface()
	}
	return result, callErr
}

// paramType resolves the declared type of argument position i, unrolling the
// variadic tail.
func paramType(info FuncInfo, i int) reflect.Type {
	if info.Variadic && i >= info.NumIn-1 {
		return info.Type.In(info.NumIn - 1).Elem()
	}
	return info.Type.In(i)
}

func coerce(a any, pt reflect.Type) (reflect.Value, error) {
	if a == nil {
		switch pt.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			return reflect.Zero(pt), nil
		default:
			return reflect.Value{}, fmt.Errorf("nil for non-nilable %s", pt)
		}
	}
	v := reflect.ValueOf(a)
	if v.Type().AssignableTo(pt) {
		return v, nil
	}
	// Numeric conversions only; blanket ConvertibleTo would also permit
	// surprises like int -> string.
	if isNumericKind(v.Kind()) && isNumericKind(pt.Kind()) && v.Type().ConvertibleTo(pt) {
		return v.Convert(pt), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot use %T as %s", a, pt)
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
