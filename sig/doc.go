// Package sig describes callable signatures and binds concrete arguments to
// them. It is the reflection boundary of the library: callables participate
// by implementing the Callable capability (an explicit ArgSpec plus an
// invocation method) instead of being probed through implementation-private
// runtime details.
//
// The three layers build on each other:
//
//   - ArgSpec declares a parameter list (names, trailing defaults, variadic
//     collectors)
//   - Bind assigns positional and keyword arguments to an ArgSpec, producing
//     a name-to-value Binding or a typed BindError
//   - Compatible decides whether a set of argument *types* satisfies an
//     ArgSpec, including the default-value typing rule
//
// Func is the standard Callable implementation; NativeFunc derives one from
// a plain Go function via reflection with caller-supplied parameter names.
package sig
