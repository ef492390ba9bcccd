// Package adapter builds normalized zero-or-one-argument wrappers around
// callables with arbitrary parameter lists.
//
// Build resolves, once, whether the single declared parameter type must be
// unpacked into the callable's parameters or passed through as one value.
// Both feasibility directions are computed up front; when both forms are
// viable and the caller expressed no preference, Build refuses rather than
// guess, because a silently wrong choice corrupts how arguments reach the
// callable. The resulting Adapter re-validates runtime values on every
// invocation: type-level feasibility does not guarantee that each runtime
// value matches.
package adapter
