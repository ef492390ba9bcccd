// Package typesys implements the structural type system the adaptation core
// is written against: scalar types, named-tuple types, assignability, runtime
// type inference and canonical cache keys.
//
// The rest of the library only depends on the small surface defined here
// (Type, ToType, Infer, CanonicalKey), so richer type systems can be layered
// on top without touching the binding or adaptation logic:
//
//   - Type is the structural compatibility capability (AssignableFrom)
//   - ToType coerces type-like specs (slices, maps, element lists) to a Type
//   - Infer derives a Type from a runtime value
//   - CanonicalKey produces a deterministic key for structurally equal types
//
// Assignability is purely structural: a named tuple is assignable from
// another named tuple of the same arity whose element names match and whose
// element types are pairwise assignable.
package typesys
