// Package tuple implements the argument tuple: an immutable, ordered
// container of optionally named values representing a bundled call argument.
//
// A tuple by itself imposes no ordering constraint on its elements; the
// argument-tuple shape (every unnamed element precedes every named one) is a
// predicate, checked by IsArgumentTuple, that both runtime tuples and
// typesys.NamedTuple type specs can satisfy. Classify and Unpack accept
// either form, so the adapter builder can reason about a declared parameter
// type and an incoming runtime value with the same code path.
package tuple
