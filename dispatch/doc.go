// Package dispatch implements polymorphic invocation: one logical function
// that specializes itself per distinct argument type on first sight and
// reuses the specialization afterwards.
//
// Each invocation packs its arguments into a tuple, infers the tuple's
// structural type and resolves an adapter through a per-instance
// specialization cache keyed by typesys.CanonicalKey. Misses are serialized
// so exactly one build occurs per type; a failed build propagates to the
// triggering caller and leaves no cache entry behind.
package dispatch
