package typesys

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Tags discriminating node kinds in the canonical encoding. The encoding is
// versioned so a format change invalidates previously derived keys.
const (
	keySchemaVersion = 1

	keyTagScalar = 0
	keyTagTuple  = 1
)

// CanonicalKey returns a deterministic key for a structural type: two
// structurally equal types always produce the same key and two structurally
// different types never collide (up to hash collision). The key is the hex
// encoded sha256 of a msgpack serialization of the type tree.
//
// A nil type yields the distinguished key "none".
func CanonicalKey(t Type) string {
	if t == nil {
		return "none"
	}
	raw, err := msgpack.Marshal([]any{keySchemaVersion, canonicalNode(t)})
	if err != nil {
		// The node tree only contains ints, strings and slices, all of
		// which msgpack encodes without error.
		panic(fmt.Sprintf("typesys: canonical encoding failed: %v", err))
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// canonicalNode lowers a type into a serialization-friendly tree. Unknown
// Type implementations fall back to their String form, which keeps the key
// total at the cost of structural precision for foreign types.
func canonicalNode(t Type) any {
	switch v := t.(type) {
	case Scalar:
		return []any{keyTagScalar, int(v)}
	case *NamedTuple:
		elements := make([]any, len(v.elements))
		for i, e := range v.elements {
			elements[i] = []any{e.Name, canonicalNode(e.Type)}
		}
		return []any{keyTagTuple, elements}
	case nil:
		return []any{}
	default:
		return v.String()
	}
}
