package tuple

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hupe1980/argmesh/typesys"
)

// Element is a single tuple slot. An empty Name marks an unnamed
// (positional) element.
type Element struct {
	Name  string
	Value any
}

// Tuple is an immutable ordered sequence of optionally named values. Build
// one with New or Pack; the zero value is an empty tuple.
type Tuple struct {
	elements []Element
	byName   map[string]int
}

// New constructs a tuple from the given elements, preserving their order.
// Duplicate names are rejected; element order is otherwise unconstrained
// (use IsArgumentTuple to test the unnamed-before-named shape).
func New(elements ...Element) *Tuple {
	t := &Tuple{
		elements: append([]Element(nil), elements...),
		byName:   make(map[string]int),
	}
	for i, e := range t.elements {
		if e.Name == "" {
			continue
		}
		if _, dup := t.byName[e.Name]; dup {
			panic(fmt.Sprintf("tuple: duplicate element name %q", e.Name))
		}
		t.byName[e.Name] = i
	}
	return t
}

// Pack bundles positional and keyword arguments into a tuple: positional
// values first, then keyword values in lexicographic name order. Sorting
// makes the packed shape a deterministic function of the supplied map, which
// the dispatch cache relies on. Empty keyword names are a programmer error.
func Pack(pos []any, kw map[string]any) *Tuple {
	elements := make([]Element, 0, len(pos)+len(kw))
	for _, v := range pos {
		elements = append(elements, Element{Value: v})
	}
	names := make([]string, 0, len(kw))
	for name := range kw {
		if name == "" {
			panic("tuple: empty keyword name")
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		elements = append(elements, Element{Name: name, Value: kw[name]})
	}
	return New(elements...)
}

// Len returns the number of elements.
func (t *Tuple) Len() int { return len(t.elements) }

// Element returns the element at position i.
func (t *Tuple) Element(i int) Element { return t.elements[i] }

// Value returns the value at position i.
func (t *Tuple) Value(i int) any { return t.elements[i].Value }

// ByName returns the value bound to name, if any.
func (t *Tuple) ByName(name string) (any, bool) {
	i, ok := t.byName[name]
	if !ok {
		return nil, false
	}
	return t.elements[i].Value, true
}

// Elements returns a copy of the element list.
func (t *Tuple) Elements() []Element {
	return append([]Element(nil), t.elements...)
}

// Names returns the names of the named elements in positional order.
func (t *Tuple) Names() []string {
	names := make([]string, 0, len(t.byName))
	for _, e := range t.elements {
		if e.Name != "" {
			names = append(names, e.Name)
		}
	}
	return names
}

// TypeElements describes the tuple as named tuple type elements by inferring
// each element value, satisfying typesys.ElementLister so typesys.Infer is
// total over tuples.
func (t *Tuple) TypeElements() []typesys.TupleElement {
	elements := make([]typesys.TupleElement, len(t.elements))
	for i, e := range t.elements {
		elements[i] = typesys.TupleElement{Name: e.Name, Type: typesys.Infer(e.Value)}
	}
	return elements
}

// String renders the tuple as <name=value, value, ...>.
func (t *Tuple) String() string {
	var b strings.Builder
	b.WriteByte('<')
	for i, e := range t.elements {
		if i > 0 {
			b.WriteByte(',')
		}
		if e.Name != "" {
			b.WriteString(e.Name)
			b.WriteByte('=')
		}
		fmt.Fprintf(&b, "%v", e.Value)
	}
	b.WriteByte('>')
	return b.String()
}
