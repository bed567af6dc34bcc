package ast

import (
	"strconv"

	"github.com/krotik/common/errorutil"

	"github.com/krotik/cypherast/position"
)

/*
Node is a single AST node. It is a tagged variant: Kind selects the node's
syntactic category and, via the kind registry, its detail-printing rule and
the ancestor-kind set its children (and slots) must satisfy. Kind-specific
payload is carried inline in Text/Flag/Number rather than through
per-kind Go types.

Every Node is owned by exactly one Result, which exclusively owns the
backing storage for it and every node reachable from it.
*/
type Node struct {
	Kind     Kind
	Range    position.Range
	Children []*Node

	// Generic kind-specific payload. Not every kind uses every field;
	// where a kind has a doc comment in the sibling *_kinds.go files, it
	// says which fields it uses and what they mean for that kind.
	Text   string // textual literal: identifier/label/operator/command text
	Flag   bool   // boolean payload: DISTINCT, WITH HEADERS, UNION ALL, ...
	Number int    // decoded numeric payload, where cheap to keep alongside Text

	slots map[string]*Node

	ordinal    int
	ordinalSet bool
}

/*
Ordinal returns the dense 0..N-1 index this node was assigned when its
owning Result was finalized. Calling this before Result.Finalize has run
returns 0, false.
*/
func (n *Node) Ordinal() (int, bool) {
	return n.ordinal, n.ordinalSet
}

/*
Is reports whether the node's kind equals k or has k in its ancestor set.
*/
func (n *Node) Is(k Kind) bool {
	if n.Kind == k {
		return true
	}

	return ancestorSet(n.Kind)[k]
}

/*
Slot returns the named child accessor, or nil if this kind does not declare
that slot or the slot was not supplied.
*/
func (n *Node) Slot(name string) *Node {
	if n.slots == nil {
		return nil
	}

	return n.slots[name]
}

/*
childIndex reports whether child is present (by identity) in n's Children
list. Every named-slot referent must be.
*/
func childIndex(children []*Node, child *Node) bool {
	for _, c := range children {
		if c == child {
			return true
		}
	}

	return false
}

/*
newNode constructs a node of the given kind, validating the named slots
against the kind's declared contract. It returns ErrInvalidChildKind if a
slot is missing where required, present where not declared, or holds a node
whose kind does not satisfy the slot's expected ancestor.

newNode does not itself enforce the node-count cap - callers go through
Result.New, which does, and is the only supported way to build a node
belonging to a parse result.
*/
func newNode(kind Kind, rng position.Range, children []*Node, slots map[string]*Node) (*Node, error) {
	meta, ok := registry[kind]
	if !ok {
		return nil, ErrInvalidChildKind
	}

	for _, spec := range meta.Slots {
		val, present := slots[spec.Name]

		if !present || val == nil {
			if spec.Required {
				return nil, ErrInvalidChildKind
			}
			continue
		}

		if !val.Is(spec.Ancestor) {
			return nil, ErrInvalidChildKind
		}

		if !childIndex(children, val) {
			return nil, ErrInvalidChildKind
		}
	}

	for name := range slots {
		found := false
		for _, spec := range meta.Slots {
			if spec.Name == name {
				found = true
				break
			}
		}
		if !found {
			return nil, ErrInvalidChildKind
		}
	}

	n := &Node{Kind: kind, Range: rng, Children: children, slots: slots}

	for _, c := range children {
		errorutil.AssertTrue(rng.Contains(c.Range),
			"child range must be contained in parent range: "+kind.String())
	}

	return n, nil
}

/*
Detail renders this node's one-line human-readable summary, citing children
by ordinal. Finalize must have already run on the owning Result, since the
detail string quotes ordinals.
*/
func (n *Node) Detail() string {
	meta, ok := registry[n.Kind]
	if !ok || meta.Detail == nil {
		return ""
	}

	return meta.Detail(n)
}

/*
ord is a small helper detail-string implementations use to render "@N" for
a possibly-nil child.
*/
func ord(n *Node) string {
	if n == nil {
		return "-"
	}

	o, _ := n.Ordinal()
	return "@" + strconv.Itoa(o)
}
