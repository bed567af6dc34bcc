package ast

import "sync"

/*
slotSpec describes one named-slot accessor a kind declares: the name callers
use to look it up, the ancestor kind the referent must satisfy, and whether
the slot must be non-nil.
*/
type slotSpec struct {
	Name     string
	Ancestor Kind
	Required bool
}

/*
kindMeta is the static metadata record every kind in the registry carries:
its display name, its declared direct parent kinds, its named-slot
contract, and its detail-string rule. One static record per kind stands in
for a per-kind virtual table.
*/
type kindMeta struct {
	Name    string
	Parents []Kind
	Slots   []slotSpec
	Detail  func(n *Node) string
}

var registry = map[Kind]*kindMeta{}

/*
define registers a kind's metadata. Called from package-level init
functions spread across the *_kinds.go files grouped by theme (literals,
operators, clauses, patterns, schema). Safe to call in any order across
files: ancestor sets are materialized from the completed registry on
first use, not at registration time.
*/
func define(k Kind, name string, parents []Kind, slots []slotSpec, detail func(n *Node) string) {
	registry[k] = &kindMeta{Name: name, Parents: parents, Slots: slots, Detail: detail}
}

var (
	ancestorOnce sync.Once
	ancestorSets map[Kind]map[Kind]bool
)

/*
ancestorSet returns the transitive closure of k's declared parent kinds.
The closures for every registered kind are materialized together on first
use and never written again, so concurrent parses only ever read them.
*/
func ancestorSet(k Kind) map[Kind]bool {
	ancestorOnce.Do(buildAncestorSets)
	return ancestorSets[k]
}

func buildAncestorSets() {
	ancestorSets = make(map[Kind]map[Kind]bool, len(registry))

	var build func(k Kind) map[Kind]bool
	build = func(k Kind) map[Kind]bool {
		if set, ok := ancestorSets[k]; ok {
			return set
		}

		set := map[Kind]bool{}
		ancestorSets[k] = set // break cycles defensively; the chain is a DAG in practice

		if meta, ok := registry[k]; ok {
			for _, p := range meta.Parents {
				set[p] = true
				for a := range build(p) {
					set[a] = true
				}
			}
		}

		return set
	}

	for k := range registry {
		build(k)
	}
}
