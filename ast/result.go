package ast

import (
	"sort"

	"github.com/krotik/cypherast/position"
)

/*
Diagnostic is an error record produced while parsing: the position of the
offending token, a human-readable message, a context snippet (the source
line containing the error, possibly truncated) and a caret offset into that
snippet where a "^" should point.
*/
type Diagnostic struct {
	Position Position
	Message  string
	Context  string
	Caret    int

	seq int // insertion order, used to break position ties deterministically
}

/*
Position is a re-export of position.Position so callers of this package do
not need to import the position package for the common case of reading a
Diagnostic's location.
*/
type Position = position.Position

/*
Config carries options that influence parsing. Configurations are
value-like and may be reused across parses.
*/
type Config struct {
	// MaxNodes bounds how many AST nodes a single parse may allocate.
	// Zero selects DefaultMaxNodes. Exists so resource exhaustion
	// (ErrAllocationFailed) is actually reachable without relying on the
	// host running out of real memory.
	MaxNodes int

	// ErrorScheme colorizes diagnostics rendered from this config's
	// parses. Nil renders plain text. Parsing itself never reads this -
	// it is read back by whatever later prints Result.Errors().
	ErrorScheme ColorScheme
}

/*
DefaultMaxNodes is the node budget a zero-value Config.MaxNodes resolves to.
*/
const DefaultMaxNodes = 2_000_000

func (c Config) maxNodes() int {
	if c.MaxNodes > 0 {
		return c.MaxNodes
	}

	return DefaultMaxNodes
}

/*
Result owns every AST node and diagnostic produced by a single parse call.
It is created by exactly one parse, mutated only during that call, and is
thereafter immutable.
*/
type Result struct {
	Name string

	directives []*Node
	errors     []Diagnostic

	config    Config
	nodeCount int
	finalized bool
}

/*
NewResult creates an empty, mutable parse result. Only the parser package
is expected to call this directly; everything else receives a *Result
already built by Parse.
*/
func NewResult(name string, cfg Config) *Result {
	return &Result{Name: name, config: cfg}
}

/*
New allocates a new node belonging to r, validating its named-slot contract
(see newNode). Fails with ErrAllocationFailed once r's node budget is
exhausted, or ErrInvalidChildKind if a named-slot argument does not satisfy
its declared ancestor requirement.
*/
func (r *Result) New(kind Kind, rng position.Range, children []*Node, slots map[string]*Node) (*Node, error) {
	if r.nodeCount >= r.config.maxNodes() {
		return nil, ErrAllocationFailed
	}

	n, err := newNode(kind, rng, children, slots)
	if err != nil {
		return nil, err
	}

	r.nodeCount++

	return n, nil
}

/*
AddDirective appends a top-level directive (query, schema command, client
command or comment) to the result, in source order.
*/
func (r *Result) AddDirective(n *Node) {
	r.directives = append(r.directives, n)
}

/*
AddError appends a diagnostic to the result's error list. Diagnostics are
append-only within a single parse.
*/
func (r *Result) AddError(d Diagnostic) {
	d.seq = len(r.errors)
	r.errors = append(r.errors, d)
}

/*
Directives returns the ordered sequence of top-level AST nodes.
*/
func (r *Result) Directives() []*Node {
	return r.directives
}

/*
Errors returns the ordered sequence of diagnostics, strictly ordered by
source position with ties broken by insertion order.
*/
func (r *Result) Errors() []Diagnostic {
	return r.errors
}

/*
Finalize assigns dense ordinals 0..N-1 to every node reachable from the
result's directives, in depth-first, children-left-to-right order, and
stably sorts the error list by source position. The parser calls this once
per parse, after the last directive (or the last successfully parsed
prefix, if recovery gave up) has been added.
*/
func (r *Result) Finalize() {
	if r.finalized {
		return
	}

	next := 0
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil || n.ordinalSet {
			return
		}

		n.ordinal = next
		n.ordinalSet = true
		next++

		for _, c := range n.Children {
			walk(c)
		}
	}

	for _, d := range r.directives {
		walk(d)
	}

	sort.SliceStable(r.errors, func(i, j int) bool {
		a, b := r.errors[i], r.errors[j]
		if a.Position.Offset != b.Position.Offset {
			return a.Position.Offset < b.Position.Offset
		}
		return a.seq < b.seq
	})

	r.finalized = true
}

/*
Free releases the result's backing storage. Go's garbage collector reclaims
the arena once nothing external still references it; Free exists so a long-
running process that parses many short-lived queries can drop a large
result's slices immediately rather than waiting on a GC cycle. Free is
infallible and safe to call more than once.
*/
func (r *Result) Free() {
	r.directives = nil
	r.errors = nil
}
