/*
 * cypherast
 *
 * Package printer renders a parse result as structured, human-readable
 * text.
 */

// Package printer implements a width-respecting, optionally colorized
// structural printer: one line per AST node, citing children by ordinal,
// with detail strings truncated (never structural fields) once a node's
// line would exceed the configured output width.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/krotik/cypherast/ast"
)

// DefaultWidth is the output width Print falls back to when called with a
// non-positive width - wide enough for most terminals, narrow enough that
// a detail string still gets truncated in pathological cases (deeply
// nested expressions whose detail strings chain many ordinals together).
const DefaultWidth = 120

// indentUnit is the number of spaces each nesting level adds.
const indentUnit = 2

/*
Print renders result's directives to w as an indented block per directive:
each node's kind, range and detail string on one line, followed by its
children indented one level further. Finalize must have already run on
result (Parse always does this before returning).

A non-positive width selects DefaultWidth. A nil scheme prints plain text.
Print is pure with respect to result - it never mutates the AST. Printing
I/O errors are returned as a plain error value, never panicked.
*/
func Print(w io.Writer, result *ast.Result, width int, scheme ast.ColorScheme) error {
	if width <= 0 {
		width = DefaultWidth
	}

	p := &printState{w: w, width: width, scheme: scheme}

	for _, d := range result.Directives() {
		if err := p.printNode(d, 0); err != nil {
			return err
		}
	}

	return p.err
}

type printState struct {
	w      io.Writer
	width  int
	scheme ast.ColorScheme
	err    error
}

// columnGap separates the ordinal/range/kind/detail columns.
const columnGap = "  "

func (p *printState) printNode(n *ast.Node, depth int) error {
	if n == nil || p.err != nil {
		return p.err
	}

	indent := strings.Repeat(" ", depth*indentUnit)

	ordinal, _ := n.Ordinal()
	ordinalStr := fmt.Sprintf("@%d", ordinal)
	rangeStr := n.Range.String()
	typeStr := n.Kind.String()

	// Width accounting happens on the plain column text, before escape
	// wrapping, so colorization never skews the truncation budget.
	prefixWidth := len(indent) + len(ordinalStr) + len(rangeStr) + len(typeStr) + 3*len(columnGap)
	detail := truncateDetail(n.Detail(), p.width-prefixWidth)

	line := p.scheme.Wrap(ast.ElementASTIndent, indent) +
		p.scheme.Wrap(ast.ElementASTOrdinal, ordinalStr) + columnGap +
		p.scheme.Wrap(ast.ElementASTRange, rangeStr) + columnGap +
		p.scheme.Wrap(ast.ElementASTType, typeStr) + columnGap +
		p.scheme.Wrap(ast.ElementASTDesc, detail)

	if _, err := fmt.Fprintln(p.w, line); err != nil {
		p.err = err
		return err
	}

	for _, c := range n.Children {
		if err := p.printNode(c, depth+1); err != nil {
			return err
		}
	}

	return nil
}

const ellipsis = "..."

/*
truncateDetail soft-bounds a node's detail string to budget bytes,
appending an ellipsis when it had to cut. Only the detail string is ever
truncated, never the ordinal/range/kind prefix.
*/
func truncateDetail(detail string, budget int) string {
	if budget <= len(ellipsis) || len(detail) <= budget {
		return detail
	}

	return detail[:budget-len(ellipsis)] + ellipsis
}
