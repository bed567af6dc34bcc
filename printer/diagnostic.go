package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/krotik/cypherast/ast"
)

/*
FormatDiagnostic renders a single diagnostic the way cypher-lint prints
parse errors: the message on one line, the offending source line on the
next, and a caret on a third line pointing at the exact column. scheme
colorizes the message and context elements; a nil scheme renders plain
text.
*/
func FormatDiagnostic(d ast.Diagnostic, scheme ast.ColorScheme) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s\n",
		scheme.Wrap(ast.ElementErrorMessage, fmt.Sprintf("error at %s", d.Position)),
		scheme.Wrap(ast.ElementErrorMessage, d.Message))

	if d.Context != "" {
		fmt.Fprintf(&b, "%s\n", scheme.Wrap(ast.ElementErrorContext, d.Context))
		fmt.Fprintf(&b, "%s\n", scheme.Wrap(ast.ElementErrorContext, caretLine(d.Caret)))
	}

	return b.String()
}

/*
PrintDiagnostics writes FormatDiagnostic for every diagnostic in errs to w,
separated by a blank line, in the order given (Result.Errors is already
sorted by source position).
*/
func PrintDiagnostics(w io.Writer, errs []ast.Diagnostic, scheme ast.ColorScheme) error {
	for i, d := range errs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprint(w, FormatDiagnostic(d, scheme)); err != nil {
			return err
		}
	}

	return nil
}

func caretLine(caret int) string {
	if caret < 0 {
		caret = 0
	}

	return strings.Repeat(" ", caret) + "^"
}
