package printer

import (
	"strings"
	"testing"

	"github.com/krotik/cypherast/parser"
)

func TestFormatDiagnosticIncludesCaretLine(t *testing.T) {
	result, err := parser.Parse("test", "RETURN 1 +;")
	if err == nil {
		t.Fatal("expected a parse error")
	}

	errs := result.Errors()
	if len(errs) == 0 {
		t.Fatal("expected at least one diagnostic")
	}

	out := FormatDiagnostic(errs[0], nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected message, context and caret lines, got:\n%s", out)
	}

	if !strings.Contains(lines[len(lines)-1], "^") {
		t.Errorf("expected the final line to carry a caret, got %q", lines[len(lines)-1])
	}
}

func TestPrintDiagnosticsSeparatesWithBlankLine(t *testing.T) {
	result, _ := parser.Parse("test", "RETURN 1 +; RETURN +;")

	errs := result.Errors()
	if len(errs) < 2 {
		t.Skip("need at least two diagnostics to exercise the separator")
	}

	var b strings.Builder
	if err := PrintDiagnostics(&b, errs, nil); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(b.String(), "\n\n") {
		t.Errorf("expected a blank line between diagnostics, got:\n%s", b.String())
	}
}
