package printer

import (
	"strings"
	"testing"

	"github.com/krotik/cypherast/parser"
)

func TestPrintPlainReturnsOneLinePerNode(t *testing.T) {
	result, err := parser.Parse("test", "RETURN 1;")
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := Print(&b, result, DefaultWidth, nil); err != nil {
		t.Fatal(err)
	}

	out := b.String()
	if !strings.Contains(out, "@0") {
		t.Errorf("expected ordinal 0 to be cited, got:\n%s", out)
	}
	if !strings.Contains(out, "QUERY") {
		t.Errorf("expected the root query node's kind name, got:\n%s", out)
	}
}

func TestPrintIndentsChildrenDeeper(t *testing.T) {
	result, err := parser.Parse("test", "MATCH (n) RETURN n;")
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := Print(&b, result, DefaultWidth, nil); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected more than one line, got %d", len(lines))
	}

	leading := func(s string) int {
		return len(s) - len(strings.TrimLeft(s, " "))
	}

	if leading(lines[1]) <= leading(lines[0]) {
		t.Errorf("expected line 2 to be indented deeper than the root:\n%s", b.String())
	}
}

func TestPrintTruncatesOnlyDetailNotStructure(t *testing.T) {
	result, err := parser.Parse("test", `RETURN "this is a moderately long string literal that pushes past a narrow width";`)
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := Print(&b, result, 40, nil); err != nil {
		t.Fatal(err)
	}

	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		trimmed := strings.TrimLeft(line, " ")
		if !strings.HasPrefix(trimmed, "@") {
			t.Errorf("expected every line to still start with an ordinal citation, got: %q", line)
		}
	}
}

func TestPrintANSISchemeWrapsOrdinal(t *testing.T) {
	result, err := parser.Parse("test", "RETURN 1;")
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := Print(&b, result, DefaultWidth, ANSIScheme()); err != nil {
		t.Fatal(err)
	}

	if b.Len() == 0 {
		t.Fatal("expected non-empty colorized output")
	}
}

func TestTruncateDetailAppendsEllipsis(t *testing.T) {
	got := truncateDetail("a detail string longer than budget", 10)
	if !strings.HasSuffix(got, ellipsis) {
		t.Errorf("expected truncated detail to end with ellipsis, got %q", got)
	}
	if len(got) > 10 {
		t.Errorf("expected truncated detail to respect budget, got %q (len %d)", got, len(got))
	}
}

func TestTruncateDetailLeavesShortStringsAlone(t *testing.T) {
	got := truncateDetail("short", 40)
	if got != "short" {
		t.Errorf("expected unchanged string, got %q", got)
	}
}
