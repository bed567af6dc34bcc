package position

import "testing"

func TestAdvanceNewline(t *testing.T) {
	p := Advance(Start, '\n', 1)

	if p.Line != 2 || p.Column != 1 || p.Offset != 1 {
		t.Error("unexpected position after newline:", p)
	}
}

func TestAdvanceRegularByte(t *testing.T) {
	p := Advance(Start, 'a', 1)

	if p.Line != 1 || p.Column != 2 || p.Offset != 1 {
		t.Error("unexpected position after regular byte:", p)
	}
}

func TestAdvanceStringCRLF(t *testing.T) {
	p := AdvanceString(Start, "ab\r\ncd")

	if p.Line != 2 {
		t.Error("\\r\\n should only advance the line once:", p)
	}

	if p.Column != 3 {
		t.Error("unexpected column after crlf-then-two-bytes:", p)
	}

	if p.Offset != 6 {
		t.Error("unexpected offset:", p)
	}
}

func TestAdvanceStringMultibyte(t *testing.T) {
	// "é" is 2 bytes, one codepoint, one column.
	p := AdvanceString(Start, "é")

	if p.Offset != 2 {
		t.Error("expected byte offset to count both bytes:", p)
	}

	if p.Column != 2 {
		t.Error("expected column to advance once per codepoint:", p)
	}
}

func TestRangeContains(t *testing.T) {
	parent := Range{Start: Position{Offset: 0, Line: 1, Column: 1}, End: Position{Offset: 10, Line: 1, Column: 11}}
	child := Range{Start: Position{Offset: 2, Line: 1, Column: 3}, End: Position{Offset: 5, Line: 1, Column: 6}}

	if !parent.Contains(child) {
		t.Error("expected parent to contain child range")
	}

	if parent.Contains(Range{Start: Position{Offset: 0}, End: Position{Offset: 11}}) {
		t.Error("expected parent to not contain a wider range")
	}
}
