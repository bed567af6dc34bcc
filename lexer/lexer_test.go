package lexer

import "testing"

func collect(input string) []LexToken {
	var toks []LexToken
	for t := range Lex("test", input) {
		toks = append(toks, t)
		if t.ID == TokenEOF {
			break
		}
	}
	return toks
}

func TestKeywordsCaseInsensitive(t *testing.T) {
	toks := collect("Match (n) return n")

	if toks[0].ID != TokenKeyword || toks[0].Val != "MATCH" {
		t.Errorf("expected MATCH keyword, got %v", toks[0])
	}

	var sawReturn bool
	for _, tok := range toks {
		if tok.ID == TokenKeyword && tok.Val == "RETURN" {
			sawReturn = true
		}
	}
	if !sawReturn {
		t.Error("expected RETURN keyword token")
	}
}

func TestBacktickIdentifierEscapesDoubledBacktick(t *testing.T) {
	toks := collect("`a``b`")

	if toks[0].ID != TokenIdentifier || toks[0].Val != "a`b" {
		t.Errorf("expected identifier 'a`b', got %v", toks[0])
	}
}

func TestBacktickIdentifierBeatsKeyword(t *testing.T) {
	toks := collect("`match`")

	if toks[0].ID != TokenIdentifier || toks[0].Val != "match" {
		t.Errorf("expected backtick-quoted keyword text to lex as identifier, got %v", toks[0])
	}
}

func TestNumericLiterals(t *testing.T) {
	cases := []struct {
		src  string
		id   TokenID
		want string
	}{
		{"123", TokenInteger, "123"},
		{"0x2A", TokenInteger, "0x2A"},
		{"0777", TokenInteger, "0777"},
		{"3.14", TokenFloat, "3.14"},
		{"6.022e23", TokenFloat, "6.022e23"},
		{"1E-10", TokenFloat, "1E-10"},
	}

	for _, c := range cases {
		toks := collect(c.src)
		if toks[0].ID != c.id || toks[0].Val != c.want {
			t.Errorf("%q: expected %v(%q), got %v", c.src, c.id, c.want, toks[0])
		}
	}
}

func TestStringLiteralEscapes(t *testing.T) {
	toks := collect(`"a\nb\tc\u{41}"`)

	if toks[0].ID != TokenString || toks[0].Val != "a\nb\tcA" {
		t.Errorf("unexpected decoded string: %q", toks[0].Val)
	}
}

func TestUnterminatedStringIsNonFatal(t *testing.T) {
	toks := collect("\"abc\nMATCH")

	if toks[0].ID != TokenError {
		t.Fatalf("expected an error token for the unterminated string, got %v", toks[0])
	}

	var sawMatch bool
	for _, tok := range toks {
		if tok.ID == TokenKeyword && tok.Val == "MATCH" {
			sawMatch = true
		}
	}
	if !sawMatch {
		t.Error("expected lexing to resynchronize and still find MATCH")
	}
}

func TestParameterForms(t *testing.T) {
	toks := collect("$name {legacy}")

	if toks[0].ID != TokenParameter || toks[0].Val != "name" {
		t.Errorf("expected $name parameter, got %v", toks[0])
	}

	if toks[1].ID != TokenParameter || toks[1].Val != "legacy" {
		t.Errorf("expected {legacy} parameter, got %v", toks[1])
	}
}

func TestBraceWithoutIdentifierIsPunctuation(t *testing.T) {
	toks := collect("{a: 1}")

	if toks[0].ID != TokenPunctuation || toks[0].Val != "{" {
		t.Errorf("expected '{' punctuation for a map literal, got %v", toks[0])
	}
}

func TestLineAndBlockComments(t *testing.T) {
	toks := collect("// hello\n/* world */MATCH")

	if toks[0].ID != TokenLineComment || toks[0].Val != " hello" {
		t.Errorf("unexpected line comment token: %v", toks[0])
	}
	if toks[1].ID != TokenBlockComment || toks[1].Val != " world " {
		t.Errorf("unexpected block comment token: %v", toks[1])
	}
	if toks[2].ID != TokenKeyword || toks[2].Val != "MATCH" {
		t.Errorf("expected MATCH after comments, got %v", toks[2])
	}
}

func TestTwoCharOperatorsNotSplit(t *testing.T) {
	toks := collect("a <> b <= c")

	var ops []string
	for _, tok := range toks {
		if tok.ID == TokenOperator {
			ops = append(ops, tok.Val)
		}
	}

	if len(ops) != 2 || ops[0] != "<>" || ops[1] != "<=" {
		t.Errorf("expected [<> <=], got %v", ops)
	}
}

func TestRangesTrackOffsetsAcrossSkippedWhitespace(t *testing.T) {
	toks := collect("MATCH n")

	if toks[0].Range.Start.Offset != 0 || toks[0].Range.End.Offset != 5 {
		t.Errorf("unexpected MATCH range: %v", toks[0].Range)
	}

	if toks[1].Range.Start.Offset != 6 || toks[1].Range.End.Offset != 7 {
		t.Errorf("unexpected identifier range: %v", toks[1].Range)
	}
}
