package parser

import (
	"github.com/krotik/cypherast/ast"
	"github.com/krotik/cypherast/lexer"
)

// maxSnippetWidth bounds the context snippet attached to a diagnostic;
// long lines are truncated around the error column rather than reproduced
// in full.
const maxSnippetWidth = 80

/*
newDiagnostic builds an ast.Diagnostic for a token at the offending
position, deriving the source-line context snippet and caret offset from
the parser's source text.
*/
func (p *Parser) newDiagnostic(tok lexer.LexToken, message string) ast.Diagnostic {
	line, caret := sourceLine(p.input, tok.Range.Start)

	if len(line) > maxSnippetWidth {
		start := caret - maxSnippetWidth/2
		if start < 0 {
			start = 0
		}
		end := start + maxSnippetWidth
		if end > len(line) {
			end = len(line)
			start = end - maxSnippetWidth
			if start < 0 {
				start = 0
			}
		}
		caret -= start
		line = line[start:end]
	}

	return ast.Diagnostic{
		Position: tok.Range.Start,
		Message:  message,
		Context:  line,
		Caret:    caret,
	}
}

/*
sourceLine returns the full line of src containing pos, and the byte
offset of pos within that line.
*/
func sourceLine(src string, pos ast.Position) (string, int) {
	lineStart := pos.Offset
	for lineStart > 0 && src[lineStart-1] != '\n' {
		lineStart--
	}

	lineEnd := pos.Offset
	for lineEnd < len(src) && src[lineEnd] != '\n' {
		lineEnd++
	}

	return src[lineStart:lineEnd], pos.Offset - lineStart
}
