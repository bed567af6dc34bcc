package printer

import "github.com/krotik/cypherast/ast"

/*
ANSIScheme returns the pre-built ANSI colorization scheme, keyed by the
ast package's element-name constants: red for errors, yellow for the
offending snippet, cyan/blue/green/white for the structural AST columns
and faint for the indent, so a wide scroll of output stays visually
scannable.
*/
func ANSIScheme() ast.ColorScheme {
	return ast.ColorScheme{
		ast.ElementErrorMessage: pair(colorRed),
		ast.ElementErrorContext: pair(colorYellow),
		ast.ElementASTOrdinal:   pair(colorCyan),
		ast.ElementASTRange:     pair(colorBlue),
		ast.ElementASTIndent:    pair(colorFaint),
		ast.ElementASTType:      pair(colorGreen),
		ast.ElementASTDesc:      pair(colorWhite),
	}
}

/*
NoOpScheme returns the plain-text scheme. nil already renders unwrapped
text via ColorScheme.Wrap, but an explicit empty scheme is returned here
so callers who branch on "--colorize" do not need a special nil case of
their own.
*/
func NoOpScheme() ast.ColorScheme {
	return ast.ColorScheme{}
}

func pair(c colorCode) [2]string {
	return [2]string{c.begin, c.end}
}
