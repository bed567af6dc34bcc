package ast

/*
ColorScheme maps a rendered element name to a (begin, end) pair of escape
strings wrapped around that element's text. A nil ColorScheme renders
plain text - every lookup through Wrap degrades to a no-op when the scheme
itself is nil or the element is absent from it.

The element name constants below are the closed set of names a scheme is
expected to cover.
*/
type ColorScheme map[string][2]string

// Element name constants - the closed set of renderable elements a
// ColorScheme may style.
const (
	ElementErrorMessage = "error_message"
	ElementErrorContext = "error_context"
	ElementASTOrdinal   = "ast_ordinal"
	ElementASTRange     = "ast_range"
	ElementASTIndent    = "ast_indent"
	ElementASTType      = "ast_type"
	ElementASTDesc      = "ast_desc"
)

/*
Wrap returns text surrounded by the begin/end escape pair registered for
element, or text unchanged if the scheme is nil or has no entry for
element.
*/
func (s ColorScheme) Wrap(element, text string) string {
	if s == nil {
		return text
	}

	pair, ok := s[element]
	if !ok {
		return text
	}

	return pair[0] + text + pair[1]
}

/*
SetErrorColorization installs the colorization scheme applied when
rendering diagnostics. Parsing itself never renders anything - this is
read back by whatever prints Result.Errors() later.
*/
func (c *Config) SetErrorColorization(scheme ColorScheme) {
	c.ErrorScheme = scheme
}
