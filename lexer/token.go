/*
 * cypherast
 *
 * Package lexer tokenizes Cypher source text.
 */

// Package lexer implements a channel-based tokenizer for Cypher source: a
// goroutine-driven state machine emitting LexToken values on an unbuffered
// channel via Lex(name, input).
package lexer

import "github.com/krotik/cypherast/position"

/*
TokenID identifies a token's lexical category.
*/
type TokenID int

const (
	TokenError TokenID = iota
	TokenEOF

	TokenKeyword
	TokenIdentifier
	TokenParameter

	TokenInteger
	TokenFloat
	TokenString

	TokenOperator
	TokenPunctuation

	TokenLineComment
	TokenBlockComment
)

/*
String returns a human-readable name for the token ID, used in diagnostics
and tests.
*/
func (t TokenID) String() string {
	switch t {
	case TokenError:
		return "error"
	case TokenEOF:
		return "EOF"
	case TokenKeyword:
		return "keyword"
	case TokenIdentifier:
		return "identifier"
	case TokenParameter:
		return "parameter"
	case TokenInteger:
		return "integer"
	case TokenFloat:
		return "float"
	case TokenString:
		return "string"
	case TokenOperator:
		return "operator"
	case TokenPunctuation:
		return "punctuation"
	case TokenLineComment:
		return "line comment"
	case TokenBlockComment:
		return "block comment"
	}
	return "unknown"
}

/*
LexToken is a single token produced by Lex. Val carries the token's decoded
text: for keywords this is the upper-cased canonical spelling, for string
literals the escapes are already resolved, for everything else it is the
raw source slice. Range is the token's source extent, half-open.
*/
type LexToken struct {
	ID    TokenID
	Val   string
	Range position.Range
}

/*
String renders the token for diagnostics, e.g. "keyword(MATCH)@1:1-1:6".
*/
func (t LexToken) String() string {
	return t.ID.String() + "(" + t.Val + ")@" + t.Range.String()
}
