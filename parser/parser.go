/*
 * cypherast
 *
 * Package parser turns a Cypher token stream into an AST forest.
 */

// Package parser implements a recursive-descent, error-recovering Cypher
// recognizer built directly on top of the ast and lexer packages.
// Expression parsing follows a top-down-operator-precedence discipline
// driven by a binding-power table.
package parser

import (
	"errors"

	"github.com/krotik/cypherast/ast"
	"github.com/krotik/cypherast/lexer"
	"github.com/krotik/cypherast/position"
)

/*
ErrNoDirectives is returned by Parse/ParseStreaming when the input produced
zero directives. The returned *ast.Result remains well-formed and carries
whatever diagnostics were recorded.
*/
var ErrNoDirectives = errors.New("parser: no directives parsed")

/*
syntaxError is a recoverable lexical/syntactic error, recorded as an
ast.Diagnostic rather than returned to the caller.
*/
type syntaxError struct {
	tok     lexer.LexToken
	message string
}

func (e *syntaxError) Error() string { return e.message }

/*
fatalError wraps a resource or contract-violation error from the ast
package (ErrAllocationFailed, ErrInvalidChildKind). These abort the entire
parse rather than just the current directive.
*/
type fatalError struct{ err error }

func (e *fatalError) Error() string { return e.err.Error() }
func (e *fatalError) Unwrap() error { return e.err }

/*
Parser holds the mutable state of a single parse: the token lookahead
buffer, the in-progress Result, and an optional streaming callback.
*/
type Parser struct {
	name  string
	input string

	result *ast.Result
	ch     chan lexer.LexToken
	buf    []lexer.LexToken

	onDirective func(*ast.Node) bool
	stopped     bool
}

/*
Parse runs a full, non-streaming parse of input and returns the completed
result. A non-nil error means either the parse produced zero directives
(ErrNoDirectives) or a tier-2/tier-3 internal error aborted it early; in
both cases the returned *ast.Result is still safe to inspect.
*/
func Parse(name, input string) (*ast.Result, error) {
	return ParseWithConfig(name, input, ast.Config{}, nil)
}

/*
ParseStreaming runs a parse that invokes onDirective after each
successfully parsed top-level directive (query, schema command, client
command, or top-level comment). Returning false from onDirective stops
parsing early and yields the partial result.
*/
func ParseStreaming(name, input string, cfg ast.Config, onDirective func(*ast.Node) bool) (*ast.Result, error) {
	return ParseWithConfig(name, input, cfg, onDirective)
}

/*
ParseWithConfig is the common entrypoint behind Parse and ParseStreaming.
*/
func ParseWithConfig(name, input string, cfg ast.Config, onDirective func(*ast.Node) bool) (*ast.Result, error) {
	p := &Parser{
		name:        name,
		input:       input,
		result:      ast.NewResult(name, cfg),
		ch:          lexer.Lex(name, input),
		onDirective: onDirective,
	}

	err := p.parseAll()

	p.result.Finalize()

	if err != nil {
		return p.result, err
	}

	if len(p.result.Directives()) == 0 {
		return p.result, ErrNoDirectives
	}

	return p.result, nil
}

// node constructs an AST node through the owning Result, translating any
// error into a fatalError: ast.Result.New only ever fails with a resource
// or contract-violation sentinel, never a recoverable syntax error.
func (p *Parser) node(kind ast.Kind, rng position.Range, children []*ast.Node, slots map[string]*ast.Node) (*ast.Node, error) {
	n, err := p.result.New(kind, rng, children, slots)
	if err != nil {
		return nil, &fatalError{err}
	}
	return n, nil
}

func (p *Parser) errf(tok lexer.LexToken, message string) error {
	return &syntaxError{tok: tok, message: message}
}

// fill ensures the lookahead buffer holds at least n+1 tokens, padding with
// repeated EOF tokens once the channel is drained.
func (p *Parser) fill(n int) {
	for len(p.buf) <= n {
		if len(p.buf) > 0 && p.buf[len(p.buf)-1].ID == lexer.TokenEOF {
			p.buf = append(p.buf, p.buf[len(p.buf)-1])
			continue
		}

		t, ok := <-p.ch
		if !ok {
			t = lexer.LexToken{ID: lexer.TokenEOF}
		}

		p.buf = append(p.buf, t)
	}
}

func (p *Parser) peekRaw(n int) lexer.LexToken {
	p.fill(n)
	return p.buf[n]
}

func (p *Parser) advanceRaw() lexer.LexToken {
	p.fill(0)
	t := p.buf[0]
	p.buf = p.buf[1:]
	return t
}

func isComment(id lexer.TokenID) bool {
	return id == lexer.TokenLineComment || id == lexer.TokenBlockComment
}

// skipComments discards comment tokens sitting at the front of the buffer;
// clause-level grammar never needs to see them.
func (p *Parser) skipComments() {
	for isComment(p.peekRaw(0).ID) {
		p.advanceRaw()
	}
}

/*
cur returns the current lookahead token, skipping over comments.
*/
func (p *Parser) cur() lexer.LexToken {
	p.skipComments()
	return p.peekRaw(0)
}

/*
peek returns the n-th non-comment token ahead of cur (peek(0) == cur()).
*/
func (p *Parser) peek(n int) lexer.LexToken {
	p.skipComments()

	seen := 0
	i := 0
	for {
		t := p.peekRaw(i)
		if !isComment(t.ID) {
			if seen == n {
				return t
			}
			seen++
		}
		if t.ID == lexer.TokenEOF {
			return t
		}
		i++
	}
}

/*
advance consumes and returns the current token, skipping comments first.
*/
func (p *Parser) advance() lexer.LexToken {
	p.skipComments()
	return p.advanceRaw()
}

func (p *Parser) isKeyword(t lexer.LexToken, word string) bool {
	return t.ID == lexer.TokenKeyword && t.Val == word
}

func (p *Parser) isPunct(t lexer.LexToken, sym string) bool {
	return t.ID == lexer.TokenPunctuation && t.Val == sym
}

func (p *Parser) isOperator(t lexer.LexToken, sym string) bool {
	return t.ID == lexer.TokenOperator && t.Val == sym
}

func (p *Parser) expectKeyword(word string) (lexer.LexToken, error) {
	t := p.cur()
	if !p.isKeyword(t, word) {
		return t, p.errf(t, "expected '"+word+"'")
	}
	return p.advance(), nil
}

func (p *Parser) expectPunct(sym string) (lexer.LexToken, error) {
	t := p.cur()
	if !p.isPunct(t, sym) {
		return t, p.errf(t, "expected '"+sym+"'")
	}
	return p.advance(), nil
}

func (p *Parser) expectOperator(sym string) (lexer.LexToken, error) {
	t := p.cur()
	if !p.isOperator(t, sym) {
		return t, p.errf(t, "expected '"+sym+"'")
	}
	return p.advance(), nil
}

func (p *Parser) acceptKeyword(word string) bool {
	if p.isKeyword(p.cur(), word) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) acceptPunct(sym string) bool {
	if p.isPunct(p.cur(), sym) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expectName() (lexer.LexToken, error) {
	t := p.cur()
	if t.ID != lexer.TokenIdentifier && t.ID != lexer.TokenKeyword {
		return t, p.errf(t, "expected a name")
	}
	return p.advance(), nil
}

// clauseStartKeywords is the set of keywords that may open a new clause -
// used both to drive the Query clause loop and as a resynchronization
// boundary after a syntax error.
var clauseStartKeywords = map[string]bool{
	"MATCH": true, "OPTIONAL": true, "CREATE": true, "MERGE": true,
	"DELETE": true, "DETACH": true, "REMOVE": true, "SET": true,
	"WITH": true, "UNWIND": true, "FOREACH": true, "LOAD": true,
	"RETURN": true, "START": true, "UNION": true, "CALL": true,
	"USING": true, "DROP": true,
}

func (p *Parser) atClauseStart() bool {
	t := p.cur()
	return t.ID == lexer.TokenKeyword && clauseStartKeywords[t.Val]
}

func (p *Parser) atSchemaCommand() bool {
	t := p.cur()
	if !p.isKeyword(t, "CREATE") && !p.isKeyword(t, "DROP") {
		return false
	}
	n := p.peek(1)
	return p.isKeyword(n, "INDEX") || p.isKeyword(n, "CONSTRAINT")
}

func (p *Parser) atClientCommand() bool {
	return p.isPunct(p.cur(), ":")
}

// parseAll drives the top-level directive loop: top-level comments become
// their own directives, ':' starts a client command, CREATE/DROP followed
// by INDEX/CONSTRAINT starts a schema command, and everything else is a
// query (a non-empty clause sequence). Returns a non-nil error only for a
// fatal abort; syntax errors are recorded and recovered from in-line.
func (p *Parser) parseAll() error {
	for {
		if p.stopped {
			return nil
		}

		for isComment(p.peekRaw(0).ID) {
			raw := p.advanceRaw()

			node, err := p.node(commentKind(raw.ID), raw.Range, nil, nil)
			if err != nil {
				return err
			}
			node.Text = raw.Val

			if !p.emit(node) {
				return nil
			}
		}

		if p.peekRaw(0).ID == lexer.TokenEOF {
			return nil
		}

		var node *ast.Node
		var err error

		switch {
		case p.atClientCommand():
			node, err = p.parseClientCommand()
		case p.atSchemaCommand():
			node, err = p.parseSchemaCommand()
		default:
			node, err = p.parseQuery()
		}

		if err != nil {
			var fe *fatalError
			if errors.As(err, &fe) {
				return fe
			}

			var se *syntaxError
			if errors.As(err, &se) {
				p.result.AddError(p.newDiagnostic(se.tok, se.message))
			}

			p.synchronize()
			continue
		}

		if p.acceptPunct(";") {
			// statement terminator consumed
		}

		if !p.emit(node) {
			return nil
		}
	}
}

func commentKind(id lexer.TokenID) ast.Kind {
	if id == lexer.TokenBlockComment {
		return ast.KindBlockComment
	}
	return ast.KindLineComment
}

// emit records a completed directive and invokes the streaming callback,
// reporting whether parsing should continue.
func (p *Parser) emit(node *ast.Node) bool {
	p.result.AddDirective(node)

	if p.onDirective == nil {
		return true
	}

	if !p.onDirective(node) {
		p.stopped = true
		return false
	}

	return true
}

// synchronize discards tokens until a statement terminator (consumed) or a
// recognized clause-start keyword (left for the next directive) is found.
func (p *Parser) synchronize() {
	for {
		t := p.peekRaw(0)

		if t.ID == lexer.TokenEOF {
			return
		}

		if isComment(t.ID) {
			return
		}

		if t.ID == lexer.TokenPunctuation && t.Val == ";" {
			p.advanceRaw()
			return
		}

		if t.ID == lexer.TokenKeyword && (clauseStartKeywords[t.Val] || t.Val == "CREATE" || t.Val == "DROP") {
			return
		}

		p.advanceRaw()
	}
}

func (p *Parser) parseClientCommand() (*ast.Node, error) {
	colon, err := p.expectPunct(":")
	if err != nil {
		return nil, err
	}

	name, err := p.expectName()
	if err != nil {
		return nil, err
	}

	var children []*ast.Node
	end := name.Range.End

	for {
		t := p.cur()
		if t.ID == lexer.TokenEOF || p.isPunct(t, ";") || isComment(t.ID) {
			break
		}

		tok := p.advance()

		n, err := p.node(ast.KindStringLiteral, tok.Range, nil, nil)
		if err != nil {
			return nil, err
		}
		n.Text = tok.Val

		children = append(children, n)
		end = tok.Range.End
	}

	node, err := p.node(ast.KindClientCommand, position.Range{Start: colon.Range.Start, End: end}, children, nil)
	if err != nil {
		return nil, err
	}
	node.Text = name.Val

	return node, nil
}

func (p *Parser) parseQuery() (*ast.Node, error) {
	start := p.cur().Range.Start

	var clauses []*ast.Node
	for p.atClauseStart() {
		c, err := p.parseClause()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}

	if len(clauses) == 0 {
		return nil, p.errf(p.cur(), "expected a clause")
	}

	end := clauses[len(clauses)-1].Range.End

	return p.node(ast.KindQuery, position.Range{Start: start, End: end}, clauses, nil)
}
