package parser

import (
	"strconv"
	"strings"

	"github.com/krotik/cypherast/ast"
	"github.com/krotik/cypherast/lexer"
	"github.com/krotik/cypherast/position"
)

/*
bindingPower maps an infix operator's surface spelling to its binding
power, low to high: OR < XOR < AND < NOT < comparison < STARTS WITH/ENDS
WITH/CONTAINS < + - < * / % < ^ < unary < index/field/label. Keyed by
canonical (upper-cased) operator spelling.
*/
var bindingPower = map[string]int{
	"OR": 30, "XOR": 35, "AND": 40,
	"=": 60, "<>": 60, "<": 60, "<=": 60, ">": 60, ">=": 60, "=~": 60,
	"IN": 60, "IS": 60,
	"STARTS": 70, "ENDS": 70, "CONTAINS": 70,
	"+": 110, "-": 110,
	"*": 120, "/": 120, "%": 120,
	"^": 140,
}

const (
	unaryBindingPower    = 145
	postfixBindingPower  = 150
	notBindingPower      = 50
	minExpressionBinding = 0
)

/*
parseExpression implements Pratt/top-down-operator-precedence parsing: it
parses one prefix ("null denotation") term, then repeatedly extends it with
infix/postfix operators ("left denotation") whose binding power exceeds
minBP.
*/
func (p *Parser) parseExpression(minBP int) (*ast.Node, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		next, err := p.parseInfix(left, minBP)
		if err != nil {
			return nil, err
		}
		if next == left {
			return left, nil
		}
		left = next
	}
}

// parseInfix attempts to extend left with one infix/postfix operator whose
// binding power exceeds minBP; it returns left unchanged (same pointer) if
// no such operator is at the front of input.
func (p *Parser) parseInfix(left *ast.Node, minBP int) (*ast.Node, error) {
	t := p.cur()

	switch {
	case t.ID == lexer.TokenOperator:
		bp, ok := bindingPower[t.Val]
		if !ok || bp <= minBP {
			return left, nil
		}
		return p.parseBinaryTail(left, t, bp)

	case t.ID == lexer.TokenKeyword:
		switch t.Val {
		case "AND", "OR", "XOR":
			bp := bindingPower[t.Val]
			if bp <= minBP {
				return left, nil
			}
			return p.parseBinaryTail(left, t, bp)

		case "IN":
			if bindingPower["IN"] <= minBP {
				return left, nil
			}
			return p.parseBinaryTail(left, t, bindingPower["IN"])

		case "STARTS", "ENDS", "CONTAINS":
			if bindingPower["STARTS"] <= minBP {
				return left, nil
			}
			return p.parseStringPredicateTail(left, t)

		case "IS":
			if bindingPower["IS"] <= minBP {
				return left, nil
			}
			return p.parseIsTail(left, t)
		}
		return left, nil

	case t.ID == lexer.TokenPunctuation:
		switch t.Val {
		case "[":
			if postfixBindingPower <= minBP {
				return left, nil
			}
			return p.parseIndexOrSliceTail(left)
		case ".":
			if postfixBindingPower <= minBP {
				return left, nil
			}
			return p.parsePropertyAccessTail(left)
		case ":":
			if postfixBindingPower <= minBP {
				return left, nil
			}
			return p.parseLabelPredicateTail(left)
		}
		return left, nil
	}

	return left, nil
}

func (p *Parser) parseBinaryTail(left *ast.Node, opTok lexer.LexToken, bp int) (*ast.Node, error) {
	p.advance()

	opNode, err := p.node(ast.KindOperatorSymbol, opTok.Range, nil, nil)
	if err != nil {
		return nil, err
	}
	opNode.Text = opTok.Val

	// '^' is right-associative: letting the RHS recurse at bp-1 lets a
	// further '^' bind into this same call instead of the outer loop,
	// building a right-leaning chain. Every other binary operator is
	// left-associative and recurses at bp, which refuses to absorb a
	// same-precedence sibling here and lets the outer loop fold it in
	// left-to-right instead.
	rhsBP := bp
	if opTok.Val == "^" {
		rhsBP = bp - 1
	}

	right, err := p.parseExpression(rhsBP)
	if err != nil {
		return nil, err
	}

	rng := position.Range{Start: left.Range.Start, End: right.Range.End}
	return p.node(ast.KindBinaryOperator, rng, []*ast.Node{left, right, opNode}, map[string]*ast.Node{
		"left": left, "right": right, "operator": opNode,
	})
}

// parseStringPredicateTail handles "STARTS WITH", "ENDS WITH" and
// "CONTAINS" - string predicates sitting on their own precedence tier,
// distinct from ordinary comparison.
func (p *Parser) parseStringPredicateTail(left *ast.Node, kw lexer.LexToken) (*ast.Node, error) {
	p.advance()

	text := kw.Val
	end := kw.Range.End

	if kw.Val == "STARTS" || kw.Val == "ENDS" {
		withTok, err := p.expectKeyword("WITH")
		if err != nil {
			return nil, err
		}
		text = kw.Val + " WITH"
		end = withTok.Range.End
	}

	opNode, err := p.node(ast.KindOperatorSymbol, position.Range{Start: kw.Range.Start, End: end}, nil, nil)
	if err != nil {
		return nil, err
	}
	opNode.Text = text

	right, err := p.parseExpression(bindingPower["STARTS"])
	if err != nil {
		return nil, err
	}

	rng := position.Range{Start: left.Range.Start, End: right.Range.End}
	return p.node(ast.KindBinaryOperator, rng, []*ast.Node{left, right, opNode}, map[string]*ast.Node{
		"left": left, "right": right, "operator": opNode,
	})
}

// parseIsTail handles "IS NULL" and "IS NOT NULL", Cypher's only two "IS"
// forms - unary postfix predicates, not binary operators with an operand.
func (p *Parser) parseIsTail(left *ast.Node, isTok lexer.LexToken) (*ast.Node, error) {
	p.advance()

	text := "IS NULL"
	negated := p.acceptKeyword("NOT")
	if negated {
		text = "IS NOT NULL"
	}

	nullTok, err := p.expectKeyword("NULL")
	if err != nil {
		return nil, err
	}

	opNode, err := p.node(ast.KindOperatorSymbol, position.Range{Start: isTok.Range.Start, End: nullTok.Range.End}, nil, nil)
	if err != nil {
		return nil, err
	}
	opNode.Text = text

	rng := position.Range{Start: left.Range.Start, End: nullTok.Range.End}
	return p.node(ast.KindUnaryOperator, rng, []*ast.Node{left, opNode}, map[string]*ast.Node{
		"operand": left, "operator": opNode,
	})
}

func (p *Parser) parseIndexOrSliceTail(left *ast.Node) (*ast.Node, error) {
	p.advance() // '['

	if p.isOperator(p.cur(), "..") {
		return p.parseSliceTail(left, nil)
	}

	idx, err := p.parseExpression(minExpressionBinding)
	if err != nil {
		return nil, err
	}

	if p.isOperator(p.cur(), "..") {
		return p.parseSliceTail(left, idx)
	}

	closeBr, err := p.expectPunct("]")
	if err != nil {
		return nil, err
	}

	rng := position.Range{Start: left.Range.Start, End: closeBr.Range.End}
	return p.node(ast.KindIndexAccess, rng, []*ast.Node{left, idx}, map[string]*ast.Node{
		"target": left, "index": idx,
	})
}

func (p *Parser) parseSliceTail(left, from *ast.Node) (*ast.Node, error) {
	if _, err := p.expectOperator(".."); err != nil {
		return nil, err
	}

	var to *ast.Node
	if !p.isPunct(p.cur(), "]") {
		t, err := p.parseExpression(minExpressionBinding)
		if err != nil {
			return nil, err
		}
		to = t
	}

	closeBr, err := p.expectPunct("]")
	if err != nil {
		return nil, err
	}

	var children []*ast.Node
	slots := map[string]*ast.Node{"target": left}
	children = append(children, left)
	if from != nil {
		children = append(children, from)
		slots["from"] = from
	}
	if to != nil {
		children = append(children, to)
		slots["to"] = to
	}

	rng := position.Range{Start: left.Range.Start, End: closeBr.Range.End}
	return p.node(ast.KindSliceAccess, rng, children, slots)
}

func (p *Parser) parsePropertyAccessTail(left *ast.Node) (*ast.Node, error) {
	p.advance() // '.'

	key, err := p.parsePropertyKeyName()
	if err != nil {
		return nil, err
	}

	rng := position.Range{Start: left.Range.Start, End: key.Range.End}
	return p.node(ast.KindPropertyAccess, rng, []*ast.Node{left, key}, map[string]*ast.Node{
		"target": left, "property": key,
	})
}

// parseLabelPredicateTail handles "n:Label1:Label2"; the labels are
// unnamed children following "target" in the children list.
func (p *Parser) parseLabelPredicateTail(left *ast.Node) (*ast.Node, error) {
	labels := []*ast.Node{left}
	end := left.Range.End

	for p.isPunct(p.cur(), ":") {
		label, err := p.parseLabel()
		if err != nil {
			return nil, err
		}
		labels = append(labels, label)
		end = label.Range.End
	}

	rng := position.Range{Start: left.Range.Start, End: end}
	return p.node(ast.KindLabelPredicate, rng, labels, map[string]*ast.Node{"target": left})
}

// parsePrefix parses one "null denotation" term: a literal, identifier,
// parenthesized expression, unary operator, list/map literal, comprehension,
// CASE expression or function call - every production that can start an
// expression with no left operand.
func (p *Parser) parsePrefix() (*ast.Node, error) {
	t := p.cur()

	switch t.ID {
	case lexer.TokenInteger:
		p.advance()
		n, err := p.node(ast.KindIntegerLiteral, t.Range, nil, nil)
		if err != nil {
			return nil, err
		}
		n.Text = t.Val
		n.Number = decodeInteger(t.Val)
		return n, nil

	case lexer.TokenFloat:
		p.advance()
		n, err := p.node(ast.KindFloatLiteral, t.Range, nil, nil)
		if err != nil {
			return nil, err
		}
		n.Text = t.Val
		return n, nil

	case lexer.TokenString:
		p.advance()
		n, err := p.node(ast.KindStringLiteral, t.Range, nil, nil)
		if err != nil {
			return nil, err
		}
		n.Text = t.Val
		return n, nil

	case lexer.TokenParameter:
		p.advance()
		n, err := p.node(ast.KindParameter, t.Range, nil, nil)
		if err != nil {
			return nil, err
		}
		n.Text = t.Val
		return n, nil

	case lexer.TokenIdentifier:
		return p.parseIdentifierOrCall()

	case lexer.TokenOperator:
		if t.Val == "+" || t.Val == "-" {
			return p.parseUnary(t)
		}

	case lexer.TokenKeyword:
		switch t.Val {
		case "TRUE":
			p.advance()
			return p.node(ast.KindBooleanTrue, t.Range, nil, nil)
		case "FALSE":
			p.advance()
			return p.node(ast.KindBooleanFalse, t.Range, nil, nil)
		case "NULL":
			p.advance()
			return p.node(ast.KindNullLiteral, t.Range, nil, nil)
		case "NOT":
			return p.parseNot(t)
		case "COUNT":
			return p.parseCountStar(t)
		case "EXISTS":
			return p.parseIdentifierOrCall()
		case "CASE":
			return p.parseCase(t)
		case "REDUCE":
			return p.parseReduce(t)
		case "ANY", "ALL", "NONE", "SINGLE":
			return p.parseQuantifier(t)
		case "FILTER", "EXTRACT":
			return p.parseFilterOrExtract(t)
		}
	}

	switch {
	case p.isPunct(t, "("):
		return p.parseParenOrPatternPath()
	case p.isPunct(t, "["):
		return p.parseListLiteralOrComprehension()
	case p.isPunct(t, "{"):
		return p.parseMapLiteral()
	}

	return nil, p.errf(t, "expected an expression")
}

func decodeInteger(text string) int {
	base := 10
	body := text

	switch {
	case strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X"):
		base = 16
		body = text[2:]
	case len(text) > 1 && text[0] == '0':
		base = 8
	}

	n, err := strconv.ParseInt(body, base, 64)
	if err != nil {
		return 0
	}
	return int(n)
}

func (p *Parser) parseUnary(opTok lexer.LexToken) (*ast.Node, error) {
	p.advance()

	opNode, err := p.node(ast.KindOperatorSymbol, opTok.Range, nil, nil)
	if err != nil {
		return nil, err
	}
	opNode.Text = opTok.Val

	operand, err := p.parseExpression(unaryBindingPower)
	if err != nil {
		return nil, err
	}

	rng := position.Range{Start: opTok.Range.Start, End: operand.Range.End}
	return p.node(ast.KindUnaryOperator, rng, []*ast.Node{operand, opNode}, map[string]*ast.Node{
		"operand": operand, "operator": opNode,
	})
}

func (p *Parser) parseNot(notTok lexer.LexToken) (*ast.Node, error) {
	p.advance()

	opNode, err := p.node(ast.KindOperatorSymbol, notTok.Range, nil, nil)
	if err != nil {
		return nil, err
	}
	opNode.Text = "NOT"

	operand, err := p.parseExpression(notBindingPower)
	if err != nil {
		return nil, err
	}

	rng := position.Range{Start: notTok.Range.Start, End: operand.Range.End}
	return p.node(ast.KindUnaryOperator, rng, []*ast.Node{operand, opNode}, map[string]*ast.Node{
		"operand": operand, "operator": opNode,
	})
}

func (p *Parser) parseCountStar(countTok lexer.LexToken) (*ast.Node, error) {
	// "count(*)" is a distinct leaf node; a plain "count(expr)" falls
	// through to an ordinary function call.
	if p.isPunct(p.peek(1), "(") && p.isOperator(p.peek(2), "*") && p.isPunct(p.peek(3), ")") {
		p.advance()
		p.advance() // '('
		p.advance() // '*'
		closeParen, err := p.expectPunct(")")
		if err != nil {
			return nil, err
		}
		return p.node(ast.KindCountStarExpression, position.Range{Start: countTok.Range.Start, End: closeParen.Range.End}, nil, nil)
	}

	return p.parseIdentifierOrCall()
}

/*
parseIdentifierOrCall parses a bare identifier, a dotted procedure-style
function call name ("db.labels()"), or a simple variable reference -
disambiguated by whether '(' follows the (possibly dotted) name.
*/
func (p *Parser) parseIdentifierOrCall() (*ast.Node, error) {
	first, err := p.expectName()
	if err != nil {
		return nil, err
	}

	name := first.Val
	end := first.Range.End

	if (name == "shortestPath" || name == "allShortestPaths") && p.isPunct(p.cur(), "(") {
		return p.parseShortestPath(first, name)
	}

	// A ".ident" chain is only a dotted call name when '(' follows the whole
	// chain; otherwise the dots are property accesses left for parseInfix.
	k := 0
	for p.isPunct(p.peek(k), ".") && p.peek(k+1).ID == lexer.TokenIdentifier {
		k += 2
	}
	if k > 0 && p.isPunct(p.peek(k), "(") {
		for i := 0; i < k; i += 2 {
			p.advance()
			part := p.advance()
			name += "." + part.Val
			end = part.Range.End
		}
		return p.parseCallTail(first.Range.Start, name, end)
	}

	id, err := p.node(ast.KindIdentifier, first.Range, nil, nil)
	if err != nil {
		return nil, err
	}
	id.Text = name

	if p.isPunct(p.cur(), "(") {
		return p.parseCallTail(first.Range.Start, name, end)
	}

	if p.isPunct(p.cur(), "{") {
		return p.parseMapProjectionTail(id)
	}

	return id, nil
}

/*
parseMapProjectionTail parses "variable{.*, .prop, alias: expr, ...}".
*/
func (p *Parser) parseMapProjectionTail(variable *ast.Node) (*ast.Node, error) {
	_, err := p.expectPunct("{")
	if err != nil {
		return nil, err
	}

	children := []*ast.Node{variable}

	if !p.isPunct(p.cur(), "}") {
		for {
			item, err := p.parseMapProjectionItem()
			if err != nil {
				return nil, err
			}
			children = append(children, item)

			if !p.acceptPunct(",") {
				break
			}
		}
	}

	closeBr, err := p.expectPunct("}")
	if err != nil {
		return nil, err
	}

	return p.node(ast.KindMapProjection, position.Range{Start: variable.Range.Start, End: closeBr.Range.End},
		children, map[string]*ast.Node{"variable": variable})
}

func (p *Parser) parseMapProjectionItem() (*ast.Node, error) {
	if p.isPunct(p.cur(), ".") && p.isOperator(p.peek(1), "*") {
		dotTok := p.advance()
		starTok := p.advance()
		return p.node(ast.KindMapProjectionAllProperties, position.Range{Start: dotTok.Range.Start, End: starTok.Range.End}, nil, nil)
	}

	if p.isPunct(p.cur(), ".") {
		dotTok := p.advance()
		key, err := p.parsePropertyKeyName()
		if err != nil {
			return nil, err
		}
		return p.node(ast.KindMapProjectionItem, position.Range{Start: dotTok.Range.Start, End: key.Range.End},
			[]*ast.Node{key}, map[string]*ast.Node{"key": key})
	}

	key, err := p.parsePropertyKeyName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectPunct(":"); err != nil {
		return nil, err
	}

	value, err := p.parseExpression(minExpressionBinding)
	if err != nil {
		return nil, err
	}

	return p.node(ast.KindMapProjectionItem, position.Range{Start: key.Range.Start, End: value.Range.End},
		[]*ast.Node{key, value}, map[string]*ast.Node{"key": key, "value": value})
}

// parseShortestPath handles "shortestPath(pattern)" and
// "allShortestPaths(pattern)" - lexically ordinary identifiers, but
// grammatically distinguished since their sole argument is a pattern path,
// not a value expression.
func (p *Parser) parseShortestPath(nameTok lexer.LexToken, name string) (*ast.Node, error) {
	p.advance() // '('

	pattern, err := p.parsePatternPath()
	if err != nil {
		return nil, err
	}

	closeParen, err := p.expectPunct(")")
	if err != nil {
		return nil, err
	}

	n, err := p.node(ast.KindShortestPathExpression, position.Range{Start: nameTok.Range.Start, End: closeParen.Range.End},
		[]*ast.Node{pattern}, map[string]*ast.Node{"pattern": pattern})
	if err != nil {
		return nil, err
	}
	n.Text = name

	return n, nil
}

func (p *Parser) parseCallTail(start position.Position, name string, nameEnd position.Position) (*ast.Node, error) {
	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}

	distinct := p.acceptKeyword("DISTINCT")

	var args []*ast.Node
	if !p.isPunct(p.cur(), ")") {
		for {
			arg, err := p.parseExpression(minExpressionBinding)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if !p.acceptPunct(",") {
				break
			}
		}
	}

	closeParen, err := p.expectPunct(")")
	if err != nil {
		return nil, err
	}

	n, err := p.node(ast.KindFunctionInvocation, position.Range{Start: start, End: closeParen.Range.End}, args, nil)
	if err != nil {
		return nil, err
	}
	n.Text = name
	n.Flag = distinct

	return n, nil
}

// parseParenOrPatternPath handles a parenthesized sub-expression, "(expr)".
// Node/relationship patterns are parsed separately (patterns.go) by the
// clause grammars that actually admit them (MATCH/CREATE/MERGE, pattern
// comprehensions, shortestPath(...)) rather than as a generic expression
// atom, since a bare pattern is never itself a valid stand-alone value
// expression in Cypher's grammar.
func (p *Parser) parseParenOrPatternPath() (*ast.Node, error) {
	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}

	expr, err := p.parseExpression(minExpressionBinding)
	if err != nil {
		return nil, err
	}

	if _, err := p.expectPunct(")"); err != nil {
		return nil, err
	}

	return expr, nil
}

func (p *Parser) parseListLiteralOrComprehension() (*ast.Node, error) {
	// Pattern comprehensions share '[' with list literals/comprehensions
	// but start with a node pattern, possibly bound by "ident =" first -
	// checked before consuming '[' since it re-parses from the start.
	if p.atPatternComprehensionStart() {
		return p.parsePatternComprehension()
	}

	open, err := p.expectPunct("[")
	if err != nil {
		return nil, err
	}

	if p.isPunct(p.cur(), "]") {
		close := p.advance()
		return p.node(ast.KindListLiteral, position.Range{Start: open.Range.Start, End: close.Range.End}, nil, nil)
	}

	// Disambiguate "[x IN list ...]" (comprehension) from "[1, 2, 3]"
	// (list literal) by lookahead: an identifier immediately followed by
	// the IN keyword.
	if p.cur().ID == lexer.TokenIdentifier && p.isKeyword(p.peek(1), "IN") {
		return p.parseListComprehensionTail(open)
	}

	var items []*ast.Node
	for {
		item, err := p.parseExpression(minExpressionBinding)
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		if !p.acceptPunct(",") {
			break
		}
	}

	closeBr, err := p.expectPunct("]")
	if err != nil {
		return nil, err
	}

	return p.node(ast.KindListLiteral, position.Range{Start: open.Range.Start, End: closeBr.Range.End}, items, nil)
}

func (p *Parser) parseListComprehensionTail(open lexer.LexToken) (*ast.Node, error) {
	variable, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword("IN"); err != nil {
		return nil, err
	}

	source, err := p.parseExpression(minExpressionBinding)
	if err != nil {
		return nil, err
	}

	var predicate *ast.Node
	if p.acceptKeyword("WHERE") {
		predicate, err = p.parseExpression(minExpressionBinding)
		if err != nil {
			return nil, err
		}
	}

	var projection *ast.Node
	if p.acceptOperator("|") {
		projection, err = p.parseExpression(minExpressionBinding)
		if err != nil {
			return nil, err
		}
	}

	closeBr, err := p.expectPunct("]")
	if err != nil {
		return nil, err
	}

	children := []*ast.Node{variable, source}
	slots := map[string]*ast.Node{"variable": variable, "source": source}
	if predicate != nil {
		children = append(children, predicate)
		slots["predicate"] = predicate
	}
	if projection != nil {
		children = append(children, projection)
		slots["projection"] = projection
	}

	return p.node(ast.KindListComprehension, position.Range{Start: open.Range.Start, End: closeBr.Range.End}, children, slots)
}

func (p *Parser) acceptOperator(sym string) bool {
	if p.isOperator(p.cur(), sym) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) parseMapLiteral() (*ast.Node, error) {
	open, err := p.expectPunct("{")
	if err != nil {
		return nil, err
	}

	var entries []*ast.Node
	if !p.isPunct(p.cur(), "}") {
		for {
			key, err := p.parsePropertyKeyName()
			if err != nil {
				return nil, err
			}

			if _, err := p.expectPunct(":"); err != nil {
				return nil, err
			}

			val, err := p.parseExpression(minExpressionBinding)
			if err != nil {
				return nil, err
			}

			entry, err := p.node(ast.KindMapEntry, position.Range{Start: key.Range.Start, End: val.Range.End},
				[]*ast.Node{key, val}, map[string]*ast.Node{"key": key, "value": val})
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)

			if !p.acceptPunct(",") {
				break
			}
		}
	}

	closeBr, err := p.expectPunct("}")
	if err != nil {
		return nil, err
	}

	return p.node(ast.KindMapLiteral, position.Range{Start: open.Range.Start, End: closeBr.Range.End}, entries, nil)
}

func (p *Parser) parseCase(caseTok lexer.LexToken) (*ast.Node, error) {
	p.advance()

	var test *ast.Node
	if !p.isKeyword(p.cur(), "WHEN") {
		t, err := p.parseExpression(minExpressionBinding)
		if err != nil {
			return nil, err
		}
		test = t
	}

	var alternatives []*ast.Node
	for p.isKeyword(p.cur(), "WHEN") {
		whenTok := p.advance()

		when, err := p.parseExpression(minExpressionBinding)
		if err != nil {
			return nil, err
		}

		if _, err := p.expectKeyword("THEN"); err != nil {
			return nil, err
		}

		then, err := p.parseExpression(minExpressionBinding)
		if err != nil {
			return nil, err
		}

		alt, err := p.node(ast.KindCaseAlternative, position.Range{Start: whenTok.Range.Start, End: then.Range.End},
			[]*ast.Node{when, then}, map[string]*ast.Node{"when": when, "then": then})
		if err != nil {
			return nil, err
		}
		alternatives = append(alternatives, alt)
	}

	var elseExpr *ast.Node
	if p.acceptKeyword("ELSE") {
		e, err := p.parseExpression(minExpressionBinding)
		if err != nil {
			return nil, err
		}
		elseExpr = e
	}

	endTok, err := p.expectKeyword("END")
	if err != nil {
		return nil, err
	}

	var children []*ast.Node
	slots := map[string]*ast.Node{}
	if test != nil {
		children = append(children, test)
		slots["test"] = test
	}
	children = append(children, alternatives...)
	if elseExpr != nil {
		children = append(children, elseExpr)
		slots["else"] = elseExpr
	}

	return p.node(ast.KindCaseExpression, position.Range{Start: caseTok.Range.Start, End: endTok.Range.End}, children, slots)
}

func (p *Parser) parseReduce(reduceTok lexer.LexToken) (*ast.Node, error) {
	p.advance()

	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}

	accumulator, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectOperator("="); err != nil {
		return nil, err
	}

	initial, err := p.parseExpression(minExpressionBinding)
	if err != nil {
		return nil, err
	}

	if _, err := p.expectPunct(","); err != nil {
		return nil, err
	}

	variable, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword("IN"); err != nil {
		return nil, err
	}

	list, err := p.parseExpression(minExpressionBinding)
	if err != nil {
		return nil, err
	}

	if _, err := p.expectOperator("|"); err != nil {
		return nil, err
	}

	expression, err := p.parseExpression(minExpressionBinding)
	if err != nil {
		return nil, err
	}

	closeParen, err := p.expectPunct(")")
	if err != nil {
		return nil, err
	}

	children := []*ast.Node{accumulator, initial, variable, list, expression}
	slots := map[string]*ast.Node{
		"accumulator": accumulator, "initial": initial,
		"variable": variable, "list": list, "expression": expression,
	}

	return p.node(ast.KindReduceExpression, position.Range{Start: reduceTok.Range.Start, End: closeParen.Range.End}, children, slots)
}

func (p *Parser) parseQuantifier(kwTok lexer.LexToken) (*ast.Node, error) {
	p.advance()

	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}

	variable, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword("IN"); err != nil {
		return nil, err
	}

	source, err := p.parseExpression(minExpressionBinding)
	if err != nil {
		return nil, err
	}

	var predicate *ast.Node
	if p.acceptKeyword("WHERE") {
		predicate, err = p.parseExpression(minExpressionBinding)
		if err != nil {
			return nil, err
		}
	}

	closeParen, err := p.expectPunct(")")
	if err != nil {
		return nil, err
	}

	children := []*ast.Node{variable, source}
	slots := map[string]*ast.Node{"variable": variable, "source": source}
	if predicate != nil {
		children = append(children, predicate)
		slots["predicate"] = predicate
	}

	n, err := p.node(ast.KindQuantifierExpression, position.Range{Start: kwTok.Range.Start, End: closeParen.Range.End}, children, slots)
	if err != nil {
		return nil, err
	}
	n.Text = kwTok.Val

	return n, nil
}

// parseFilterOrExtract handles the legacy "FILTER(x IN list WHERE pred)"
// and "EXTRACT(x IN list | expr)" forms. A FILTER with a predicate and no
// projection becomes a QuantifierExpression with Text "FILTER"; every other
// form becomes a ListComprehension.
func (p *Parser) parseFilterOrExtract(kwTok lexer.LexToken) (*ast.Node, error) {
	p.advance()

	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}

	variable, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword("IN"); err != nil {
		return nil, err
	}

	source, err := p.parseExpression(minExpressionBinding)
	if err != nil {
		return nil, err
	}

	var predicate *ast.Node
	if p.acceptKeyword("WHERE") {
		predicate, err = p.parseExpression(minExpressionBinding)
		if err != nil {
			return nil, err
		}
	}

	var projection *ast.Node
	if p.acceptOperator("|") {
		projection, err = p.parseExpression(minExpressionBinding)
		if err != nil {
			return nil, err
		}
	}

	closeParen, err := p.expectPunct(")")
	if err != nil {
		return nil, err
	}

	children := []*ast.Node{variable, source}
	slots := map[string]*ast.Node{"variable": variable, "source": source}
	if predicate != nil {
		children = append(children, predicate)
		slots["predicate"] = predicate
	}
	if projection != nil {
		children = append(children, projection)
		slots["projection"] = projection
	}

	kind := ast.KindListComprehension
	if predicate != nil && projection == nil && kwTok.Val == "FILTER" {
		// FILTER keeps list-comprehension shape with no projection -
		// QuantifierExpression's text slot distinguishes it from
		// ANY/ALL/NONE/SINGLE in the printer's detail string instead.
		n, err := p.node(ast.KindQuantifierExpression, position.Range{Start: kwTok.Range.Start, End: closeParen.Range.End}, children, slots)
		if err != nil {
			return nil, err
		}
		n.Text = "FILTER"
		return n, nil
	}

	return p.node(kind, position.Range{Start: kwTok.Range.Start, End: closeParen.Range.End}, children, slots)
}
