package parser

import (
	"github.com/krotik/cypherast/ast"
	"github.com/krotik/cypherast/lexer"
	"github.com/krotik/cypherast/position"
)

/*
parsePatternPath parses a chain of node patterns joined by relationship
patterns: "(a)-[:KNOWS]->(b)-->(c)", optionally bound to a path variable
("p = (a)-->(b)") when called from a context that allows one (MATCH/CREATE/
MERGE item lists check for "identifier =" before delegating here).
*/
func (p *Parser) parsePatternPath() (*ast.Node, error) {
	return p.parsePatternPathWithVariable(nil)
}

func (p *Parser) parsePatternPathWithVariable(variable *ast.Node) (*ast.Node, error) {
	first, err := p.parseNodePattern()
	if err != nil {
		return nil, err
	}

	children := []*ast.Node{first}
	start := first.Range.Start
	if variable != nil {
		children = []*ast.Node{variable, first}
		start = variable.Range.Start
	}

	end := first.Range.End

	for p.atRelationshipPatternStart() {
		rel, err := p.parseRelationshipPattern()
		if err != nil {
			return nil, err
		}

		node, err := p.parseNodePattern()
		if err != nil {
			return nil, err
		}

		children = append(children, rel, node)
		end = node.Range.End
	}

	slots := map[string]*ast.Node{}
	if variable != nil {
		slots["variable"] = variable
	}

	return p.node(ast.KindPatternPath, position.Range{Start: start, End: end}, children, slots)
}

// atRelationshipPatternStart reports whether the input at the current
// position begins a relationship pattern: "-", "<-", or "-[".
func (p *Parser) atRelationshipPatternStart() bool {
	t := p.cur()
	return p.isOperator(t, "-") || p.isOperator(t, "<-")
}

/*
parseNodePattern parses "(var:Label1:Label2 {props})", every component
optional except the parentheses themselves.
*/
func (p *Parser) parseNodePattern() (*ast.Node, error) {
	open, err := p.expectPunct("(")
	if err != nil {
		return nil, err
	}

	var variable *ast.Node
	if p.cur().ID == lexer.TokenIdentifier {
		variable, err = p.parseIdentifier()
		if err != nil {
			return nil, err
		}
	}

	var children []*ast.Node
	slots := map[string]*ast.Node{}
	if variable != nil {
		children = append(children, variable)
		slots["variable"] = variable
	}

	for p.isPunct(p.cur(), ":") {
		label, err := p.parseLabel()
		if err != nil {
			return nil, err
		}
		children = append(children, label)
	}

	if p.isPunct(p.cur(), "{") {
		props, err := p.parseMapLiteral()
		if err != nil {
			return nil, err
		}
		children = append(children, props)
		slots["properties"] = props
	} else if p.cur().ID == lexer.TokenParameter {
		paramTok := p.advance()
		props, err := p.node(ast.KindParameter, paramTok.Range, nil, nil)
		if err != nil {
			return nil, err
		}
		props.Text = paramTok.Val
		children = append(children, props)
		slots["properties"] = props
	}

	closeParen, err := p.expectPunct(")")
	if err != nil {
		return nil, err
	}

	return p.node(ast.KindNodePattern, position.Range{Start: open.Range.Start, End: closeParen.Range.End}, children, slots)
}

/*
parseRelationshipPattern parses "-[var:TYPE*min..max {props}]-", with
either or both ends carrying an arrow ("<-...-" / "-...->" / "-...-").
*/
func (p *Parser) parseRelationshipPattern() (*ast.Node, error) {
	leftTok := p.cur()
	direction := "BOTH"

	if p.isOperator(leftTok, "<-") {
		p.advance()
		direction = "LEFT"
	} else {
		if _, err := p.expectOperator("-"); err != nil {
			return nil, err
		}
	}

	start := leftTok.Range.Start
	end := leftTok.Range.End

	var variable *ast.Node
	var children []*ast.Node
	slots := map[string]*ast.Node{}

	if p.isPunct(p.cur(), "[") {
		open := p.advance()
		end = open.Range.End

		if p.cur().ID == lexer.TokenIdentifier {
			var err error
			variable, err = p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			children = append(children, variable)
			slots["variable"] = variable
		}

		for p.isPunct(p.cur(), ":") {
			typ, err := p.parseRelTypeName()
			if err != nil {
				return nil, err
			}
			children = append(children, typ)
		}

		if p.isOperator(p.cur(), "*") {
			rng, err := p.parseRelationshipRange()
			if err != nil {
				return nil, err
			}
			children = append(children, rng)
			slots["range"] = rng
		}

		if p.isPunct(p.cur(), "{") {
			props, err := p.parseMapLiteral()
			if err != nil {
				return nil, err
			}
			children = append(children, props)
			slots["properties"] = props
		} else if p.cur().ID == lexer.TokenParameter {
			paramTok := p.advance()
			props, err := p.node(ast.KindParameter, paramTok.Range, nil, nil)
			if err != nil {
				return nil, err
			}
			props.Text = paramTok.Val
			children = append(children, props)
			slots["properties"] = props
		}

		closeBr, err := p.expectPunct("]")
		if err != nil {
			return nil, err
		}
		end = closeBr.Range.End
	}

	rightTok := p.cur()
	if p.isOperator(rightTok, "->") {
		p.advance()
		if direction == "LEFT" {
			return nil, p.errf(rightTok, "relationship pattern cannot point both directions")
		}
		direction = "RIGHT"
		end = rightTok.Range.End
	} else {
		closeTok, err := p.expectOperator("-")
		if err != nil {
			return nil, err
		}
		end = closeTok.Range.End
	}

	n, err := p.node(ast.KindRelationshipPattern, position.Range{Start: start, End: end}, children, slots)
	if err != nil {
		return nil, err
	}
	n.Text = direction

	return n, nil
}

// parseRelationshipRange parses the variable-length-path suffix
// "*", "*3", "*2..5", "*..4", "*2..".
func (p *Parser) parseRelationshipRange() (*ast.Node, error) {
	star, err := p.expectOperator("*")
	if err != nil {
		return nil, err
	}

	end := star.Range.End

	var min, max *ast.Node
	var children []*ast.Node
	slots := map[string]*ast.Node{}

	if p.cur().ID == lexer.TokenInteger {
		tok := p.advance()
		min, err = p.node(ast.KindIntegerLiteral, tok.Range, nil, nil)
		if err != nil {
			return nil, err
		}
		min.Text = tok.Val
		min.Number = decodeInteger(tok.Val)
		children = append(children, min)
		slots["min"] = min
		end = tok.Range.End
	}

	if p.isOperator(p.cur(), "..") {
		p.advance()
		if p.cur().ID == lexer.TokenInteger {
			tok := p.advance()
			max, err = p.node(ast.KindIntegerLiteral, tok.Range, nil, nil)
			if err != nil {
				return nil, err
			}
			max.Text = tok.Val
			max.Number = decodeInteger(tok.Val)
			children = append(children, max)
			slots["max"] = max
			end = tok.Range.End
		}
	}

	return p.node(ast.KindRelationshipRange, position.Range{Start: star.Range.Start, End: end}, children, slots)
}

// atPatternComprehensionStart reports whether the '['-introduced
// production ahead is a pattern comprehension: '[' directly followed by
// '(' (a bare pattern path), or by "identifier =" (a path-variable bound
// pattern path).
func (p *Parser) atPatternComprehensionStart() bool {
	if !p.isPunct(p.cur(), "[") {
		return false
	}

	n := p.peek(1)
	if p.isPunct(n, "(") {
		return true
	}

	return n.ID == lexer.TokenIdentifier && p.isOperator(p.peek(2), "=")
}

/*
parsePatternComprehension parses "[p = (a)-->(b) WHERE cond | expr]" -
lexically introduced by '[' but distinguished from a list comprehension by
an opening '(' or "ident =" at the position a list's first element would
be.
*/
func (p *Parser) parsePatternComprehension() (*ast.Node, error) {
	open, err := p.expectPunct("[")
	if err != nil {
		return nil, err
	}

	var variable *ast.Node
	if p.cur().ID == lexer.TokenIdentifier && p.isOperator(p.peek(1), "=") {
		variable, err = p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectOperator("="); err != nil {
			return nil, err
		}
	}

	pattern, err := p.parsePatternPath()
	if err != nil {
		return nil, err
	}

	var where *ast.Node
	if p.acceptKeyword("WHERE") {
		where, err = p.parseExpression(minExpressionBinding)
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expectOperator("|"); err != nil {
		return nil, err
	}

	projection, err := p.parseExpression(minExpressionBinding)
	if err != nil {
		return nil, err
	}

	closeBr, err := p.expectPunct("]")
	if err != nil {
		return nil, err
	}

	children := []*ast.Node{}
	slots := map[string]*ast.Node{"pattern": pattern, "projection": projection}
	if variable != nil {
		children = append(children, variable)
		slots["variable"] = variable
	}
	children = append(children, pattern)
	if where != nil {
		children = append(children, where)
		slots["where"] = where
	}
	children = append(children, projection)

	return p.node(ast.KindPatternComprehension, position.Range{Start: open.Range.Start, End: closeBr.Range.End}, children, slots)
}

/*
parsePatternPathItem parses one item of a MATCH/CREATE/MERGE pattern list:
an optional "identifier =" path-variable binding followed by a pattern
path.
*/
func (p *Parser) parsePatternPathItem() (*ast.Node, error) {
	var variable *ast.Node

	if p.cur().ID == lexer.TokenIdentifier && p.isOperator(p.peek(1), "=") {
		v, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectOperator("="); err != nil {
			return nil, err
		}
		variable = v
	}

	return p.parsePatternPathWithVariable(variable)
}
