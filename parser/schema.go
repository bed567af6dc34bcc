package parser

import (
	"github.com/krotik/cypherast/ast"
	"github.com/krotik/cypherast/lexer"
	"github.com/krotik/cypherast/position"
)

func (p *Parser) parseLabel() (*ast.Node, error) {
	colon, err := p.expectPunct(":")
	if err != nil {
		return nil, err
	}

	name, err := p.expectName()
	if err != nil {
		return nil, err
	}

	n, err := p.node(ast.KindLabel, position.Range{Start: colon.Range.Start, End: name.Range.End}, nil, nil)
	if err != nil {
		return nil, err
	}
	n.Text = name.Val

	return n, nil
}

func (p *Parser) parseRelTypeName() (*ast.Node, error) {
	colon, err := p.expectPunct(":")
	if err != nil {
		return nil, err
	}

	name, err := p.expectName()
	if err != nil {
		return nil, err
	}

	n, err := p.node(ast.KindRelationshipTypeName, position.Range{Start: colon.Range.Start, End: name.Range.End}, nil, nil)
	if err != nil {
		return nil, err
	}
	n.Text = name.Val

	return n, nil
}

func (p *Parser) parseIdentifier() (*ast.Node, error) {
	tok, err := p.expectName()
	if err != nil {
		return nil, err
	}

	n, err := p.node(ast.KindIdentifier, tok.Range, nil, nil)
	if err != nil {
		return nil, err
	}
	n.Text = tok.Val

	return n, nil
}

func (p *Parser) parsePropertyKeyName() (*ast.Node, error) {
	tok, err := p.expectName()
	if err != nil {
		return nil, err
	}

	n, err := p.node(ast.KindPropertyKeyName, tok.Range, nil, nil)
	if err != nil {
		return nil, err
	}
	n.Text = tok.Val

	return n, nil
}

/*
parseSchemaCommand handles CREATE/DROP INDEX and CREATE/DROP CONSTRAINT.
These never mix with MATCH/CREATE-clause query syntax - parseAll routes
here only after confirming the CREATE/DROP keyword is followed by INDEX or
CONSTRAINT.
*/
func (p *Parser) parseSchemaCommand() (*ast.Node, error) {
	first := p.advance() // CREATE or DROP
	isDrop := first.Val == "DROP"

	if p.isKeyword(p.cur(), "INDEX") {
		return p.parseIndexCommand(first, isDrop)
	}

	if p.isKeyword(p.cur(), "CONSTRAINT") {
		return p.parseConstraintCommand(first, isDrop)
	}

	return nil, p.errf(p.cur(), "expected INDEX or CONSTRAINT")
}

// parseIndexCommand parses "{CREATE|DROP} INDEX ON :Label(property)".
func (p *Parser) parseIndexCommand(first lexer.LexToken, isDrop bool) (*ast.Node, error) {
	p.advance() // INDEX

	if _, err := p.expectKeyword("ON"); err != nil {
		return nil, err
	}

	label, err := p.parseLabel()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}

	prop, err := p.parsePropertyKeyName()
	if err != nil {
		return nil, err
	}

	closeParen, err := p.expectPunct(")")
	if err != nil {
		return nil, err
	}

	kind := ast.KindCreateIndex
	if isDrop {
		kind = ast.KindDropIndex
	}

	rng := position.Range{Start: first.Range.Start, End: closeParen.Range.End}
	return p.node(kind, rng, []*ast.Node{label, prop}, map[string]*ast.Node{
		"label": label, "property": prop,
	})
}

// parseConstraintCommand parses the two constraint shapes: a
// node-property constraint,
// "{CREATE|DROP} CONSTRAINT ON (x:Label) ASSERT <assertion>", and a
// relationship-property existence constraint,
// "{CREATE|DROP} CONSTRAINT ON ()-[x:TYPE]-() ASSERT EXISTS(x.prop)".
func (p *Parser) parseConstraintCommand(first lexer.LexToken, isDrop bool) (*ast.Node, error) {
	p.advance() // CONSTRAINT

	if _, err := p.expectKeyword("ON"); err != nil {
		return nil, err
	}

	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}

	if p.isPunct(p.cur(), ")") {
		return p.parseRelConstraintTail(first, isDrop)
	}

	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	label, err := p.parseLabel()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectPunct(")"); err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword("ASSERT"); err != nil {
		return nil, err
	}

	if p.acceptKeyword("EXISTS") {
		if _, err := p.expectPunct("("); err != nil {
			return nil, err
		}

		expr, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}

		closeParen, err := p.expectPunct(")")
		if err != nil {
			return nil, err
		}

		kind := ast.KindCreateNodePropExistenceConstraint
		if isDrop {
			kind = ast.KindDropNodePropExistenceConstraint
		}

		rng := position.Range{Start: first.Range.Start, End: closeParen.Range.End}
		return p.node(kind, rng, []*ast.Node{id, label, expr}, map[string]*ast.Node{
			"identifier": id, "label": label, "expression": expr,
		})
	}

	// Parse at the IS tier so the trailing "IS UNIQUE" stays unconsumed -
	// at a lower bound the expression loop would swallow IS as the start
	// of an "IS NULL" predicate.
	expr, err := p.parseExpression(bindingPower["IS"])
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword("IS"); err != nil {
		return nil, err
	}

	uniqueTok, err := p.expectKeyword("UNIQUE")
	if err != nil {
		return nil, err
	}

	kind := ast.KindCreateUniqueNodePropConstraint
	if isDrop {
		kind = ast.KindDropUniqueNodePropConstraint
	}

	rng := position.Range{Start: first.Range.Start, End: uniqueTok.Range.End}
	return p.node(kind, rng, []*ast.Node{id, label, expr}, map[string]*ast.Node{
		"identifier": id, "label": label, "expression": expr,
	})
}

func (p *Parser) parseRelConstraintTail(first lexer.LexToken, isDrop bool) (*ast.Node, error) {
	if _, err := p.expectPunct(")"); err != nil {
		return nil, err
	}

	if _, err := p.expectOperator("-"); err != nil {
		return nil, err
	}

	if _, err := p.expectPunct("["); err != nil {
		return nil, err
	}

	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	typ, err := p.parseRelTypeName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectPunct("]"); err != nil {
		return nil, err
	}

	if _, err := p.expectOperator("-"); err != nil {
		return nil, err
	}

	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}

	if _, err := p.expectPunct(")"); err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword("ASSERT"); err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword("EXISTS"); err != nil {
		return nil, err
	}

	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}

	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	closeParen, err := p.expectPunct(")")
	if err != nil {
		return nil, err
	}

	kind := ast.KindCreateRelPropExistenceConstraint
	if isDrop {
		kind = ast.KindDropRelPropExistenceConstraint
	}

	rng := position.Range{Start: first.Range.Start, End: closeParen.Range.End}
	return p.node(kind, rng, []*ast.Node{id, typ, expr}, map[string]*ast.Node{
		"identifier": id, "type": typ, "expression": expr,
	})
}
