package parser

import (
	"github.com/krotik/cypherast/ast"
	"github.com/krotik/cypherast/lexer"
	"github.com/krotik/cypherast/position"
)

/*
parseClause dispatches on the current clause-start keyword and delegates
to the matching clause parser. Called from parseQuery's loop; the caller
has already confirmed atClauseStart().
*/
func (p *Parser) parseClause() (*ast.Node, error) {
	t := p.cur()

	switch t.Val {
	case "USING":
		return p.parseUsingHint()
	case "MATCH":
		return p.parseMatchClause(false)
	case "OPTIONAL":
		return p.parseOptionalMatchClause()
	case "CREATE":
		return p.parseCreateClause()
	case "MERGE":
		return p.parseMergeClause()
	case "DETACH":
		return p.parseDetachDeleteClause()
	case "DELETE":
		return p.parseDeleteClause()
	case "REMOVE":
		return p.parseRemoveClause()
	case "SET":
		return p.parseSetClause()
	case "WITH":
		return p.parseProjectionClause(ast.KindWithClause, "WITH")
	case "RETURN":
		return p.parseProjectionClause(ast.KindReturnClause, "RETURN")
	case "UNWIND":
		return p.parseUnwindClause()
	case "FOREACH":
		return p.parseForeachClause()
	case "LOAD":
		return p.parseLoadCSVClause()
	case "START":
		return p.parseStartClause()
	case "UNION":
		return p.parseUnionClause()
	case "CALL":
		return p.parseCallClause()
	}

	// Consume the keyword so recovery, which stops at clause-start
	// keywords, does not resume on this same token.
	p.advance()
	return nil, p.errf(t, "unexpected clause keyword '"+t.Val+"'")
}

func (p *Parser) parseUsingHint() (*ast.Node, error) {
	usingTok, err := p.expectKeyword("USING")
	if err != nil {
		return nil, err
	}

	if p.acceptKeyword("PERIODIC") {
		if _, err := p.expectKeyword("COMMIT"); err != nil {
			return nil, err
		}

		var batch *ast.Node
		var children []*ast.Node
		slots := map[string]*ast.Node{}
		end := usingTok.Range.End

		if p.cur().ID == lexer.TokenInteger {
			tok := p.advance()
			batch, err = p.node(ast.KindIntegerLiteral, tok.Range, nil, nil)
			if err != nil {
				return nil, err
			}
			batch.Text = tok.Val
			batch.Number = decodeInteger(tok.Val)
			children = append(children, batch)
			slots["batchSize"] = batch
			end = tok.Range.End
		}

		return p.node(ast.KindPeriodicCommitHint, position.Range{Start: usingTok.Range.Start, End: end}, children, slots)
	}

	if p.acceptKeyword("INDEX") {
		variable, err := p.parseIdentifier()
		if err != nil {
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

		rng := position.Range{Start: usingTok.Range.Start, End: closeParen.Range.End}
		return p.node(ast.KindUsingIndexHint, rng, []*ast.Node{variable, label, prop}, map[string]*ast.Node{
			"variable": variable, "label": label, "property": prop,
		})
	}

	if _, err := p.expectKeyword("SCAN"); err != nil {
		return nil, err
	}

	variable, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	label, err := p.parseLabel()
	if err != nil {
		return nil, err
	}

	rng := position.Range{Start: usingTok.Range.Start, End: label.Range.End}
	return p.node(ast.KindUsingScanHint, rng, []*ast.Node{variable, label}, map[string]*ast.Node{
		"variable": variable, "label": label,
	})
}

func (p *Parser) parsePatternList() ([]*ast.Node, error) {
	var items []*ast.Node
	for {
		item, err := p.parsePatternPathItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		if !p.acceptPunct(",") {
			break
		}
	}
	return items, nil
}

func (p *Parser) parseMatchClause(optional bool) (*ast.Node, error) {
	matchTok, err := p.expectKeyword("MATCH")
	if err != nil {
		return nil, err
	}

	patterns, err := p.parsePatternList()
	if err != nil {
		return nil, err
	}

	children := append([]*ast.Node{}, patterns...)
	slots := map[string]*ast.Node{}
	end := patterns[len(patterns)-1].Range.End

	if p.isKeyword(p.cur(), "WHERE") {
		where, err := p.parseWhereClause()
		if err != nil {
			return nil, err
		}
		children = append(children, where)
		slots["where"] = where
		end = where.Range.End
	}

	kind := ast.KindMatchClause
	if optional {
		kind = ast.KindOptionalMatchClause
	}

	return p.node(kind, position.Range{Start: matchTok.Range.Start, End: end}, children, slots)
}

func (p *Parser) parseOptionalMatchClause() (*ast.Node, error) {
	optTok, err := p.expectKeyword("OPTIONAL")
	if err != nil {
		return nil, err
	}

	n, err := p.parseMatchClause(true)
	if err != nil {
		return nil, err
	}

	n.Range.Start = optTok.Range.Start
	return n, nil
}

func (p *Parser) parseWhereClause() (*ast.Node, error) {
	whereTok, err := p.expectKeyword("WHERE")
	if err != nil {
		return nil, err
	}

	pred, err := p.parseExpression(minExpressionBinding)
	if err != nil {
		return nil, err
	}

	rng := position.Range{Start: whereTok.Range.Start, End: pred.Range.End}
	return p.node(ast.KindWhereClause, rng, []*ast.Node{pred}, map[string]*ast.Node{"predicate": pred})
}

func (p *Parser) parseCreateClause() (*ast.Node, error) {
	createTok, err := p.expectKeyword("CREATE")
	if err != nil {
		return nil, err
	}

	patterns, err := p.parsePatternList()
	if err != nil {
		return nil, err
	}

	end := patterns[len(patterns)-1].Range.End
	return p.node(ast.KindCreateClause, position.Range{Start: createTok.Range.Start, End: end}, patterns, nil)
}

func (p *Parser) parseMergeClause() (*ast.Node, error) {
	mergeTok, err := p.expectKeyword("MERGE")
	if err != nil {
		return nil, err
	}

	pattern, err := p.parsePatternPathItem()
	if err != nil {
		return nil, err
	}

	children := []*ast.Node{pattern}
	end := pattern.Range.End

	for p.isKeyword(p.cur(), "ON") {
		action, err := p.parseMergeAction()
		if err != nil {
			return nil, err
		}
		children = append(children, action)
		end = action.Range.End
	}

	return p.node(ast.KindMergeClause, position.Range{Start: mergeTok.Range.Start, End: end}, children,
		map[string]*ast.Node{"pattern": pattern})
}

func (p *Parser) parseMergeAction() (*ast.Node, error) {
	onTok, err := p.expectKeyword("ON")
	if err != nil {
		return nil, err
	}

	t := p.cur()
	if !p.isKeyword(t, "CREATE") && !p.isKeyword(t, "MATCH") {
		return nil, p.errf(t, "expected CREATE or MATCH after ON")
	}
	p.advance()

	if _, err := p.expectKeyword("SET"); err != nil {
		return nil, err
	}

	items, err := p.parseSetItemList()
	if err != nil {
		return nil, err
	}

	end := items[len(items)-1].Range.End

	n, err := p.node(ast.KindMergeAction, position.Range{Start: onTok.Range.Start, End: end}, items, nil)
	if err != nil {
		return nil, err
	}
	n.Text = t.Val

	return n, nil
}

func (p *Parser) parseDeleteClause() (*ast.Node, error) {
	deleteTok, err := p.expectKeyword("DELETE")
	if err != nil {
		return nil, err
	}

	items, err := p.parseExpressionList()
	if err != nil {
		return nil, err
	}

	end := items[len(items)-1].Range.End
	return p.node(ast.KindDeleteClause, position.Range{Start: deleteTok.Range.Start, End: end}, items, nil)
}

func (p *Parser) parseDetachDeleteClause() (*ast.Node, error) {
	detachTok, err := p.expectKeyword("DETACH")
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword("DELETE"); err != nil {
		return nil, err
	}

	items, err := p.parseExpressionList()
	if err != nil {
		return nil, err
	}

	end := items[len(items)-1].Range.End
	return p.node(ast.KindDetachDeleteClause, position.Range{Start: detachTok.Range.Start, End: end}, items, nil)
}

func (p *Parser) parseExpressionList() ([]*ast.Node, error) {
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
	return items, nil
}

func (p *Parser) parseRemoveClause() (*ast.Node, error) {
	removeTok, err := p.expectKeyword("REMOVE")
	if err != nil {
		return nil, err
	}

	items, err := p.parseExpressionList()
	if err != nil {
		return nil, err
	}

	end := items[len(items)-1].Range.End
	return p.node(ast.KindRemoveClause, position.Range{Start: removeTok.Range.Start, End: end}, items, nil)
}

func (p *Parser) parseSetItemList() ([]*ast.Node, error) {
	var items []*ast.Node
	for {
		item, err := p.parseSetItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		if !p.acceptPunct(",") {
			break
		}
	}
	return items, nil
}

// parseSetItem parses one "target = value", "target += value" or bare
// "target" (the label-addition form, "n:Label") SET item. The target is
// parsed at the comparison tier so the '=' stays unconsumed for the item
// grammar instead of being absorbed as an equality operator.
func (p *Parser) parseSetItem() (*ast.Node, error) {
	target, err := p.parseExpression(bindingPower["="])
	if err != nil {
		return nil, err
	}

	t := p.cur()
	var op string
	switch {
	case p.isOperator(t, "="):
		op = "="
	case p.isOperator(t, "+="):
		op = "+="
	default:
		// Bare "n:Label" label-addition form: target already consumed the
		// label(s) as a LABEL_PREDICATE via the postfix ':' operator.
		n, err := p.node(ast.KindSetItem, target.Range, []*ast.Node{target}, map[string]*ast.Node{"target": target})
		if err != nil {
			return nil, err
		}
		n.Text = ":"
		return n, nil
	}
	p.advance()

	value, err := p.parseExpression(minExpressionBinding)
	if err != nil {
		return nil, err
	}

	n, err := p.node(ast.KindSetItem, position.Range{Start: target.Range.Start, End: value.Range.End},
		[]*ast.Node{target, value}, map[string]*ast.Node{"target": target, "value": value})
	if err != nil {
		return nil, err
	}
	n.Text = op

	return n, nil
}

func (p *Parser) parseSetClause() (*ast.Node, error) {
	setTok, err := p.expectKeyword("SET")
	if err != nil {
		return nil, err
	}

	items, err := p.parseSetItemList()
	if err != nil {
		return nil, err
	}

	end := items[len(items)-1].Range.End
	return p.node(ast.KindSetClause, position.Range{Start: setTok.Range.Start, End: end}, items, nil)
}

func (p *Parser) parseUnwindClause() (*ast.Node, error) {
	unwindTok, err := p.expectKeyword("UNWIND")
	if err != nil {
		return nil, err
	}

	source, err := p.parseExpression(minExpressionBinding)
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword("AS"); err != nil {
		return nil, err
	}

	variable, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	rng := position.Range{Start: unwindTok.Range.Start, End: variable.Range.End}
	return p.node(ast.KindUnwindClause, rng, []*ast.Node{source, variable}, map[string]*ast.Node{
		"source": source, "variable": variable,
	})
}

func (p *Parser) parseForeachClause() (*ast.Node, error) {
	foreachTok, err := p.expectKeyword("FOREACH")
	if err != nil {
		return nil, err
	}

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

	if _, err := p.expectOperator("|"); err != nil {
		return nil, err
	}

	var updates []*ast.Node
	for p.atClauseStart() {
		c, err := p.parseClause()
		if err != nil {
			return nil, err
		}
		updates = append(updates, c)
	}

	if len(updates) == 0 {
		return nil, p.errf(p.cur(), "expected at least one updating clause inside FOREACH")
	}

	closeParen, err := p.expectPunct(")")
	if err != nil {
		return nil, err
	}

	children := append([]*ast.Node{variable, source}, updates...)
	rng := position.Range{Start: foreachTok.Range.Start, End: closeParen.Range.End}
	return p.node(ast.KindForeachClause, rng, children, map[string]*ast.Node{
		"variable": variable, "source": source,
	})
}

func (p *Parser) parseLoadCSVClause() (*ast.Node, error) {
	loadTok, err := p.expectKeyword("LOAD")
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword("CSV"); err != nil {
		return nil, err
	}

	withHeaders := false
	if p.acceptKeyword("WITH") {
		if _, err := p.expectKeyword("HEADERS"); err != nil {
			return nil, err
		}
		withHeaders = true
	}

	if _, err := p.expectKeyword("FROM"); err != nil {
		return nil, err
	}

	source, err := p.parseExpression(minExpressionBinding)
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword("AS"); err != nil {
		return nil, err
	}

	variable, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	end := variable.Range.End

	var fieldTerm *ast.Node
	var children = []*ast.Node{source, variable}

	if p.acceptKeyword("FIELDTERMINATOR") {
		tok := p.cur()
		if tok.ID != lexer.TokenString {
			return nil, p.errf(tok, "expected a string FIELDTERMINATOR")
		}
		p.advance()
		fieldTerm, err = p.node(ast.KindStringLiteral, tok.Range, nil, nil)
		if err != nil {
			return nil, err
		}
		fieldTerm.Text = tok.Val
		children = append(children, fieldTerm)
		end = tok.Range.End
	}

	n, err := p.node(ast.KindLoadCSVClause, position.Range{Start: loadTok.Range.Start, End: end}, children,
		map[string]*ast.Node{"source": source, "variable": variable})
	if err != nil {
		return nil, err
	}
	n.Flag = withHeaders

	return n, nil
}

func (p *Parser) parseProjectionClause(kind ast.Kind, keyword string) (*ast.Node, error) {
	startTok, err := p.expectKeyword(keyword)
	if err != nil {
		return nil, err
	}

	distinct := p.acceptKeyword("DISTINCT")

	var items []*ast.Node
	if !p.isOperator(p.cur(), "*") {
		for {
			item, err := p.parseProjectionItem()
			if err != nil {
				return nil, err
			}
			items = append(items, item)

			if !p.acceptPunct(",") {
				break
			}
		}
	} else {
		p.advance() // '*' - "RETURN *" / "WITH *"
	}

	children := append([]*ast.Node{}, items...)
	slots := map[string]*ast.Node{}
	end := startTok.Range.End
	if len(items) > 0 {
		end = items[len(items)-1].Range.End
	}

	if p.isKeyword(p.cur(), "ORDER") {
		ob, err := p.parseOrderBy()
		if err != nil {
			return nil, err
		}
		children = append(children, ob)
		slots["orderBy"] = ob
		end = ob.Range.End
	}

	if p.isKeyword(p.cur(), "SKIP") {
		sk, err := p.parseSkip()
		if err != nil {
			return nil, err
		}
		children = append(children, sk)
		slots["skip"] = sk
		end = sk.Range.End
	}

	if p.isKeyword(p.cur(), "LIMIT") {
		lim, err := p.parseLimit()
		if err != nil {
			return nil, err
		}
		children = append(children, lim)
		slots["limit"] = lim
		end = lim.Range.End
	}

	n, err := p.node(kind, position.Range{Start: startTok.Range.Start, End: end}, children, slots)
	if err != nil {
		return nil, err
	}
	n.Flag = distinct

	return n, nil
}

func (p *Parser) parseProjectionItem() (*ast.Node, error) {
	expr, err := p.parseExpression(minExpressionBinding)
	if err != nil {
		return nil, err
	}

	var alias *ast.Node
	if p.acceptKeyword("AS") {
		alias, err = p.parseIdentifier()
		if err != nil {
			return nil, err
		}
	}

	children := []*ast.Node{expr}
	slots := map[string]*ast.Node{"expression": expr}
	end := expr.Range.End
	if alias != nil {
		children = append(children, alias)
		slots["alias"] = alias
		end = alias.Range.End
	}

	return p.node(ast.KindProjectionItem, position.Range{Start: expr.Range.Start, End: end}, children, slots)
}

func (p *Parser) parseOrderBy() (*ast.Node, error) {
	orderTok, err := p.expectKeyword("ORDER")
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword("BY"); err != nil {
		return nil, err
	}

	var items []*ast.Node
	for {
		item, err := p.parseSortItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		if !p.acceptPunct(",") {
			break
		}
	}

	end := items[len(items)-1].Range.End
	return p.node(ast.KindOrderBy, position.Range{Start: orderTok.Range.Start, End: end}, items, nil)
}

func (p *Parser) parseSortItem() (*ast.Node, error) {
	expr, err := p.parseExpression(minExpressionBinding)
	if err != nil {
		return nil, err
	}

	dir := "ASC"
	end := expr.Range.End

	switch {
	case p.isKeyword(p.cur(), "ASC") || p.isKeyword(p.cur(), "ASCENDING"):
		tok := p.advance()
		dir = "ASC"
		end = tok.Range.End
	case p.isKeyword(p.cur(), "DESC") || p.isKeyword(p.cur(), "DESCENDING"):
		tok := p.advance()
		dir = "DESC"
		end = tok.Range.End
	}

	n, err := p.node(ast.KindSortItem, position.Range{Start: expr.Range.Start, End: end}, []*ast.Node{expr},
		map[string]*ast.Node{"expression": expr})
	if err != nil {
		return nil, err
	}
	n.Text = dir

	return n, nil
}

func (p *Parser) parseSkip() (*ast.Node, error) {
	skipTok, err := p.expectKeyword("SKIP")
	if err != nil {
		return nil, err
	}

	expr, err := p.parseExpression(minExpressionBinding)
	if err != nil {
		return nil, err
	}

	rng := position.Range{Start: skipTok.Range.Start, End: expr.Range.End}
	return p.node(ast.KindSkip, rng, []*ast.Node{expr}, map[string]*ast.Node{"expression": expr})
}

func (p *Parser) parseLimit() (*ast.Node, error) {
	limitTok, err := p.expectKeyword("LIMIT")
	if err != nil {
		return nil, err
	}

	expr, err := p.parseExpression(minExpressionBinding)
	if err != nil {
		return nil, err
	}

	rng := position.Range{Start: limitTok.Range.Start, End: expr.Range.End}
	return p.node(ast.KindLimit, rng, []*ast.Node{expr}, map[string]*ast.Node{"expression": expr})
}

func (p *Parser) parseStartClause() (*ast.Node, error) {
	startTok, err := p.expectKeyword("START")
	if err != nil {
		return nil, err
	}

	var items []*ast.Node
	for {
		item, err := p.parseStartItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		if !p.acceptPunct(",") {
			break
		}
	}

	end := items[len(items)-1].Range.End
	return p.node(ast.KindStartClause, position.Range{Start: startTok.Range.Start, End: end}, items, nil)
}

func (p *Parser) parseStartItem() (*ast.Node, error) {
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectOperator("="); err != nil {
		return nil, err
	}

	expr, err := p.parseExpression(minExpressionBinding)
	if err != nil {
		return nil, err
	}

	rng := position.Range{Start: id.Range.Start, End: expr.Range.End}
	return p.node(ast.KindStartItem, rng, []*ast.Node{id, expr}, map[string]*ast.Node{
		"identifier": id, "expression": expr,
	})
}

func (p *Parser) parseUnionClause() (*ast.Node, error) {
	unionTok, err := p.expectKeyword("UNION")
	if err != nil {
		return nil, err
	}

	end := unionTok.Range.End
	all := false
	if p.isKeyword(p.cur(), "ALL") {
		allTok := p.advance()
		all = true
		end = allTok.Range.End
	}

	n, err := p.node(ast.KindUnionClause, position.Range{Start: unionTok.Range.Start, End: end}, nil, nil)
	if err != nil {
		return nil, err
	}
	n.Flag = all

	return n, nil
}

func (p *Parser) parseCallClause() (*ast.Node, error) {
	callTok, err := p.expectKeyword("CALL")
	if err != nil {
		return nil, err
	}

	procedure, err := p.parseProcedureName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}

	// Positional call arguments are accepted syntactically but are not
	// part of this clause's AST shape - the YIELD items, not the call
	// arguments, are what gets cited by ordinal.
	if !p.isPunct(p.cur(), ")") {
		if _, err := p.parseExpressionList(); err != nil {
			return nil, err
		}
	}

	closeParen, err := p.expectPunct(")")
	if err != nil {
		return nil, err
	}

	children := []*ast.Node{procedure}
	slots := map[string]*ast.Node{"procedure": procedure}
	end := closeParen.Range.End

	var yieldItems []*ast.Node
	if p.acceptKeyword("YIELD") {
		for {
			item, err := p.parseYieldItem()
			if err != nil {
				return nil, err
			}
			yieldItems = append(yieldItems, item)
			end = item.Range.End

			if !p.acceptPunct(",") {
				break
			}
		}
	}
	children = append(children, yieldItems...)

	if p.isKeyword(p.cur(), "WHERE") {
		where, err := p.parseWhereClause()
		if err != nil {
			return nil, err
		}
		children = append(children, where)
		slots["where"] = where
		end = where.Range.End
	}

	// A CALL with no further clause following it (and no terminating ';'
	// yet consumed - parseAll handles that) is the standalone form;
	// CALL feeding into a larger query is followed by another clause
	// keyword right away.
	kind := ast.KindCallClause
	if !p.atClauseStart() {
		kind = ast.KindStandaloneCallClause
	}

	return p.node(kind, position.Range{Start: callTok.Range.Start, End: end}, children, slots)
}

func (p *Parser) parseProcedureName() (*ast.Node, error) {
	first, err := p.expectName()
	if err != nil {
		return nil, err
	}

	name := first.Val
	end := first.Range.End

	for p.isPunct(p.cur(), ".") && (p.peek(1).ID == lexer.TokenIdentifier || p.peek(1).ID == lexer.TokenKeyword) {
		p.advance()
		part := p.advance()
		name += "." + part.Val
		end = part.Range.End
	}

	n, err := p.node(ast.KindProcedureName, position.Range{Start: first.Range.Start, End: end}, nil, nil)
	if err != nil {
		return nil, err
	}
	n.Text = name

	return n, nil
}

func (p *Parser) parseYieldItem() (*ast.Node, error) {
	source, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	children := []*ast.Node{source}
	slots := map[string]*ast.Node{"source": source}
	end := source.Range.End

	if p.acceptKeyword("AS") {
		alias, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		children = append(children, alias)
		slots["alias"] = alias
		end = alias.Range.End
	}

	return p.node(ast.KindYieldItem, position.Range{Start: source.Range.Start, End: end}, children, slots)
}
