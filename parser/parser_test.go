package parser

import (
	"testing"

	"github.com/krotik/cypherast/ast"
)

func TestParseSimpleReturn(t *testing.T) {
	result, err := Parse("test", "RETURN 1;")
	if err != nil {
		t.Fatal(err)
	}

	dirs := result.Directives()
	if len(dirs) != 1 {
		t.Fatalf("expected 1 directive, got %d", len(dirs))
	}

	if !dirs[0].Is(ast.KindQuery) {
		t.Errorf("expected the directive to be a QUERY, got %s", dirs[0].Kind)
	}
}

func TestParseMatchReturnsPropertyAccess(t *testing.T) {
	result, err := Parse("test", "MATCH (n:Person) RETURN n.name;")
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Errors()) != 0 {
		t.Fatalf("expected no diagnostics, got %v", result.Errors())
	}

	if len(result.Directives()) != 1 {
		t.Fatalf("expected 1 directive, got %d", len(result.Directives()))
	}
}

func TestParseCreateUniqueConstraint(t *testing.T) {
	result, err := Parse("test", "CREATE CONSTRAINT ON (n:Book) ASSERT n.isbn IS UNIQUE;")
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Errors()) != 0 {
		t.Fatalf("expected no diagnostics, got %v", result.Errors())
	}

	dirs := result.Directives()
	if len(dirs) != 1 {
		t.Fatalf("expected 1 directive, got %d", len(dirs))
	}

	if !dirs[0].Is(ast.KindSchemaCommand) {
		t.Errorf("expected a schema command, got %s", dirs[0].Kind)
	}
}

func TestParseTrailingOperatorRecordsDiagnosticAtExpectedColumn(t *testing.T) {
	result, err := Parse("test", "RETURN 1 +;")
	if err == nil {
		t.Fatal("expected an error (the lone statement fails to parse into any directive)")
	}

	errs := result.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %d: %v", len(errs), errs)
	}

	// "RETURN 1 +;" - the '+' needs a right operand, and the next token
	// actually seen is the ';' at column 11.
	if errs[0].Position.Column != 11 {
		t.Errorf("expected the diagnostic at column 11, got %d", errs[0].Position.Column)
	}
}

func TestParseLineCommentBecomesItsOwnDirective(t *testing.T) {
	result, err := Parse("test", "// hello\nRETURN 1;")
	if err != nil {
		t.Fatal(err)
	}

	dirs := result.Directives()
	if len(dirs) != 2 {
		t.Fatalf("expected 2 directives (comment + query), got %d", len(dirs))
	}

	if !dirs[0].Is(ast.KindLineComment) {
		t.Errorf("expected the first directive to be a line comment, got %s", dirs[0].Kind)
	}

	if !dirs[1].Is(ast.KindQuery) {
		t.Errorf("expected the second directive to be a query, got %s", dirs[1].Kind)
	}
}

func TestParseStringLiteralWithUnicodeEscape(t *testing.T) {
	result, err := Parse("test", `RETURN "a\u{0041}";`)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Errors()) != 0 {
		t.Fatalf("expected no diagnostics, got %v", result.Errors())
	}
}

func TestParseRecoversAfterErrorAtNextStatement(t *testing.T) {
	result, err := Parse("test", "RETURN 1 +; RETURN 2;")
	if err != nil {
		t.Fatal(err)
	}

	dirs := result.Directives()
	if len(dirs) != 1 {
		t.Fatalf("expected 1 surviving directive, got %d", len(dirs))
	}

	if len(result.Errors()) != 1 {
		t.Fatalf("expected 1 diagnostic from the failed first statement, got %d", len(result.Errors()))
	}
}

func TestParseEmptyInputYieldsNoDirectivesError(t *testing.T) {
	result, err := Parse("test", "   ")
	if err != ErrNoDirectives {
		t.Fatalf("expected ErrNoDirectives, got %v", err)
	}

	if len(result.Directives()) != 0 {
		t.Errorf("expected 0 directives, got %d", len(result.Directives()))
	}
}

func TestOperatorPrecedenceBindsMultiplyTighterThanAdd(t *testing.T) {
	result, err := Parse("test", "RETURN 1 + 2 * 3;")
	if err != nil {
		t.Fatal(err)
	}

	root := findFirst(result.Directives()[0], ast.KindBinaryOperator)
	if root == nil {
		t.Fatal("expected a binary operator node")
	}

	if root.Slot("operator") == nil || root.Slot("operator").Text != "+" {
		t.Fatalf("expected the outermost operator to be '+', got %+v", root.Slot("operator"))
	}

	right := root.Slot("right")
	if right == nil || right.Slot("operator") == nil || right.Slot("operator").Text != "*" {
		t.Fatalf("expected the right operand to be the '*' subexpression, got %+v", right)
	}
}

func TestCaretOperatorIsRightAssociative(t *testing.T) {
	result, err := Parse("test", "RETURN 2 ^ 3 ^ 2;")
	if err != nil {
		t.Fatal(err)
	}

	root := findFirst(result.Directives()[0], ast.KindBinaryOperator)
	if root == nil {
		t.Fatal("expected a binary operator node")
	}

	right := root.Slot("right")
	if right == nil || !right.Is(ast.KindBinaryOperator) {
		t.Fatalf("expected '^' to nest on the right (right-associative), got %+v", right)
	}
}

func TestOrBindsLooserThanAnd(t *testing.T) {
	result, err := Parse("test", "RETURN true OR false AND true;")
	if err != nil {
		t.Fatal(err)
	}

	root := findFirst(result.Directives()[0], ast.KindBinaryOperator)
	if root == nil {
		t.Fatal("expected a binary operator node")
	}

	if root.Slot("operator") == nil || root.Slot("operator").Text != "OR" {
		t.Fatalf("expected the outermost operator to be OR, got %+v", root.Slot("operator"))
	}
}

func TestMergeClauseWithOnCreateOnMatchActions(t *testing.T) {
	result, err := Parse("test", "MERGE (n:Person {name: 'x'}) ON CREATE SET n.created = true ON MATCH SET n.seen = true;")
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Errors()) != 0 {
		t.Fatalf("expected no diagnostics, got %v", result.Errors())
	}
}

func TestCallYieldWhereClause(t *testing.T) {
	result, err := Parse("test", "CALL db.labels() YIELD label WHERE label <> 'x' RETURN label;")
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Errors()) != 0 {
		t.Fatalf("expected no diagnostics, got %v", result.Errors())
	}
}

func TestUnionAllCombinesQueries(t *testing.T) {
	result, err := Parse("test", "RETURN 1 UNION ALL RETURN 2;")
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Errors()) != 0 {
		t.Fatalf("expected no diagnostics, got %v", result.Errors())
	}
}

func TestOrderBySkipLimitProjectionBody(t *testing.T) {
	result, err := Parse("test", "MATCH (n) RETURN n ORDER BY n.name DESC SKIP 5 LIMIT 10;")
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Errors()) != 0 {
		t.Fatalf("expected no diagnostics, got %v", result.Errors())
	}
}

func TestDetachDeleteClause(t *testing.T) {
	result, err := Parse("test", "MATCH (n) DETACH DELETE n;")
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Errors()) != 0 {
		t.Fatalf("expected no diagnostics, got %v", result.Errors())
	}
}

func TestListComprehension(t *testing.T) {
	result, err := Parse("test", "RETURN [x IN range(0, 10) WHERE x % 2 = 0 | x * 2];")
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Errors()) != 0 {
		t.Fatalf("expected no diagnostics, got %v", result.Errors())
	}
}

func TestPatternComprehension(t *testing.T) {
	result, err := Parse("test", "RETURN [(n)-->(m) | m.name];")
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Errors()) != 0 {
		t.Fatalf("expected no diagnostics, got %v", result.Errors())
	}
}

func TestShortestPathExpression(t *testing.T) {
	result, err := Parse("test", "MATCH (a), (b) WITH shortestPath((a)-[*]-(b)) AS p RETURN p;")
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Errors()) != 0 {
		t.Fatalf("expected no diagnostics, got %v", result.Errors())
	}
}

func TestMapProjection(t *testing.T) {
	result, err := Parse("test", "MATCH (n) RETURN n{.name, .age, computed: 1};")
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Errors()) != 0 {
		t.Fatalf("expected no diagnostics, got %v", result.Errors())
	}
}

func TestQueryParameterAsPrimaryExpression(t *testing.T) {
	result, err := Parse("test", "MATCH (n) WHERE n.name = $name RETURN n;")
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Errors()) != 0 {
		t.Fatalf("expected no diagnostics, got %v", result.Errors())
	}
}

func TestCaseExpression(t *testing.T) {
	result, err := Parse("test", "RETURN CASE WHEN true THEN 1 ELSE 2 END;")
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Errors()) != 0 {
		t.Fatalf("expected no diagnostics, got %v", result.Errors())
	}
}

func TestStreamingCallbackCanStopEarly(t *testing.T) {
	var seen int

	result, err := ParseStreaming("test", "RETURN 1; RETURN 2; RETURN 3;", ast.Config{}, func(*ast.Node) bool {
		seen++
		return seen < 2
	})
	if err != nil {
		t.Fatal(err)
	}

	if seen != 2 {
		t.Fatalf("expected the callback to fire exactly twice before stopping, got %d", seen)
	}

	if len(result.Directives()) != 2 {
		t.Fatalf("expected the partial result to carry only the 2 emitted directives, got %d", len(result.Directives()))
	}
}

func TestAllocationCapAbortsParse(t *testing.T) {
	cfg := ast.Config{MaxNodes: 1}

	result, err := ParseWithConfig("test", "RETURN 1;", cfg, nil)
	if err == nil {
		t.Fatal("expected an error once the node budget is exhausted")
	}

	if result == nil {
		t.Fatal("expected a non-nil partial result even on fatal abort")
	}
}

func TestSchemaIndexCommand(t *testing.T) {
	result, err := Parse("test", "CREATE INDEX ON :Person(name);")
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Errors()) != 0 {
		t.Fatalf("expected no diagnostics, got %v", result.Errors())
	}
}

func TestBacktickIdentifierIsNotTreatedAsClauseKeyword(t *testing.T) {
	result, err := Parse("test", "MATCH (`match`) RETURN `match`;")
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Errors()) != 0 {
		t.Fatalf("expected no diagnostics, got %v", result.Errors())
	}
}

func TestClientCommandStartsWithColon(t *testing.T) {
	result, err := Parse("test", ":info some args")
	if err != nil {
		t.Fatal(err)
	}

	dirs := result.Directives()
	if len(dirs) != 1 || !dirs[0].Is(ast.KindClientCommand) {
		t.Fatalf("expected a single client command directive, got %+v", dirs)
	}
}

// findFirst performs a depth-first search for the first descendant of n
// (n included) that Is(kind).
func findFirst(n *ast.Node, kind ast.Kind) *ast.Node {
	if n == nil {
		return nil
	}

	if n.Is(kind) {
		return n
	}

	for _, c := range n.Children {
		if found := findFirst(c, kind); found != nil {
			return found
		}
	}

	return nil
}
