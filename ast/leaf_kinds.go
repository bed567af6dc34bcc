package ast

func init() {
	// Label names a node label or an expression label predicate's label
	// (":Person"). Text holds the label without its leading colon.
	define(KindLabel, "LABEL", nil, nil, func(n *Node) string {
		return ":" + n.Text
	})

	// PropertyKeyName names a property ("n.name", a map key). Text holds
	// the key without quoting or escaping.
	define(KindPropertyKeyName, "PROPERTY_KEY_NAME", nil, nil, func(n *Node) string {
		return n.Text
	})

	// RelationshipTypeName names a relationship type ("[:KNOWS]"). Text
	// holds the type without its leading colon.
	define(KindRelationshipTypeName, "RELATIONSHIP_TYPE_NAME", nil, nil, func(n *Node) string {
		return ":" + n.Text
	})

	// ProcedureName names a (possibly dotted, e.g. "db.labels") CALL
	// target. Text holds the full dotted name.
	define(KindProcedureName, "PROCEDURE_NAME", nil, nil, func(n *Node) string {
		return n.Text
	})

	// OperatorSymbol names an operator ("+", "AND", "STARTS WITH", ...).
	// Text holds the canonical (upper-cased for word operators) symbol.
	define(KindOperatorSymbol, "OPERATOR_SYMBOL", nil, nil, func(n *Node) string {
		return n.Text
	})

	// Identifier is a variable reference. Text holds the name, already
	// un-escaped if it was backtick-quoted.
	define(KindIdentifier, "IDENTIFIER", []Kind{KindExpression}, nil, func(n *Node) string {
		return n.Text
	})

	// Parameter is a "$name" or legacy "{name}" query parameter
	// reference. Text holds the name without the sigil.
	define(KindParameter, "PARAMETER", []Kind{KindExpression}, nil, func(n *Node) string {
		return "$" + n.Text
	})

	// IntegerLiteral owns its textual literal in Text (e.g. "0x2A") and
	// its decoded value in Number.
	define(KindIntegerLiteral, "INTEGER", []Kind{KindExpression}, nil, func(n *Node) string {
		return n.Text
	})

	// FloatLiteral owns its textual literal in Text; Number is unused
	// (floats are rendered from their source text, not reformatted).
	define(KindFloatLiteral, "FLOAT", []Kind{KindExpression}, nil, func(n *Node) string {
		return n.Text
	})

	// StringLiteral owns the decoded (escapes resolved) string value in
	// Text.
	define(KindStringLiteral, "STRING", []Kind{KindExpression}, nil, func(n *Node) string {
		return quote(n.Text)
	})

	define(KindBooleanTrue, "TRUE", []Kind{KindExpression}, nil, func(n *Node) string {
		return "true"
	})
	define(KindBooleanFalse, "FALSE", []Kind{KindExpression}, nil, func(n *Node) string {
		return "false"
	})
	define(KindNullLiteral, "NULL", []Kind{KindExpression}, nil, func(n *Node) string {
		return "null"
	})
}
