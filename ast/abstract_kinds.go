package ast

// Abstract kinds carry no constructor and no detail rule of their own -
// they exist purely so concrete kinds can declare them as ancestors.
func init() {
	define(KindExpression, "EXPRESSION", nil, nil, nil)
	define(KindClause, "CLAUSE", nil, nil, nil)
	define(KindStatementBody, "STATEMENT_BODY", nil, nil, nil)
	define(KindSchemaCommand, "SCHEMA_COMMAND", []Kind{KindStatementBody}, nil, nil)
	define(KindDirective, "DIRECTIVE", nil, nil, nil)
	define(KindPatternComponent, "PATTERN_COMPONENT", nil, nil, nil)
}
