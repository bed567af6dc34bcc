/*
 * cypherast
 *
 * Package ast models the Cypher abstract syntax tree.
 */

// Package ast implements the polymorphic AST node framework: a fixed,
// enumerated kind set, parent-kind chains, ordinal numbering and the
// detail-string printing rule.
package ast

/*
Kind identifies a node's syntactic category. The enumeration is closed and
part of the public contract - its integer values must not be renumbered
between minor versions.
*/
type Kind int

// Abstract kinds. No node is ever constructed directly with one of these;
// they exist only as entries in another kind's declared ancestor chain.
const (
	KindExpression Kind = iota + 1
	KindClause
	KindSchemaCommand
	KindStatementBody
	KindDirective
	KindPatternComponent
)

// Top-level directives.
const (
	KindQuery Kind = iota + 100
	KindLineComment
	KindBlockComment
	KindClientCommand
)

// Clauses.
const (
	KindMatchClause Kind = iota + 200
	KindOptionalMatchClause
	KindCreateClause
	KindMergeClause
	KindMergeAction
	KindDeleteClause
	KindDetachDeleteClause
	KindRemoveClause
	KindSetClause
	KindSetItem
	KindWithClause
	KindUnwindClause
	KindForeachClause
	KindLoadCSVClause
	KindReturnClause
	KindStartClause
	KindStartItem
	KindUnionClause
	KindCallClause
	KindStandaloneCallClause
	KindYieldItem
	KindWhereClause
	KindOrderBy
	KindSortItem
	KindSkip
	KindLimit
	KindProjectionItem
	KindUsingIndexHint
	KindUsingScanHint
	KindPeriodicCommitHint
)

// Schema commands.
const (
	KindCreateIndex Kind = iota + 300
	KindDropIndex
	KindCreateUniqueNodePropConstraint
	KindDropUniqueNodePropConstraint
	KindCreateNodePropExistenceConstraint
	KindDropNodePropExistenceConstraint
	KindCreateRelPropExistenceConstraint
	KindDropRelPropExistenceConstraint
)

// Patterns.
const (
	KindPatternPath Kind = iota + 400
	KindNodePattern
	KindRelationshipPattern
	KindRelationshipRange
)

// Expressions: structural / comprehension forms.
const (
	KindListLiteral Kind = iota + 500
	KindMapLiteral
	KindMapEntry
	KindMapProjection
	KindMapProjectionItem
	KindMapProjectionAllProperties
	KindListComprehension
	KindPatternComprehension
	KindCaseExpression
	KindCaseAlternative
	KindFunctionInvocation
	KindCountStarExpression
	KindShortestPathExpression
	KindReduceExpression
	KindQuantifierExpression
)

// Expressions: operators and accessors.
const (
	KindOperatorSymbol Kind = iota + 600
	KindBinaryOperator
	KindUnaryOperator
	KindPropertyAccess
	KindIndexAccess
	KindSliceAccess
	KindLabelPredicate
)

// Expressions: leaves.
const (
	KindLabel Kind = iota + 700
	KindPropertyKeyName
	KindRelationshipTypeName
	KindProcedureName
	KindIdentifier
	KindParameter
	KindIntegerLiteral
	KindFloatLiteral
	KindStringLiteral
	KindBooleanTrue
	KindBooleanFalse
	KindNullLiteral
)

/*
String returns the kind's registered name, or "UNKNOWN_KIND" for a value
outside the enumeration.
*/
func (k Kind) String() string {
	if m, ok := registry[k]; ok {
		return m.Name
	}

	return "UNKNOWN_KIND"
}
