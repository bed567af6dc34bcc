package ast

import "errors"

// Resource errors and contract-violation errors. Lexical/syntactic errors
// are not Go errors at all - they are Diagnostic values accumulated in
// Result.Errors.
var (
	// ErrAllocationFailed is returned by Result.New when the result's node
	// budget (Config.MaxNodes) is exhausted.
	ErrAllocationFailed = errors.New("ast: allocation failed")

	// ErrInvalidChildKind is returned when a named-slot argument's kind is
	// not in the slot's required ancestor set, or a required slot is
	// missing, or an unknown slot name is supplied.
	ErrInvalidChildKind = errors.New("ast: invalid child kind")
)
