package ast

import "strconv"

func init() {
	// Query wraps an ordered sequence of clauses. It has no named slots -
	// its Children list *is* the clause sequence, each one a member of
	// KindClause's ancestor set.
	define(KindQuery, "QUERY", []Kind{KindDirective}, nil, func(n *Node) string {
		return strconv.Itoa(len(n.Children)) + " clause(s)"
	})

	// LineComment and BlockComment own their comment text (without the
	// leading "//" or the surrounding "/* */") in Text.
	define(KindLineComment, "LINE_COMMENT", []Kind{KindDirective}, nil, func(n *Node) string {
		return quote(n.Text)
	})
	define(KindBlockComment, "BLOCK_COMMENT", []Kind{KindDirective}, nil, func(n *Node) string {
		return quote(n.Text)
	})

	// ClientCommand is a ":name arg1 arg2 ..." REPL command. Text holds
	// the command name; Children hold one StringLiteral leaf per
	// argument, in order.
	define(KindClientCommand, "CLIENT_COMMAND", []Kind{KindDirective}, nil, func(n *Node) string {
		s := ":" + n.Text
		for _, c := range n.Children {
			s += " " + quote(c.Text)
		}
		return s
	})
}

func quote(s string) string {
	return strconv.Quote(s)
}
