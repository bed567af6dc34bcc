package ast

import "strconv"

func init() {
	defineMatchLike(KindMatchClause, "MATCH")
	defineMatchLike(KindOptionalMatchClause, "OPTIONAL_MATCH")

	define(KindCreateClause, "CREATE", []Kind{KindClause}, nil, func(n *Node) string {
		return "PATTERN=(" + ordList(n.Children) + ")"
	})

	define(KindMergeAction, "MERGE_ACTION", nil, nil, func(n *Node) string {
		return "ON " + n.Text + " SET " + ordList(n.Children)
	})

	define(KindMergeClause, "MERGE", []Kind{KindClause}, []slotSpec{
		{Name: "pattern", Ancestor: KindPatternPath, Required: true},
	}, func(n *Node) string {
		s := "PATTERN=(" + ord(n.Slot("pattern")) + ")"
		for _, c := range n.Children {
			if c.Kind == KindMergeAction {
				s += ", " + c.Detail()
			}
		}
		return s
	})

	define(KindDeleteClause, "DELETE", []Kind{KindClause}, nil, func(n *Node) string {
		return ordList(n.Children)
	})
	define(KindDetachDeleteClause, "DETACH_DELETE", []Kind{KindClause}, nil, func(n *Node) string {
		return ordList(n.Children)
	})

	define(KindRemoveClause, "REMOVE", []Kind{KindClause}, nil, func(n *Node) string {
		return ordList(n.Children)
	})

	define(KindSetItem, "SET_ITEM", nil, []slotSpec{
		{Name: "target", Ancestor: KindExpression, Required: true},
		{Name: "value", Ancestor: KindExpression, Required: false},
	}, func(n *Node) string {
		s := ord(n.Slot("target")) + " " + n.Text
		if v := n.Slot("value"); v != nil {
			s += " " + ord(v)
		}
		return s
	})

	define(KindSetClause, "SET", []Kind{KindClause}, nil, func(n *Node) string {
		return ordList(n.Children)
	})

	define(KindUnwindClause, "UNWIND", []Kind{KindClause}, []slotSpec{
		{Name: "source", Ancestor: KindExpression, Required: true},
		{Name: "variable", Ancestor: KindIdentifier, Required: true},
	}, func(n *Node) string {
		return ord(n.Slot("source")) + " AS " + ord(n.Slot("variable"))
	})

	define(KindForeachClause, "FOREACH", []Kind{KindClause}, []slotSpec{
		{Name: "variable", Ancestor: KindIdentifier, Required: true},
		{Name: "source", Ancestor: KindExpression, Required: true},
	}, func(n *Node) string {
		return ord(n.Slot("variable")) + " IN " + ord(n.Slot("source")) + " | " +
			strconv.Itoa(len(n.Children)-2) + " clause(s)"
	})

	define(KindLoadCSVClause, "LOAD_CSV", []Kind{KindClause}, []slotSpec{
		{Name: "source", Ancestor: KindExpression, Required: true},
		{Name: "variable", Ancestor: KindIdentifier, Required: true},
	}, func(n *Node) string {
		s := "FROM " + ord(n.Slot("source")) + " AS " + ord(n.Slot("variable"))
		if n.Flag {
			s = "WITH HEADERS " + s
		}
		return s
	})

	defineProjectionClause(KindWithClause, "WITH")
	defineProjectionClause(KindReturnClause, "RETURN")

	define(KindStartItem, "START_ITEM", nil, []slotSpec{
		{Name: "identifier", Ancestor: KindIdentifier, Required: true},
		{Name: "expression", Ancestor: KindExpression, Required: true},
	}, func(n *Node) string {
		return ord(n.Slot("identifier")) + " = " + ord(n.Slot("expression"))
	})
	define(KindStartClause, "START", []Kind{KindClause}, nil, func(n *Node) string {
		return ordList(n.Children)
	})

	define(KindUnionClause, "UNION", []Kind{KindClause}, nil, func(n *Node) string {
		if n.Flag {
			return "ALL"
		}
		return ""
	})

	define(KindYieldItem, "YIELD_ITEM", nil, []slotSpec{
		{Name: "source", Ancestor: KindIdentifier, Required: true},
		{Name: "alias", Ancestor: KindIdentifier, Required: false},
	}, func(n *Node) string {
		s := ord(n.Slot("source"))
		if a := n.Slot("alias"); a != nil {
			s += " AS " + ord(a)
		}
		return s
	})

	defineCallLike(KindCallClause, "CALL")
	defineCallLike(KindStandaloneCallClause, "CALL")

	define(KindWhereClause, "WHERE", []Kind{KindClause}, []slotSpec{
		{Name: "predicate", Ancestor: KindExpression, Required: true},
	}, func(n *Node) string {
		return ord(n.Slot("predicate"))
	})

	define(KindSortItem, "SORT_ITEM", nil, []slotSpec{
		{Name: "expression", Ancestor: KindExpression, Required: true},
	}, func(n *Node) string {
		return ord(n.Slot("expression")) + " " + n.Text
	})
	define(KindOrderBy, "ORDER_BY", nil, nil, func(n *Node) string {
		return ordList(n.Children)
	})
	define(KindSkip, "SKIP", nil, []slotSpec{
		{Name: "expression", Ancestor: KindExpression, Required: true},
	}, func(n *Node) string {
		return ord(n.Slot("expression"))
	})
	define(KindLimit, "LIMIT", nil, []slotSpec{
		{Name: "expression", Ancestor: KindExpression, Required: true},
	}, func(n *Node) string {
		return ord(n.Slot("expression"))
	})

	define(KindProjectionItem, "PROJECTION_ITEM", nil, []slotSpec{
		{Name: "expression", Ancestor: KindExpression, Required: true},
		{Name: "alias", Ancestor: KindIdentifier, Required: false},
	}, func(n *Node) string {
		s := ord(n.Slot("expression"))
		if a := n.Slot("alias"); a != nil {
			s += " AS " + ord(a)
		}
		return s
	})

	define(KindUsingIndexHint, "USING_INDEX", []Kind{KindClause}, []slotSpec{
		{Name: "variable", Ancestor: KindIdentifier, Required: true},
		{Name: "label", Ancestor: KindLabel, Required: true},
		{Name: "property", Ancestor: KindPropertyKeyName, Required: true},
	}, func(n *Node) string {
		return ord(n.Slot("variable")) + ord(n.Slot("label")) + "(" + ord(n.Slot("property")) + ")"
	})

	define(KindUsingScanHint, "USING_SCAN", []Kind{KindClause}, []slotSpec{
		{Name: "variable", Ancestor: KindIdentifier, Required: true},
		{Name: "label", Ancestor: KindLabel, Required: true},
	}, func(n *Node) string {
		return ord(n.Slot("variable")) + ord(n.Slot("label"))
	})

	define(KindPeriodicCommitHint, "PERIODIC_COMMIT", []Kind{KindClause}, []slotSpec{
		{Name: "batchSize", Ancestor: KindIntegerLiteral, Required: false},
	}, func(n *Node) string {
		if b := n.Slot("batchSize"); b != nil {
			return ord(b)
		}
		return ""
	})
}

func defineMatchLike(k Kind, name string) {
	define(k, name, []Kind{KindClause}, []slotSpec{
		{Name: "where", Ancestor: KindClause, Required: false},
	}, func(n *Node) string {
		s := "PATTERN=("
		first := true
		for _, c := range n.Children {
			if c.Kind != KindPatternPath {
				continue
			}
			if !first {
				s += ", "
			}
			first = false
			s += ord(c)
		}
		s += ")"
		if w := n.Slot("where"); w != nil {
			s += " WHERE " + ord(w)
		}
		return s
	})
}

func defineProjectionClause(k Kind, name string) {
	define(k, name, []Kind{KindClause}, []slotSpec{
		{Name: "orderBy", Ancestor: KindOrderBy, Required: false},
		{Name: "skip", Ancestor: KindSkip, Required: false},
		{Name: "limit", Ancestor: KindLimit, Required: false},
	}, func(n *Node) string {
		s := ""
		if n.Flag {
			s += "DISTINCT "
		}
		first := true
		for _, c := range n.Children {
			if c.Kind != KindProjectionItem {
				continue
			}
			if !first {
				s += ", "
			}
			first = false
			s += ord(c)
		}
		if o := n.Slot("orderBy"); o != nil {
			s += " ORDER BY " + ord(o)
		}
		if sk := n.Slot("skip"); sk != nil {
			s += " SKIP " + ord(sk)
		}
		if l := n.Slot("limit"); l != nil {
			s += " LIMIT " + ord(l)
		}
		return s
	})
}

func defineCallLike(k Kind, name string) {
	define(k, name, []Kind{KindClause}, []slotSpec{
		{Name: "procedure", Ancestor: KindProcedureName, Required: true},
		{Name: "where", Ancestor: KindClause, Required: false},
	}, func(n *Node) string {
		s := ord(n.Slot("procedure")) + "("
		first := true
		for _, c := range n.Children {
			if c.Kind != KindYieldItem {
				continue
			}
			if !first {
				s += ", "
			}
			first = false
			s += ord(c)
		}
		s += ")"
		if w := n.Slot("where"); w != nil {
			s += " WHERE " + ord(w)
		}
		return s
	})
}
