package ast

func init() {
	define(KindListLiteral, "LIST", []Kind{KindExpression}, nil, func(n *Node) string {
		return "[" + ordList(n.Children) + "]"
	})

	define(KindMapEntry, "MAP_ENTRY", nil, []slotSpec{
		{Name: "key", Ancestor: KindPropertyKeyName, Required: true},
		{Name: "value", Ancestor: KindExpression, Required: true},
	}, func(n *Node) string {
		return ord(n.Slot("key")) + ": " + ord(n.Slot("value"))
	})

	define(KindMapLiteral, "MAP", []Kind{KindExpression}, nil, func(n *Node) string {
		return "{" + ordList(n.Children) + "}"
	})

	define(KindMapProjectionAllProperties, "MAP_PROJECTION_ALL_PROPERTIES", nil, nil, func(n *Node) string {
		return ".*"
	})

	define(KindMapProjectionItem, "MAP_PROJECTION_ITEM", nil, []slotSpec{
		{Name: "key", Ancestor: KindPropertyKeyName, Required: true},
		{Name: "value", Ancestor: KindExpression, Required: false},
	}, func(n *Node) string {
		if v := n.Slot("value"); v != nil {
			return ord(n.Slot("key")) + ": " + ord(v)
		}
		return "." + ord(n.Slot("key"))
	})

	define(KindMapProjection, "MAP_PROJECTION", []Kind{KindExpression}, []slotSpec{
		{Name: "variable", Ancestor: KindExpression, Required: true},
	}, func(n *Node) string {
		s := ord(n.Slot("variable")) + "{"
		first := true
		for _, c := range n.Children {
			if c == n.Slot("variable") {
				continue
			}
			if !first {
				s += ", "
			}
			first = false
			s += c.Detail()
		}
		return s + "}"
	})

	define(KindListComprehension, "LIST_COMPREHENSION", []Kind{KindExpression}, []slotSpec{
		{Name: "variable", Ancestor: KindIdentifier, Required: true},
		{Name: "source", Ancestor: KindExpression, Required: true},
		{Name: "predicate", Ancestor: KindExpression, Required: false},
		{Name: "projection", Ancestor: KindExpression, Required: false},
	}, func(n *Node) string {
		s := "[" + ord(n.Slot("variable")) + " IN " + ord(n.Slot("source"))
		if p := n.Slot("predicate"); p != nil {
			s += " WHERE " + ord(p)
		}
		if p := n.Slot("projection"); p != nil {
			s += " | " + ord(p)
		}
		return s + "]"
	})

	define(KindPatternComprehension, "PATTERN_COMPREHENSION", []Kind{KindExpression}, []slotSpec{
		{Name: "variable", Ancestor: KindIdentifier, Required: false},
		{Name: "pattern", Ancestor: KindPatternPath, Required: true},
		{Name: "where", Ancestor: KindExpression, Required: false},
		{Name: "projection", Ancestor: KindExpression, Required: true},
	}, func(n *Node) string {
		s := "["
		if v := n.Slot("variable"); v != nil {
			s += ord(v) + " = "
		}
		s += ord(n.Slot("pattern"))
		if w := n.Slot("where"); w != nil {
			s += " WHERE " + ord(w)
		}
		return s + " | " + ord(n.Slot("projection")) + "]"
	})

	define(KindCaseAlternative, "CASE_ALTERNATIVE", nil, []slotSpec{
		{Name: "when", Ancestor: KindExpression, Required: true},
		{Name: "then", Ancestor: KindExpression, Required: true},
	}, func(n *Node) string {
		return "WHEN " + ord(n.Slot("when")) + " THEN " + ord(n.Slot("then"))
	})

	define(KindCaseExpression, "CASE_EXPRESSION", []Kind{KindExpression}, []slotSpec{
		{Name: "test", Ancestor: KindExpression, Required: false},
		{Name: "else", Ancestor: KindExpression, Required: false},
	}, func(n *Node) string {
		s := "CASE"
		if t := n.Slot("test"); t != nil {
			s += " " + ord(t)
		}
		for _, c := range n.Children {
			if c.Kind == KindCaseAlternative {
				s += " " + ord(c)
			}
		}
		if e := n.Slot("else"); e != nil {
			s += " ELSE " + ord(e)
		}
		return s + " END"
	})

	define(KindFunctionInvocation, "FUNCTION_INVOCATION", []Kind{KindExpression}, nil, func(n *Node) string {
		s := n.Text + "("
		if n.Flag {
			s += "DISTINCT "
		}
		return s + ordList(n.Children) + ")"
	})

	define(KindCountStarExpression, "COUNT_STAR", []Kind{KindExpression}, nil, func(n *Node) string {
		return "count(*)"
	})

	define(KindShortestPathExpression, "SHORTEST_PATH", []Kind{KindExpression}, []slotSpec{
		{Name: "pattern", Ancestor: KindPatternPath, Required: true},
	}, func(n *Node) string {
		return n.Text + "(" + ord(n.Slot("pattern")) + ")"
	})

	define(KindReduceExpression, "REDUCE", []Kind{KindExpression}, []slotSpec{
		{Name: "accumulator", Ancestor: KindIdentifier, Required: true},
		{Name: "initial", Ancestor: KindExpression, Required: true},
		{Name: "variable", Ancestor: KindIdentifier, Required: true},
		{Name: "list", Ancestor: KindExpression, Required: true},
		{Name: "expression", Ancestor: KindExpression, Required: true},
	}, func(n *Node) string {
		return "REDUCE(" + ord(n.Slot("accumulator")) + " = " + ord(n.Slot("initial")) + ", " +
			ord(n.Slot("variable")) + " IN " + ord(n.Slot("list")) + " | " + ord(n.Slot("expression")) + ")"
	})

	define(KindQuantifierExpression, "QUANTIFIER_EXPRESSION", []Kind{KindExpression}, []slotSpec{
		{Name: "variable", Ancestor: KindIdentifier, Required: true},
		{Name: "source", Ancestor: KindExpression, Required: true},
		{Name: "predicate", Ancestor: KindExpression, Required: false},
	}, func(n *Node) string {
		s := n.Text + "(" + ord(n.Slot("variable")) + " IN " + ord(n.Slot("source"))
		if p := n.Slot("predicate"); p != nil {
			s += " WHERE " + ord(p)
		}
		return s + ")"
	})
}

func ordList(nodes []*Node) string {
	s := ""
	for i, c := range nodes {
		if i > 0 {
			s += ", "
		}
		s += ord(c)
	}
	return s
}
