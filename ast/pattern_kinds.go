package ast

func init() {
	define(KindRelationshipRange, "RELATIONSHIP_RANGE", nil, []slotSpec{
		{Name: "min", Ancestor: KindIntegerLiteral, Required: false},
		{Name: "max", Ancestor: KindIntegerLiteral, Required: false},
	}, func(n *Node) string {
		return "*" + ord(n.Slot("min")) + ".." + ord(n.Slot("max"))
	})

	// NodePattern is "(var:Label1:Label2 {props})". variable and
	// properties are named slots; any Label children are unnamed and
	// appear in Children alongside them.
	define(KindNodePattern, "NODE_PATTERN", []Kind{KindPatternComponent}, []slotSpec{
		{Name: "variable", Ancestor: KindIdentifier, Required: false},
		{Name: "properties", Ancestor: KindExpression, Required: false},
	}, func(n *Node) string {
		s := "(" + ord(n.Slot("variable"))
		for _, c := range n.Children {
			if c.Kind == KindLabel {
				s += c.Detail()
			}
		}
		if p := n.Slot("properties"); p != nil {
			s += " " + ord(p)
		}
		return s + ")"
	})

	// RelationshipPattern is "-[var:TYPE*min..max {props}]-" with
	// Text holding the arrow direction: "LEFT", "RIGHT" or "BOTH".
	define(KindRelationshipPattern, "RELATIONSHIP_PATTERN", []Kind{KindPatternComponent}, []slotSpec{
		{Name: "variable", Ancestor: KindIdentifier, Required: false},
		{Name: "properties", Ancestor: KindExpression, Required: false},
		{Name: "range", Ancestor: KindRelationshipRange, Required: false},
	}, func(n *Node) string {
		left, right := "-", "-"
		switch n.Text {
		case "LEFT":
			left = "<-"
		case "RIGHT":
			right = "->"
		}

		s := "[" + ord(n.Slot("variable"))
		for _, c := range n.Children {
			if c.Kind == KindRelationshipTypeName {
				s += c.Detail()
			}
		}
		if r := n.Slot("range"); r != nil {
			s += ord(r)
		}
		if p := n.Slot("properties"); p != nil {
			s += " " + ord(p)
		}
		return left + s + "]" + right
	})

	// PatternPath is an ordered chain of NodePattern/RelationshipPattern
	// children, optionally bound to a path variable ("p = (a)-->(b)").
	define(KindPatternPath, "PATTERN_PATH", []Kind{KindExpression}, []slotSpec{
		{Name: "variable", Ancestor: KindIdentifier, Required: false},
	}, func(n *Node) string {
		s := ""
		if v := n.Slot("variable"); v != nil {
			s += ord(v) + " = "
		}
		first := true
		for _, c := range n.Children {
			if c == n.Slot("variable") {
				continue
			}
			if !first {
				s += "-"
			}
			first = false
			s += ord(c)
		}
		return s
	})
}
