package ast

func init() {
	// BinaryOperator requires left, right and operator. operator is
	// itself a node (OPERATOR_SYMBOL) rather than bare text, so the
	// printer can cite it by ordinal like any other child.
	define(KindBinaryOperator, "BINARY_OPERATOR", []Kind{KindExpression}, []slotSpec{
		{Name: "left", Ancestor: KindExpression, Required: true},
		{Name: "right", Ancestor: KindExpression, Required: true},
		{Name: "operator", Ancestor: KindOperatorSymbol, Required: true},
	}, func(n *Node) string {
		return ord(n.Slot("left")) + " " + ord(n.Slot("operator")) + " " + ord(n.Slot("right"))
	})

	define(KindUnaryOperator, "UNARY_OPERATOR", []Kind{KindExpression}, []slotSpec{
		{Name: "operand", Ancestor: KindExpression, Required: true},
		{Name: "operator", Ancestor: KindOperatorSymbol, Required: true},
	}, func(n *Node) string {
		return ord(n.Slot("operator")) + " " + ord(n.Slot("operand"))
	})

	define(KindPropertyAccess, "PROPERTY_ACCESS", []Kind{KindExpression}, []slotSpec{
		{Name: "target", Ancestor: KindExpression, Required: true},
		{Name: "property", Ancestor: KindPropertyKeyName, Required: true},
	}, func(n *Node) string {
		return ord(n.Slot("target")) + "." + ord(n.Slot("property"))
	})

	define(KindIndexAccess, "INDEX_ACCESS", []Kind{KindExpression}, []slotSpec{
		{Name: "target", Ancestor: KindExpression, Required: true},
		{Name: "index", Ancestor: KindExpression, Required: true},
	}, func(n *Node) string {
		return ord(n.Slot("target")) + "[" + ord(n.Slot("index")) + "]"
	})

	define(KindSliceAccess, "SLICE_ACCESS", []Kind{KindExpression}, []slotSpec{
		{Name: "target", Ancestor: KindExpression, Required: true},
		{Name: "from", Ancestor: KindExpression, Required: false},
		{Name: "to", Ancestor: KindExpression, Required: false},
	}, func(n *Node) string {
		return ord(n.Slot("target")) + "[" + ord(n.Slot("from")) + ".." + ord(n.Slot("to")) + "]"
	})

	// LabelPredicate is an expression like "n:Person:Actor". target is
	// named; the labels are the remaining (unnamed) children, in order.
	define(KindLabelPredicate, "LABEL_PREDICATE", []Kind{KindExpression}, []slotSpec{
		{Name: "target", Ancestor: KindExpression, Required: true},
	}, func(n *Node) string {
		s := ord(n.Slot("target"))
		for _, c := range n.Children {
			if c == n.Slot("target") {
				continue
			}
			s += c.Detail()
		}
		return s
	})
}
