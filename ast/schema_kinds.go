package ast

func init() {
	define(KindCreateIndex, "CREATE_INDEX", []Kind{KindSchemaCommand}, []slotSpec{
		{Name: "label", Ancestor: KindLabel, Required: true},
		{Name: "property", Ancestor: KindPropertyKeyName, Required: true},
	}, func(n *Node) string {
		return "ON=(" + ord(n.Slot("label")) + "(" + ord(n.Slot("property")) + "))"
	})

	define(KindDropIndex, "DROP_INDEX", []Kind{KindSchemaCommand}, []slotSpec{
		{Name: "label", Ancestor: KindLabel, Required: true},
		{Name: "property", Ancestor: KindPropertyKeyName, Required: true},
	}, func(n *Node) string {
		return "ON=(" + ord(n.Slot("label")) + "(" + ord(n.Slot("property")) + "))"
	})

	// CreateUniqueNodePropConstraint renders as "ON=(@u:@v), IS
	// UNIQUE=(@w)" where u, v, w are the ordinals of the identifier,
	// label and expression children.
	define(KindCreateUniqueNodePropConstraint, "CREATE_UNIQUE_NODE_PROP_CONSTRAINT", []Kind{KindSchemaCommand}, []slotSpec{
		{Name: "identifier", Ancestor: KindIdentifier, Required: true},
		{Name: "label", Ancestor: KindLabel, Required: true},
		{Name: "expression", Ancestor: KindExpression, Required: true},
	}, func(n *Node) string {
		return "ON=(" + ord(n.Slot("identifier")) + ":" + ord(n.Slot("label")) + "), IS UNIQUE=(" +
			ord(n.Slot("expression")) + ")"
	})

	define(KindDropUniqueNodePropConstraint, "DROP_UNIQUE_NODE_PROP_CONSTRAINT", []Kind{KindSchemaCommand}, []slotSpec{
		{Name: "identifier", Ancestor: KindIdentifier, Required: true},
		{Name: "label", Ancestor: KindLabel, Required: true},
		{Name: "expression", Ancestor: KindExpression, Required: true},
	}, func(n *Node) string {
		return "ON=(" + ord(n.Slot("identifier")) + ":" + ord(n.Slot("label")) + "), IS UNIQUE=(" +
			ord(n.Slot("expression")) + ")"
	})

	define(KindCreateNodePropExistenceConstraint, "CREATE_NODE_PROP_EXISTENCE_CONSTRAINT", []Kind{KindSchemaCommand}, []slotSpec{
		{Name: "identifier", Ancestor: KindIdentifier, Required: true},
		{Name: "label", Ancestor: KindLabel, Required: true},
		{Name: "expression", Ancestor: KindExpression, Required: true},
	}, func(n *Node) string {
		return "ON=(" + ord(n.Slot("identifier")) + ":" + ord(n.Slot("label")) + "), ASSERT EXISTS=(" +
			ord(n.Slot("expression")) + ")"
	})

	define(KindDropNodePropExistenceConstraint, "DROP_NODE_PROP_EXISTENCE_CONSTRAINT", []Kind{KindSchemaCommand}, []slotSpec{
		{Name: "identifier", Ancestor: KindIdentifier, Required: true},
		{Name: "label", Ancestor: KindLabel, Required: true},
		{Name: "expression", Ancestor: KindExpression, Required: true},
	}, func(n *Node) string {
		return "ON=(" + ord(n.Slot("identifier")) + ":" + ord(n.Slot("label")) + "), ASSERT EXISTS=(" +
			ord(n.Slot("expression")) + ")"
	})

	define(KindCreateRelPropExistenceConstraint, "CREATE_REL_PROP_EXISTENCE_CONSTRAINT", []Kind{KindSchemaCommand}, []slotSpec{
		{Name: "identifier", Ancestor: KindIdentifier, Required: true},
		{Name: "type", Ancestor: KindRelationshipTypeName, Required: true},
		{Name: "expression", Ancestor: KindExpression, Required: true},
	}, func(n *Node) string {
		return "ON=()-[" + ord(n.Slot("identifier")) + ord(n.Slot("type")) + "]-(), ASSERT EXISTS=(" +
			ord(n.Slot("expression")) + ")"
	})

	define(KindDropRelPropExistenceConstraint, "DROP_REL_PROP_EXISTENCE_CONSTRAINT", []Kind{KindSchemaCommand}, []slotSpec{
		{Name: "identifier", Ancestor: KindIdentifier, Required: true},
		{Name: "type", Ancestor: KindRelationshipTypeName, Required: true},
		{Name: "expression", Ancestor: KindExpression, Required: true},
	}, func(n *Node) string {
		return "ON=()-[" + ord(n.Slot("identifier")) + ord(n.Slot("type")) + "]-(), ASSERT EXISTS=(" +
			ord(n.Slot("expression")) + ")"
	})
}
