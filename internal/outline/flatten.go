package outline

// Flatten walks the declaration forest and produces per-category member
// lists. Containers contribute their name to the qualifying path of
// everything beneath them but are not emitted themselves. A member always
// carries its parent's path, never its own name; an empty path becomes
// UnknownPath. Nodes of KindOther are dropped along with their subtrees.
func Flatten(roots []*Node) *Members {
	m := &Members{}
	for _, root := range roots {
		flattenInto(root, "", m)
	}
	return m
}

func flattenInto(n *Node, path string, m *Members) {
	if n == nil {
		return
	}

	switch n.Kind {
	case KindContainer:
		childPath := n.Name
		if path != "" {
			childPath = path + "." + n.Name
		}
		for _, child := range n.Children {
			flattenInto(child, childPath, m)
		}

	case KindCallable:
		m.Callables = append(m.Callables, member(n, path))

	case KindField:
		m.Fields = append(m.Fields, member(n, path))

	case KindEnumConstant:
		m.EnumConstants = append(m.EnumConstants, member(n, path))
	}
}

func member(n *Node, path string) FlattenedMember {
	if path == "" {
		path = UnknownPath
	}
	return FlattenedMember{Node: n, QualifyingPath: path}
}
