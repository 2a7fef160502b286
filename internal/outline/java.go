package outline

import (
	"context"

	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

// javaProvider builds declaration outlines from Java source via tree-sitter.
type javaProvider struct {
	language *sitter.Language
}

// NewJavaProvider creates the tree-sitter backed Provider for Java files.
func NewJavaProvider() Provider {
	return &javaProvider{language: sitter.NewLanguage(java.Language())}
}

// Outline parses source and extracts the declaration forest. Unparseable
// input yields an empty outline, never an error.
func (p *javaProvider) Outline(ctx context.Context, path string, source []byte) (*Outline, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(p.language)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return &Outline{}, nil
	}
	defer tree.Close()

	root := tree.RootNode()

	o := &Outline{}
	p.extractPackageName(root, source, o)

	for i := 0; i < int(root.ChildCount()); i++ {
		if decl := p.convert(root.Child(uint(i)), source); decl != nil {
			o.Roots = append(o.Roots, decl)
		}
	}
	return o, nil
}

// extractPackageName extracts the declared package name.
func (p *javaProvider) extractPackageName(node *sitter.Node, source []byte, o *Outline) {
	walkTree(node, func(n *sitter.Node) bool {
		if n.Kind() == "package_declaration" {
			nameNode := findChildByType(n, "scoped_identifier")
			if nameNode == nil {
				nameNode = findChildByType(n, "identifier")
			}
			if nameNode != nil {
				o.PackageName = nodeText(nameNode, source)
			}
			return false
		}
		return true
	})
}

// convert maps one tree-sitter declaration to an outline Node, recursing
// into container bodies. Irrelevant syntax returns nil.
func (p *javaProvider) convert(n *sitter.Node, source []byte) *Node {
	switch n.Kind() {
	case "class_declaration", "interface_declaration", "enum_declaration",
		"record_declaration", "annotation_type_declaration":
		return p.convertContainer(n, source)

	case "method_declaration", "constructor_declaration":
		return p.convertCallable(n, source)

	case "enum_constant":
		return p.convertEnumConstant(n, source)
	}
	return nil
}

func (p *javaProvider) convertContainer(n *sitter.Node, source []byte) *Node {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	container := &Node{
		Name:           nodeText(nameNode, source),
		Kind:           KindContainer,
		Range:          nodeRange(n),
		SelectionRange: nodeRange(nameNode),
	}

	if bodyNode := n.ChildByFieldName("body"); bodyNode != nil {
		p.convertBody(bodyNode, source, container)
	}
	return container
}

// convertBody collects member declarations from a container body. Enum
// bodies nest their method and field members inside an extra
// enum_body_declarations node.
func (p *javaProvider) convertBody(bodyNode *sitter.Node, source []byte, container *Node) {
	for i := 0; i < int(bodyNode.ChildCount()); i++ {
		child := bodyNode.Child(uint(i))
		switch child.Kind() {
		case "field_declaration", "constant_declaration":
			container.Children = append(container.Children, p.convertFields(child, source)...)
		case "enum_body_declarations":
			p.convertBody(child, source, container)
		default:
			if decl := p.convert(child, source); decl != nil {
				container.Children = append(container.Children, decl)
			}
		}
	}
}

func (p *javaProvider) convertCallable(n *sitter.Node, source []byte) *Node {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	return &Node{
		Name:           nodeText(nameNode, source),
		Kind:           KindCallable,
		Detail:         callableDetail(n, source),
		Range:          nodeRange(n),
		SelectionRange: nodeRange(nameNode),
	}
}

// convertFields expands a field declaration into one node per declarator:
// "int a, b;" declares two fields.
func (p *javaProvider) convertFields(n *sitter.Node, source []byte) []*Node {
	typeNode := n.ChildByFieldName("type")
	typeName := nodeText(typeNode, source)

	var fields []*Node
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(uint(i))
		if child.Kind() != "variable_declarator" {
			continue
		}
		nameNode := child.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		fields = append(fields, &Node{
			Name:           nodeText(nameNode, source),
			Kind:           KindField,
			Detail:         typeName + " " + nodeText(nameNode, source),
			Range:          nodeRange(n),
			SelectionRange: nodeRange(nameNode),
		})
	}
	return fields
}

func (p *javaProvider) convertEnumConstant(n *sitter.Node, source []byte) *Node {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	return &Node{
		Name:           nodeText(nameNode, source),
		Kind:           KindEnumConstant,
		Range:          nodeRange(n),
		SelectionRange: nodeRange(nameNode),
	}
}

// callableDetail builds a compact "name(params): type" detail string.
func callableDetail(n *sitter.Node, source []byte) string {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return ""
	}

	detail := nodeText(nameNode, source)
	if paramsNode := n.ChildByFieldName("parameters"); paramsNode != nil {
		detail += nodeText(paramsNode, source)
	} else {
		detail += "()"
	}
	if typeNode := n.ChildByFieldName("type"); typeNode != nil {
		detail += ": " + nodeText(typeNode, source)
	}
	return detail
}
