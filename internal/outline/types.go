// Package outline models the structural outline of a single Java source file:
// a declaration tree of containers, callables, fields, and enum constants,
// plus the flattening pass that turns the tree into per-category member lists.
package outline

// Kind classifies a declaration node.
type Kind int

const (
	// KindOther covers declarations the documentation pass ignores.
	KindOther Kind = iota

	// KindContainer is a class, interface, enum, record, or annotation type.
	KindContainer

	// KindCallable is a method or constructor.
	KindCallable

	// KindField is a field declarator.
	KindField

	// KindEnumConstant is a single enum constant.
	KindEnumConstant
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindCallable:
		return "callable"
	case KindField:
		return "field"
	case KindEnumConstant:
		return "enum-constant"
	default:
		return "other"
	}
}

// Range is a 1-indexed, inclusive line span.
type Range struct {
	StartLine int
	EndLine   int
}

// Node is one declaration in the outline tree. The tree is supplied by a
// Provider and is never mutated by consumers.
type Node struct {
	// Name is the declared identifier.
	Name string

	// Kind classifies the declaration.
	Kind Kind

	// Detail is an optional compact signature supplied by the provider.
	Detail string

	// Range spans the full declaration body.
	Range Range

	// SelectionRange spans the identifying token only. Zero value means the
	// provider did not narrow it; use EffectiveSelection instead of reading
	// this directly.
	SelectionRange Range

	// Children are nested declarations, in source order.
	Children []*Node
}

// EffectiveSelection returns the identifying-token span, falling back to the
// full body span when the provider supplied none.
func (n *Node) EffectiveSelection() Range {
	if n.SelectionRange.StartLine == 0 {
		return n.Range
	}
	return n.SelectionRange
}

// UnknownPath is the qualifying path substituted when a member's enclosing
// container could not be determined.
const UnknownPath = "Unknown"

// FlattenedMember pairs a leaf declaration with the dot-joined chain of
// enclosing container names.
type FlattenedMember struct {
	Node           *Node
	QualifyingPath string
}

// Members holds the flattened, per-category view of one declaration tree.
type Members struct {
	Callables     []FlattenedMember
	Fields        []FlattenedMember
	EnumConstants []FlattenedMember
}
