package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for flattening:
// - Members carry the parent container path, not their own name
// - Nested containers dot-join their names
// - Top-level members get the Unknown sentinel path
// - Containers themselves are not emitted
// - Other-kind nodes are dropped with their subtrees

func TestFlatten_QualifyingPaths(t *testing.T) {
	t.Parallel()

	tree := []*Node{
		{
			Name: "Outer",
			Kind: KindContainer,
			Children: []*Node{
				{Name: "m1", Kind: KindCallable},
				{Name: "f1", Kind: KindField},
				{
					Name: "Inner",
					Kind: KindContainer,
					Children: []*Node{
						{Name: "m2", Kind: KindCallable},
						{Name: "C1", Kind: KindEnumConstant},
					},
				},
			},
		},
	}

	m := Flatten(tree)

	require.Len(t, m.Callables, 2)
	assert.Equal(t, "m1", m.Callables[0].Node.Name)
	assert.Equal(t, "Outer", m.Callables[0].QualifyingPath)
	assert.Equal(t, "m2", m.Callables[1].Node.Name)
	assert.Equal(t, "Outer.Inner", m.Callables[1].QualifyingPath)

	require.Len(t, m.Fields, 1)
	assert.Equal(t, "Outer", m.Fields[0].QualifyingPath)

	require.Len(t, m.EnumConstants, 1)
	assert.Equal(t, "Outer.Inner", m.EnumConstants[0].QualifyingPath)
}

func TestFlatten_TopLevelMemberGetsUnknown(t *testing.T) {
	t.Parallel()

	m := Flatten([]*Node{{Name: "loose", Kind: KindCallable}})
	require.Len(t, m.Callables, 1)
	assert.Equal(t, UnknownPath, m.Callables[0].QualifyingPath)
}

func TestFlatten_OtherKindDropped(t *testing.T) {
	t.Parallel()

	tree := []*Node{
		{
			Name: "weird",
			Kind: KindOther,
			Children: []*Node{
				{Name: "hidden", Kind: KindCallable},
			},
		},
	}

	m := Flatten(tree)
	assert.Empty(t, m.Callables)
	assert.Empty(t, m.Fields)
	assert.Empty(t, m.EnumConstants)
}

func TestFlatten_EmptyInput(t *testing.T) {
	t.Parallel()

	m := Flatten(nil)
	assert.NotNil(t, m)
	assert.Empty(t, m.Callables)
}

func TestEffectiveSelection_FallsBackToRange(t *testing.T) {
	t.Parallel()

	n := &Node{Range: Range{StartLine: 3, EndLine: 9}}
	assert.Equal(t, Range{StartLine: 3, EndLine: 9}, n.EffectiveSelection())

	n.SelectionRange = Range{StartLine: 4, EndLine: 4}
	assert.Equal(t, Range{StartLine: 4, EndLine: 4}, n.EffectiveSelection())
}
