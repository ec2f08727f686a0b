package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairtree/pair"
	"github.com/katalvlaran/pairtree/tree"
)

// TestSerialize_Shapes renders leaves, single children and full nodes.
func TestSerialize_Shapes(t *testing.T) {
	assert.Equal(t, "", tree.Serialize(nil))
	assert.Equal(t, "(A)", tree.Serialize(&tree.Node{Value: 'A'}))

	root := &tree.Node{
		Value: 'A',
		Left: &tree.Node{
			Value: 'B',
			Left:  &tree.Node{Value: 'D'},
		},
		Right: &tree.Node{Value: 'C'},
	}
	assert.Equal(t, "(A(B(D))(C))", tree.Serialize(root))
}

// TestParse_RoundTrip parses canonical text back into an equal tree.
func TestParse_RoundTrip(t *testing.T) {
	for _, text := range []string{
		"(A)",
		"(A(B))",
		"(A(B)(C))",
		"(A(B(D)(E))(C(F)))",
		"(Q(C(A(B)))(Z(Y(X(W)))))",
	} {
		root, err := tree.Parse(text)
		require.NoError(t, err, "Parse(%q)", text)
		assert.Equal(t, text, tree.Serialize(root))
	}

	root, err := tree.Parse("")
	require.NoError(t, err)
	assert.Nil(t, root)
}

// TestParse_ChildOrder assigns children in textual order.
func TestParse_ChildOrder(t *testing.T) {
	root, err := tree.Parse("(A(C)(B))")
	require.NoError(t, err)
	assert.Equal(t, pair.Symbol('C'), root.Left.Value)
	assert.Equal(t, pair.Symbol('B'), root.Right.Value)
}

// TestParse_Malformed rejects everything a serializer could not produce.
func TestParse_Malformed(t *testing.T) {
	for _, text := range []string{
		"A",
		"(",
		"()",
		"(A",
		"(A))",
		"(A)(B)",
		"(A(B)(C)(D))",
		"(A B)",
		"((A))",
		"(A(B)",
	} {
		_, err := tree.Parse(text)
		assert.ErrorIs(t, err, tree.ErrMalformedSerialization, "Parse(%q)", text)
	}
}

// TestEqual compares shape and values.
func TestEqual(t *testing.T) {
	a := &tree.Node{Value: 'A', Left: &tree.Node{Value: 'B'}}
	b := &tree.Node{Value: 'A', Left: &tree.Node{Value: 'B'}}
	c := &tree.Node{Value: 'A', Right: &tree.Node{Value: 'B'}}

	assert.True(t, tree.Equal(nil, nil))
	assert.True(t, tree.Equal(a, b))
	assert.False(t, tree.Equal(a, c))
	assert.False(t, tree.Equal(a, nil))
	assert.False(t, tree.Equal(a, &tree.Node{Value: 'Z', Left: &tree.Node{Value: 'B'}}))
}
