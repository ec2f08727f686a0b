package pair_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairtree/pair"
	"github.com/katalvlaran/pairtree/report"
)

// TestExtract_Valid returns the symbols at the two interior positions.
func TestExtract_Valid(t *testing.T) {
	p, err := pair.Extract("(A,B)")
	require.NoError(t, err)
	assert.Equal(t, pair.Symbol('A'), p.Parent)
	assert.Equal(t, pair.Symbol('B'), p.Child)
	assert.Equal(t, "(A,B)", p.String())

	// Self-pairs are structurally valid; the tree rejects them later.
	p, err = pair.Extract("(Z,Z)")
	require.NoError(t, err)
	assert.Equal(t, pair.Pair{Parent: 'Z', Child: 'Z'}, p)
}

// TestExtract_Invalid rejects every token that is not "(X,Y)" with X,Y in A..Z.
func TestExtract_Invalid(t *testing.T) {
	for _, tok := range []string{
		"",
		"   ",
		"(A,1)",
		"(a,B)",
		"(A,b)",
		"(A;B)",
		"[A,B]",
		"(AB)",
		"(A,B",
		"(A,B))",
		"x(A,B)",
		"(AA,B)",
		"(A,B)\t",
		"(Ä,B)",
	} {
		_, err := pair.Extract(tok)
		assert.ErrorIs(t, err, report.ErrInvalidInput, "token %q", tok)
	}
}

// TestSplit_LineShape covers empty input and leading/trailing separators.
func TestSplit_LineShape(t *testing.T) {
	for _, in := range []string{"", " ", " (A,B)", "(A,B) ", "  "} {
		_, err := pair.Split(in)
		assert.ErrorIs(t, err, report.ErrInvalidInput, "input %q", in)
	}

	toks, err := pair.Split("(A,B) (A,C)")
	require.NoError(t, err)
	assert.Equal(t, []string{"(A,B)", "(A,C)"}, toks)

	// A doubled separator yields an empty token, rejected by Extract.
	toks, err = pair.Split("(A,B)  (A,C)")
	require.NoError(t, err)
	assert.Equal(t, []string{"(A,B)", "", "(A,C)"}, toks)
}

// TestExtractAll keeps input order and aborts on the first malformed token.
func TestExtractAll(t *testing.T) {
	pairs, err := pair.ExtractAll("(B,C) (A,B) (B,D)")
	require.NoError(t, err)
	assert.Equal(t, []pair.Pair{
		{Parent: 'B', Child: 'C'},
		{Parent: 'A', Child: 'B'},
		{Parent: 'B', Child: 'D'},
	}, pairs)

	pairs, err = pair.ExtractAll("(A,B) (A,1) (A,C)")
	assert.ErrorIs(t, err, report.ErrInvalidInput)
	assert.Contains(t, err.Error(), "token 1")
	assert.Nil(t, pairs)

	_, err = pair.ExtractAll("(A,B)  (A,C)")
	assert.ErrorIs(t, err, report.ErrInvalidInput)
}
