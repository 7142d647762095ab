package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/euclid/pkg/parser"
)

func TestWalk_VisitsEveryFormula(t *testing.T) {
	proof, err := parser.Parse(sampleProof)
	require.NoError(t, err)

	var formulas int
	parser.Walk(proof, func(node any) bool {
		switch node.(type) {
		case *parser.Equality, *parser.TypeAssertion, *parser.Conditional:
			formulas++
		}
		return true
	})

	// Goal + one formula per body clause that carries one (all but the lets
	// carry a formula; the two lets carry a type or a term instead).
	assert.Equal(t, 5, formulas)
}

func TestWalk_VisitsNestedTerms(t *testing.T) {
	proof, err := parser.Parse("Prove: m = 2(2(2k)).\nm = m.")
	require.NoError(t, err)

	var grouped, coefficients int
	parser.Walk(proof, func(node any) bool {
		switch node.(type) {
		case *parser.GroupedTerm:
			grouped++
		case *parser.CoefficientTerm:
			coefficients++
		}
		return true
	})

	assert.Equal(t, 2, grouped)
	assert.Equal(t, 1, coefficients)
}

func TestWalk_StopsWhenFnReturnsFalse(t *testing.T) {
	proof, err := parser.Parse(sampleProof)
	require.NoError(t, err)

	var visited int
	parser.Walk(proof, func(node any) bool {
		visited++
		_, isProof := node.(*parser.Proof)
		return isProof // descend into the proof but not into its children
	})

	// The proof itself plus its direct children (goal + 6 clauses).
	assert.Equal(t, 8, visited)
}

func TestWalk_NilNode(t *testing.T) {
	called := false
	parser.Walk(nil, func(any) bool {
		called = true
		return true
	})
	assert.False(t, called)
}
