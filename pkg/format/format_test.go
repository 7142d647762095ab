package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/euclid/pkg/check"
	"github.com/leapstack-labs/euclid/pkg/format"
	"github.com/leapstack-labs/euclid/pkg/parser"
)

const sampleProof = `Prove: 2n is an even number.
Let n be an even number.
By definition n = 2k where k is an integer.
Let m = 2n.
By substitution m = 2(2k).
Therefore m is an even number.
Therefore 2n is an even number.
`

func TestFormat_SampleProofIsCanonical(t *testing.T) {
	proof, err := parser.Parse(sampleProof)
	require.NoError(t, err)

	assert.Equal(t, sampleProof, format.Format(proof))
}

func TestFormat_Normalizes(t *testing.T) {
	messy := "prove: n = 1.\n  THEREFORE   n = 1."
	proof, err := parser.Parse(messy)
	require.NoError(t, err)

	assert.Equal(t, "Prove: n = 1.\nTherefore n = 1.\n", format.Format(proof))
}

func TestFormat_Article(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"an before vowel", "Prove: n is an integer.\nn = n.", "Prove: n is an integer.\n"},
		{"a before consonant", "Prove: p is a prime.\np = p.", "Prove: p is a prime.\n"},
		{"article normalized", "Prove: n is a integer.\nn = n.", "Prove: n is an integer.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proof, err := parser.Parse(tt.input)
			require.NoError(t, err)
			got := format.Format(proof)
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestFormat_Conditional(t *testing.T) {
	input := "Prove: if n is an even number then 2n is an even number.\nLet n be an even number."
	proof, err := parser.Parse(input)
	require.NoError(t, err)

	got := format.Format(proof)
	assert.Contains(t, got, "Prove: if n is an even number then 2n is an even number.")
}

func TestFormat_RoundTrip(t *testing.T) {
	proof, err := parser.Parse(sampleProof)
	require.NoError(t, err)

	reparsed, err := parser.Parse(format.Format(proof))
	require.NoError(t, err)

	require.Len(t, reparsed.Clauses, len(proof.Clauses))
	assert.True(t, check.EqualFormula(proof.Goal, reparsed.Goal))
	assert.Equal(t, format.Format(proof), format.Format(reparsed))
}

func TestFormat_RoundTripHandBuiltAST(t *testing.T) {
	// Prove: m = 2k. Let k be an integer. Therefore m = 2k.
	goal := &parser.Equality{
		Left: &parser.SymbolTerm{Name: "m"},
		Right: &parser.CoefficientTerm{
			Number: &parser.NumberTerm{Literal: "2"},
			Symbol: &parser.SymbolTerm{Name: "k"},
		},
	}
	proof := &parser.Proof{
		Goal: goal,
		Clauses: []parser.Clause{
			&parser.LetTyped{
				Symbol: "k",
				Type:   &parser.CompoundSymbol{Parts: []string{"integer"}},
			},
			&parser.Therefore{Formula: goal},
		},
	}

	reparsed, err := parser.Parse(format.Format(proof))
	require.NoError(t, err)

	require.Len(t, reparsed.Clauses, 2)
	assert.True(t, check.EqualFormula(proof.Goal, reparsed.Goal))

	let, ok := reparsed.Clauses[0].(*parser.LetTyped)
	require.True(t, ok)
	assert.Equal(t, "k", let.Symbol)
	assert.Equal(t, "integer", let.Type.Name())

	therefore, ok := reparsed.Clauses[1].(*parser.Therefore)
	require.True(t, ok)
	assert.True(t, check.EqualFormula(goal, therefore.Formula))
}

func TestFormatFormulaAndTerm(t *testing.T) {
	proof, err := parser.Parse("Prove: 2n is an even number.\nLet m = 2(2k).")
	require.NoError(t, err)

	assert.Equal(t, "2n is an even number", format.Formula(proof.Goal))

	let, ok := proof.Clauses[0].(*parser.LetEquation)
	require.True(t, ok)
	assert.Equal(t, "2(2k)", format.Term(let.Value))
}
