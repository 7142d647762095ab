package check

import (
	"github.com/leapstack-labs/euclid/pkg/parser"
)

// EqualFormula reports whether two formulas are structurally identical.
func EqualFormula(a, b parser.Formula) bool {
	switch fa := a.(type) {
	case *parser.Equality:
		fb, ok := b.(*parser.Equality)
		return ok && EqualTerm(fa.Left, fb.Left) && EqualTerm(fa.Right, fb.Right)
	case *parser.TypeAssertion:
		fb, ok := b.(*parser.TypeAssertion)
		return ok && EqualTerm(fa.Term, fb.Term) && equalCompound(fa.Type, fb.Type)
	case *parser.Conditional:
		fb, ok := b.(*parser.Conditional)
		return ok && EqualFormula(fa.Hypothesis, fb.Hypothesis) &&
			EqualFormula(fa.Consequent, fb.Consequent)
	default:
		return false
	}
}

// EqualTerm reports whether two terms are structurally identical.
// Parenthesization is significant: (n) does not equal n.
func EqualTerm(a, b parser.Term) bool {
	switch ta := a.(type) {
	case *parser.SymbolTerm:
		tb, ok := b.(*parser.SymbolTerm)
		return ok && ta.Name == tb.Name
	case *parser.NumberTerm:
		tb, ok := b.(*parser.NumberTerm)
		return ok && ta.Literal == tb.Literal
	case *parser.CoefficientTerm:
		tb, ok := b.(*parser.CoefficientTerm)
		return ok && ta.Number.Literal == tb.Number.Literal &&
			ta.Symbol.Name == tb.Symbol.Name
	case *parser.ParenTerm:
		tb, ok := b.(*parser.ParenTerm)
		return ok && EqualTerm(ta.Term, tb.Term)
	case *parser.GroupedTerm:
		tb, ok := b.(*parser.GroupedTerm)
		return ok && ta.Number.Literal == tb.Number.Literal &&
			EqualTerm(ta.Term, tb.Term)
	default:
		return false
	}
}

func equalCompound(a, b *parser.CompoundSymbol) bool {
	if len(a.Parts) != len(b.Parts) {
		return false
	}
	for i := range a.Parts {
		if a.Parts[i] != b.Parts[i] {
			return false
		}
	}
	return true
}
