// Package check validates the structure of a parsed proof.
//
// The checks are structural, not deductive: the goal must be restated by
// the proof body (the hypothesis and conclusion for conditional goals),
// and type assertions over numeric literals must hold under the builtin
// predicates. No substitution or inference checking is performed.
package check

import (
	"fmt"

	"github.com/leapstack-labs/euclid/pkg/format"
	"github.com/leapstack-labs/euclid/pkg/parser"
	"github.com/leapstack-labs/euclid/pkg/token"
)

// Finding reports one problem found in a proof.
type Finding struct {
	Pos     token.Position
	Message string
}

func (f Finding) String() string {
	if f.Pos.IsValid() {
		return fmt.Sprintf("line %d: %s", f.Pos.Line, f.Message)
	}
	return f.Message
}

// Check validates the proof and returns all findings. An empty slice
// means no problems were detected.
func Check(proof *parser.Proof) []Finding {
	var findings []Finding

	findings = append(findings, checkGoal(proof)...)
	findings = append(findings, checkLiterals(proof)...)

	return findings
}

// checkGoal verifies that the proof body restates its goal. For a
// conditional goal the first stated formula must match the hypothesis and
// the final one the consequent; otherwise the final formula must match
// the goal itself.
func checkGoal(proof *parser.Proof) []Finding {
	first, firstPos := firstStatedFormula(proof.Clauses)
	last, lastPos := lastStatedFormula(proof.Clauses)

	if cond, ok := proof.Goal.(*parser.Conditional); ok {
		var findings []Finding
		if first == nil || !EqualFormula(first, cond.Hypothesis) {
			findings = append(findings, Finding{
				Pos: firstPos,
				Message: fmt.Sprintf("the first statement of the proof does not match the hypothesis %q",
					format.Formula(cond.Hypothesis)),
			})
		}
		if last == nil || !EqualFormula(last, cond.Consequent) {
			findings = append(findings, Finding{
				Pos: lastPos,
				Message: fmt.Sprintf("the final statement of the proof does not match the consequent %q",
					format.Formula(cond.Consequent)),
			})
		}
		return findings
	}

	if last == nil || !EqualFormula(last, proof.Goal) {
		return []Finding{{
			Pos: lastPos,
			Message: fmt.Sprintf("the final statement of the proof does not match the statement to be proven %q",
				format.Formula(proof.Goal)),
		}}
	}
	return nil
}

// checkLiterals walks the whole proof and validates type assertions whose
// subject is a numeric literal against the builtin predicates. Assertions
// over symbols or unknown type names are left alone.
func checkLiterals(proof *parser.Proof) []Finding {
	var findings []Finding

	parser.Walk(proof, func(node any) bool {
		assertion, ok := node.(*parser.TypeAssertion)
		if !ok {
			return true
		}
		num, ok := literalValue(assertion.Term)
		if !ok {
			return true
		}
		name := assertion.Type.Parts[0]
		pred, ok := LookupPredicate(name)
		if !ok {
			return true
		}
		if !pred(num) {
			findings = append(findings, Finding{
				Message: fmt.Sprintf("%s is not %s", format.Term(assertion.Term), name),
			})
		}
		return true
	})

	return findings
}

// firstStatedFormula returns the first formula asserted by the body,
// skipping let clauses, which bind rather than state.
func firstStatedFormula(clauses []parser.Clause) (parser.Formula, token.Position) {
	for _, clause := range clauses {
		if f := statedFormula(clause); f != nil {
			return f, clauseStart(clause)
		}
	}
	return nil, token.Position{}
}

// lastStatedFormula returns the final formula asserted by the body.
func lastStatedFormula(clauses []parser.Clause) (parser.Formula, token.Position) {
	for i := len(clauses) - 1; i >= 0; i-- {
		if f := statedFormula(clauses[i]); f != nil {
			return f, clauseStart(clauses[i])
		}
	}
	return nil, token.Position{}
}

// statedFormula returns the formula a clause asserts, or nil for clauses
// that only bind symbols.
func statedFormula(clause parser.Clause) parser.Formula {
	switch c := clause.(type) {
	case *parser.FormulaClause:
		return c.Formula
	case *parser.Therefore:
		return c.Formula
	default:
		return nil
	}
}

func clauseStart(clause parser.Clause) token.Position {
	type spanner interface {
		GetSpan() token.Span
	}
	if s, ok := clause.(spanner); ok {
		return s.GetSpan().Start
	}
	return token.Position{}
}
