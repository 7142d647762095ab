// Package format renders a parsed Proof back to canonical proof text.
//
// The canonical form writes one clause per line, capitalizes clause
// leaders ("Prove:", "Let", "By", "Therefore"), and lowercases the inner
// keywords, matching the style of the sample corpus. Formatting then
// re-parsing a proof yields a structurally identical AST.
package format

import (
	"github.com/leapstack-labs/euclid/pkg/parser"
)

// Format renders the proof in canonical form.
func Format(proof *parser.Proof) string {
	p := newPrinter()
	p.formatProof(proof)
	return p.String()
}

// Formula renders a single formula without a trailing DOT. Useful for
// error messages and checker findings.
func Formula(f parser.Formula) string {
	p := newPrinter()
	p.formatFormula(f)
	return p.String()
}

// Term renders a single term.
func Term(t parser.Term) string {
	p := newPrinter()
	p.formatTerm(t)
	return p.String()
}
