package format

import (
	"bytes"
	"strings"

	"github.com/leapstack-labs/euclid/pkg/parser"
)

// printer accumulates canonical proof text.
type printer struct {
	output bytes.Buffer
}

func newPrinter() *printer {
	return &printer{}
}

// String returns the rendered output.
func (p *printer) String() string {
	return p.output.String()
}

func (p *printer) write(s string) {
	p.output.WriteString(s)
}

func (p *printer) writeln() {
	p.output.WriteByte('\n')
}

func (p *printer) formatProof(proof *parser.Proof) {
	p.write("Prove: ")
	p.formatFormula(proof.Goal)
	p.write(".")
	p.writeln()

	for _, clause := range proof.Clauses {
		p.formatClause(clause)
		p.writeln()
	}
}

func (p *printer) formatClause(clause parser.Clause) {
	switch c := clause.(type) {
	case *parser.LetTyped:
		p.write("Let ")
		p.write(c.Symbol)
		p.write(" be ")
		p.formatTypeName(c.Type)
	case *parser.LetEquation:
		p.write("Let ")
		p.write(c.Symbol)
		p.write(" = ")
		p.formatTerm(c.Value)
	case *parser.FormulaClause:
		if c.Justification != parser.JustificationNone {
			p.write("By ")
			p.write(string(c.Justification))
			p.write(" ")
		}
		p.formatFormula(c.Formula)
		if c.Where != nil {
			p.write(" where ")
			p.write(c.Where.Symbol)
			p.write(" is ")
			p.formatTypeName(c.Where.Type)
		}
	case *parser.Therefore:
		p.write("Therefore ")
		p.formatFormula(c.Formula)
	}
	p.write(".")
}

func (p *printer) formatFormula(f parser.Formula) {
	switch formula := f.(type) {
	case *parser.Equality:
		p.formatTerm(formula.Left)
		p.write(" = ")
		p.formatTerm(formula.Right)
	case *parser.TypeAssertion:
		p.formatTerm(formula.Term)
		p.write(" is ")
		p.formatTypeName(formula.Type)
	case *parser.Conditional:
		p.write("if ")
		p.formatFormula(formula.Hypothesis)
		p.write(" then ")
		p.formatFormula(formula.Consequent)
	}
}

func (p *printer) formatTerm(t parser.Term) {
	switch term := t.(type) {
	case *parser.SymbolTerm:
		p.write(term.Name)
	case *parser.NumberTerm:
		p.write(term.Literal)
	case *parser.CoefficientTerm:
		p.write(term.Number.Literal)
		p.write(term.Symbol.Name)
	case *parser.ParenTerm:
		p.write("(")
		p.formatTerm(term.Term)
		p.write(")")
	case *parser.GroupedTerm:
		p.write(term.Number.Literal)
		p.write("(")
		p.formatTerm(term.Term)
		p.write(")")
	}
}

// formatTypeName writes the article and the compound type name,
// e.g. "an even number" or "a prime".
func (p *printer) formatTypeName(typ *parser.CompoundSymbol) {
	p.write(article(typ))
	p.write(" ")
	p.write(typ.Name())
}

// article picks "a" or "an" by the leading letter of the type name.
func article(typ *parser.CompoundSymbol) string {
	name := typ.Name()
	if name != "" && strings.ContainsRune("aeiouAEIOU", rune(name[0])) {
		return "an"
	}
	return "a"
}
