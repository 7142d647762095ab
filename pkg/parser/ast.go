package parser

import (
	"strings"

	"github.com/leapstack-labs/euclid/pkg/token"
)

// Type aliases so callers can work with the parser package alone.
type (
	// Token is an alias for token.Token.
	Token = token.Token
	// Position is an alias for token.Position.
	Position = token.Position
)

// Clause represents one grammatical unit of a proof body.
type Clause interface {
	clauseNode()
}

// Formula represents an equality, a type assertion, or a conditional.
type Formula interface {
	formulaNode()
}

// Term represents an arithmetic expression over symbols, numbers,
// coefficients, and parenthesization.
type Term interface {
	termNode()
}

// NodeInfo provides common fields for clause-level AST nodes.
type NodeInfo struct {
	Span token.Span
}

// GetSpan returns the node's source span.
func (n *NodeInfo) GetSpan() token.Span {
	return n.Span
}

// ---------- Proof ----------

// Proof is the root AST node: a goal formula and the ordered clauses
// that argue it. A Proof is only built by the parser, so its shape
// invariants (non-nil goal, at least one clause) hold by construction.
type Proof struct {
	NodeInfo
	Goal    Formula
	Clauses []Clause
}

// ---------- Clause Types ----------

// LetTyped binds a symbol to a type annotation.
// Example: Let n be an even number.
type LetTyped struct {
	NodeInfo
	Symbol string
	Type   *CompoundSymbol
}

func (*LetTyped) clauseNode() {}

// LetEquation binds a symbol to a term via equality.
// Example: Let m = 2n.
type LetEquation struct {
	NodeInfo
	Symbol string
	Value  Term
}

func (*LetEquation) clauseNode() {}

// FormulaClause asserts a formula, optionally citing a justification and
// optionally attaching a where annotation.
// Example: By definition n = 2k where k is an integer.
type FormulaClause struct {
	NodeInfo
	Justification Justification
	Formula       Formula
	Where         *WhereAnnotation
}

func (*FormulaClause) clauseNode() {}

// Therefore concludes with a formula.
// Example: Therefore m is an even number.
type Therefore struct {
	NodeInfo
	Formula Formula
}

func (*Therefore) clauseNode() {}

// Justification names the rule cited for a formula step.
type Justification string

// Justification constants for the fixed rule names.
const (
	JustificationNone         Justification = ""
	JustificationDefinition   Justification = "definition"
	JustificationSubstitution Justification = "substitution"
)

// WhereAnnotation attaches a type annotation to a symbol within a
// formula clause. Example: where k is an integer.
type WhereAnnotation struct {
	Symbol string
	Type   *CompoundSymbol
}

// CompoundSymbol is a multi-word type name, e.g. "even number".
// It always has at least one part.
type CompoundSymbol struct {
	Parts []string
}

// Name returns the space-joined type name.
func (c *CompoundSymbol) Name() string {
	return strings.Join(c.Parts, " ")
}

// ---------- Formula Types ----------

// Equality represents an equality between two terms.
type Equality struct {
	Left  Term
	Right Term
}

func (*Equality) formulaNode() {}

// TypeAssertion represents "term is a compound-symbol".
type TypeAssertion struct {
	Term Term
	Type *CompoundSymbol
}

func (*TypeAssertion) formulaNode() {}

// Conditional represents "if formula then formula".
type Conditional struct {
	Hypothesis Formula
	Consequent Formula
}

func (*Conditional) formulaNode() {}

// ---------- Term Types ----------

// SymbolTerm represents a bare symbol.
type SymbolTerm struct {
	Name string
}

func (*SymbolTerm) termNode() {}

// NumberTerm represents a numeric literal. The literal text is kept
// verbatim; consumers that need a value parse it themselves.
type NumberTerm struct {
	Literal string
}

func (*NumberTerm) termNode() {}

// CoefficientTerm represents a number immediately multiplying a symbol,
// e.g. 2n.
type CoefficientTerm struct {
	Number *NumberTerm
	Symbol *SymbolTerm
}

func (*CoefficientTerm) termNode() {}

// ParenTerm represents a parenthesized term.
type ParenTerm struct {
	Term Term
}

func (*ParenTerm) termNode() {}

// GroupedTerm represents a number multiplying a parenthesized term,
// e.g. 2(2k).
type GroupedTerm struct {
	Number *NumberTerm
	Term   Term
}

func (*GroupedTerm) termNode() {}
