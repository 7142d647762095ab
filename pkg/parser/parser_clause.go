package parser

import (
	"github.com/leapstack-labs/euclid/pkg/token"
)

// Clause parsing: the prove clause and the three body clause kinds.
//
// Grammar:
//
//	proof            → prove-clause clause+
//	prove-clause     → PROVE COLON formula DOT
//	clause           → let-clause | formula-clause | therefore-clause
//	let-clause       → LET SYMBOL BE A compound-symbol DOT
//	                 | LET SYMBOL EQ term DOT
//	formula-clause   → [BY justification] formula [where] DOT
//	therefore-clause → THEREFORE formula DOT
//	justification    → DEFINITION | SUBSTITUTION
//	where            → WHERE SYMBOL IS A compound-symbol
//
// Clause alternatives are selected by first-token dispatch: LET starts a
// let clause, THEREFORE a therefore clause, and anything else (BY or a
// token starting a term) a formula clause.

// parseProof parses a complete proof: one prove clause followed by at
// least one body clause.
func (p *Parser) parseProof() (*Proof, error) {
	start := p.cur().Pos

	goal, err := p.parseProveClause()
	if err != nil {
		return nil, err
	}

	var clauses []Clause
	for !p.check(token.EOF) {
		clause, err := p.parseClause()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}

	if len(clauses) == 0 {
		return nil, &ParseError{
			Pos:        p.cur().Pos,
			Production: "proof",
			Got:        p.cur().Type,
			Expected:   []token.Type{token.LET, token.THEREFORE, token.BY},
			Message:    "proof body is empty, expected at least one clause",
		}
	}

	proof := &Proof{
		Goal:    goal,
		Clauses: clauses,
	}
	proof.Span = token.Span{Start: start, End: p.cur().Pos}
	return proof, nil
}

// parseProveClause parses: PROVE COLON formula DOT.
func (p *Parser) parseProveClause() (Formula, error) {
	if _, err := p.expect(token.PROVE, "prove-clause"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON, "prove-clause"); err != nil {
		return nil, err
	}
	formula, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DOT, "prove-clause"); err != nil {
		return nil, err
	}
	return formula, nil
}

// parseClause parses one body clause, dispatching on the first token.
func (p *Parser) parseClause() (Clause, error) {
	switch p.cur().Type {
	case token.LET:
		return p.parseLetClause()
	case token.THEREFORE:
		return p.parseThereforeClause()
	default:
		return p.parseFormulaClause()
	}
}

// parseLetClause parses both let-clause forms. After LET SYMBOL, the next
// token distinguishes the equation form (EQ) from the typed form (BE).
func (p *Parser) parseLetClause() (Clause, error) {
	start := p.cur().Pos

	if _, err := p.expect(token.LET, "let-clause"); err != nil {
		return nil, err
	}
	symbol, err := p.expect(token.SYMBOL, "let-clause")
	if err != nil {
		return nil, err
	}

	switch p.cur().Type {
	case token.EQ:
		p.nextToken()
		value, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		end, err := p.expect(token.DOT, "let-clause")
		if err != nil {
			return nil, err
		}
		clause := &LetEquation{Symbol: symbol.Literal, Value: value}
		clause.Span = token.Span{Start: start, End: end.Pos}
		return clause, nil

	case token.BE:
		p.nextToken()
		if _, err := p.expect(token.A, "let-clause"); err != nil {
			return nil, err
		}
		typ, err := p.parseCompoundSymbol("let-clause")
		if err != nil {
			return nil, err
		}
		end, err := p.expect(token.DOT, "let-clause")
		if err != nil {
			return nil, err
		}
		clause := &LetTyped{Symbol: symbol.Literal, Type: typ}
		clause.Span = token.Span{Start: start, End: end.Pos}
		return clause, nil

	default:
		return nil, p.errorExpecting("let-clause", token.BE, token.EQ)
	}
}

// parseThereforeClause parses: THEREFORE formula DOT.
func (p *Parser) parseThereforeClause() (Clause, error) {
	start := p.cur().Pos

	if _, err := p.expect(token.THEREFORE, "therefore-clause"); err != nil {
		return nil, err
	}
	formula, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(token.DOT, "therefore-clause")
	if err != nil {
		return nil, err
	}

	clause := &Therefore{Formula: formula}
	clause.Span = token.Span{Start: start, End: end.Pos}
	return clause, nil
}

// parseFormulaClause parses: [BY justification] formula [where] DOT.
// The presence of BY and WHERE is token-driven, never backtracked.
func (p *Parser) parseFormulaClause() (Clause, error) {
	start := p.cur().Pos

	justification := JustificationNone
	if p.match(token.BY) {
		j, err := p.parseJustification()
		if err != nil {
			return nil, err
		}
		justification = j
	}

	formula, err := p.parseFormula()
	if err != nil {
		return nil, err
	}

	var where *WhereAnnotation
	if p.check(token.WHERE) {
		where, err = p.parseWhere()
		if err != nil {
			return nil, err
		}
	}

	end, err := p.expect(token.DOT, "formula-clause")
	if err != nil {
		return nil, err
	}

	clause := &FormulaClause{
		Justification: justification,
		Formula:       formula,
		Where:         where,
	}
	clause.Span = token.Span{Start: start, End: end.Pos}
	return clause, nil
}

// parseJustification parses one of the two fixed rule names.
func (p *Parser) parseJustification() (Justification, error) {
	switch p.cur().Type {
	case token.DEFINITION:
		p.nextToken()
		return JustificationDefinition, nil
	case token.SUBSTITUTION:
		p.nextToken()
		return JustificationSubstitution, nil
	default:
		return JustificationNone,
			p.errorExpecting("justification", token.DEFINITION, token.SUBSTITUTION)
	}
}

// parseWhere parses: WHERE SYMBOL IS A compound-symbol. BE is accepted in
// place of IS, matching the surface forms "is" and "be".
func (p *Parser) parseWhere() (*WhereAnnotation, error) {
	if _, err := p.expect(token.WHERE, "where"); err != nil {
		return nil, err
	}
	symbol, err := p.expect(token.SYMBOL, "where")
	if err != nil {
		return nil, err
	}
	if !p.match(token.IS) && !p.match(token.BE) {
		return nil, p.errorExpecting("where", token.IS, token.BE)
	}
	if _, err := p.expect(token.A, "where"); err != nil {
		return nil, err
	}
	typ, err := p.parseCompoundSymbol("where")
	if err != nil {
		return nil, err
	}
	return &WhereAnnotation{Symbol: symbol.Literal, Type: typ}, nil
}
