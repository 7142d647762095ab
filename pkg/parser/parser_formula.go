package parser

import (
	"github.com/leapstack-labs/euclid/pkg/token"
)

// Formula and term parsing.
//
// Grammar:
//
//	formula         → IF formula THEN formula
//	                | term EQ term
//	                | term IS A compound-symbol
//	term            → SYMBOL | NUM | NUM SYMBOL
//	                | NUM LPAREN term RPAREN | LPAREN term RPAREN
//	compound-symbol → SYMBOL+
//
// Term alternatives are distinguished by inspecting the first token and at
// most one token of lookahead; there is no backtracking. Recursion through
// parenthesized terms and conditional formulas is bounded by the parser's
// configured maximum nesting depth.

// parseFormula parses a formula, dispatching on the token after the
// leading term: EQ starts an equality, IS (or BE) a type assertion.
func (p *Parser) parseFormula() (Formula, error) {
	if err := p.enter("formula"); err != nil {
		return nil, err
	}
	defer p.leave()

	if p.match(token.IF) {
		hypothesis, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.THEN, "formula"); err != nil {
			return nil, err
		}
		consequent, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		return &Conditional{Hypothesis: hypothesis, Consequent: consequent}, nil
	}

	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	switch p.cur().Type {
	case token.EQ:
		p.nextToken()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return &Equality{Left: left, Right: right}, nil

	case token.IS, token.BE:
		p.nextToken()
		if _, err := p.expect(token.A, "formula"); err != nil {
			return nil, err
		}
		typ, err := p.parseCompoundSymbol("formula")
		if err != nil {
			return nil, err
		}
		return &TypeAssertion{Term: left, Type: typ}, nil

	default:
		return nil, p.errorExpecting("formula", token.EQ, token.IS)
	}
}

// parseTerm parses one of the five term alternatives by first-token
// inspection. A NUM followed by a SYMBOL is a single coefficient term; a
// NUM followed by LPAREN multiplies a parenthesized sub-term.
func (p *Parser) parseTerm() (Term, error) {
	if err := p.enter("term"); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.cur().Type {
	case token.SYMBOL:
		tok := p.cur()
		p.nextToken()
		return &SymbolTerm{Name: tok.Literal}, nil

	case token.NUM:
		num := &NumberTerm{Literal: p.cur().Literal}
		p.nextToken()

		switch p.cur().Type {
		case token.SYMBOL:
			sym := &SymbolTerm{Name: p.cur().Literal}
			p.nextToken()
			return &CoefficientTerm{Number: num, Symbol: sym}, nil
		case token.LPAREN:
			p.nextToken()
			inner, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RPAREN, "term"); err != nil {
				return nil, err
			}
			return &GroupedTerm{Number: num, Term: inner}, nil
		default:
			return num, nil
		}

	case token.LPAREN:
		p.nextToken()
		inner, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, "term"); err != nil {
			return nil, err
		}
		return &ParenTerm{Term: inner}, nil

	default:
		return nil, p.errorExpecting("term", token.SYMBOL, token.NUM, token.LPAREN)
	}
}

// parseCompoundSymbol greedily consumes consecutive SYMBOL tokens. At
// least one is required.
func (p *Parser) parseCompoundSymbol(production string) (*CompoundSymbol, error) {
	first, err := p.expect(token.SYMBOL, production)
	if err != nil {
		return nil, err
	}
	parts := []string{first.Literal}
	for p.check(token.SYMBOL) {
		parts = append(parts, p.cur().Literal)
		p.nextToken()
	}
	return &CompoundSymbol{Parts: parts}, nil
}
