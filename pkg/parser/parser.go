// Package parser provides lexing and parsing for the proof language.
//
// # Usage
//
//	proof, err := parser.Parse("Prove: 2n is an even number. ...")
//	if err != nil {
//	    // handle *LexError or *ParseError
//	}
//
// # Grammar Overview
//
// The parser implements a recursive descent parser for the proof grammar:
//
//	proof            → prove-clause clause+
//	prove-clause     → PROVE COLON formula DOT
//	clause           → let-clause | formula-clause | therefore-clause
//	let-clause       → LET SYMBOL BE A compound-symbol DOT
//	                 | LET SYMBOL EQ term DOT
//	formula-clause   → [BY justification] formula [where] DOT
//	therefore-clause → THEREFORE formula DOT
//	formula          → IF formula THEN formula
//	                 | term EQ term
//	                 | term IS A compound-symbol
//	term             → SYMBOL | NUM | NUM SYMBOL
//	                 | NUM LPAREN term RPAREN | LPAREN term RPAREN
//	justification    → DEFINITION | SUBSTITUTION
//	where            → WHERE SYMBOL IS A compound-symbol
//	compound-symbol  → SYMBOL+
//
// See parser_clause.go and parser_formula.go for the production
// implementations.
package parser

import (
	"fmt"

	"github.com/leapstack-labs/euclid/pkg/token"
)

// DefaultMaxDepth is the default maximum nesting depth for recursive
// productions (terms and conditional formulas). It guards against
// pathological nested-parenthesis input exhausting the call stack.
const DefaultMaxDepth = 64

// Parser parses a token sequence into a Proof.
type Parser struct {
	tokens   []Token
	pos      int
	depth    int
	maxDepth int
}

// NewParser creates a new parser over the given token sequence.
// The sequence must end with an EOF token, as produced by Tokenize.
func NewParser(tokens []Token) *Parser {
	return NewParserWithDepth(tokens, DefaultMaxDepth)
}

// NewParserWithDepth creates a new parser with a custom maximum nesting
// depth for recursive productions.
func NewParserWithDepth(tokens []Token, maxDepth int) *Parser {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Parser{tokens: tokens, maxDepth: maxDepth}
}

// Parse tokenizes and parses the given proof text.
func Parse(text string) (*Proof, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseTokens parses a token sequence into a Proof. Parsing stops at the
// first error; no partial AST is returned.
func ParseTokens(tokens []Token) (*Proof, error) {
	p := NewParser(tokens)
	return p.Parse()
}

// Parse runs the proof production over the parser's token sequence.
func (p *Parser) Parse() (*Proof, error) {
	return p.parseProof()
}

// ---------- Token Helpers ----------

// cur returns the current token. Past the end of the sequence it keeps
// returning the final EOF token.
func (p *Parser) cur() Token {
	if p.pos >= len(p.tokens) {
		if len(p.tokens) == 0 {
			return Token{Type: token.EOF}
		}
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

// peek returns the lookahead token.
func (p *Parser) peek() Token {
	if p.pos+1 >= len(p.tokens) {
		return Token{Type: token.EOF, Pos: p.cur().Pos}
	}
	return p.tokens[p.pos+1]
}

// nextToken advances to the next token.
func (p *Parser) nextToken() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.Type) bool {
	return p.cur().Type == t
}

// checkPeek returns true if the lookahead token is of the given type.
func (p *Parser) checkPeek(t token.Type) bool {
	return p.peek().Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.Type) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes and returns the current token if it matches, otherwise
// returns a ParseError naming the production and the expected token.
func (p *Parser) expect(t token.Type, production string) (Token, error) {
	if p.check(t) {
		tok := p.cur()
		p.nextToken()
		return tok, nil
	}
	return Token{}, p.errorExpecting(production, t)
}

// errorExpecting builds a ParseError for the current token with the given
// expected set.
func (p *Parser) errorExpecting(production string, expected ...token.Type) error {
	return &ParseError{
		Pos:        p.cur().Pos,
		Production: production,
		Got:        p.cur().Type,
		Expected:   expected,
	}
}

// ---------- Depth Guard ----------

// enter increments the recursion depth, failing once the configured
// maximum is exceeded.
func (p *Parser) enter(production string) error {
	p.depth++
	if p.depth > p.maxDepth {
		return &ParseError{
			Pos:        p.cur().Pos,
			Production: production,
			Got:        p.cur().Type,
			Message:    fmt.Sprintf("maximum nesting depth %d exceeded", p.maxDepth),
		}
	}
	return nil
}

// leave decrements the recursion depth.
func (p *Parser) leave() {
	p.depth--
}
