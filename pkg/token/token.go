// Package token defines the lexical vocabulary of the proof language.
//
// The vocabulary is fixed: a small set of keywords, the punctuation that
// separates clauses and groups terms, and the two dynamic classes SYMBOL
// and NUM. Keywords are matched case-insensitively against the table below.
package token

import "fmt"

// Type represents the type of a lexical token.
type Type int32

const (
	// Special tokens
	EOF Type = iota
	ILLEGAL

	// Dynamic classes
	SYMBOL // n, m, integer, even, ...
	NUM    // 2, 697, 24.837

	// Punctuation
	COLON  // :
	DOT    // .
	LPAREN // (
	RPAREN // )
	EQ     // =

	// Keywords
	PROVE
	LET
	BE
	THEREFORE
	BY
	WHERE
	DEFINITION
	SUBSTITUTION
	IS
	A
	IF
	THEN
)

// String returns a human-readable representation of the token type.
func (t Type) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps token types to their string representations.
var tokenNames = map[Type]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	SYMBOL: "SYMBOL",
	NUM:    "NUM",

	COLON:  ":",
	DOT:    ".",
	LPAREN: "(",
	RPAREN: ")",
	EQ:     "=",

	PROVE:        "PROVE",
	LET:          "LET",
	BE:           "BE",
	THEREFORE:    "THEREFORE",
	BY:           "BY",
	WHERE:        "WHERE",
	DEFINITION:   "DEFINITION",
	SUBSTITUTION: "SUBSTITUTION",
	IS:           "IS",
	A:            "A",
	IF:           "IF",
	THEN:         "THEN",
}

// keywords maps lowercase keyword strings to their token types.
// "an" folds to A so both article forms lex to the same kind.
var keywords = map[string]Type{
	"prove":        PROVE,
	"let":          LET,
	"be":           BE,
	"therefore":    THEREFORE,
	"by":           BY,
	"where":        WHERE,
	"definition":   DEFINITION,
	"substitution": SUBSTITUTION,
	"is":           IS,
	"a":            A,
	"an":           A,
	"if":           IF,
	"then":         THEN,
}

// LookupIdent returns the token type for the given lowercase identifier.
// If the identifier is a keyword, the keyword token type is returned.
// Otherwise, SYMBOL is returned.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return SYMBOL
}

// IsKeyword returns true if the token type is a keyword.
func IsKeyword(t Type) bool {
	return t >= PROVE && t <= THEN
}

// Token represents a lexical token with position information.
type Token struct {
	Type    Type
	Literal string
	Pos     Position
}
