package parser

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/euclid/pkg/token"
)

// LexError represents a lexical analysis error: an unrecognized character
// at a given position. Tokenization aborts at the first offense.
type LexError struct {
	Pos  Position
	Char string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer error at line %d, column %d: unrecognized character %q",
		e.Pos.Line, e.Pos.Column, e.Char)
}

// ParseError represents a parsing error with position information. It
// records the grammar production in progress, the token actually found,
// and the set of token types that would have been accepted.
type ParseError struct {
	Pos        Position
	Production string
	Got        token.Type
	Expected   []token.Type
	Message    string // overrides the expected-set message when set
}

func (e *ParseError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("unexpected token %s, expected %s", e.Got, expectedList(e.Expected))
	}
	if e.Production != "" {
		msg = fmt.Sprintf("%s (while parsing %s)", msg, e.Production)
	}
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, msg)
}

// expectedList renders an expected token set for error messages.
func expectedList(types []token.Type) string {
	if len(types) == 0 {
		return "nothing"
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
