package check

import (
	"math"
	"strconv"
	"strings"

	"github.com/leapstack-labs/euclid/pkg/parser"
)

// Predicate tests a numeric value against a type name.
type Predicate func(val float64) bool

// predicates maps lowercase type names to their builtin predicates.
var predicates = map[string]Predicate{
	"even":    isEven,
	"odd":     isOdd,
	"integer": isInteger,
}

// LookupPredicate returns the builtin predicate for the given type name,
// if one exists. The lookup is case-insensitive.
func LookupPredicate(name string) (Predicate, bool) {
	p, ok := predicates[strings.ToLower(name)]
	return p, ok
}

func isEven(val float64) bool {
	return isInteger(val) && math.Mod(val, 2) == 0
}

func isOdd(val float64) bool {
	return isInteger(val) && math.Mod(math.Abs(val), 2) == 1
}

func isInteger(val float64) bool {
	return val == math.Trunc(val)
}

// literalValue extracts the numeric value of a term when the term is a
// plain literal, unwrapping parentheses. Terms involving symbols have no
// literal value.
func literalValue(t parser.Term) (float64, bool) {
	switch term := t.(type) {
	case *parser.NumberTerm:
		val, err := strconv.ParseFloat(term.Literal, 64)
		if err != nil {
			return 0, false
		}
		return val, true
	case *parser.ParenTerm:
		return literalValue(term.Term)
	default:
		return 0, false
	}
}
