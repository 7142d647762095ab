package parser

// Walk traverses an AST depth-first and calls fn for each node.
// If fn returns false, traversal stops below that node.
func Walk(node any, fn func(node any) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	walkNode(node, fn)
}

func walkNode(node any, fn func(node any) bool) {
	switch n := node.(type) {
	case *Proof:
		if n == nil {
			return
		}
		Walk(n.Goal, fn)
		for _, clause := range n.Clauses {
			Walk(clause, fn)
		}

	case *LetTyped:
		if n == nil {
			return
		}
		Walk(n.Type, fn)

	case *LetEquation:
		if n == nil {
			return
		}
		Walk(n.Value, fn)

	case *FormulaClause:
		if n == nil {
			return
		}
		Walk(n.Formula, fn)
		if n.Where != nil {
			Walk(n.Where, fn)
		}

	case *Therefore:
		if n == nil {
			return
		}
		Walk(n.Formula, fn)

	case *WhereAnnotation:
		if n == nil {
			return
		}
		Walk(n.Type, fn)

	case *Equality:
		if n == nil {
			return
		}
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *TypeAssertion:
		if n == nil {
			return
		}
		Walk(n.Term, fn)
		Walk(n.Type, fn)

	case *Conditional:
		if n == nil {
			return
		}
		Walk(n.Hypothesis, fn)
		Walk(n.Consequent, fn)

	case *CoefficientTerm:
		if n == nil {
			return
		}
		Walk(n.Number, fn)
		Walk(n.Symbol, fn)

	case *ParenTerm:
		if n == nil {
			return
		}
		Walk(n.Term, fn)

	case *GroupedTerm:
		if n == nil {
			return
		}
		Walk(n.Number, fn)
		Walk(n.Term, fn)

	case *SymbolTerm, *NumberTerm, *CompoundSymbol:
		// Leaf nodes
	}
}
