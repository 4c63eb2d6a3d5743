package grammar

// Interpreter folds parse trees into values of type R.
//
// Leaf is called exactly once for every character of the source expression,
// in reading order. Infix is called for every operator after both of its
// operands have been folded, left operand first. The first error returned by
// either callback stops the fold and is returned from Fold.
type Interpreter[R any] struct {
	Leaf  func(ch rune) (R, error)
	Infix func(op Op, lhs, rhs R) (R, error)
}

// Fold applies the interpreter to a parse tree.
func (in Interpreter[R]) Fold(n Node) (R, error) {
	var zero R
	switch n := n.(type) {
	case *Leaf:
		return in.Leaf(n.Char)
	case *Binary:
		lhs, err := in.Fold(n.Left)
		if err != nil {
			return zero, err
		}
		rhs, err := in.Fold(n.Right)
		if err != nil {
			return zero, err
		}
		return in.Infix(n.Op, lhs, rhs)
	default:
		panic(unknownNode(n))
	}
}
