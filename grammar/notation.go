package grammar

// PrettyPrinter is the interpretation printing a tree in infix notation,
// "A + B || C". Parentheses of the source are not reproduced.
var PrettyPrinter = Interpreter[string]{
	Leaf: func(ch rune) (string, error) {
		return string(ch), nil
	},
	Infix: func(op Op, lhs, rhs string) (string, error) {
		return lhs + " " + op.String() + " " + rhs, nil
	},
}

// PolishPrinter is the interpretation printing a tree in parenthesized
// prefix notation, "(|| (+ A B) C)".
var PolishPrinter = Interpreter[string]{
	Leaf: func(ch rune) (string, error) {
		return string(ch), nil
	},
	Infix: func(op Op, lhs, rhs string) (string, error) {
		return "(" + op.String() + " " + lhs + " " + rhs + ")", nil
	},
}

// Pretty parses an expression and prints it in infix notation.
func Pretty(text string) (string, error) {
	return interpret(text, PrettyPrinter)
}

// Polish parses an expression and prints it in prefix notation.
func Polish(text string) (string, error) {
	return interpret(text, PolishPrinter)
}

func interpret(text string, in Interpreter[string]) (string, error) {
	n, err := Parse(text)
	if err != nil {
		return "", err
	}
	return in.Fold(n)
}
