package grammar

import (
	"fmt"
	"strings"
)

// Op is a binary operator of the expression language.
type Op int8

const (
	OpNone Op = iota
	Add       // '+'  overlay
	Sub       // '-'  erase
	And       // '&'  intersect
	Or        // '|'  overlay, same as Add
	Xor       // '^'  symmetric difference
	Concat    // '||' side by side
)

var opSymbols = [...]string{
	OpNone: "?",
	Add:    "+",
	Sub:    "-",
	And:    "&",
	Or:     "|",
	Xor:    "^",
	Concat: "||",
}

// String returns the infix symbol of an operator.
func (op Op) String() string {
	if op < 0 || int(op) >= len(opSymbols) {
		return "?"
	}
	return opSymbols[op]
}

// Node is a node of a parse tree. It is either a *Leaf or a *Binary; no other
// implementations exist.
type Node interface {
	// Pos returns the 1-based rune column where the node starts in the source.
	Pos() int
	String() string
	isNode()
}

// Leaf is a single letter or digit.
type Leaf struct {
	Char rune
	Col  int
}

// Binary combines two sub-trees with an operator.
type Binary struct {
	Op          Op
	Left, Right Node
	Col         int // column of the operator token
}

func (*Leaf) isNode()   {}
func (*Binary) isNode() {}

// Pos returns the column of the leaf character.
func (l *Leaf) Pos() int { return l.Col }

// Pos returns the column of the leftmost character covered by b.
func (b *Binary) Pos() int { return b.Left.Pos() }

func (l *Leaf) String() string {
	return string(l.Char)
}

// String prints a binary node in fully parenthesized infix form. It is meant
// for debugging; see Pretty and Polish for the user-facing notations.
func (b *Binary) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(b.Left.String())
	sb.WriteByte(' ')
	sb.WriteString(b.Op.String())
	sb.WriteByte(' ')
	sb.WriteString(b.Right.String())
	sb.WriteByte(')')
	return sb.String()
}

func unknownNode(n Node) string {
	return fmt.Sprintf("grammar: unknown parse tree node %T", n)
}
