package grammar

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func leaf(c rune) *Leaf { return &Leaf{Char: c} }

func bin(op Op, l, r Node) *Binary { return &Binary{Op: op, Left: l, Right: r} }

// sameShape compares two trees, ignoring source positions.
func sameShape(n, m Node) bool {
	switch n := n.(type) {
	case *Leaf:
		o, ok := m.(*Leaf)
		return ok && n.Char == o.Char
	case *Binary:
		o, ok := m.(*Binary)
		return ok && n.Op == o.Op && sameShape(n.Left, o.Left) && sameShape(n.Right, o.Right)
	}
	return false
}

func TestParseSingleCharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.grammar")
	defer teardown()
	//
	for _, c := range "AZaz09Q7" {
		n, err := Parse(string(c))
		if err != nil {
			t.Fatalf("parsing %q: %v", c, err)
		}
		l, ok := n.(*Leaf)
		if !ok || l.Char != c || l.Pos() != 1 {
			t.Errorf("expected leaf %q at 1, got %#v", c, n)
		}
	}
}

func TestParseShapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.grammar")
	defer teardown()
	//
	A, B, C, D := leaf('A'), leaf('B'), leaf('C'), leaf('D')
	cases := []struct {
		src  string
		tree Node
	}{
		{"A + B", bin(Add, A, B)},
		{"A-B", bin(Sub, A, B)},
		{"A & B", bin(And, A, B)},
		{"A | B", bin(Or, A, B)},
		{"A ^ B", bin(Xor, A, B)},
		{"A || B", bin(Concat, A, B)},
		// tier 2 is left-associative
		{"A + B - C", bin(Sub, bin(Add, A, B), C)},
		{"A ^ B & C | D", bin(Or, bin(And, bin(Xor, A, B), C), D)},
		// concatenation binds least
		{"A + B || C", bin(Concat, bin(Add, A, B), C)},
		{"A || B + C", bin(Concat, A, bin(Add, B, C))},
		{"A || B || C", bin(Concat, bin(Concat, A, B), C)},
		{"A + B || C - D", bin(Concat, bin(Add, A, B), bin(Sub, C, D))},
		// parentheses group but leave no trace
		{"(A)", A},
		{"((A))", A},
		{"A + (B - C)", bin(Add, A, bin(Sub, B, C))},
		{"(A || B) + C", bin(Add, bin(Concat, A, B), C)},
		{" ( A+B ) ", bin(Add, A, B)},
	}
	for _, c := range cases {
		n, err := Parse(c.src)
		if err != nil {
			t.Errorf("%q: unexpected error %v", c.src, err)
			continue
		}
		if !sameShape(n, c.tree) {
			t.Errorf("%q: expected %v, got %v", c.src, c.tree, n)
		}
	}
}

func TestParsePositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.grammar")
	defer teardown()
	//
	n, err := Parse("A + (B || C)")
	if err != nil {
		t.Fatal(err)
	}
	b := n.(*Binary)
	if b.Col != 3 || b.Pos() != 1 {
		t.Errorf("expected operator at 3 and node at 1, got %d and %d", b.Col, b.Pos())
	}
	inner := b.Right.(*Binary)
	if inner.Col != 8 || inner.Pos() != 6 {
		t.Errorf("expected operator at 8 and node at 6, got %d and %d", inner.Col, inner.Pos())
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.grammar")
	defer teardown()
	//
	ops := []string{"+", "-", "&", "|", "^", "||"}
	cases := []struct {
		src      string
		col      int
		expected []string
		found    string
	}{
		{"", 1, []string{alnumExpected, "("}, endOfInput},
		{"   ", 4, []string{alnumExpected, "("}, endOfInput},
		{"A +", 4, []string{alnumExpected, "("}, endOfInput},
		{"+ A", 1, []string{alnumExpected, "("}, `"+"`},
		{"A + + B", 5, []string{alnumExpected, "("}, `"+"`},
		{"A B", 3, append(ops, endOfInput), `"B"`},
		{"AB", 2, append(ops, endOfInput), `"B"`},
		{"(A", 3, append(ops, ")"), endOfInput},
		{"((A + B)", 9, append(ops, ")"), endOfInput},
		{"A)", 2, append(ops, endOfInput), `")"`},
		{"()", 2, []string{alnumExpected, "("}, `")"`},
		{"A $ B", 3, append(ops, endOfInput), `"$"`},
		{"$", 1, []string{alnumExpected, "("}, `"$"`},
		{"A + ä", 5, []string{alnumExpected, "("}, `"ä"`},
		{"A (B)", 3, append(ops, endOfInput), `"("`},
	}
	for _, c := range cases {
		n, err := Parse(c.src)
		if err == nil {
			t.Errorf("%q: expected error, parsed %v", c.src, n)
			continue
		}
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("%q: expected *SyntaxError, got %T", c.src, err)
			continue
		}
		if serr.Pos() != c.col {
			t.Errorf("%q: expected error at %d, got %d (%v)", c.src, c.col, serr.Pos(), err)
		}
		if !reflect.DeepEqual(serr.Expected, c.expected) {
			t.Errorf("%q: expected set %v, got %v", c.src, c.expected, serr.Expected)
		}
		if serr.Found != c.found {
			t.Errorf("%q: expected to find %s, got %s", c.src, c.found, serr.Found)
		}
	}
}

func TestSyntaxErrorMessage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.grammar")
	defer teardown()
	//
	_, err := Parse("A +")
	want := `4: syntax error: expected one of letter or digit, "("; found end of input`
	if err == nil || err.Error() != want {
		t.Errorf("expected message %q, got %v", want, err)
	}
}

func TestPrecedenceTable(t *testing.T) {
	for _, r := range Operators {
		if binop(string(r)).op == OpNone {
			t.Errorf("no operator for %c", r)
		}
	}
	if !binop("+").moreBinding(binop("||")) {
		t.Errorf("expected + to bind more than ||")
	}
	if binop("+").moreBinding(binop("-")) || binop("||").moreBinding(binop("||")) {
		t.Errorf("expected operators to be left-associative")
	}
}
