package grammar

import (
	"strconv"
	"strings"
)

// Descriptions of expected input which is not a literal token.
const (
	alnumExpected = "letter or digit"
	endOfInput    = "end of input"
)

// SyntaxError is an error indicating input which does not conform to the
// grammar of expressions.
type SyntaxError struct {
	// Col is the position of the offending token as the number of runes up to
	// and including the start of the token. For an unexpected end of input it
	// is one past the last rune.
	Col int
	// Expected is the set of tokens which would have been valid at Col.
	Expected []string
	// Found is the token encountered instead.
	Found string
}

func (err *SyntaxError) Error() string {
	var b strings.Builder
	b.WriteString("syntax error: expected ")
	if len(err.Expected) > 1 {
		b.WriteString("one of ")
	}
	for i, e := range err.Expected {
		if i > 0 {
			b.WriteString(", ")
		}
		if e == alnumExpected || e == endOfInput {
			b.WriteString(e)
		} else {
			b.WriteString(strconv.Quote(e))
		}
	}
	b.WriteString("; found ")
	b.WriteString(err.Found)
	return errpos(err.Col, b.String())
}

// Pos returns the position of the error.
func (err *SyntaxError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

func unexpected(tok lexToken, expected []string) *SyntaxError {
	return &SyntaxError{
		Col:      tok.pos,
		Expected: expected,
		Found:    tok.display(),
	}
}
