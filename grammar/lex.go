package grammar

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

// display renders a token for error messages.
func (t lexToken) display() string {
	if t.kind == tokenEOF {
		return endOfInput
	}
	return strconv.Quote(t.text)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenChar is a single ASCII letter or digit.
	tokenChar
	// tokenOp is one of the binary operators.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenInvalid is a rune outside the alphabet of the language.
	tokenInvalid
)

var tokenKindNames = [...]string{
	tokenNone:    "None",
	tokenEOF:     "EOF",
	tokenChar:    "Char",
	tokenOp:      "Op",
	tokenOpen:    "Open",
	tokenClose:   "Close",
	tokenInvalid: "Invalid",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// Operators contains the runes which start an operator token. '|' is special:
// doubled, it is the concatenation operator.
const Operators = "+-&|^"

type lexer struct {
	src  io.RuneScanner
	rune int
	p    lexToken
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("grammar: double push")
	}
	l.p = tok
}

// must scans the pushed token. Panics if there is no pushed token.
func (l *lexer) must() lexToken {
	tok := l.p
	if tok.kind == tokenNone {
		panic("grammar: no pushed token")
	}
	l.p = lexToken{}
	return tok
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input, skipping whitespace. At the end
// of the input, next returns EOF tokens for every subsequent call.
func (l *lexer) next() (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	for {
		tok := lexToken{pos: l.rune}
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case isAlnum(r):
			tok.text = string(r)
			tok.kind = tokenChar
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
		case r == '|':
			tok.kind = tokenOp
			tok.text = "|"
			nx, err := l.readRune()
			if err == nil {
				if nx == '|' {
					tok.text = "||"
				} else {
					l.unreadRune()
				}
			} else if !errors.Is(err, io.EOF) {
				return tok, err
			}
		case strings.ContainsRune(Operators, r):
			tok.text = string(r)
			tok.kind = tokenOp
		default:
			tok.text = string(r)
			tok.kind = tokenInvalid
		}
		return tok, nil
	}
}

// isAlnum is true for ASCII letters and digits, the only runes allowed as
// leaves of an expression.
func isAlnum(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9'
}
