package grammar

import (
	"strings"
)

// Parse parses an expression into a parse tree. Malformed input results in a
// *SyntaxError.
func Parse(text string) (Node, error) {
	p := parser{scan: lex(strings.NewReader(text))}
	n, err := p.parseterm(exprprec)
	if err != nil {
		tracer().Debugf("cannot parse %q: %v", text, err)
		return nil, err
	}
	if end := p.scan.must(); end.kind != tokenEOF {
		// Only an unmatched close parenthesis gets us here.
		err := unexpected(end, p.continuations())
		tracer().Debugf("cannot parse %q: %v", text, err)
		return nil, err
	}
	tracer().Debugf("parsed %q as %v", text, n)
	return n, nil
}

// parser holds the state of a single call to Parse.
type parser struct {
	scan *lexer
	// depth is the number of currently open parentheses.
	depth int
}

// parseterm parses operands joined by operators more binding than until. If
// there is no error, then parseterm pushes the last token it scans, which is
// either an operator not binding enough, a close parenthesis or EOF.
func (p *parser) parseterm(until operator) (Node, error) {
	n, err := p.parseprimary()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenOp:
			prec := binop(tok.text)
			if prec.op == OpNone {
				panic("grammar: lexer produced unknown operator " + tok.String())
			}
			if !prec.moreBinding(until) {
				p.scan.push(tok)
				return n, nil
			}
			rhs, err := p.parseterm(prec)
			if err != nil {
				return nil, err
			}
			n = &Binary{Op: prec.op, Left: n, Right: rhs, Col: tok.pos}
		case tokenClose, tokenEOF:
			p.scan.push(tok)
			return n, nil
		case tokenChar, tokenOpen, tokenInvalid:
			// Two operands without an operator in between, or garbage.
			return nil, unexpected(tok, p.continuations())
		default:
			panic("grammar: unknown token: " + tok.String())
		}
	}
}

// parseprimary parses a letter, a digit or a parenthesized expression.
func (p *parser) parseprimary() (Node, error) {
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenChar:
		return &Leaf{Char: rune(tok.text[0]), Col: tok.pos}, nil
	case tokenOpen:
		p.depth++
		n, err := p.parseterm(exprprec)
		if err != nil {
			return nil, err
		}
		if end := p.scan.must(); end.kind != tokenClose {
			return nil, unexpected(end, p.continuations())
		}
		p.depth--
		return n, nil
	case tokenEOF, tokenOp, tokenClose, tokenInvalid:
		return nil, unexpected(tok, primaryExpected)
	default:
		panic("grammar: unknown token: " + tok.String())
	}
}

// continuations lists the tokens which may follow a complete operand.
func (p *parser) continuations() []string {
	exp := make([]string, 0, len(opSymbols)+1)
	for op := Add; op <= Concat; op++ {
		exp = append(exp, op.String())
	}
	if p.depth > 0 {
		return append(exp, ")")
	}
	return append(exp, endOfInput)
}

var primaryExpected = []string{alnumExpected, "("}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the operator to use when this operator is selected.
	op Op
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of OpNone.
func binop(text string) operator {
	return binops[text]
}

// binops is the precedence table. Concatenation binds least; the remaining
// operators share one tier. All operators are left-associative.
var binops = map[string]operator{
	"||": {1, false, Concat},
	"+":  {2, false, Add},
	"-":  {2, false, Sub},
	"&":  {2, false, And},
	"|":  {2, false, Or},
	"^":  {2, false, Xor},
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, OpNone}
