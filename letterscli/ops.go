package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/letters"
	"github.com/npillmayer/letters/colors"
	"github.com/pterm/pterm"
)

// Op is a parsed input line: either a command or an expression to render.
type Op struct {
	code int
	arg  string
}

const (
	RENDER int = iota
	QUIT
	HELP
	SHOW
	OUT
	SIZE
	COLORS
	FONT
)

var opMap = map[string]int{
	"quit":   QUIT,
	"q":      QUIT,
	"help":   HELP,
	"show":   SHOW,
	"out":    OUT,
	"size":   SIZE,
	"colors": COLORS,
	"font":   FONT,
}

var opNames = []string{
	"render",
	"quit",
	"help",
	"show",
	"out",
	"size",
	"colors",
	"font",
}

// parseCommand splits an input line. Lines starting with a colon are
// commands, e.g. ":size 120"; everything else is an expression.
func parseCommand(line string) *Op {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, ":") {
		return &Op{code: RENDER, arg: line}
	}
	name, arg, _ := strings.Cut(line[1:], " ")
	code, ok := opMap[strings.ToLower(name)]
	if !ok {
		return &Op{code: HELP, arg: name}
	}
	tracer().Debugf("parsed command: %s %q", opNames[code], arg)
	return &Op{code: code, arg: strings.TrimSpace(arg)}
}

var commandFn map[int]func(*Intp, *Op) (error, bool)

func init() {
	commandFn = map[int]func(*Intp, *Op) (error, bool){
		RENDER: renderOp,
		QUIT:   quitOp,
		HELP:   helpOp,
		SHOW:   showOp,
		OUT:    outOp,
		SIZE:   sizeOp,
		COLORS: colorsOp,
		FONT:   fontOp,
	}
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	f, ok := commandFn[op.code]
	if !ok {
		return fmt.Errorf("unknown command code: %d", op.code), false
	}
	return f(intp, op)
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	return nil, true
}

func showOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println(intp.String())
	return nil, false
}

func outOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return errors.New("usage: :out <file.png>"), false
	}
	intp.out = op.arg
	tracer().Infof("rendering to %s", intp.out)
	return nil, false
}

func sizeOp(intp *Intp, op *Op) (error, bool) {
	size, err := strconv.ParseFloat(op.arg, 64)
	if err != nil || !(size > 0) {
		return fmt.Errorf("font size must be a number > 0, is %q", op.arg), false
	}
	intp.size = size
	return nil, false
}

func colorsOp(intp *Intp, op *Op) (error, bool) {
	p, err := colors.Lookup(op.arg)
	if err != nil {
		return err, false
	}
	intp.preset = p
	return nil, false
}

func fontOp(intp *Intp, op *Op) (error, bool) {
	path, backend, _ := strings.Cut(op.arg, " ")
	return intp.loadFont(strings.TrimSpace(path), strings.TrimSpace(backend)), false
}

// renderOp prints an expression in both notations and renders it.
func renderOp(intp *Intp, op *Op) (error, bool) {
	pretty, err := letters.Pretty(op.arg)
	if err != nil {
		return err, false
	}
	polish, _ := letters.Polish(op.arg)
	c, err := letters.Render(op.arg, intp.options())
	if err != nil {
		return err, false
	}
	f, err := os.Create(intp.out)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err), false
	}
	defer f.Close()
	if err := c.EncodePNG(f); err != nil {
		return err, false
	}
	data := [][]string{
		{"Notation", "Expression"},
		{"infix", pretty},
		{"prefix", polish},
		{"image", fmt.Sprintf("%s (%dx%d)", intp.out, c.Width(), c.Height())},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}
