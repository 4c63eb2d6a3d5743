package letters

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/letters/canvas"
	"github.com/npillmayer/letters/glyph"
	"github.com/npillmayer/letters/grammar"
)

// Render parses text and renders it to a canvas.
//
// Syntax errors are reported as *grammar.SyntaxError, characters missing from
// the font as *glyph.NotFoundError. In both cases no canvas is returned.
func Render(text string, opts Options) (*canvas.Canvas, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	tree, err := grammar.Parse(text)
	if err != nil {
		return nil, err
	}
	c, err := renderer(opts).Fold(tree)
	if err != nil {
		return nil, err
	}
	tracer().Infof("rendered %q to %v", text, c)
	return c, nil
}

// RenderPNG renders text and encodes the result as PNG.
func RenderPNG(text string, opts Options) ([]byte, error) {
	c, err := Render(text, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Pretty prints the expression text in infix notation, see grammar.Pretty.
func Pretty(text string) (string, error) {
	return grammar.Pretty(text)
}

// Polish prints the expression text in prefix notation, see grammar.Polish.
func Polish(text string) (string, error) {
	return grammar.Polish(text)
}

// renderer is the interpretation producing canvases. It owns a fresh color
// sequence, so it must be used for a single fold only.
func renderer(opts Options) grammar.Interpreter[*canvas.Canvas] {
	painter := glyph.NewPainter(opts.Rasterizer, opts.FontSize)
	seq := opts.sequence()
	return grammar.Interpreter[*canvas.Canvas]{
		Leaf: func(ch rune) (*canvas.Canvas, error) {
			return painter.Paint(ch, seq)
		},
		Infix: func(op grammar.Op, lhs, rhs *canvas.Canvas) (*canvas.Canvas, error) {
			if op == grammar.Concat {
				return canvas.Concat(lhs, rhs), nil
			}
			mode, ok := blendModes[op]
			if !ok {
				return nil, fmt.Errorf("letters: no blend mode for operator %v", op)
			}
			return canvas.Composite(lhs, rhs, mode), nil
		},
	}
}

var blendModes = map[grammar.Op]canvas.BlendMode{
	grammar.Add: canvas.SourceOver,
	grammar.Or:  canvas.SourceOver,
	grammar.Sub: canvas.DestinationOut,
	grammar.And: canvas.SourceIn,
	grammar.Xor: canvas.Xor,
}
