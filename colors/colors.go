/*
Package colors provides the color strategies used to tint glyphs.

A Sequence is an unbounded, lazily evaluated stream of colors. Every call to
Next advances the sequence by one color. Sequences are stateful cursors owned
by exactly one render; to render again, create a fresh sequence from a
Factory.

Strategies are

  - hue wheels in HSL or CIE LCh space, rotating the hue by a fixed step
    before each color is handed out
  - a uniform color
  - a palette, cycling through a fixed list of colors

Default returns the default strategy: an HSL wheel starting at hue 0°, with
full saturation, 60% lightness and a step of 70°.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package colors

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'letters.colors'
func tracer() tracing.Trace {
	return tracing.Select("letters.colors")
}

// Sequence is an infinite stream of colors. Next never fails and never ends.
type Sequence interface {
	Next() color.NRGBA
}

// Factory creates a fresh sequence, positioned before its first color.
type Factory func() Sequence

// Default creates the default color sequence.
func Default() Sequence {
	return NewHSLWheel(0, 1, 0.6, 70)
}

// --- Uniform ---------------------------------------------------------------

// Uniform yields the same color forever.
type Uniform color.NRGBA

// Next returns u.
func (u Uniform) Next() color.NRGBA {
	return color.NRGBA(u)
}

// --- Palette ---------------------------------------------------------------

// Palette cycles through a fixed list of colors.
type Palette struct {
	colors []color.NRGBA
	next   int
}

// NewPalette creates a palette sequence. It panics if no colors are given.
func NewPalette(colors ...color.Color) *Palette {
	if len(colors) == 0 {
		panic("colors: palette must not be empty")
	}
	p := &Palette{colors: make([]color.NRGBA, len(colors))}
	for i, c := range colors {
		p.colors[i] = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
	return p
}

// Next returns the next palette entry, starting over after the last one.
func (p *Palette) Next() color.NRGBA {
	c := p.colors[p.next]
	p.next = (p.next + 1) % len(p.colors)
	return c
}

// --- Helpers ---------------------------------------------------------------

// nrgba converts a colorful color to 8 bit sRGB, clamping colors outside
// of the sRGB gamut.
func nrgba(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(alpha) * 255))}
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// rotate adds step to hue and wraps the result into [0,360).
func rotate(hue, step float64) float64 {
	h := math.Mod(hue+step, 360)
	if h < 0 {
		h += 360
	}
	return h
}
