/*
Package glyph turns single characters into tinted canvases.

A Rasterizer is the font collaborator: it produces a subpixel coverage bitmap
for a character at a given pixel size. Two rasterizers are provided, one
based on golang.org/x/image/font/sfnt and one based on go-text/typesetting.
Both rasterize the glyph outline at three times the horizontal resolution,
yielding one coverage byte per subpixel column.

A Painter wraps a Rasterizer and creates glyph canvases: it sizes a canvas
after the advance width of the glyph and the font size, paints the coverage
into it and tints the glyph with a color drawn from a color sequence.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package glyph

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/runenames"
)

// tracer writes to trace with key 'letters.glyph'
func tracer() tracing.Trace {
	return tracing.Select("letters.glyph")
}

// Metrics describes the bitmap of a rasterized glyph, in pixels.
//
// XMin and YMin locate the bottom-left corner of the bitmap relative to the
// pen position on the baseline, with y pointing upwards. AdvanceWidth is the
// horizontal distance to the pen position of the next glyph.
type Metrics struct {
	XMin, YMin    int
	Width, Height int
	AdvanceWidth  float64
}

// Rasterizer rasterizes characters of a font.
//
// The returned buffer holds Width×Height pixels, row by row, with three
// coverage bytes per pixel for the red, green and blue subpixel columns.
// Characters without a glyph in the font yield a *NotFoundError.
// Implementations must be safe for concurrent use.
type Rasterizer interface {
	Rasterize(r rune, size float64) (Metrics, []byte, error)
}

// ErrGlyphNotFound is matched by every *NotFoundError.
var ErrGlyphNotFound = errors.New("glyph not found")

// NotFoundError is returned for characters the font has no glyph for.
type NotFoundError struct {
	Char rune
}

func (e *NotFoundError) Error() string {
	if name := runenames.Name(e.Char); name != "" {
		return fmt.Sprintf("no glyph for %q (U+%04X %s)", e.Char, e.Char, name)
	}
	return fmt.Sprintf("no glyph for %q (U+%04X)", e.Char, e.Char)
}

// Is lets errors.Is match e against ErrGlyphNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrGlyphNotFound
}
