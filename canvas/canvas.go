/*
Package canvas implements the image algebra of the arithmetic of letters.

A Canvas is a rectangle of alpha-premultiplied RGBA pixels. Canvases are
combined with the Porter-Duff operators source-over, destination-out,
source-in and xor, or laid out side by side. Combining canvases always creates
a new canvas; the operands are considered consumed afterwards and should not
be drawn to any more.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'letters.canvas'
func tracer() tracing.Trace {
	return tracing.Select("letters.canvas")
}

// ErrInvalidSize is returned when creating a canvas with a width or height
// smaller than 1.
var ErrInvalidSize = errors.New("canvas: width and height must be at least 1")

// Canvas is an owned rectangular RGBA pixel buffer. Pixels are stored row by
// row, 4 bytes per pixel, alpha-premultiplied.
type Canvas struct {
	img *image.RGBA
}

// New creates a fully transparent canvas.
func New(width, height int) (*Canvas, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %d×%d", ErrInvalidSize, width, height)
	}
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// must is New for sizes derived from existing canvases.
func must(width, height int) *Canvas {
	c, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return c
}

// FromPix wraps a pixel buffer of alpha-premultiplied RGBA values. The buffer
// must hold exactly width×height×4 bytes; it is not copied.
func FromPix(width, height int, pix []byte) (*Canvas, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %d×%d", ErrInvalidSize, width, height)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("canvas: pixel buffer has %d bytes, need %d for %d×%d",
			len(pix), width*height*4, width, height)
	}
	img := &image.RGBA{
		Pix:    pix,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}
	return &Canvas{img: img}, nil
}

// Width returns the width of c in pixels.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of c in pixels.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Pix returns the pixel buffer of c. Pixel (x,y) starts at index (y*Width()+x)*4.
func (c *Canvas) Pix() []byte {
	return c.img.Pix
}

// Image returns c as an image. The image shares its pixels with c.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// RGBAAt returns the premultiplied color of pixel (x,y). Pixels outside of c
// are transparent.
func (c *Canvas) RGBAAt(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Clone returns a deep copy of c.
func (c *Canvas) Clone() *Canvas {
	pix := make([]byte, len(c.img.Pix))
	copy(pix, c.img.Pix)
	d, _ := FromPix(c.Width(), c.Height(), pix)
	return d
}

// IsTransparent reports whether every pixel of c has alpha 0.
func (c *Canvas) IsTransparent() bool {
	for i := 3; i < len(c.img.Pix); i += 4 {
		if c.img.Pix[i] != 0 {
			return false
		}
	}
	return true
}

// EncodePNG writes c to w in PNG format.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("canvas: cannot encode png: %w", err)
	}
	return nil
}

func (c *Canvas) String() string {
	return fmt.Sprintf("canvas(%d×%d)", c.Width(), c.Height())
}
