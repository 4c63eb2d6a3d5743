package glyph

import (
	"fmt"

	"github.com/npillmayer/letters/canvas"
	"github.com/npillmayer/letters/colors"
)

// Painter creates tinted glyph canvases of a fixed font size.
type Painter struct {
	rasterizer Rasterizer
	size       float64
}

// NewPainter creates a painter for glyphs of size pixels per em.
func NewPainter(r Rasterizer, size float64) *Painter {
	return &Painter{rasterizer: r, size: size}
}

// Paint rasterizes ch and tints it with the next color of seq. Exactly one
// color is drawn from seq if ch can be rasterized, none otherwise.
//
// The canvas is as wide as the advance width of the glyph and as high as the
// font size. The glyph bitmap is anchored at the top-left corner of the
// canvas; parts of it exceeding the canvas are clipped.
func (p *Painter) Paint(ch rune, seq colors.Sequence) (*canvas.Canvas, error) {
	m, cov, err := p.rasterizer.Rasterize(ch, p.size)
	if err != nil {
		return nil, err
	}
	if len(cov) != m.Width*m.Height*subpixels {
		return nil, fmt.Errorf("glyph: coverage of %q has %d bytes, expected %d",
			ch, len(cov), m.Width*m.Height*subpixels)
	}
	c, err := canvas.New(max(1, int(m.AdvanceWidth)), max(1, int(p.size)))
	if err != nil {
		return nil, err
	}
	if m.Width > 0 && m.Height > 0 {
		bitmap, err := canvas.FromPix(m.Width, m.Height, rgba(cov))
		if err != nil {
			return nil, err
		}
		c.Draw(bitmap, 0, 0, canvas.SourceOver)
	}
	col := seq.Next()
	c.Fill(col, canvas.SourceIn)
	tracer().Debugf("painted %q in %v onto %v", ch, col, c)
	return c, nil
}

// rgba expands subpixel coverage to pixels. The alpha of a pixel is the
// least coverage of its subpixels.
func rgba(cov []byte) []byte {
	pix := make([]byte, len(cov)/subpixels*4)
	for i, j := 0, 0; i+2 < len(cov); i, j = i+3, j+4 {
		r, g, b := cov[i], cov[i+1], cov[i+2]
		pix[j], pix[j+1], pix[j+2], pix[j+3] = r, g, b, min(r, g, b)
	}
	return pix
}
