package canvas

import (
	"image/color"
)

// BlendMode is a Porter-Duff compositing operator. In the formulas below, s
// is a premultiplied source channel, d the destination channel, and as, ad
// the alphas.
type BlendMode int

const (
	// SourceOver draws the source on top: s + d·(1-as).
	SourceOver BlendMode = iota
	// DestinationOut erases the destination where the source is opaque: d·(1-as).
	DestinationOut
	// SourceIn keeps the source where the destination is opaque: s·ad.
	SourceIn
	// Xor keeps whichever side covers a location more strongly, with alpha
	// |as-ad| and the color of the stronger side. Equal coverage cancels, so a
	// canvas xor'ed with itself is transparent even at anti-aliased edges.
	// Where one side is opaque and the other transparent this equals
	// Porter-Duff xor.
	Xor
)

func (m BlendMode) String() string {
	switch m {
	case SourceOver:
		return "source-over"
	case DestinationOut:
		return "destination-out"
	case SourceIn:
		return "source-in"
	case Xor:
		return "xor"
	}
	return "unknown"
}

// blend computes one pixel.
func (m BlendMode) blend(s, d color.RGBA) color.RGBA {
	switch m {
	case SourceOver:
		ia := 255 - s.A
		return color.RGBA{
			R: add(s.R, mul(d.R, ia)),
			G: add(s.G, mul(d.G, ia)),
			B: add(s.B, mul(d.B, ia)),
			A: add(s.A, mul(d.A, ia)),
		}
	case DestinationOut:
		ia := 255 - s.A
		return color.RGBA{R: mul(d.R, ia), G: mul(d.G, ia), B: mul(d.B, ia), A: mul(d.A, ia)}
	case SourceIn:
		return color.RGBA{R: mul(s.R, d.A), G: mul(s.G, d.A), B: mul(s.B, d.A), A: mul(s.A, d.A)}
	case Xor:
		switch {
		case s.A > d.A:
			return fade(s, s.A-d.A)
		case d.A > s.A:
			return fade(d, d.A-s.A)
		}
		return color.RGBA{}
	}
	panic("canvas: unknown blend mode " + m.String())
}

// mul multiplies two 8-bit fractions, rounding to nearest.
func mul(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}

// fade scales premultiplied c to alpha a <= c.A, keeping its hue.
func fade(c color.RGBA, a uint8) color.RGBA {
	f := func(v uint8) uint8 {
		return uint8((uint32(v)*uint32(a) + uint32(c.A)/2) / uint32(c.A))
	}
	return color.RGBA{R: f(c.R), G: f(c.G), B: f(c.B), A: a}
}

// add adds two 8-bit fractions, saturating at 255.
func add(a, b uint8) uint8 {
	if s := uint32(a) + uint32(b); s < 255 {
		return uint8(s)
	}
	return 255
}

// Draw composites src onto c with its top-left corner at (x,y). The mode is
// applied to every pixel of c; where src does not reach, it counts as fully
// transparent. For SourceIn this clears c outside of src.
func (c *Canvas) Draw(src *Canvas, x, y int, mode BlendMode) {
	sb := src.img.Rect
	w, h := c.Width(), c.Height()
	for dy := 0; dy < h; dy++ {
		row := dy * c.img.Stride
		for dx := 0; dx < w; dx++ {
			var s color.RGBA
			if sx, sy := dx-x, dy-y; sx >= 0 && sy >= 0 && sx < sb.Dx() && sy < sb.Dy() {
				s = src.img.RGBAAt(sx, sy)
			}
			i := row + dx*4
			px := c.img.Pix[i : i+4 : i+4]
			o := mode.blend(s, color.RGBA{px[0], px[1], px[2], px[3]})
			px[0], px[1], px[2], px[3] = o.R, o.G, o.B, o.A
		}
	}
}

// Fill composites a uniform color covering all of c onto c.
func (c *Canvas) Fill(col color.Color, mode BlendMode) {
	s := color.RGBAModel.Convert(col).(color.RGBA)
	pix := c.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		o := mode.blend(s, color.RGBA{pix[i], pix[i+1], pix[i+2], pix[i+3]})
		pix[i], pix[i+1], pix[i+2], pix[i+3] = o.R, o.G, o.B, o.A
	}
}

// Composite draws lhs and then rhs with the given mode onto a new canvas
// large enough for both. Both operands are anchored at the origin.
func Composite(lhs, rhs *Canvas, mode BlendMode) *Canvas {
	c := must(max(lhs.Width(), rhs.Width()), max(lhs.Height(), rhs.Height()))
	c.Draw(lhs, 0, 0, SourceOver)
	c.Draw(rhs, 0, 0, mode)
	tracer().Debugf("composite %v %s %v -> %v", lhs, mode, rhs, c)
	return c
}

// Concat places rhs to the right of lhs on a new canvas. The canvas is as wide
// as both operands together and as high as the higher one.
func Concat(lhs, rhs *Canvas) *Canvas {
	c := must(lhs.Width()+rhs.Width(), max(lhs.Height(), rhs.Height()))
	c.Draw(lhs, 0, 0, SourceOver)
	c.Draw(rhs, lhs.Width(), 0, SourceOver)
	tracer().Debugf("concat %v || %v -> %v", lhs, rhs, c)
	return c
}
