package glyph

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// subpixels is the number of coverage columns per pixel.
const subpixels = 3

type segmentOp uint8

const (
	moveTo segmentOp = iota
	lineTo
	quadTo
	cubeTo
)

type point struct {
	x, y float32
}

// segment is a piece of a glyph outline. Coordinates are in pixels, relative
// to the pen position on the baseline, with y pointing downwards.
type segment struct {
	op   segmentOp
	args [3]point
}

func (s segment) points() []point {
	switch s.op {
	case quadTo:
		return s.args[:2]
	case cubeTo:
		return s.args[:3]
	}
	return s.args[:1]
}

// outline is a glyph outline, ready to be scan-converted.
type outline []segment

// bounds returns the pixel rectangle enclosing all points of o, including
// control points. Empty outlines have empty bounds.
func (o outline) bounds() image.Rectangle {
	if len(o) == 0 {
		return image.Rectangle{}
	}
	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := -minX, -minY
	for _, s := range o {
		for _, p := range s.points() {
			minX, maxX = min(minX, p.x), max(maxX, p.x)
			minY, maxY = min(minY, p.y), max(maxY, p.y)
		}
	}
	return image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	)
}

// coverage scan-converts o at subpixel resolution. The result holds one byte
// per subpixel column, i.e. three bytes per pixel.
func (o outline) coverage(advance float64) (Metrics, []byte) {
	b := o.bounds()
	m := Metrics{AdvanceWidth: advance}
	if b.Empty() {
		return m, nil
	}
	m.XMin, m.YMin = b.Min.X, -b.Max.Y
	m.Width, m.Height = b.Dx(), b.Dy()
	w := m.Width * subpixels
	r := vector.NewRasterizer(w, m.Height)
	tx, ty := float32(-b.Min.X), float32(-b.Min.Y)
	xy := func(p point) (float32, float32) {
		return (p.x + tx) * subpixels, p.y + ty
	}
	for i, s := range o {
		switch s.op {
		case moveTo:
			if i > 0 {
				r.ClosePath()
			}
			r.MoveTo(xy(s.args[0]))
		case lineTo:
			r.LineTo(xy(s.args[0]))
		case quadTo:
			x1, y1 := xy(s.args[0])
			x2, y2 := xy(s.args[1])
			r.QuadTo(x1, y1, x2, y2)
		case cubeTo:
			x1, y1 := xy(s.args[0])
			x2, y2 := xy(s.args[1])
			x3, y3 := xy(s.args[2])
			r.CubeTo(x1, y1, x2, y2, x3, y3)
		}
	}
	r.ClosePath()
	dst := image.NewAlpha(image.Rect(0, 0, w, m.Height))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return m, dst.Pix
}
