package glyph

import (
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// GoText rasterizes glyphs of a go-text/typesetting font face.
type GoText struct {
	mu   sync.Mutex // face keeps caches and is not safe for concurrent use
	face *font.Face
}

var _ Rasterizer = (*GoText)(nil)

// NewGoText creates a rasterizer for face.
func NewGoText(face *font.Face) *GoText {
	return &GoText{face: face}
}

// Rasterize rasterizes r at size pixels per em. Bitmap fonts and color
// glyphs without an outline are rasterized as empty glyphs.
func (g *GoText) Rasterize(r rune, size float64) (Metrics, []byte, error) {
	g.mu.Lock()
	gid, ok := g.face.NominalGlyph(r)
	if !ok || gid == 0 {
		g.mu.Unlock()
		return Metrics{}, nil, &NotFoundError{Char: r}
	}
	scale := float32(size) / float32(g.face.Upem())
	advance := g.face.HorizontalAdvance(gid) * scale
	data := g.face.GlyphData(gid)
	g.mu.Unlock()
	//
	var o outline
	if gl, ok := data.(font.GlyphOutline); ok {
		o = make(outline, len(gl.Segments))
		for i, seg := range gl.Segments {
			o[i].op = gotextOps[seg.Op]
			for j, p := range seg.Args {
				// font units have y pointing upwards
				o[i].args[j] = point{x: p.X * scale, y: -p.Y * scale}
			}
		}
	} else {
		tracer().Infof("gotext: glyph %d for %q has no outline", gid, r)
	}
	m, cov := o.coverage(float64(advance))
	tracer().Debugf("gotext: %q (gid %d) at %.1fpx -> %+v", r, gid, size, m)
	return m, cov, nil
}

var gotextOps = map[opentype.SegmentOp]segmentOp{
	opentype.SegmentOpMoveTo: moveTo,
	opentype.SegmentOpLineTo: lineTo,
	opentype.SegmentOpQuadTo: quadTo,
	opentype.SegmentOpCubeTo: cubeTo,
}
