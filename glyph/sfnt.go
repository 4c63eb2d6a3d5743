package glyph

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SFNT rasterizes glyphs of a font parsed by golang.org/x/image/font/sfnt.
type SFNT struct {
	font *sfnt.Font
}

var _ Rasterizer = (*SFNT)(nil)

// NewSFNT creates a rasterizer for f.
func NewSFNT(f *sfnt.Font) *SFNT {
	return &SFNT{font: f}
}

// Rasterize rasterizes r at size pixels per em. Every call uses its own
// sfnt.Buffer, so calls may run concurrently.
func (s *SFNT) Rasterize(r rune, size float64) (Metrics, []byte, error) {
	var buf sfnt.Buffer
	gid, err := s.font.GlyphIndex(&buf, r)
	if err != nil {
		return Metrics{}, nil, fmt.Errorf("glyph: cannot look up %q: %w", r, err)
	}
	if gid == 0 {
		return Metrics{}, nil, &NotFoundError{Char: r}
	}
	ppem := fixed.Int26_6(math.Round(size * 64))
	segs, err := s.font.LoadGlyph(&buf, gid, ppem, nil)
	if err != nil {
		return Metrics{}, nil, fmt.Errorf("glyph: cannot load glyph %d for %q: %w", gid, r, err)
	}
	o := make(outline, len(segs))
	for i, seg := range segs {
		o[i].op = sfntOps[seg.Op]
		for j, p := range seg.Args {
			o[i].args[j] = point{x: float32(p.X) / 64, y: float32(p.Y) / 64}
		}
	}
	// LoadGlyph results are invalid once buf is re-used, so the
	// outline has to be copied before asking for the advance.
	adv, err := s.font.GlyphAdvance(&buf, gid, ppem, font.HintingNone)
	if err != nil {
		return Metrics{}, nil, fmt.Errorf("glyph: no advance for glyph %d: %w", gid, err)
	}
	m, cov := o.coverage(float64(adv) / 64)
	tracer().Debugf("sfnt: %q (gid %d) at %.1fpx -> %+v", r, gid, size, m)
	return m, cov, nil
}

var sfntOps = [...]segmentOp{
	sfnt.SegmentOpMoveTo: moveTo,
	sfnt.SegmentOpLineTo: lineTo,
	sfnt.SegmentOpQuadTo: quadTo,
	sfnt.SegmentOpCubeTo: cubeTo,
}
