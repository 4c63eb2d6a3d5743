package glyph

import (
	"bytes"
	"errors"
	"image/color"
	"slices"
	"testing"

	"github.com/go-text/typesetting/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

type fakeRasterizer struct {
	m   Metrics
	cov []byte
	err error
}

func (f fakeRasterizer) Rasterize(r rune, size float64) (Metrics, []byte, error) {
	return f.m, f.cov, f.err
}

type countingSequence struct {
	col   color.NRGBA
	calls int
}

func (s *countingSequence) Next() color.NRGBA {
	s.calls++
	return s.col
}

func TestPainterTintsCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.glyph")
	defer teardown()
	//
	r := fakeRasterizer{
		m:   Metrics{Width: 2, Height: 1, AdvanceWidth: 3.7},
		cov: []byte{255, 255, 255, 255, 128, 0},
	}
	seq := &countingSequence{col: color.NRGBA{0, 0, 255, 255}}
	c, err := NewPainter(r, 4.2).Paint('x', seq)
	require.NoError(t, err)
	assert.Equal(t, 1, seq.calls, "expected exactly one color per glyph")
	assert.Equal(t, 3, c.Width())
	assert.Equal(t, 4, c.Height())
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, c.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{}, c.RGBAAt(1, 0), "alpha is the least subpixel coverage")
	assert.Equal(t, color.RGBA{}, c.RGBAAt(2, 3))
}

func TestPainterClampsEmptyCanvas(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.glyph")
	defer teardown()
	//
	seq := &countingSequence{}
	c, err := NewPainter(fakeRasterizer{}, 0.5).Paint('x', seq)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Width())
	assert.Equal(t, 1, c.Height())
	assert.True(t, c.IsTransparent())
	assert.Equal(t, 1, seq.calls)
}

func TestPainterPropagatesErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.glyph")
	defer teardown()
	//
	seq := &countingSequence{}
	_, err := NewPainter(fakeRasterizer{err: &NotFoundError{Char: 'x'}}, 10).Paint('x', seq)
	assert.True(t, errors.Is(err, ErrGlyphNotFound))
	assert.Equal(t, 0, seq.calls, "failed glyphs must not consume colors")
	//
	bad := fakeRasterizer{m: Metrics{Width: 2, Height: 2}, cov: make([]byte, 5)}
	_, err = NewPainter(bad, 10).Paint('x', seq)
	assert.Error(t, err)
}

func TestNotFoundError(t *testing.T) {
	err := error(&NotFoundError{Char: 'A'})
	assert.True(t, errors.Is(err, ErrGlyphNotFound))
	assert.Contains(t, err.Error(), "LATIN CAPITAL LETTER A")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, 'A', nf.Char)
}

func TestOutlineCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.glyph")
	defer teardown()
	//
	// a 2×3 pixel square, sitting on the baseline
	square := outline{
		{op: moveTo, args: [3]point{{1, -3}}},
		{op: lineTo, args: [3]point{{3, -3}}},
		{op: lineTo, args: [3]point{{3, 0}}},
		{op: lineTo, args: [3]point{{1, 0}}},
	}
	m, cov := square.coverage(4)
	assert.Equal(t, Metrics{XMin: 1, YMin: 0, Width: 2, Height: 3, AdvanceWidth: 4}, m)
	require.Len(t, cov, 2*3*3)
	for i, c := range cov {
		assert.Equal(t, byte(0xff), c, "subpixel #%d", i)
	}
	m, cov = outline{}.coverage(2.5)
	assert.Equal(t, Metrics{AdvanceWidth: 2.5}, m)
	assert.Empty(t, cov)
}

// --- Test Suite for font backends ------------------------------------------

type BackendTestEnviron struct {
	suite.Suite
	backends map[string]Rasterizer
}

// listen for 'go test' command --> run test methods
func TestBackends(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.glyph")
	defer teardown()
	suite.Run(t, new(BackendTestEnviron))
}

// run once, before test suite methods
func (env *BackendTestEnviron) SetupSuite() {
	sf, err := sfnt.Parse(goregular.TTF)
	env.Require().NoError(err)
	face, err := font.ParseTTF(bytes.NewReader(goregular.TTF))
	env.Require().NoError(err)
	env.backends = map[string]Rasterizer{
		"sfnt":   NewSFNT(sf),
		"gotext": NewGoText(face),
	}
}

func (env *BackendTestEnviron) TestRasterizeLetters() {
	for name, r := range env.backends {
		for _, ch := range "AgQ7x" {
			m, cov, err := r.Rasterize(ch, 40)
			env.Require().NoError(err, "%s: %q", name, ch)
			env.Greater(m.Width, 0, "%s: %q", name, ch)
			env.Greater(m.Height, 0, "%s: %q", name, ch)
			env.Greater(m.AdvanceWidth, 0.0, "%s: %q", name, ch)
			env.Len(cov, m.Width*m.Height*3, "%s: %q", name, ch)
			env.True(slices.ContainsFunc(cov, func(b byte) bool { return b != 0 }),
				"%s: expected %q to cover some pixels", name, ch)
		}
	}
}

func (env *BackendTestEnviron) TestBackendsAgree() {
	sm, _, err := env.backends["sfnt"].Rasterize('W', 100)
	env.Require().NoError(err)
	gm, _, err := env.backends["gotext"].Rasterize('W', 100)
	env.Require().NoError(err)
	env.InDelta(sm.AdvanceWidth, gm.AdvanceWidth, 1.0)
	env.InDelta(sm.Width, gm.Width, 2)
	env.InDelta(sm.Height, gm.Height, 2)
}

func (env *BackendTestEnviron) TestDescenderBelowBaseline() {
	for name, r := range env.backends {
		m, _, err := r.Rasterize('g', 50)
		env.Require().NoError(err)
		env.Less(m.YMin, 0, "%s: expected descender of 'g' below the baseline", name)
	}
}

func (env *BackendTestEnviron) TestMissingGlyph() {
	for name, r := range env.backends {
		_, _, err := r.Rasterize('中', 40)
		env.True(errors.Is(err, ErrGlyphNotFound), "%s: expected glyph not found, got %v", name, err)
		var nf *NotFoundError
		env.Require().True(errors.As(err, &nf), name)
		env.Equal('中', nf.Char)
	}
}
