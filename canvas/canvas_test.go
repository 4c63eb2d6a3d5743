package canvas

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
	none = color.RGBA{}
)

func solid(t *testing.T, w, h int, c color.RGBA) *Canvas {
	t.Helper()
	cv, err := New(w, h)
	require.NoError(t, err)
	cv.Fill(c, SourceOver)
	return cv
}

func TestNewRejectsEmptyCanvas(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.canvas")
	defer teardown()
	//
	for _, wh := range [][2]int{{0, 1}, {1, 0}, {-3, 4}} {
		_, err := New(wh[0], wh[1])
		assert.True(t, errors.Is(err, ErrInvalidSize), "expected ErrInvalidSize for %v", wh)
	}
	c, err := New(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Width())
	assert.Equal(t, 2, c.Height())
	assert.Len(t, c.Pix(), 3*2*4)
	assert.True(t, c.IsTransparent())
}

func TestFromPix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.canvas")
	defer teardown()
	//
	_, err := FromPix(2, 2, make([]byte, 15))
	assert.Error(t, err)
	pix := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	c, err := FromPix(2, 1, pix)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{5, 6, 7, 8}, c.RGBAAt(1, 0))
}

func TestCompositeSizing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.canvas")
	defer teardown()
	//
	sizes := [][4]int{{3, 5, 7, 2}, {7, 2, 3, 5}, {1, 1, 1, 1}, {10, 4, 2, 9}}
	for _, s := range sizes {
		lhs, rhs := solid(t, s[0], s[1], red), solid(t, s[2], s[3], blue)
		for _, mode := range []BlendMode{SourceOver, DestinationOut, SourceIn, Xor} {
			c := Composite(lhs, rhs, mode)
			assert.Equal(t, max(s[0], s[2]), c.Width(), "width of %s for %v", mode, s)
			assert.Equal(t, max(s[1], s[3]), c.Height(), "height of %s for %v", mode, s)
		}
		c := Concat(lhs, rhs)
		assert.Equal(t, s[0]+s[2], c.Width(), "width of concat for %v", s)
		assert.Equal(t, max(s[1], s[3]), c.Height(), "height of concat for %v", s)
	}
}

func TestSourceOver(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.canvas")
	defer teardown()
	//
	c := Composite(solid(t, 4, 2, red), solid(t, 2, 4, blue), SourceOver)
	assert.Equal(t, blue, c.RGBAAt(0, 0), "rhs on top")
	assert.Equal(t, red, c.RGBAAt(3, 0), "lhs only")
	assert.Equal(t, blue, c.RGBAAt(1, 3), "rhs only")
	assert.Equal(t, none, c.RGBAAt(3, 3), "neither")
	//
	half := solid(t, 1, 1, color.RGBA{0, 0, 128, 128})
	c = Composite(solid(t, 1, 1, red), half, SourceOver)
	assert.Equal(t, color.RGBA{127, 0, 128, 255}, c.RGBAAt(0, 0))
}

func TestDestinationOut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.canvas")
	defer teardown()
	//
	c := Composite(solid(t, 4, 2, red), solid(t, 2, 4, blue), DestinationOut)
	assert.Equal(t, none, c.RGBAAt(0, 0), "erased by rhs")
	assert.Equal(t, red, c.RGBAAt(3, 1), "outside rhs")
	assert.Equal(t, none, c.RGBAAt(1, 3), "rhs never adds content")
}

func TestSourceIn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.canvas")
	defer teardown()
	//
	c := Composite(solid(t, 4, 2, red), solid(t, 2, 4, blue), SourceIn)
	assert.Equal(t, blue, c.RGBAAt(1, 1), "intersection keeps the source")
	assert.Equal(t, none, c.RGBAAt(3, 0), "lhs beyond rhs is cleared")
	assert.Equal(t, none, c.RGBAAt(1, 3), "rhs beyond lhs is dropped")
}

func TestXor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.canvas")
	defer teardown()
	//
	c := Composite(solid(t, 4, 2, red), solid(t, 2, 4, blue), Xor)
	assert.Equal(t, none, c.RGBAAt(0, 0), "covered by both")
	assert.Equal(t, red, c.RGBAAt(3, 1), "lhs alone")
	assert.Equal(t, blue, c.RGBAAt(0, 3), "rhs alone")
}

func TestXorSelfCancellation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.canvas")
	defer teardown()
	//
	c, err := New(5, 3)
	require.NoError(t, err)
	for x := 0; x < 5; x++ {
		for y := 0; y < 3; y++ {
			if (x+y)%2 == 0 {
				c.Image().SetRGBA(x, y, color.RGBA{uint8(40 * x), uint8(80 * y), 200, 255})
			}
		}
	}
	x := Composite(c, c.Clone(), Xor)
	assert.True(t, x.IsTransparent(), "expected xor with itself to be transparent")
}

func TestXorCancelsPartialCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.canvas")
	defer teardown()
	//
	// anti-aliased edge: alpha ramps from 0 to 255, colors differ per operand
	lhs, err := New(16, 2)
	require.NoError(t, err)
	rhs, err := New(16, 2)
	require.NoError(t, err)
	for x := 0; x < 16; x++ {
		a := uint8(17 * x)
		lhs.Image().SetRGBA(x, 0, color.RGBA{a, 0, 0, a})
		rhs.Image().SetRGBA(x, 0, color.RGBA{0, a / 2, a / 2, a})
		lhs.Image().SetRGBA(x, 1, color.RGBA{0, 0, a / 2, a / 2})
		rhs.Image().SetRGBA(x, 1, color.RGBA{a / 2, 0, 0, a / 2})
	}
	c := Composite(lhs, rhs, Xor)
	assert.True(t, c.IsTransparent(), "expected equal coverage to cancel")
}

func TestXorPartialCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.canvas")
	defer teardown()
	//
	strong := solid(t, 1, 1, color.RGBA{0, 0, 200, 200})
	weak := solid(t, 1, 1, color.RGBA{100, 0, 0, 100})
	faint := solid(t, 1, 1, color.RGBA{0, 0, 60, 60})
	assert.Equal(t, color.RGBA{0, 0, 100, 100}, Composite(weak, strong, Xor).RGBAAt(0, 0),
		"rhs stronger")
	assert.Equal(t, color.RGBA{0, 0, 100, 100}, Composite(strong, weak, Xor).RGBAAt(0, 0),
		"lhs stronger")
	assert.Equal(t, color.RGBA{40, 0, 0, 40}, Composite(weak, faint, Xor).RGBAAt(0, 0),
		"faded lhs")
	assert.Equal(t, color.RGBA{100, 0, 0, 100}, Composite(weak, solid(t, 1, 1, none), Xor).RGBAAt(0, 0),
		"transparent rhs leaves lhs")
}

func TestConcatPlacesOperandsSideBySide(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.canvas")
	defer teardown()
	//
	c := Concat(solid(t, 2, 3, red), solid(t, 3, 1, blue))
	for x := 0; x < 2; x++ {
		assert.Equal(t, red, c.RGBAAt(x, 2))
	}
	for x := 2; x < 5; x++ {
		assert.Equal(t, blue, c.RGBAAt(x, 0))
		assert.Equal(t, none, c.RGBAAt(x, 1), "below the shorter operand")
	}
}

func TestFillSourceInTintsCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.canvas")
	defer teardown()
	//
	c, err := New(2, 1)
	require.NoError(t, err)
	c.Image().SetRGBA(0, 0, color.RGBA{10, 20, 30, 255})
	c.Fill(color.NRGBA{0, 255, 0, 255}, SourceIn)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, c.RGBAAt(0, 0))
	assert.Equal(t, none, c.RGBAAt(1, 0))
}

func TestEncodePNG(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letters.canvas")
	defer teardown()
	//
	var buf bytes.Buffer
	require.NoError(t, solid(t, 3, 2, red).EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
	r, _, _, a := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)
}
