package letters

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/letters/colors"
	"github.com/npillmayer/letters/glyph"
)

// DefaultFontSize is the font size of DefaultOptions, in pixels per em.
const DefaultFontSize = 300

// ErrInvalidOptions is returned for unusable render options.
var ErrInvalidOptions = errors.New("invalid render options")

// Options configure rendering. There is no upper bound on FontSize; the
// canvas of a glyph is FontSize pixels high, so callers taking sizes from
// untrusted input should cap them.
type Options struct {
	Rasterizer glyph.Rasterizer // the font
	FontSize   float64          // pixels per em, finite and > 0
	Colors     colors.Factory   // nil selects colors.Default
}

// DefaultOptions returns options for rendering with font r at the default
// font size and with the default color strategy.
func DefaultOptions(r glyph.Rasterizer) Options {
	return Options{
		Rasterizer: r,
		FontSize:   DefaultFontSize,
		Colors:     colors.Default,
	}
}

func (o Options) validate() error {
	if o.Rasterizer == nil {
		return fmt.Errorf("%w: no font", ErrInvalidOptions)
	}
	if !(o.FontSize > 0) || math.IsInf(o.FontSize, 1) {
		return fmt.Errorf("%w: font size %g", ErrInvalidOptions, o.FontSize)
	}
	return nil
}

func (o Options) sequence() colors.Sequence {
	if o.Colors == nil {
		return colors.Default()
	}
	return o.Colors()
}
