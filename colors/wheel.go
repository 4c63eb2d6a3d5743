package colors

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// HSLWheel walks around the hue circle of the HSL color space. Saturation
// and lightness stay fixed.
type HSLWheel struct {
	hue, saturation, lightness float64
	step                       float64
}

// NewHSLWheel creates an HSL wheel starting at hue (in degrees). Saturation
// and lightness are fractions in [0,1]. The first color handed out has hue
// hue+step.
func NewHSLWheel(hue, saturation, lightness, step float64) *HSLWheel {
	return &HSLWheel{
		hue:        rotate(hue, 0),
		saturation: clamp01(saturation),
		lightness:  clamp01(lightness),
		step:       step,
	}
}

// Next rotates the hue by one step and returns the resulting color.
func (w *HSLWheel) Next() color.NRGBA {
	w.hue = rotate(w.hue, w.step)
	c := nrgba(colorful.Hsl(w.hue, w.saturation, w.lightness), 1)
	tracer().Debugf("hsl wheel at %.1f° -> %v", w.hue, c)
	return c
}

// Hue returns the hue of the color most recently handed out, or the start
// hue if Next has not been called yet.
func (w *HSLWheel) Hue() float64 {
	return w.hue
}

// LCHWheel walks around the hue circle of CIE LCh, which is perceptually
// uniform: colors of a wheel appear equally light and saturated.
type LCHWheel struct {
	hue, chroma, luminance float64
	alpha                  float64
	step                   float64
}

// NewLCHWheel creates an LCh wheel starting at hue (in degrees). Luminance
// and chroma are given on the CSS scale, i.e. luminance in [0,100] and chroma
// typically in [0,150]. Alpha is in [0,1].
func NewLCHWheel(luminance, chroma, hue, alpha, step float64) *LCHWheel {
	return &LCHWheel{
		hue:       rotate(hue, 0),
		chroma:    chroma / 100,
		luminance: clamp01(luminance / 100),
		alpha:     clamp01(alpha),
		step:      step,
	}
}

// Next rotates the hue by one step and returns the resulting color, clamped
// into the sRGB gamut.
func (w *LCHWheel) Next() color.NRGBA {
	w.hue = rotate(w.hue, w.step)
	c := nrgba(colorful.Hcl(w.hue, w.chroma, w.luminance), w.alpha)
	tracer().Debugf("lch wheel at %.1f° -> %v", w.hue, c)
	return c
}

// Hue returns the hue of the color most recently handed out.
func (w *LCHWheel) Hue() float64 {
	return w.hue
}
