package colors

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
)

// Preset is a named color strategy.
type Preset struct {
	Name        string
	Description string
	Factory     Factory
}

var presets = map[string]Preset{
	"default": {
		Name:        "default",
		Description: "HSL wheel, 100% saturation, 60% lightness, 70° steps",
		Factory:     Default,
	},
	"black": {
		Name:        "black",
		Description: "every glyph black",
		Factory:     func() Sequence { return Uniform(color.NRGBA{A: 0xff}) },
	},
	"pastel": {
		Name:        "pastel",
		Description: "LCh wheel, luminance 75, chroma 70, 95° steps",
		Factory:     func() Sequence { return NewLCHWheel(75, 70, 0, 1, 95) },
	},
	"rainbow": {
		Name:        "rainbow",
		Description: "LCh wheel, luminance 60, chroma 70, 10° steps",
		Factory:     func() Sequence { return NewLCHWheel(60, 70, 0, 1, 10) },
	},
	"glass": {
		Name:        "glass",
		Description: "half-transparent LCh wheel, luminance 60, chroma 70, 95° steps",
		Factory:     func() Sequence { return NewLCHWheel(60, 70, 0, 0.5, 95) },
	},
}

// Lookup finds a preset by name. Names are case-insensitive; the empty name
// selects the default preset.
func Lookup(name string) (Preset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "default"
	}
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("colors: unknown color strategy %q (have %s)",
			name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Names returns the names of all presets in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Presets returns all presets, ordered by name.
func Presets() []Preset {
	names := Names()
	pp := make([]Preset, len(names))
	for i, n := range names {
		pp[i] = presets[n]
	}
	return pp
}
