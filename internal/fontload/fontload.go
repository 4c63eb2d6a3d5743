/*
Package fontload loads scalable fonts from files or memory.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontload

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'letters.fonts'
func tracer() tracing.Trace {
	return tracing.Select("letters.fonts")
}

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
type ScalableFont struct {
	Fontname string
	Filepath string // empty for fonts parsed from memory
	Binary   []byte
	SFNT     *sfnt.Font
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, fmt.Errorf("cannot read font: %w", err)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fontfile, err)
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
// Font collections are not supported.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, fmt.Errorf("cannot parse font: %w", err)
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err != nil {
		tracer().Infof("font has no full name: %v", err)
		f.Fontname = "<unnamed>"
	}
	tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	return f, nil
}

// GoRegular returns the Go Regular font, which is bundled with the binary.
func GoRegular() *ScalableFont {
	f, err := ParseOpenTypeFont(goregular.TTF)
	if err != nil {
		panic(err) // bundled font is well-formed
	}
	return f
}
