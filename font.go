package letters

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-text/typesetting/font"
	"github.com/npillmayer/letters/glyph"
	"github.com/npillmayer/letters/internal/fontload"
)

// Backend selects the font implementation used for rasterizing glyphs.
type Backend string

const (
	SFNT   Backend = "sfnt"   // golang.org/x/image/font/sfnt
	GoText Backend = "gotext" // github.com/go-text/typesetting
)

// Backends lists the available backends, default first.
var Backends = []Backend{SFNT, GoText}

// ParseBackend returns the backend named name. The empty name selects SFNT.
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(name))); b {
	case "":
		return SFNT, nil
	case SFNT, GoText:
		return b, nil
	}
	return "", fmt.Errorf("unknown font backend %q", name)
}

// Font is a loaded font together with a rasterizer for it.
type Font struct {
	glyph.Rasterizer
	Name    string
	Backend Backend
}

// LoadFont loads a TrueType or OpenType font file for the given backend.
func LoadFont(path string, backend Backend) (*Font, error) {
	f, err := fontload.LoadOpenTypeFont(path)
	if err != nil {
		return nil, err
	}
	return newFont(f, backend)
}

// ParseFont parses TrueType or OpenType font data for the given backend.
func ParseFont(data []byte, backend Backend) (*Font, error) {
	f, err := fontload.ParseOpenTypeFont(data)
	if err != nil {
		return nil, err
	}
	return newFont(f, backend)
}

// DefaultFont returns the bundled Go Regular font, rasterized by the SFNT
// backend.
func DefaultFont() *Font {
	f, err := newFont(fontload.GoRegular(), SFNT)
	if err != nil {
		panic(err)
	}
	return f
}

func newFont(f *fontload.ScalableFont, backend Backend) (*Font, error) {
	fnt := &Font{Name: f.Fontname, Backend: backend}
	switch backend {
	case SFNT, "":
		fnt.Backend = SFNT
		fnt.Rasterizer = glyph.NewSFNT(f.SFNT)
	case GoText:
		face, err := font.ParseTTF(bytes.NewReader(f.Binary))
		if err != nil {
			return nil, fmt.Errorf("gotext: cannot parse %s: %w", f.Fontname, err)
		}
		fnt.Rasterizer = glyph.NewGoText(face)
	default:
		return nil, fmt.Errorf("unknown font backend %q", backend)
	}
	tracer().Debugf("font %s with backend %s", fnt.Name, fnt.Backend)
	return fnt, nil
}

func (f *Font) String() string {
	return fmt.Sprintf("%s (%s)", f.Name, f.Backend)
}
