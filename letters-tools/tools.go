package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/letters"
	"github.com/npillmayer/letters/colors"
	"github.com/npillmayer/letters/glyph"
	"github.com/thatisuday/commando"
	"golang.org/x/text/unicode/runenames"
)

func main() {
	commando.
		SetExecutableName("letters-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for rendering and printing expressions of the arithmetic of letters.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("render").
		SetDescription("Render an expression to a PNG image.").
		SetShortDescription("expression to image").
		AddArgument("expr...", "expression, e.g. 'A + B || 8 & 0'", "").
		AddFlag("output,o", "output PNG file", commando.String, "letters.png").
		AddFlag("size,s", "font size in pixels per em", commando.String, "300").
		AddFlag("colors,c", "color strategy (see 'strategies')", commando.String, "default").
		AddFlag("font,f", "TrueType/OpenType font file (default: Go Regular)", commando.String, "-").
		AddFlag("backend,b", "font backend: sfnt|gotext", commando.String, "sfnt").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runRenderCommand)

	commando.
		Register("pretty").
		SetDescription("Print an expression in infix notation.").
		SetShortDescription("infix notation").
		AddArgument("expr...", "expression", "").
		SetAction(runNotationCommand(letters.Pretty))

	commando.
		Register("polish").
		SetDescription("Print an expression in prefix (Polish) notation.").
		SetShortDescription("prefix notation").
		AddArgument("expr...", "expression", "").
		SetAction(runNotationCommand(letters.Polish))

	commando.
		Register("glyph").
		SetDescription("Rasterize a single character and print its metrics.").
		SetShortDescription("glyph diagnostics").
		AddArgument("char", "a single character", "").
		AddFlag("size,s", "font size in pixels per em", commando.String, "300").
		AddFlag("font,f", "TrueType/OpenType font file (default: Go Regular)", commando.String, "-").
		AddFlag("backend,b", "font backend: sfnt|gotext", commando.String, "sfnt").
		SetAction(runGlyphCommand)

	commando.
		Register("strategies").
		SetDescription("List the available color strategies.").
		SetShortDescription("color strategies").
		SetAction(runStrategiesCommand)

	commando.Parse(nil)
}

func runRenderCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	expr := expressionArg(args["expr"])
	fnt := mustLoadFont(flags)
	size, err := parseSize(mustFlagString(flags["size"], "size"))
	if err != nil {
		fatalf("%v", err)
	}
	preset, err := colors.Lookup(mustFlagString(flags["colors"], "colors"))
	if err != nil {
		fatalf("%v", err)
	}
	outPath := strings.TrimSpace(mustFlagString(flags["output"], "output"))
	if outPath == "" {
		fatalf("output path is empty")
	}
	opts := letters.Options{Rasterizer: fnt, FontSize: size, Colors: preset.Factory}
	c, err := letters.Render(expr, opts)
	if err != nil {
		fatalf("%v", err)
	}
	if err := writePNG(outPath, func(f *os.File) error { return c.EncodePNG(f) }); err != nil {
		fatalf("%v", err)
	}
	if mustFlagBool(flags["verbose"], "verbose") {
		color.Cyan("font %v, size %g, colors %s", fnt, size, preset.Name)
	}
	fmt.Printf("wrote %s (%dx%d)\n", outPath, c.Width(), c.Height())
}

type action = func(map[string]commando.ArgValue, map[string]commando.FlagValue)

func runNotationCommand(print func(string) (string, error)) action {
	return func(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
		s, err := print(expressionArg(args["expr"]))
		if err != nil {
			fatalf("%v", err)
		}
		fmt.Println(s)
	}
}

func runGlyphCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	ch, err := parseChar(args["char"].Value)
	if err != nil {
		fatalf("%v", err)
	}
	fnt := mustLoadFont(flags)
	size, err := parseSize(mustFlagString(flags["size"], "size"))
	if err != nil {
		fatalf("%v", err)
	}
	m, cov, err := fnt.Rasterize(ch, size)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Print(formatGlyphInfo(ch, fnt, size, m, len(cov)))
}

func runStrategiesCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	name := color.New(color.Bold).SprintfFunc()
	for _, p := range colors.Presets() {
		fmt.Printf("%s  %s\n", name("%-8s", p.Name), p.Description)
	}
}

func formatGlyphInfo(ch rune, fnt *letters.Font, size float64, m glyph.Metrics, covlen int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "char     %q U+%04X %s\n", ch, ch, runenames.Name(ch))
	fmt.Fprintf(&b, "font     %v at %gpx\n", fnt, size)
	fmt.Fprintf(&b, "bitmap   %dx%d at (%d,%d)\n", m.Width, m.Height, m.XMin, m.YMin)
	fmt.Fprintf(&b, "advance  %.2f\n", m.AdvanceWidth)
	fmt.Fprintf(&b, "coverage %d bytes\n", covlen)
	return b.String()
}

func writePNG(outPath string, encode func(*os.File) error) error {
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	defer f.Close()
	return encode(f)
}
