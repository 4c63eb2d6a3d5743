package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/letters"
	"github.com/thatisuday/commando"
	"golang.org/x/image/font/gofont/goregular"
)

// expressionArg re-assembles a variadic expression argument. Commando joins
// the parts with commas, which never occur in expressions.
func expressionArg(arg commando.ArgValue) string {
	return strings.TrimSpace(strings.ReplaceAll(arg.Value, ",", " "))
}

func parseSize(s string) (float64, error) {
	size, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid font size %q", s)
	}
	if !(size > 0) {
		return 0, fmt.Errorf("font size must be > 0, is %g", size)
	}
	return size, nil
}

func parseChar(s string) (rune, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.New("expected a single character")
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// loadFont loads a font file, or the bundled font if path is empty or "-".
func loadFont(path, backendName string) (*letters.Font, error) {
	backend, err := letters.ParseBackend(backendName)
	if err != nil {
		return nil, err
	}
	if path = strings.TrimSpace(path); path == "" || path == "-" {
		return letters.ParseFont(goregular.TTF, backend)
	}
	return letters.LoadFont(path, backend)
}

func mustLoadFont(flags map[string]commando.FlagValue) *letters.Font {
	fnt, err := loadFont(mustFlagString(flags["font"], "font"), mustFlagString(flags["backend"], "backend"))
	if err != nil {
		fatalf("cannot load font: %v", err)
	}
	return fnt
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

var errorColor = color.New(color.FgRed, color.Bold)

func fatalf(format string, args ...interface{}) {
	_, _ = errorColor.Fprintf(os.Stderr, "letters-tools: "+format+"\n", args...)
	os.Exit(1)
}
