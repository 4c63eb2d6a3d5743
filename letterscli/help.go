package main

import (
	"strings"

	"github.com/npillmayer/letters/colors"
	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "colors", "color", "strategies":
		pterm.Info.Println("Color strategies")
		for _, p := range colors.Presets() {
			pterm.Printf("  %-8s  %s\n", p.Name, p.Description)
		}
	case "ops", "operators", "syntax", "grammar":
		pterm.Info.Println("Expressions")
		pterm.Println(`
	Characters are single letters or digits. Operators, loosest first:
	+----------+-----------------------------------------------+
	| a || b   | place a and b side by side                    |
	+----------+-----------------------------------------------+
	| a + b    | draw b over a                                 |
	| a | b    | same as +                                     |
	| a - b    | erase b from a                                |
	| a & b    | b, where both a and b are covered             |
	| a ^ b    | what is covered by exactly one of a and b     |
	+----------+-----------------------------------------------+
	All operators are left-associative. Use parentheses to group.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	<expression>           render, e.g. A + B || 8 & 0 || G - K
	:out <file.png>        set output file
	:size <n>              set font size in pixels per em
	:colors <name>         set color strategy (:help colors)
	:font <file> [backend] load a font; backend is sfnt or gotext
	:show                  show current settings
	:help [colors|ops]     this text
	:quit                  leave
	`)
	}
}
