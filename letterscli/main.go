package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/letters"
	"github.com/npillmayer/letters/colors"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/image/font/gofont/goregular"
)

// tracer traces with key 'letters'
func tracer() tracing.Trace {
	return tracing.Select("letters")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.letters":   "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to load (default: Go Regular)")
	backend := flag.String("backend", "sfnt", "Font backend [sfnt|gotext]")
	size := flag.Float64("size", letters.DefaultFontSize, "Font size in pixels per em")
	strategy := flag.String("colors", "default", "Color strategy")
	out := flag.String("out", "letters.png", "PNG file to render to")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)  // will set the correct level later
	pterm.Info.Println("Welcome to Letters CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("letters > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	intp := NewIntp(repl)
	intp.out = *out
	if err := intp.setup(*fontname, *backend, *size, *strategy); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D or :quit, help with :help")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl   *readline.Instance
	font   *letters.Font
	size   float64
	preset colors.Preset
	out    string
}

// NewIntp creates an interpreter with the bundled font and default settings.
// repl may be nil if the interpreter is not used interactively.
func NewIntp(repl *readline.Instance) *Intp {
	p, _ := colors.Lookup("")
	return &Intp{
		repl:   repl,
		font:   letters.DefaultFont(),
		size:   letters.DefaultFontSize,
		preset: p,
		out:    "letters.png",
	}
}

func (intp *Intp) setup(fontname, backend string, size float64, strategy string) error {
	if err := intp.loadFont(fontname, backend); err != nil {
		return err
	}
	if err, _ := sizeOp(intp, &Op{arg: fmt.Sprint(size)}); err != nil {
		return err
	}
	err, _ := colorsOp(intp, &Op{arg: strategy})
	return err
}

func (intp *Intp) String() string {
	return fmt.Sprintf("( font=%v size=%g colors=%s out=%s )",
		intp.font, intp.size, intp.preset.Name, intp.out)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd := parseCommand(line)
		err, quit := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) options() letters.Options {
	return letters.Options{
		Rasterizer: intp.font,
		FontSize:   intp.size,
		Colors:     intp.preset.Factory,
	}
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(fontname, backendName string) error {
	backend, err := letters.ParseBackend(backendName)
	if err != nil {
		return err
	}
	var f *letters.Font
	if fontname == "" {
		f, err = letters.ParseFont(goregular.TTF, backend)
	} else {
		f, err = letters.LoadFont(fontname, backend)
	}
	if err != nil {
		tracer().Errorf("cannot load font %s: %s", fontname, err)
		return err
	}
	intp.font = f
	tracer().Infof("loaded font = %v", intp.font)
	return nil
}
