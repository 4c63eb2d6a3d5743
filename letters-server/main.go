package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/npillmayer/letters"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/valyala/fasthttp"
	"golang.org/x/image/font/gofont/goregular"
)

// tracer traces with key 'letters.server'
func tracer() tracing.Trace {
	return tracing.Select("letters.server")
}

func main() {
	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.letters":        "Error",
		"trace.letters.server": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	addr := flag.String("addr", ":8080", "TCP address to listen on")
	fontname := flag.String("font", "", "Font to load (default: Go Regular)")
	backend := flag.String("backend", "sfnt", "Font backend [sfnt|gotext]")
	maxSize := flag.Float64("max-size", 1000, "Largest font size served")
	cacheSize := flag.Int("cache", 256, "Number of rendered images to keep (0 disables caching)")
	flag.Parse()

	fnt, err := loadFont(*fontname, *backend)
	if err != nil {
		tracer().Errorf("cannot load font: %v", err)
		os.Exit(2)
	}
	s := newService(fnt, *maxSize, *cacheSize)
	server := &fasthttp.Server{
		Handler:      s.handle,
		Name:         "letters-server",
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
	}
	go shutdownOnSignal(s, server)
	tracer().Infof("serving %v on %q", fnt, *addr)
	if err := server.ListenAndServe(*addr); err != nil {
		tracer().Errorf("error in ListenAndServe: %v", err)
		os.Exit(3)
	}
	tracer().Infof("server stopped")
}

// shutdownOnSignal stops accepting requests on SIGINT or SIGTERM and waits
// for requests in flight.
func shutdownOnSignal(s *service, server *fasthttp.Server) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	tracer().Infof("shutting down")
	s.draining.Set()
	if err := server.Shutdown(); err != nil {
		tracer().Errorf("shutdown: %v", err)
	}
}

func loadFont(fontname, backendName string) (*letters.Font, error) {
	backend, err := letters.ParseBackend(backendName)
	if err != nil {
		return nil, err
	}
	if fontname == "" {
		return letters.ParseFont(goregular.TTF, backend)
	}
	return letters.LoadFont(fontname, backend)
}
