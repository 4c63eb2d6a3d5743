package main

import (
	"errors"
	"strconv"

	"github.com/npillmayer/letters"
	"github.com/npillmayer/letters/colors"
	"github.com/npillmayer/letters/glyph"
	"github.com/npillmayer/letters/grammar"
	"github.com/tevino/abool/v2"
	"github.com/valyala/fasthttp"
)

// service renders expressions over HTTP.
type service struct {
	font     *letters.Font
	maxSize  float64
	cache    *pngCache
	draining *abool.AtomicBool // set while shutting down
}

func newService(fnt *letters.Font, maxSize float64, cacheSize int) *service {
	return &service{
		font:     fnt,
		maxSize:  maxSize,
		cache:    newPNGCache(cacheSize),
		draining: abool.New(),
	}
}

func (s *service) handle(ctx *fasthttp.RequestCtx) {
	if s.draining.IsSet() {
		ctx.SetConnectionClose()
		ctx.Error("shutting down", fasthttp.StatusServiceUnavailable)
		return
	}
	if !ctx.IsGet() {
		ctx.Error("method not allowed", fasthttp.StatusMethodNotAllowed)
		return
	}
	switch string(ctx.Path()) {
	case "/render":
		s.handleRender(ctx)
	case "/pretty":
		handleNotation(ctx, letters.Pretty)
	case "/polish":
		handleNotation(ctx, letters.Polish)
	default:
		ctx.Error("not found", fasthttp.StatusNotFound)
	}
	tracer().Debugf("%s %s -> %d", ctx.Method(), ctx.RequestURI(), ctx.Response.StatusCode())
}

func (s *service) handleRender(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	expr := string(args.Peek("expr"))
	size := float64(letters.DefaultFontSize)
	if raw := args.Peek("size"); len(raw) > 0 {
		var err error
		if size, err = strconv.ParseFloat(string(raw), 64); err != nil || !(size > 0) || size > s.maxSize {
			ctx.Error("size must be a number in (0,"+strconv.FormatFloat(s.maxSize, 'g', -1, 64)+"]",
				fasthttp.StatusBadRequest)
			return
		}
	}
	preset, err := colors.Lookup(string(args.Peek("colors")))
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusBadRequest)
		return
	}
	key := renderKey(expr, size, preset.Name)
	data, ok := s.cache.get(key)
	if !ok {
		opts := letters.Options{Rasterizer: s.font, FontSize: size, Colors: preset.Factory}
		if data, err = letters.RenderPNG(expr, opts); err != nil {
			ctx.Error(err.Error(), statusFor(err))
			return
		}
		s.cache.put(key, data)
	}
	ctx.SetContentType("image/png")
	ctx.SetBody(data)
}

func handleNotation(ctx *fasthttp.RequestCtx, print func(string) (string, error)) {
	s, err := print(string(ctx.QueryArgs().Peek("expr")))
	if err != nil {
		ctx.Error(err.Error(), statusFor(err))
		return
	}
	ctx.SetContentType("text/plain; charset=utf-8")
	ctx.SetBodyString(s + "\n")
}

// statusFor maps render errors to HTTP status codes.
func statusFor(err error) int {
	var serr *grammar.SyntaxError
	switch {
	case errors.As(err, &serr), errors.Is(err, letters.ErrInvalidOptions):
		return fasthttp.StatusBadRequest
	case errors.Is(err, glyph.ErrGlyphNotFound):
		return fasthttp.StatusUnprocessableEntity
	}
	tracer().Errorf("render failed: %v", err)
	return fasthttp.StatusInternalServerError
}
