package pdfreplay

import (
	"log/slog"
	"runtime"

	"github.com/tsawler/pdfreplay/interpreter"
	"github.com/tsawler/pdfreplay/model"
	"github.com/tsawler/pdfreplay/resolver"
	"github.com/tsawler/pdfreplay/textlayout"
)

// ReplayOptions holds configuration for replaying pages.
type ReplayOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Interpreter settings
	margin   float64
	pageBox  bool
	layout   textlayout.Layout
	resolver resolver.Resolver
	logger   *slog.Logger
	fallback *model.Color

	// Parallelism for multi-page rendering
	workers int
}

// defaultOptions returns the default replay options.
func defaultOptions() ReplayOptions {
	return ReplayOptions{
		pages:    nil, // nil means all pages
		margin:   0,
		pageBox:  false,
		layout:   nil, // interpreter default
		resolver: nil, // each page's own resources
		logger:   nil, // discard
		fallback: nil, // interpreter.FallbackColor
		workers:  runtime.NumCPU(),
	}
}

// clone creates a deep copy of ReplayOptions.
func (o ReplayOptions) clone() ReplayOptions {
	newOpts := ReplayOptions{
		margin:   o.margin,
		pageBox:  o.pageBox,
		layout:   o.layout,
		resolver: o.resolver,
		logger:   o.logger,
		workers:  o.workers,
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	if o.fallback != nil {
		c := *o.fallback
		newOpts.fallback = &c
	}

	return newOpts
}

// interpreterOptions translates the options for interpreter.New.
func (o ReplayOptions) interpreterOptions() []interpreter.Option {
	opts := []interpreter.Option{
		interpreter.WithMargin(o.margin),
		interpreter.WithPageBox(o.pageBox),
	}
	if o.layout != nil {
		opts = append(opts, interpreter.WithLayout(o.layout))
	}
	if o.resolver != nil {
		opts = append(opts, interpreter.WithResolver(o.resolver))
	}
	if o.logger != nil {
		opts = append(opts, interpreter.WithLogger(o.logger))
	}
	if o.fallback != nil {
		opts = append(opts, interpreter.WithFallbackColor(*o.fallback))
	}
	return opts
}
