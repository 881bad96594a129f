package interpreter

import (
	"log/slog"

	"github.com/tsawler/pdfreplay/font"
	"github.com/tsawler/pdfreplay/model"
	"github.com/tsawler/pdfreplay/resolver"
	"github.com/tsawler/pdfreplay/textlayout"
)

// FallbackColor is painted for pattern and colorant names that cannot be
// resolved to a colour
var FallbackColor = model.RGB255(0, 172, 140)

const (
	// DefaultLeading is the text leading before any TL or TD operator
	DefaultLeading = 10.0
	// DefaultFontSize is the font size before any Tf operator
	DefaultFontSize = 10.0
)

// Option configures an Interpreter
type Option func(*Interpreter)

// WithMargin offsets every device coordinate by m on both axes (default: 0)
func WithMargin(m float64) Option {
	return func(in *Interpreter) {
		in.margin = m
	}
}

// WithPageBox enables painting the media box, white with a thin black
// border, before the content stream
func WithPageBox(enabled bool) Option {
	return func(in *Interpreter) {
		in.pageBox = enabled
	}
}

// WithLayout sets the text measurer used to advance the cursor (default:
// textlayout.Metrics)
func WithLayout(l textlayout.Layout) Option {
	return func(in *Interpreter) {
		if l != nil {
			in.layout = l
		}
	}
}

// WithResolver sets the resource resolver. By default each page's own
// resource dictionary is used.
func WithResolver(r resolver.Resolver) Option {
	return func(in *Interpreter) {
		in.resolver = r
	}
}

// WithLogger sets the logger warnings are reported to (default: discard)
func WithLogger(l *slog.Logger) Option {
	return func(in *Interpreter) {
		if l != nil {
			in.logger = l
		}
	}
}

// WithFallbackColor sets the colour used for unresolvable patterns and
// colorants
func WithFallbackColor(c model.Color) Option {
	return func(in *Interpreter) {
		in.fallback = c
	}
}

// WithDefaultLeading sets the leading used until TL or TD sets one
func WithDefaultLeading(leading float64) Option {
	return func(in *Interpreter) {
		in.leading = leading
	}
}

// WithDefaultFont sets the font and size used until Tf
func WithDefaultFont(d font.Descriptor, size float64) Option {
	return func(in *Interpreter) {
		in.font = d
		in.fontSize = size
	}
}
