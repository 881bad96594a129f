// Package textlayout measures strings so the interpreter can advance the
// text cursor after every show operator.
//
// [Metrics] uses the standard 14 AFM widths and needs no font files.
// [Shaped] runs the HarfBuzz shaper from github.com/go-text/typesetting
// over the Go fonts, matching what the raster canvas paints. [Cached]
// memoises either.
//
//	layout := textlayout.NewCached(textlayout.NewShaped(), 0)
//	w := layout.Advance(font.Default(), 12, "Hello")
package textlayout
