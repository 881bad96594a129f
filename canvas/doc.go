// Package canvas defines the drawing surface the interpreter replays a page
// onto, and three implementations of it.
//
// All coordinates are device space: origin at the top-left, Y growing
// downwards. Path calls (MoveTo, LineTo, CurveTo, CloseSubpath) accumulate
// until StrokePath or FillPath paints and consumes them; DrawText is
// independent of the path.
//
//   - [Recorder] keeps the calls as [Command] values. It is safe for
//     concurrent use and is what tests compare against.
//   - [Raster] paints into an *image.RGBA with golang.org/x/image/vector and
//     draws text with github.com/golang/freetype using the Go fonts.
//   - [SVG] builds an <svg> element tree with golang.org/x/net/html.
//
// Example:
//
//	r := canvas.NewRaster(612, 792)
//	warnings, err := interp.Interpret(page, r)
//	...
//	err = r.WritePNG(f)
package canvas
