package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/tsawler/pdfreplay/font"
	"github.com/tsawler/pdfreplay/model"
)

// curveSteps is the number of line segments a cubic is flattened into for
// stroking
const curveSteps = 16

var (
	faceMu    sync.Mutex
	faceCache = map[string]*truetype.Font{}
)

// substituteFace parses, once, the Go font standing in for d
func substituteFace(d font.Descriptor) (*truetype.Font, error) {
	key, ttf := font.SubstituteTTF(d)

	faceMu.Lock()
	defer faceMu.Unlock()
	if f, ok := faceCache[key]; ok {
		return f, nil
	}
	f, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", key, err)
	}
	faceCache[key] = f
	return f, nil
}

// Raster paints onto an RGBA image, one pixel per point. Fills use
// golang.org/x/image/vector, which only implements the nonzero rule, so
// even-odd fills are painted as nonzero. Strokes are drawn as one quad per
// flattened segment, with no joins or caps.
type Raster struct {
	pathBuffer

	img *image.RGBA
	z   *vector.Rasterizer
	err error
}

// NewRaster creates a white canvas of the given size in pixels
func NewRaster(width, height int) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &Raster{
		img: img,
		z:   vector.NewRasterizer(width, height),
	}
}

// Image returns the painted image
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Err returns the errors met while drawing text, joined, or nil
func (r *Raster) Err() error {
	return r.err
}

// WritePNG encodes the image as PNG
func (r *Raster) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (r *Raster) reset() {
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
}

func (r *Raster) paint(c model.Color) {
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(c.RGBA()), image.Point{})
}

// FillPath fills the buffered path. See the type documentation for the
// handling of rule.
func (r *Raster) FillPath(c model.Color, rule FillRule) {
	ops := r.take()
	if len(ops) == 0 {
		return
	}
	r.reset()
	for _, op := range ops {
		if op.kind == 'h' {
			r.z.ClosePath()
			continue
		}
		p, ok := r.boundOp(op)
		if !ok {
			continue
		}
		switch op.kind {
		case 'm':
			r.z.MoveTo(float32(p[0].X), float32(p[0].Y))
		case 'l':
			r.z.LineTo(float32(p[0].X), float32(p[0].Y))
		case 'c':
			r.z.CubeTo(float32(p[0].X), float32(p[0].Y), float32(p[1].X), float32(p[1].Y), float32(p[2].X), float32(p[2].Y))
		}
	}
	r.z.ClosePath()
	r.paint(c)
}

// StrokePath strokes the buffered path with the given line width
func (r *Raster) StrokePath(c model.Color, width float64) {
	ops := r.take()
	if len(ops) == 0 {
		return
	}
	half := min(max(width/2, 0.5), r.limit())
	if !finite(half) {
		half = 0.5
	}

	r.reset()
	var start, cur model.Point
	for _, op := range ops {
		var p [3]model.Point
		if op.kind != 'h' {
			var ok bool
			if p, ok = r.boundOp(op); !ok {
				continue
			}
		}
		switch op.kind {
		case 'm':
			start, cur = p[0], p[0]
		case 'l':
			r.segment(cur, p[0], half)
			cur = p[0]
		case 'c':
			prev := cur
			for i := 1; i <= curveSteps; i++ {
				next := cubicAt(cur, p[0], p[1], p[2], float64(i)/curveSteps)
				r.segment(prev, next, half)
				prev = next
			}
			cur = p[2]
		case 'h':
			r.segment(cur, start, half)
			cur = start
		}
	}
	r.paint(c)
}

// limit is how far outside the image a coordinate may lie. Beyond it the
// fixed-point rasteriser overflows.
func (r *Raster) limit() float64 {
	b := r.img.Bounds()
	return 4 * float64(max(b.Dx(), b.Dy(), 1))
}

// boundOp clamps the points of op into the addressable window. It reports
// false when a point is NaN or infinite.
func (r *Raster) boundOp(op pathOp) ([3]model.Point, bool) {
	n := 1
	if op.kind == 'c' {
		n = 3
	}
	lim := r.limit()
	p := op.points
	for i := 0; i < n; i++ {
		if !finite(p[i].X) || !finite(p[i].Y) {
			return p, false
		}
		p[i].X = min(max(p[i].X, -lim), lim)
		p[i].Y = min(max(p[i].Y, -lim), lim)
	}
	return p, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// segment adds the quad covering a line of the given half width
func (r *Raster) segment(a, b model.Point, half float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*half, dx/l*half
	r.z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	r.z.LineTo(float32(b.X+nx), float32(b.Y+ny))
	r.z.LineTo(float32(b.X-nx), float32(b.Y-ny))
	r.z.LineTo(float32(a.X-nx), float32(a.Y-ny))
	r.z.ClosePath()
}

func cubicAt(p0, p1, p2, p3 model.Point, t float64) model.Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return model.Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// DrawText draws the run with a Go font substitute for its descriptor
func (r *Raster) DrawText(run TextRun) {
	if run.Text == "" || run.Size <= 0 {
		return
	}
	f, err := substituteFace(run.Font)
	if err != nil {
		r.setErr(err)
		return
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(run.Size)
	ctx.SetClip(r.img.Bounds())
	ctx.SetDst(r.img)
	ctx.SetSrc(image.NewUniform(run.Color.RGBA()))
	ctx.SetHinting(xfont.HintingNone)

	origin := fixed.Point26_6{
		X: fixed.Int26_6(math.Round(run.Origin.X * 64)),
		Y: fixed.Int26_6(math.Round(run.Origin.Y * 64)),
	}
	if _, err := ctx.DrawString(run.Text, origin); err != nil {
		r.setErr(fmt.Errorf("draw %q: %w", run.Text, err))
	}
}

func (r *Raster) setErr(err error) {
	r.err = errors.Join(r.err, err)
}
