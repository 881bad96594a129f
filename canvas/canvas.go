package canvas

import (
	"github.com/tsawler/pdfreplay/font"
	"github.com/tsawler/pdfreplay/model"
)

// FillRule selects how path interiors are determined
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// String returns the SVG name of the rule
func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// TextRun is one string placed at a baseline origin
type TextRun struct {
	Origin model.Point // device space baseline start
	Font   font.Descriptor
	Size   float64
	Text   string
	Color  model.Color
}

// Canvas receives drawing commands in device space (origin top-left, Y
// down). Path commands accumulate until StrokePath or FillPath paints and
// consumes them.
//
// A Canvas is not expected to be safe for concurrent use unless the
// implementation says so; give each page its own canvas.
type Canvas interface {
	MoveTo(p model.Point)
	LineTo(p model.Point)
	CurveTo(c1, c2, end model.Point)
	CloseSubpath()
	StrokePath(c model.Color, width float64)
	FillPath(c model.Color, rule FillRule)
	DrawText(run TextRun)
}

// pathOp is a path command kept by canvases that paint at paint time
type pathOp struct {
	kind   byte // 'm', 'l', 'c', 'h'
	points [3]model.Point
}

// pathBuffer collects path commands until a paint consumes them
type pathBuffer struct {
	ops []pathOp
}

func (b *pathBuffer) MoveTo(p model.Point) {
	b.ops = append(b.ops, pathOp{kind: 'm', points: [3]model.Point{p}})
}

func (b *pathBuffer) LineTo(p model.Point) {
	b.ops = append(b.ops, pathOp{kind: 'l', points: [3]model.Point{p}})
}

func (b *pathBuffer) CurveTo(c1, c2, end model.Point) {
	b.ops = append(b.ops, pathOp{kind: 'c', points: [3]model.Point{c1, c2, end}})
}

func (b *pathBuffer) CloseSubpath() {
	b.ops = append(b.ops, pathOp{kind: 'h'})
}

// take returns the buffered path and empties the buffer
func (b *pathBuffer) take() []pathOp {
	ops := b.ops
	b.ops = nil
	return ops
}
