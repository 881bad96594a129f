package graphicsstate

import (
	"github.com/tsawler/pdfreplay/model"
)

// SegmentType defines the type of path segment
type SegmentType int

const (
	// SegMoveTo starts a new subpath
	SegMoveTo SegmentType = iota
	// SegLineTo draws a line to a point
	SegLineTo
	// SegCurveTo draws a cubic Bézier curve
	SegCurveTo
	// SegClose draws a line back to the subpath start
	SegClose
)

// String returns the PDF operator that produces the segment
func (t SegmentType) String() string {
	switch t {
	case SegMoveTo:
		return "m"
	case SegLineTo:
		return "l"
	case SegCurveTo:
		return "c"
	case SegClose:
		return "h"
	default:
		return "?"
	}
}

// Segment is one element of a path. MoveTo and LineTo carry one point,
// CurveTo carries control point 1, control point 2 and the end point, and
// Close carries none.
type Segment struct {
	Type   SegmentType
	Points []model.Point
}

// Path accumulates subpaths between painting operators. Points are stored
// as given; callers map them through the CTM before appending.
type Path struct {
	segments []Segment

	current      model.Point
	subpathStart model.Point
	hasCurrent   bool

	// open is set once a segment follows the last moveto
	open bool
	// reopen is set after a close: the next segment starts a new subpath
	// at subpathStart
	reopen bool
}

// NewPath creates a new empty path
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at pt (m operator). A moveto directly after
// another moveto replaces it.
func (p *Path) MoveTo(pt model.Point) {
	if n := len(p.segments); n > 0 && p.segments[n-1].Type == SegMoveTo {
		p.segments[n-1].Points[0] = pt
	} else {
		p.segments = append(p.segments, Segment{Type: SegMoveTo, Points: []model.Point{pt}})
	}
	p.current = pt
	p.subpathStart = pt
	p.hasCurrent = true
	p.open = false
	p.reopen = false
}

// begin makes sure a subpath is in progress before a segment is appended.
// With no current point, start becomes the subpath start.
func (p *Path) begin(start model.Point) {
	switch {
	case !p.hasCurrent:
		p.MoveTo(start)
	case p.reopen:
		p.MoveTo(p.subpathStart)
	}
}

// LineTo appends a straight segment to pt (l operator). Without a current
// point it behaves like MoveTo.
func (p *Path) LineTo(pt model.Point) {
	if !p.hasCurrent {
		p.MoveTo(pt)
		return
	}
	p.begin(pt)
	p.segments = append(p.segments, Segment{Type: SegLineTo, Points: []model.Point{pt}})
	p.current = pt
	p.open = true
}

// CurveTo appends a cubic Bézier segment with two explicit control points
// (c operator).
func (p *Path) CurveTo(c1, c2, end model.Point) {
	p.begin(c1)
	p.segments = append(p.segments, Segment{Type: SegCurveTo, Points: []model.Point{c1, c2, end}})
	p.current = end
	p.open = true
}

// CurveToV appends a curve whose first control point is the current point
// (v operator).
func (p *Path) CurveToV(c2, end model.Point) {
	p.begin(c2)
	p.CurveTo(p.current, c2, end)
}

// CurveToY appends a curve whose second control point is the end point
// (y operator).
func (p *Path) CurveToY(c1, end model.Point) {
	p.CurveTo(c1, end, end)
}

// Close appends a segment back to the subpath start (h operator). It is a
// no-op unless a subpath is open.
func (p *Path) Close() {
	if !p.open {
		return
	}
	p.segments = append(p.segments, Segment{Type: SegClose})
	p.current = p.subpathStart
	p.open = false
	p.reopen = true
}

// Rectangle appends a closed rectangle (re operator). The corners are mapped
// through m so that rotated or skewed user spaces give the right shape.
func (p *Path) Rectangle(x, y, width, height float64, m model.Matrix) {
	p.MoveTo(m.Transform(model.Point{X: x, Y: y}))
	p.LineTo(m.Transform(model.Point{X: x + width, Y: y}))
	p.LineTo(m.Transform(model.Point{X: x + width, Y: y + height}))
	p.LineTo(m.Transform(model.Point{X: x, Y: y + height}))
	p.Close()
}

// IsOpen reports whether the current subpath has segments and is not closed
func (p *Path) IsOpen() bool {
	return p.open
}

// CurrentPoint returns the current point, if any
func (p *Path) CurrentPoint() (model.Point, bool) {
	return p.current, p.hasCurrent
}

// Drawable reports whether the path contains anything beyond movetos
func (p *Path) Drawable() bool {
	for _, seg := range p.segments {
		if seg.Type != SegMoveTo {
			return true
		}
	}
	return false
}

// Segments returns the accumulated segments without a trailing moveto.
// The returned slice must not be modified.
func (p *Path) Segments() []Segment {
	segs := p.segments
	if n := len(segs); n > 0 && segs[n-1].Type == SegMoveTo {
		segs = segs[:n-1]
	}
	return segs
}

// Clear resets the path
func (p *Path) Clear() {
	p.segments = nil
	p.hasCurrent = false
	p.open = false
	p.reopen = false
}

// IsEmpty returns true if the path has no segments
func (p *Path) IsEmpty() bool {
	return len(p.segments) == 0
}
