package interpreter

import (
	"github.com/tsawler/pdfreplay/canvas"
	"github.com/tsawler/pdfreplay/contentstream"
	"github.com/tsawler/pdfreplay/core"
	"github.com/tsawler/pdfreplay/graphicsstate"
	"github.com/tsawler/pdfreplay/model"
)

var constructArity = map[contentstream.Op]int{
	contentstream.OpMoveTo:    2,
	contentstream.OpLineTo:    2,
	contentstream.OpCurveTo:   6,
	contentstream.OpCurveToV:  4,
	contentstream.OpCurveToY:  4,
	contentstream.OpClosePath: 0,
	contentstream.OpRectangle: 4,
}

// construct handles the path construction operators. Points are mapped
// through the CTM as they are appended, so a later cm does not move them.
func (s *pageState) construct(code contentstream.Op, operands []core.Object) error {
	if code == contentstream.OpClosePath {
		s.path.Close()
		return nil
	}

	v, err := numbers(operands, constructArity[code])
	if err != nil {
		return err
	}

	ctm := s.gs().CTM
	pt := func(i int) model.Point {
		return ctm.Transform(model.Point{X: v[i], Y: v[i+1]})
	}

	switch code {
	case contentstream.OpMoveTo:
		s.path.MoveTo(pt(0))
	case contentstream.OpLineTo:
		s.path.LineTo(pt(0))
	case contentstream.OpCurveTo:
		s.path.CurveTo(pt(0), pt(2), pt(4))
	case contentstream.OpCurveToV:
		s.path.CurveToV(pt(0), pt(2))
	case contentstream.OpCurveToY:
		s.path.CurveToY(pt(0), pt(2))
	case contentstream.OpRectangle:
		s.path.Rectangle(v[0], v[1], v[2], v[3], ctm)
	}
	return nil
}

// paint handles the path painting operators. The path is always cleared,
// and nothing is emitted for a path made only of movetos.
func (s *pageState) paint(code contentstream.Op) {
	defer s.path.Clear()

	var fill, stroke bool
	rule := canvas.NonZero

	switch code {
	case contentstream.OpStroke:
		stroke = true
	case contentstream.OpCloseStroke:
		s.path.Close()
		stroke = true
	case contentstream.OpFill:
		s.path.Close()
		fill = true
	case contentstream.OpFillEvenOdd:
		s.path.Close()
		fill, rule = true, canvas.EvenOdd
	case contentstream.OpFillStroke:
		fill, stroke = true, true
	case contentstream.OpFillStrokeEvenOdd:
		fill, stroke, rule = true, true, canvas.EvenOdd
	case contentstream.OpCloseFillStroke:
		s.path.Close()
		fill, stroke = true, true
	case contentstream.OpCloseFillStrokeEvenOdd:
		s.path.Close()
		fill, stroke, rule = true, true, canvas.EvenOdd
	case contentstream.OpEndPath:
		return
	}

	if !s.path.Drawable() {
		return
	}

	gs := s.gs()
	if fill {
		s.emitPath(s.path)
		s.canvas.FillPath(gs.FillColor, rule)
	}
	if stroke {
		s.emitPath(s.path)
		s.canvas.StrokePath(gs.StrokeColor, gs.LineWidth*s.scale())
	}
}

// emitPath sends the segments of p to the canvas in device space
func (s *pageState) emitPath(p *graphicsstate.Path) {
	for _, seg := range p.Segments() {
		switch seg.Type {
		case graphicsstate.SegMoveTo:
			s.canvas.MoveTo(s.device(seg.Points[0]))
		case graphicsstate.SegLineTo:
			s.canvas.LineTo(s.device(seg.Points[0]))
		case graphicsstate.SegCurveTo:
			s.canvas.CurveTo(s.device(seg.Points[0]), s.device(seg.Points[1]), s.device(seg.Points[2]))
		case graphicsstate.SegClose:
			s.canvas.CloseSubpath()
		}
	}
}
