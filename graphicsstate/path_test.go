package graphicsstate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tsawler/pdfreplay/model"
)

func pt(x, y float64) model.Point {
	return model.Point{X: x, Y: y}
}

func TestNewPath(t *testing.T) {
	p := NewPath()
	if !p.IsEmpty() || p.Drawable() {
		t.Error("new path should be empty")
	}
	if _, ok := p.CurrentPoint(); ok {
		t.Error("new path should have no current point")
	}
}

func TestPath_MoveToLineTo(t *testing.T) {
	p := NewPath()
	p.MoveTo(pt(10, 20))
	p.LineTo(pt(30, 20))

	want := []Segment{
		{Type: SegMoveTo, Points: []model.Point{pt(10, 20)}},
		{Type: SegLineTo, Points: []model.Point{pt(30, 20)}},
	}
	if diff := cmp.Diff(want, p.Segments()); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
	if cur, _ := p.CurrentPoint(); cur != pt(30, 20) {
		t.Errorf("expected current point (30, 20), got %v", cur)
	}
	if !p.IsOpen() {
		t.Error("path should be open after lineto")
	}
}

func TestPath_LineToWithoutCurrentPoint(t *testing.T) {
	p := NewPath()
	p.LineTo(pt(5, 5))

	if p.Drawable() {
		t.Error("lineto without current point should only move")
	}
	if cur, ok := p.CurrentPoint(); !ok || cur != pt(5, 5) {
		t.Errorf("expected current point (5, 5), got %v", cur)
	}
}

func TestPath_ConsecutiveMoveTo(t *testing.T) {
	p := NewPath()
	p.MoveTo(pt(0, 0))
	p.MoveTo(pt(1, 1))
	p.LineTo(pt(2, 2))

	want := []Segment{
		{Type: SegMoveTo, Points: []model.Point{pt(1, 1)}},
		{Type: SegLineTo, Points: []model.Point{pt(2, 2)}},
	}
	if diff := cmp.Diff(want, p.Segments()); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestPath_CurveVariants(t *testing.T) {
	p := NewPath()
	p.MoveTo(pt(0, 0))
	p.CurveTo(pt(1, 1), pt(2, 1), pt(3, 0))
	p.CurveToV(pt(4, 1), pt(5, 0))
	p.CurveToY(pt(6, 1), pt(7, 0))

	want := []Segment{
		{Type: SegMoveTo, Points: []model.Point{pt(0, 0)}},
		{Type: SegCurveTo, Points: []model.Point{pt(1, 1), pt(2, 1), pt(3, 0)}},
		{Type: SegCurveTo, Points: []model.Point{pt(3, 0), pt(4, 1), pt(5, 0)}},
		{Type: SegCurveTo, Points: []model.Point{pt(6, 1), pt(7, 0), pt(7, 0)}},
	}
	if diff := cmp.Diff(want, p.Segments()); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestPath_CurveWithoutCurrentPoint(t *testing.T) {
	p := NewPath()
	p.CurveTo(pt(1, 1), pt(2, 2), pt(3, 3))

	segs := p.Segments()
	if len(segs) != 2 || segs[0].Type != SegMoveTo || segs[0].Points[0] != pt(1, 1) {
		t.Errorf("expected implicit moveto at first control point, got %v", segs)
	}
}

func TestPath_CloseAfterMoveToIsNoOp(t *testing.T) {
	p := NewPath()
	p.MoveTo(pt(10, 10))
	p.Close()

	if p.Drawable() {
		t.Error("m h should not produce a drawable segment")
	}
	if len(p.Segments()) != 0 {
		t.Errorf("expected no segments, got %v", p.Segments())
	}
}

func TestPath_Close(t *testing.T) {
	p := NewPath()
	p.MoveTo(pt(0, 0))
	p.LineTo(pt(10, 0))
	p.Close()
	p.Close()

	segs := p.Segments()
	if len(segs) != 3 || segs[2].Type != SegClose {
		t.Fatalf("expected exactly one close segment, got %v", segs)
	}
	if p.IsOpen() {
		t.Error("path should not be open after close")
	}
	if cur, _ := p.CurrentPoint(); cur != pt(0, 0) {
		t.Errorf("close should return to subpath start, got %v", cur)
	}
}

func TestPath_LineToAfterClose(t *testing.T) {
	p := NewPath()
	p.MoveTo(pt(0, 0))
	p.LineTo(pt(10, 0))
	p.Close()
	p.LineTo(pt(0, 10))

	want := []Segment{
		{Type: SegMoveTo, Points: []model.Point{pt(0, 0)}},
		{Type: SegLineTo, Points: []model.Point{pt(10, 0)}},
		{Type: SegClose},
		{Type: SegMoveTo, Points: []model.Point{pt(0, 0)}},
		{Type: SegLineTo, Points: []model.Point{pt(0, 10)}},
	}
	if diff := cmp.Diff(want, p.Segments()); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
}

// TestPath_RectangleExpansion checks that re is m l l l h
func TestPath_RectangleExpansion(t *testing.T) {
	rect := NewPath()
	rect.Rectangle(10, 20, 50, 30, model.Identity())

	manual := NewPath()
	manual.MoveTo(pt(10, 20))
	manual.LineTo(pt(60, 20))
	manual.LineTo(pt(60, 50))
	manual.LineTo(pt(10, 50))
	manual.Close()

	if diff := cmp.Diff(manual.Segments(), rect.Segments()); diff != "" {
		t.Errorf("re differs from m l l l h (-want +got):\n%s", diff)
	}
}

func TestPath_RectangleDegenerate(t *testing.T) {
	p := NewPath()
	p.Rectangle(5, 5, 0, 0, model.Identity())

	if len(p.Segments()) != 5 {
		t.Errorf("degenerate rectangle should still produce 5 segments, got %d", len(p.Segments()))
	}
}

func TestPath_RectangleTransformed(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 1, 1, model.Matrix{10, 0, 0, 20, 0, 0})

	segs := p.Segments()
	if segs[2].Points[0] != pt(10, 20) {
		t.Errorf("expected transformed corner (10, 20), got %v", segs[2].Points[0])
	}
}

func TestPath_TrailingMoveToHidden(t *testing.T) {
	p := NewPath()
	p.MoveTo(pt(0, 0))
	p.LineTo(pt(1, 1))
	p.MoveTo(pt(5, 5))

	if len(p.Segments()) != 2 {
		t.Errorf("expected trailing moveto to be dropped, got %v", p.Segments())
	}
}

func TestPath_Clear(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 1, 1, model.Identity())
	p.Clear()

	if !p.IsEmpty() || p.IsOpen() {
		t.Error("path should be empty after Clear")
	}
	if _, ok := p.CurrentPoint(); ok {
		t.Error("Clear should drop the current point")
	}
}

func TestSegmentTypeString(t *testing.T) {
	names := []string{SegMoveTo.String(), SegLineTo.String(), SegCurveTo.String(), SegClose.String()}
	if diff := cmp.Diff([]string{"m", "l", "c", "h"}, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}
