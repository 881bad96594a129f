package interpreter

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/pdfreplay/canvas"
	"github.com/tsawler/pdfreplay/model"
)

func TestFlipAppliedOnce(t *testing.T) {
	rec, _ := run(t, "0 0 m 10 20 l S", WithMargin(5))
	moves := find(rec, canvas.CmdMoveTo)
	if len(moves) != 1 || moves[0].Points[0] != pt(5, testHeight+5) {
		t.Errorf("expected (0,0) at (M, H+M), got %+v", moves)
	}
	lines := find(rec, canvas.CmdLineTo)
	if len(lines) != 1 || lines[0].Points[0] != pt(15, testHeight-15) {
		t.Errorf("expected (10,20) at (15, H-15), got %+v", lines)
	}
}

func TestRectangleExpansion(t *testing.T) {
	rect, _ := run(t, "10 20 30 40 re S")
	expanded, _ := run(t, "10 20 m 40 20 l 40 60 l 10 60 l h S")

	if diff := cmp.Diff(expanded.Commands(), rect.Commands()); diff != "" {
		t.Errorf("re differs from its expansion (-want +got):\n%s", diff)
	}
}

func TestDegenerateRectangle(t *testing.T) {
	rec, warnings := run(t, "10 10 0 0 re f")
	if len(warnings) != 0 {
		t.Errorf("degenerate rectangles are legal, got %v", warnings)
	}
	if len(find(rec, canvas.CmdFill)) != 1 {
		t.Errorf("expected a zero-area fill, got %s", rec)
	}
}

func TestSinglePointSubpath(t *testing.T) {
	rec, _ := run(t, "5 5 m h S")
	if rec.Len() != 0 {
		t.Errorf("moveto then close should not stroke, got %s", rec)
	}

	// the path is still cleared
	rec, _ = run(t, "5 5 m h S 0 0 m 1 0 l S")
	moves := find(rec, canvas.CmdMoveTo)
	if len(moves) != 1 || moves[0].Points[0] != pt(0, testHeight) {
		t.Errorf("expected only the second subpath, got %+v", moves)
	}
}

func TestCurves(t *testing.T) {
	H := testHeight
	tests := []struct {
		name string
		src  string
		want []model.Point
	}{
		{"c", "0 0 m 1 2 3 4 5 6 c S", []model.Point{pt(1, H-2), pt(3, H-4), pt(5, H-6)}},
		{"v", "0 0 m 3 4 5 6 v S", []model.Point{pt(0, H), pt(3, H-4), pt(5, H-6)}},
		{"y", "0 0 m 1 2 5 6 y S", []model.Point{pt(1, H-2), pt(5, H-6), pt(5, H-6)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, warnings := run(t, tt.src)
			if len(warnings) != 0 {
				t.Fatalf("unexpected warnings: %v", warnings)
			}
			curves := find(rec, canvas.CmdCurveTo)
			if len(curves) != 1 {
				t.Fatalf("expected 1 curve, got %s", rec)
			}
			if diff := cmp.Diff(tt.want, curves[0].Points); diff != "" {
				t.Errorf("control points mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPaintOperators(t *testing.T) {
	const tri = "0 0 m 10 0 l 10 10 l "
	M, L, C := canvas.CmdMoveTo, canvas.CmdLineTo, canvas.CmdClose
	F, S := canvas.CmdFill, canvas.CmdStroke

	tests := []struct {
		op   string
		want []canvas.CommandKind
		rule canvas.FillRule
	}{
		{"S", []canvas.CommandKind{M, L, L, S}, canvas.NonZero},
		{"s", []canvas.CommandKind{M, L, L, C, S}, canvas.NonZero},
		{"f", []canvas.CommandKind{M, L, L, C, F}, canvas.NonZero},
		{"F", []canvas.CommandKind{M, L, L, C, F}, canvas.NonZero},
		{"f*", []canvas.CommandKind{M, L, L, C, F}, canvas.EvenOdd},
		{"B", []canvas.CommandKind{M, L, L, F, M, L, L, S}, canvas.NonZero},
		{"B*", []canvas.CommandKind{M, L, L, F, M, L, L, S}, canvas.EvenOdd},
		{"b", []canvas.CommandKind{M, L, L, C, F, M, L, L, C, S}, canvas.NonZero},
		{"b*", []canvas.CommandKind{M, L, L, C, F, M, L, L, C, S}, canvas.EvenOdd},
		{"n", nil, canvas.NonZero},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			rec, warnings := run(t, tri+tt.op)
			if len(warnings) != 0 {
				t.Fatalf("unexpected warnings: %v", warnings)
			}
			if diff := cmp.Diff(tt.want, kinds(rec)); diff != "" {
				t.Errorf("commands mismatch (-want +got):\n%s", diff)
			}
			for _, f := range find(rec, canvas.CmdFill) {
				if f.Rule != tt.rule {
					t.Errorf("expected %s fill, got %s", tt.rule, f.Rule)
				}
			}
		})
	}
}

func TestPaintClearsPath(t *testing.T) {
	for _, op := range []string{"S", "f", "B", "n"} {
		rec, _ := run(t, "0 0 m 10 10 l "+op+" 20 20 m 30 30 l S")

		cmds := rec.Commands()
		tail := kinds(rec)[len(cmds)-3:]
		want := []canvas.CommandKind{canvas.CmdMoveTo, canvas.CmdLineTo, canvas.CmdStroke}
		if diff := cmp.Diff(want, tail); diff != "" {
			t.Errorf("%s: previous path leaked into the next paint (-want +got):\n%s", op, diff)
		}
		if start := cmds[len(cmds)-3].Points[0]; start != pt(20, testHeight-20) {
			t.Errorf("%s: expected the last path to start fresh, got %v", op, start)
		}
	}
}

func TestSegmentAfterClose(t *testing.T) {
	rec, _ := run(t, "0 0 m 10 0 l 10 10 l h 20 20 l S")
	want := []canvas.Command{
		{Kind: canvas.CmdMoveTo, Points: []model.Point{pt(0, 792)}},
		{Kind: canvas.CmdLineTo, Points: []model.Point{pt(10, 792)}},
		{Kind: canvas.CmdLineTo, Points: []model.Point{pt(10, 782)}},
		{Kind: canvas.CmdClose},
		{Kind: canvas.CmdMoveTo, Points: []model.Point{pt(0, 792)}},
		{Kind: canvas.CmdLineTo, Points: []model.Point{pt(20, 772)}},
		{Kind: canvas.CmdStroke, Color: model.Black, Width: 1},
	}
	if diff := cmp.Diff(want, rec.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestConcatTransformsPath(t *testing.T) {
	rec, _ := run(t, "2 0 0 2 0 0 cm 1 1 m 2 2 l S")
	want := []canvas.Command{
		{Kind: canvas.CmdMoveTo, Points: []model.Point{pt(2, testHeight-2)}},
		{Kind: canvas.CmdLineTo, Points: []model.Point{pt(4, testHeight-4)}},
		{Kind: canvas.CmdStroke, Color: model.Black, Width: 2},
	}
	if diff := cmp.Diff(want, rec.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestConcatAccumulates(t *testing.T) {
	rec, _ := run(t, "1 0 0 1 10 0 cm 1 0 0 1 0 5 cm 2 0 0 2 0 0 cm 1 1 m 2 2 l S")
	moves := find(rec, canvas.CmdMoveTo)
	// the last cm applies first: (1,1) -> (2,2) -> (2,7) -> (12,7)
	if moves[0].Points[0] != pt(12, testHeight-7) {
		t.Errorf("unexpected point %v", moves[0].Points[0])
	}
}

func TestConcatRestored(t *testing.T) {
	rec, _ := run(t, "q 1 0 0 1 100 100 cm Q 1 1 m 2 2 l S")
	moves := find(rec, canvas.CmdMoveTo)
	if moves[0].Points[0] != pt(1, testHeight-1) {
		t.Errorf("Q should restore the CTM, got %v", moves[0].Points[0])
	}
}

func TestLineWidth(t *testing.T) {
	rec, _ := run(t, "3 w 0 0 m 1 1 l S")
	if s := find(rec, canvas.CmdStroke); s[0].Width != 3 {
		t.Errorf("expected width 3, got %v", s[0].Width)
	}

	rec, warnings := run(t, "3 w -1 w 0 0 m 1 1 l S")
	if len(warnings) != 1 || warnings[0].Kind != WarnMalformed {
		t.Errorf("expected negative width to be malformed, got %v", warnings)
	}
	if s := find(rec, canvas.CmdStroke); s[0].Width != 3 {
		t.Errorf("expected width 3 to survive, got %v", s[0].Width)
	}
}
