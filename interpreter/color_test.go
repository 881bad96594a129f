package interpreter

import (
	"testing"

	"github.com/tsawler/pdfreplay/canvas"
	"github.com/tsawler/pdfreplay/model"
	"github.com/tsawler/pdfreplay/resolver"
)

// fillColor interprets src followed by a filled square and returns the fill
func fillColor(t *testing.T, src string, opts ...Option) (model.Color, []Warning) {
	t.Helper()
	rec, warnings := run(t, src+" 0 0 1 1 re f", opts...)
	fills := find(rec, canvas.CmdFill)
	if len(fills) != 1 {
		t.Fatalf("expected 1 fill, got %s", rec)
	}
	return fills[0].Color, warnings
}

// strokeColor interprets src followed by a stroked line and returns the
// stroke colour
func strokeColor(t *testing.T, src string, opts ...Option) (model.Color, []Warning) {
	t.Helper()
	rec, warnings := run(t, src+" 0 0 m 1 1 l S", opts...)
	strokes := find(rec, canvas.CmdStroke)
	if len(strokes) != 1 {
		t.Fatalf("expected 1 stroke, got %s", rec)
	}
	return strokes[0].Color, warnings
}

func TestDeviceColors(t *testing.T) {
	tests := []struct {
		src  string
		want model.Color
	}{
		{"0.5 g", model.Color{R: 0.5, G: 0.5, B: 0.5}},
		{"0.25 0.5 0.75 rg", model.Color{R: 0.25, G: 0.5, B: 0.75}},
		{"0 0 0 0 k", model.White},
		{"0 0 0 1 k", model.Black},
		{"1 0 0 0 k", model.Color{G: 1, B: 1}},
		{"0 0 0 0.5 k", model.Color{R: 0.5, G: 0.5, B: 0.5}},
		{"2 -1 0.5 rg", model.Color{R: 1, G: 0, B: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, warnings := fillColor(t, tt.src)
			if len(warnings) != 0 {
				t.Fatalf("unexpected warnings: %v", warnings)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestStrokeRGBExact(t *testing.T) {
	got, _ := strokeColor(t, "0.1 0.2 0.3 RG")
	if got != (model.Color{R: 0.1, G: 0.2, B: 0.3}) {
		t.Errorf("expected exact stroke colour, got %v", got)
	}
}

func TestStrokeAndFillSeparate(t *testing.T) {
	rec, _ := run(t, "1 0 0 RG 0 0 1 rg 0 0 m 5 0 l 5 5 l B")
	fills := find(rec, canvas.CmdFill)
	strokes := find(rec, canvas.CmdStroke)
	if fills[0].Color != (model.Color{B: 1}) || strokes[0].Color != red {
		t.Errorf("expected blue fill and red stroke, got %v and %v", fills[0].Color, strokes[0].Color)
	}

	got, _ := strokeColor(t, "0 0 0 1 K 1 g")
	if got != model.Black {
		t.Errorf("g should not touch the stroke colour, got %v", got)
	}
}

func TestGenericColorComponents(t *testing.T) {
	tests := []struct {
		src  string
		want model.Color
	}{
		{"0.5 sc", model.Color{R: 0.5, G: 0.5, B: 0.5}},
		{"0 1 0 sc", model.Color{G: 1}},
		{"0 0 0 1 scn", model.Black},
		{"1 0 0 0 scn", model.Color{G: 1, B: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, warnings := fillColor(t, tt.src)
			if len(warnings) != 0 {
				t.Fatalf("unexpected warnings: %v", warnings)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	got, _ := strokeColor(t, "0 0 1 SCN")
	if got != (model.Color{B: 1}) {
		t.Errorf("SCN should set the stroke colour, got %v", got)
	}
}

func TestGenericColorMalformed(t *testing.T) {
	for _, src := range []string{"1 0 0 rg 0.5 0.5 sc", "1 0 0 rg sc", "1 0 0 rg (x) sc", "1 0 0 rg /P0 1 scn"} {
		got, warnings := fillColor(t, src)
		if len(warnings) != 1 || warnings[0].Kind != WarnMalformed {
			t.Errorf("%q: expected a malformed warning, got %v", src, warnings)
		}
		if got != red {
			t.Errorf("%q: malformed colour should leave red, got %v", src, got)
		}
	}
}

func TestNamedPattern(t *testing.T) {
	res := &resolver.Map{Colors: map[string]model.Color{"P0": red}}

	got, warnings := fillColor(t, "/Pattern cs /P0 scn", WithResolver(res))
	if len(warnings) != 0 || got != red {
		t.Errorf("expected resolved red, got %v %v", got, warnings)
	}

	got, warnings = fillColor(t, "/Pattern cs /P9 scn", WithResolver(res))
	if got != FallbackColor {
		t.Errorf("expected fallback colour, got %v", got)
	}
	if len(warnings) != 1 || warnings[0].Kind != WarnUnresolved {
		t.Errorf("expected an unresolved warning, got %v", warnings)
	}
}

func TestUncolouredPattern(t *testing.T) {
	res := &resolver.Map{Colors: map[string]model.Color{"P1": red}}
	got, warnings := strokeColor(t, "0.2 0.3 0.4 /P1 SCN", WithResolver(res))
	if got != FallbackColor || len(warnings) != 0 {
		t.Errorf("expected fallback colour without warnings, got %v %v", got, warnings)
	}
}

func TestPatternFromPageResources(t *testing.T) {
	page := testPage(t, "/CS1 cs /P0 scn 0 0 1 1 re f")
	page.Resources = resolverTestResources()

	rec := canvas.NewRecorder()
	warnings, err := New().Interpret(page, rec)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if fills := find(rec, canvas.CmdFill); fills[0].Color != (model.Color{B: 1}) {
		t.Errorf("expected the shading background, got %v", fills[0].Color)
	}
}

func TestColorSpace(t *testing.T) {
	res := &resolver.Map{ColorSpaces: map[string]resolver.Family{"CS0": resolver.ICCBased}}

	tests := []struct {
		src      string
		want     model.Color
		warnings int
	}{
		{"1 0 0 rg /DeviceRGB cs", model.Black, 0},
		{"1 0 0 rg /DeviceGray cs", model.Black, 0},
		{"1 0 0 rg /CS0 cs", model.Black, 0},
		{"1 0 0 rg /Pattern cs", FallbackColor, 0},
		{"1 0 0 rg /Missing cs", FallbackColor, 1},
		{"/DeviceCMYK cs 0 0 0 0 sc", model.White, 0},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, warnings := fillColor(t, tt.src, WithResolver(res))
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if len(warnings) != tt.warnings {
				t.Errorf("expected %d warnings, got %v", tt.warnings, warnings)
			}
		})
	}

	got, _ := strokeColor(t, "1 0 0 RG /DeviceRGB CS", WithResolver(res))
	if got != model.Black {
		t.Errorf("CS should reset the stroke colour, got %v", got)
	}
}

func TestWithFallbackColor(t *testing.T) {
	got, _ := fillColor(t, "/Pattern cs", WithFallbackColor(model.White))
	if got != model.White {
		t.Errorf("expected configured fallback, got %v", got)
	}
}
