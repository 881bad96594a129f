package contentstream

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tsawler/pdfreplay/core"
)

func TestParseOperators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Operation
	}{
		{
			name:  "no operands",
			input: "q Q",
			want: []Operation{
				{Operator: "q", Operands: []core.Object{}},
				{Operator: "Q", Operands: []core.Object{}},
			},
		},
		{
			name:  "integers and reals",
			input: "1 0 0 1 72.5 -.5 cm",
			want: []Operation{
				{Operator: "cm", Operands: []core.Object{
					core.Int(1), core.Int(0), core.Int(0), core.Int(1), core.Real(72.5), core.Real(-0.5),
				}},
			},
		},
		{
			name:  "font and text",
			input: "BT /F1 12 Tf 20 700 Td (Hi) Tj ET",
			want: []Operation{
				{Operator: "BT", Operands: []core.Object{}},
				{Operator: "Tf", Operands: []core.Object{core.Name("F1"), core.Int(12)}},
				{Operator: "Td", Operands: []core.Object{core.Int(20), core.Int(700)}},
				{Operator: "Tj", Operands: []core.Object{core.String("Hi")}},
				{Operator: "ET", Operands: []core.Object{}},
			},
		},
		{
			name:  "quote operators",
			input: "(a) ' 1 2 (b) \"",
			want: []Operation{
				{Operator: "'", Operands: []core.Object{core.String("a")}},
				{Operator: "\"", Operands: []core.Object{core.Int(1), core.Int(2), core.String("b")}},
			},
		},
		{
			name:  "starred and digit operators",
			input: "f* T* 0 0 d0",
			want: []Operation{
				{Operator: "f*", Operands: []core.Object{}},
				{Operator: "T*", Operands: []core.Object{}},
				{Operator: "d0", Operands: []core.Object{core.Int(0), core.Int(0)}},
			},
		},
		{
			name:  "text array",
			input: "[(AB) -250 (CD)] TJ",
			want: []Operation{
				{Operator: "TJ", Operands: []core.Object{
					core.Array{core.String("AB"), core.Int(-250), core.String("CD")},
				}},
			},
		},
		{
			name:  "comments",
			input: "% header\n0 g % gray\nf",
			want: []Operation{
				{Operator: "g", Operands: []core.Object{core.Int(0)}},
				{Operator: "f", Operands: []core.Object{}},
			},
		},
		{
			name:  "marked content dictionary",
			input: "/Span <</MCID 3 /Alt (x)>> BDC EMC",
			want: []Operation{
				{Operator: "BDC", Operands: []core.Object{
					core.Name("Span"), core.Dict{"MCID": core.Int(3), "Alt": core.String("x")},
				}},
				{Operator: "EMC", Operands: []core.Object{}},
			},
		},
		{
			name:  "booleans and null",
			input: "true false null MP",
			want: []Operation{
				{Operator: "MP", Operands: []core.Object{core.Bool(true), core.Bool(false), core.Null{}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, ops); diff != "" {
				t.Errorf("operations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLiteralStrings(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`(plain) Tj`, "plain"},
		{`(a (nested) b) Tj`, "a (nested) b"},
		{`(esc\(\)\\) Tj`, `esc()\`},
		{`(tab\tnl\n) Tj`, "tab\tnl\n"},
		{`(\101\102) Tj`, "AB"},
		{`(\0053) Tj`, "\x053"},
		{"(line\\\ncont) Tj", "linecont"},
		{`(\q) Tj`, "q"},
	}

	for _, tt := range tests {
		ops, err := Parse([]byte(tt.input))
		if err != nil {
			t.Fatalf("%s: Parse failed: %v", tt.input, err)
		}
		if len(ops) != 1 || len(ops[0].Operands) != 1 {
			t.Fatalf("%s: unexpected operations %v", tt.input, ops)
		}
		if got := ops[0].Operands[0]; got != core.String(tt.want) {
			t.Errorf("%s: expected %q, got %q", tt.input, tt.want, got)
		}
	}
}

func TestParseHexStrings(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<4869> Tj", "Hi"},
		{"<48 69> Tj", "Hi"},
		{"<486> Tj", "H`"},
		{"<> Tj", ""},
	}

	for _, tt := range tests {
		ops, err := Parse([]byte(tt.input))
		if err != nil {
			t.Fatalf("%s: Parse failed: %v", tt.input, err)
		}
		if got := ops[0].Operands[0]; got != core.String(tt.want) {
			t.Errorf("%s: expected %q, got %q", tt.input, tt.want, got)
		}
	}
}

func TestParseNames(t *testing.T) {
	ops, err := Parse([]byte("/Font#20Name /A#2 cs"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []core.Object{core.Name("Font Name"), core.Name("A#2")}
	if diff := cmp.Diff(want, ops[0].Operands); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestParseInlineImage(t *testing.T) {
	input := "q BI /W 2 /H 1 /CS /G /BPC 8 ID \x00\xffEI\x01 EI Q"
	ops, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var names []string
	for _, op := range ops {
		names = append(names, op.Operator)
	}
	if diff := cmp.Diff([]string{"q", "BI", "ID", "EI", "Q"}, names); diff != "" {
		t.Fatalf("operators mismatch (-want +got):\n%s", diff)
	}

	params, ok := ops[2].Operands[0].(core.Dict)
	if !ok {
		t.Fatalf("expected ID to carry the image dictionary, got %v", ops[2].Operands)
	}
	if params["W"] != core.Int(2) || params["CS"] != core.Name("G") {
		t.Errorf("unexpected image parameters %v", params)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"unclosed string", "(abc Tj", ErrUnterminated},
		{"unclosed array", "[1 2", ErrUnterminated},
		{"unclosed dict", "<</A 1", ErrUnterminated},
		{"unclosed hex", "<4142", ErrUnterminated},
		{"inline image without EI", "BI /W 1 ID xx", ErrUnterminated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseInvalidHex(t *testing.T) {
	if _, err := Parse([]byte("<4G> Tj")); err == nil {
		t.Error("expected error for invalid hex digit")
	}
}

func TestParseTrailingOperandsDropped(t *testing.T) {
	ops, err := Parse([]byte("0 g 1 2"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ops) != 1 {
		t.Errorf("expected 1 operation, got %d", len(ops))
	}
}

func TestParseEmpty(t *testing.T) {
	ops, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if ops == nil || len(ops) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", ops)
	}
}

func TestParseOperandsNotShared(t *testing.T) {
	ops, err := Parse([]byte("1 g 2 G"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if ops[0].Operands[0] != core.Int(1) || ops[1].Operands[0] != core.Int(2) {
		t.Errorf("operands overwritten: %v", ops)
	}
}

func TestOperationString(t *testing.T) {
	op := Operation{Operator: "TJ", Operands: []core.Object{
		core.Array{core.String("AB"), core.Int(-250)},
	}}
	if got := op.String(); got != "[(AB) -250] TJ" {
		t.Errorf("unexpected string %q", got)
	}
}
