package graphicsstate

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/pdfreplay/font"
	"github.com/tsawler/pdfreplay/model"
)

// TextState is the text positioning state. It lives for one page and is
// not affected by q and Q.
type TextState struct {
	// Font and size (Tf operator)
	Font     font.Descriptor
	FontName string
	FontSize float64

	CharSpacing       float64 // Tc
	WordSpacing       float64 // Tw
	HorizontalScaling float64 // Tz, percent
	Leading           float64 // TL
	Rise              float64 // Ts
	RenderingMode     int     // Tr

	// Text matrices. Only the translation part is ever non-identity; see
	// SetTextMatrix.
	TextMatrix     model.Matrix
	TextLineMatrix model.Matrix
}

// RenderInvisible is the Tr mode that neither fills nor strokes glyphs
const RenderInvisible = 3

// NewTextState creates a text state with the given default font, size and
// leading.
func NewTextState(d font.Descriptor, size, leading float64) TextState {
	return TextState{
		Font:              d,
		FontSize:          size,
		HorizontalScaling: 100,
		Leading:           leading,
		TextMatrix:        model.Identity(),
		TextLineMatrix:    model.Identity(),
	}
}

// BeginText resets both text matrices (BT operator)
func (ts *TextState) BeginText() {
	ts.TextMatrix = model.Identity()
	ts.TextLineMatrix = model.Identity()
}

// SetFont sets the font resource name, its descriptor and the size (Tf)
func (ts *TextState) SetFont(name string, d font.Descriptor, size float64) {
	ts.FontName = name
	ts.Font = d
	ts.FontSize = size
}

// SetTextMatrix replaces the text and line matrices (Tm operator). Only the
// e and f components are honoured; a, b, c and d are discarded, so rotated
// or scaled text is placed at the right origin but drawn upright.
func (ts *TextState) SetTextMatrix(m model.Matrix) {
	origin := m.Translation()
	ts.TextMatrix = model.Translate(origin.X, origin.Y)
	ts.TextLineMatrix = ts.TextMatrix
}

// MoveText starts a new line offset from the start of the current line
// (Td operator).
func (ts *TextState) MoveText(tx, ty float64) {
	ts.TextLineMatrix = model.Translate(tx, ty).Multiply(ts.TextLineMatrix)
	ts.TextMatrix = ts.TextLineMatrix
}

// MoveTextSetLeading is Td that also sets the leading to -ty (TD operator)
func (ts *TextState) MoveTextSetLeading(tx, ty float64) {
	ts.Leading = -ty
	ts.MoveText(tx, ty)
}

// NextLine moves to the start of the next line (T* operator)
func (ts *TextState) NextLine() {
	ts.MoveText(0, -ts.Leading)
}

// Cursor returns the glyph origin in text space coordinates of the
// enclosing user space, including the text rise.
func (ts *TextState) Cursor() model.Point {
	return ts.TextMatrix.Transform(model.Point{X: 0, Y: ts.Rise})
}

// Advance moves the cursor right by tx, leaving the line matrix alone
func (ts *TextState) Advance(tx float64) {
	ts.TextMatrix = model.Translate(tx, 0).Multiply(ts.TextMatrix)
}

// Adjust applies a TJ array number: the cursor moves left by amount
// thousandths of the font size, so negative numbers move right.
func (ts *TextState) Adjust(amount float64) {
	ts.Advance(-amount / 1000 * ts.FontSize * ts.HorizontalScaling / 100)
}

// Displacement returns the horizontal advance of a shown string given the
// width measured by a text layout at the current font size. Character and
// word spacing apply per glyph and per ASCII space, and the sum is scaled by
// the horizontal scaling.
func (ts *TextState) Displacement(width float64, text string) float64 {
	glyphs := utf8.RuneCountInString(text)
	spaces := strings.Count(text, " ")
	return (width + ts.CharSpacing*float64(glyphs) + ts.WordSpacing*float64(spaces)) *
		ts.HorizontalScaling / 100
}

// Visible reports whether the current rendering mode paints glyphs
func (ts *TextState) Visible() bool {
	return ts.RenderingMode != RenderInvisible
}
