// Package font describes the fonts a content stream refers to and provides
// the metrics needed to advance the text cursor.
//
// A PDF names fonts by PostScript name (/BaseFont). [ParseBaseFont] turns
// such a name into a [Descriptor] with family, weight and slant:
//
//	d := font.ParseBaseFont("ABCDEF+Arial,BoldItalic")
//	// d.Family == "Arial", d.Weight == font.WeightBold, d.Italic == true
//
// # Metrics
//
// Embedded font programs are not read. Widths come from the standard 14
// AFM tables, choosing the closest standard face for any other name:
//
//	w := font.WidthsFor(d)
//	advance := w.StringWidth("Hello") / 1000 * fontSize
//
// # Decoding
//
// [DecodeString] maps string operand bytes to Unicode, honouring a UTF-16
// byte order mark and otherwise assuming WinAnsiEncoding.
package font
