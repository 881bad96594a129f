// Package model holds the value types shared by the interpreter and its
// collaborators.
//
// A [Page] bundles the page size, the resource dictionary and the tokenized
// content stream; a [Document] is an ordered list of pages. Geometry is
// expressed with [Point], [BBox] and the PDF affine [Matrix]; colours are
// plain RGB [Color] values in [0, 1].
//
//	page, err := model.ParsePage(612, 792, []byte("1 0 0 rg 10 10 50 30 re f"))
//	if err != nil {
//	    return err
//	}
//
// Coordinates in this package are PDF user space (origin at the bottom
// left, Y up). Conversion to device space happens once, inside the
// interpreter.
package model
