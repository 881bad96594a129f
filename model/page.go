package model

import (
	"github.com/tsawler/pdfreplay/contentstream"
	"github.com/tsawler/pdfreplay/core"
)

// Page is one renderable unit: its size, its resource dictionary and the
// already-tokenized content stream. The interpreter never modifies a Page.
type Page struct {
	Number     int                       // 1-indexed page number
	Width      float64                   // Page width in points
	Height     float64                   // Page height in points
	Resources  core.Dict                 // /Resources dictionary, may be nil
	Operations []contentstream.Operation // Content stream in order
}

// NewPage creates a page with the given size and operations
func NewPage(width, height float64, ops []contentstream.Operation) *Page {
	return &Page{Width: width, Height: height, Operations: ops}
}

// ParsePage tokenizes decoded content stream bytes into a page
func ParsePage(width, height float64, content []byte) (*Page, error) {
	ops, err := contentstream.Parse(content)
	if err != nil {
		return nil, err
	}
	return NewPage(width, height, ops), nil
}

// MediaBox returns the page rectangle in user space
func (p *Page) MediaBox() BBox {
	return NewBBox(0, 0, p.Width, p.Height)
}
