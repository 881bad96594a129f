package model

// Document is an ordered collection of pages to replay
type Document struct {
	Source string // where the pages came from, for diagnostics
	Pages  []*Page
}

// NewDocument creates an empty document
func NewDocument(source string) *Document {
	return &Document{Source: source, Pages: make([]*Page, 0)}
}

// AddPage appends a page, numbering it if it has no number yet
func (d *Document) AddPage(page *Page) {
	if page.Number == 0 {
		page.Number = len(d.Pages) + 1
	}
	d.Pages = append(d.Pages, page)
}

// PageCount returns the number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// GetPage returns the page at 0-based index, or nil when out of range
func (d *Document) GetPage(index int) *Page {
	if index < 0 || index >= len(d.Pages) {
		return nil
	}
	return d.Pages[index]
}
