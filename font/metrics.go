package font

// DefaultWidth is the advance, in 1/1000 em, used for glyphs with no metrics
const DefaultWidth = 500.0

// Widths holds per-character advances in 1/1000 em
type Widths struct {
	name  string
	table *[lastASCII - firstASCII + 1]float64
	fixed float64
}

var courierWidths = Widths{name: "Courier", fixed: 600}

var standardWidths = map[string]Widths{
	"Helvetica":             {name: "Helvetica", table: &helveticaWidths},
	"Helvetica-Oblique":     {name: "Helvetica-Oblique", table: &helveticaWidths},
	"Helvetica-Bold":        {name: "Helvetica-Bold", table: &helveticaBoldWidths},
	"Helvetica-BoldOblique": {name: "Helvetica-BoldOblique", table: &helveticaBoldWidths},
	"Times-Roman":           {name: "Times-Roman", table: &timesWidths},
	"Times-Italic":          {name: "Times-Italic", table: &timesWidths},
	"Times-Bold":            {name: "Times-Bold", table: &timesBoldWidths},
	"Times-BoldItalic":      {name: "Times-BoldItalic", table: &timesBoldWidths},
	"Courier":               courierWidths,
	"Courier-Oblique":       courierWidths,
	"Courier-Bold":          courierWidths,
	"Courier-BoldOblique":   courierWidths,
	"Symbol":                {name: "Symbol", fixed: DefaultWidth},
	"ZapfDingbats":          {name: "ZapfDingbats", fixed: DefaultWidth},
}

// IsStandard reports whether name is one of the standard 14 fonts
func IsStandard(name string) bool {
	_, ok := standardWidths[name]
	return ok
}

// WidthsFor returns the metrics for a descriptor, substituting the closest
// standard 14 font.
func WidthsFor(d Descriptor) Widths {
	if w, ok := standardWidths[d.BaseFont]; ok {
		return w
	}
	return standardWidths[d.Standard14()]
}

// Name returns the standard font the widths belong to
func (w Widths) Name() string {
	return w.name
}

// Width returns the advance of r in 1/1000 em
func (w Widths) Width(r rune) float64 {
	if w.fixed != 0 {
		return w.fixed
	}
	if r >= firstASCII && r <= lastASCII && w.table != nil {
		return w.table[r-firstASCII]
	}
	return DefaultWidth
}

// StringWidth sums the advances of every rune in s, in 1/1000 em
func (w Widths) StringWidth(s string) float64 {
	total := 0.0
	for _, r := range s {
		total += w.Width(r)
	}
	return total
}
