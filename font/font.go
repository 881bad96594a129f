package font

import (
	"strconv"
	"strings"
)

// Weight is a CSS-style font weight
type Weight int

const (
	WeightLight   Weight = 300
	WeightRegular Weight = 400
	WeightMedium  Weight = 500
	WeightBold    Weight = 700
	WeightBlack   Weight = 900
)

// String returns the weight as a keyword where one exists
func (w Weight) String() string {
	switch w {
	case WeightLight:
		return "light"
	case WeightRegular:
		return "normal"
	case WeightMedium:
		return "medium"
	case WeightBold:
		return "bold"
	case WeightBlack:
		return "black"
	}
	return strconv.Itoa(int(w))
}

// Descriptor identifies a font well enough to measure and draw text with a
// substitute face: the PostScript name from the PDF plus the family, weight
// and slant derived from it.
type Descriptor struct {
	BaseFont string
	Family   string
	Weight   Weight
	Italic   bool
}

// Default returns the descriptor used before any Tf operator
func Default() Descriptor {
	return Descriptor{BaseFont: "Helvetica", Family: "Helvetica", Weight: WeightRegular}
}

// IsBold reports whether the weight is semibold or heavier
func (d Descriptor) IsBold() bool {
	return d.Weight >= 600
}

var styleWeights = map[string]Weight{
	"light":      WeightLight,
	"regular":    WeightRegular,
	"roman":      WeightRegular,
	"book":       WeightRegular,
	"normal":     WeightRegular,
	"medium":     WeightMedium,
	"semibold":   600,
	"demibold":   600,
	"demi":       600,
	"bold":       WeightBold,
	"extrabold":  800,
	"heavy":      WeightBlack,
	"black":      WeightBlack,
	"italic":     WeightRegular,
	"oblique":    WeightRegular,
	"it":         WeightRegular,
	"mt":         WeightRegular,
	"ps":         WeightRegular,
	"psmt":       WeightRegular,
	"condensed":  WeightRegular,
	"narrow":     WeightRegular,
	"boldmt":     WeightBold,
	"bolditalic": WeightBold,
}

// ParseBaseFont derives a descriptor from a /BaseFont name such as
// "ABCDEF+Arial,BoldItalic" or "Times-BoldItalic". A six letter subset tag
// is dropped, and the style suffix after ',' or '-' sets weight and slant.
func ParseBaseFont(baseFont string) Descriptor {
	name := stripSubsetTag(baseFont)
	d := Descriptor{BaseFont: name, Family: name, Weight: WeightRegular}
	if name == "" {
		return Default()
	}

	cut := strings.IndexAny(name, ",-")
	if cut > 0 {
		d.Family = name[:cut]
		style := strings.ToLower(strings.NewReplacer(",", "", "-", "").Replace(name[cut+1:]))
		applyStyle(&d, style)
	}

	// TimesNewRomanPS-BoldMT and friends carry the suffix in the family
	for _, suffix := range []string{"PSMT", "MT", "PS"} {
		if strings.HasSuffix(d.Family, suffix) && len(d.Family) > len(suffix) {
			d.Family = strings.TrimSuffix(d.Family, suffix)
			break
		}
	}
	return d
}

func applyStyle(d *Descriptor, style string) {
	if strings.Contains(style, "italic") || strings.Contains(style, "oblique") {
		d.Italic = true
	}
	if w, ok := styleWeights[style]; ok {
		d.Weight = w
		return
	}
	// compound styles such as "semibolditalic"
	switch {
	case strings.Contains(style, "semibold"), strings.Contains(style, "demi"):
		d.Weight = 600
	case strings.Contains(style, "extrabold"):
		d.Weight = 800
	case strings.Contains(style, "black"), strings.Contains(style, "heavy"):
		d.Weight = WeightBlack
	case strings.Contains(style, "bold"):
		d.Weight = WeightBold
	case strings.Contains(style, "light"):
		d.Weight = WeightLight
	case strings.Contains(style, "medium"):
		d.Weight = WeightMedium
	}
}

func stripSubsetTag(name string) string {
	if len(name) > 7 && name[6] == '+' {
		for i := 0; i < 6; i++ {
			if name[i] < 'A' || name[i] > 'Z' {
				return name
			}
		}
		return name[7:]
	}
	return name
}

// Standard14 returns the name of the standard 14 font whose metrics best
// approximate d: one of the Helvetica, Times, Courier families, Symbol or
// ZapfDingbats.
func (d Descriptor) Standard14() string {
	family := strings.ToLower(strings.ReplaceAll(d.Family, " ", ""))

	var base string
	switch {
	case strings.Contains(family, "courier"), strings.Contains(family, "mono"):
		base = "Courier"
	case strings.Contains(family, "times"), strings.Contains(family, "serif") && !strings.Contains(family, "sans"),
		strings.Contains(family, "georgia"), strings.Contains(family, "garamond"):
		base = "Times"
	case family == "symbol":
		return "Symbol"
	case strings.Contains(family, "dingbats"):
		return "ZapfDingbats"
	default:
		base = "Helvetica"
	}

	bold := d.IsBold()
	switch base {
	case "Times":
		switch {
		case bold && d.Italic:
			return "Times-BoldItalic"
		case bold:
			return "Times-Bold"
		case d.Italic:
			return "Times-Italic"
		}
		return "Times-Roman"
	default:
		slant := "Oblique"
		switch {
		case bold && d.Italic:
			return base + "-Bold" + slant
		case bold:
			return base + "-Bold"
		case d.Italic:
			return base + "-" + slant
		}
		return base
	}
}
