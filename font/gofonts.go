package font

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// SubstituteTTF returns the Go font TrueType program used to draw text in
// place of d, together with a key identifying it for caching.
func SubstituteTTF(d Descriptor) (key string, ttf []byte) {
	std := d.Standard14()
	switch {
	case len(std) >= 7 && std[:7] == "Courier":
		if d.IsBold() {
			return "gomonobold", gomonobold.TTF
		}
		return "gomono", gomono.TTF
	case d.IsBold() && d.Italic:
		return "gobolditalic", gobolditalic.TTF
	case d.IsBold():
		return "gobold", gobold.TTF
	case d.Italic:
		return "goitalic", goitalic.TTF
	}
	return "goregular", goregular.TTF
}
