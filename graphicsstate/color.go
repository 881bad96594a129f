package graphicsstate

import "github.com/tsawler/pdfreplay/model"

// Gray converts a DeviceGray component
func Gray(g float64) model.Color {
	return model.Color{R: g, G: g, B: g}
}

// RGB converts DeviceRGB components
func RGB(r, g, b float64) model.Color {
	return model.Color{R: r, G: g, B: b}
}

// CMYK converts DeviceCMYK components with the naive complement formula
func CMYK(c, m, y, k float64) model.Color {
	return model.Color{
		R: (1 - c) * (1 - k),
		G: (1 - m) * (1 - k),
		B: (1 - y) * (1 - k),
	}
}

// FromComponents interprets 1, 3 or 4 colour components as gray, RGB or
// CMYK. Any other count reports false.
func FromComponents(v []float64) (model.Color, bool) {
	switch len(v) {
	case 1:
		return Gray(v[0]), true
	case 3:
		return RGB(v[0], v[1], v[2]), true
	case 4:
		return CMYK(v[0], v[1], v[2], v[3]), true
	}
	return model.Color{}, false
}
