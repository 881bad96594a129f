package resolver

import (
	"fmt"

	"github.com/tsawler/pdfreplay/core"
	"github.com/tsawler/pdfreplay/font"
	"github.com/tsawler/pdfreplay/graphicsstate"
	"github.com/tsawler/pdfreplay/model"
)

// Resolver looks up names used by content stream operators in a page's
// resources. Each method reports false when the name cannot be resolved.
type Resolver interface {
	// Font resolves a /Font entry named by Tf
	Font(name string) (font.Descriptor, bool)

	// Color resolves a pattern or colorant named by scn or SCN to a single
	// representative colour
	Color(name string) (model.Color, bool)

	// ColorSpace resolves a colour space named by cs or CS
	ColorSpace(name string) (Family, bool)
}

// DictResolver resolves names against a page resource dictionary
type DictResolver struct {
	resources core.Dict
	maxDepth  int // Maximum colour space alias chain
}

// Option configures the resolver
type Option func(*DictResolver)

// WithMaxDepth sets the maximum colour space alias depth (default: 16)
func WithMaxDepth(depth int) Option {
	return func(r *DictResolver) {
		r.maxDepth = depth
	}
}

// NewResolver creates a resolver over a resource dictionary. A nil
// dictionary resolves only the device colour spaces.
func NewResolver(resources core.Dict, opts ...Option) *DictResolver {
	r := &DictResolver{
		resources: resources,
		maxDepth:  16,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// FromDict is shorthand for NewResolver with default options
func FromDict(resources core.Dict) *DictResolver {
	return NewResolver(resources)
}

func (r *DictResolver) category(name string) core.Dict {
	if r == nil || r.resources == nil {
		return nil
	}
	d, _ := r.resources.GetDict(name)
	return d
}

// Font resolves /Font/<name> through its /BaseFont. A /FontDescriptor with
// /FontWeight or a non-zero /ItalicAngle refines the style implied by the
// name.
func (r *DictResolver) Font(name string) (font.Descriptor, bool) {
	entry := r.category("Font").Get(name)
	switch v := entry.(type) {
	case core.Name:
		// some producers inline the base font name
		return font.ParseBaseFont(string(v)), true
	case core.Dict:
		return fontFromDict(v)
	}
	return font.Descriptor{}, false
}

func fontFromDict(fd core.Dict) (font.Descriptor, bool) {
	desc, _ := fd.GetDict("FontDescriptor")

	var base string
	if n, ok := fd.GetName("BaseFont"); ok {
		base = string(n)
	} else if n, ok := desc.GetName("FontName"); ok {
		base = string(n)
	}
	if base == "" {
		return font.Descriptor{}, false
	}

	d := font.ParseBaseFont(base)
	if w, ok := core.ToInt(desc.Get("FontWeight")); ok && w > 0 {
		d.Weight = font.Weight(w)
	}
	if a, ok := core.ToFloat(desc.Get("ItalicAngle")); ok && a != 0 {
		d.Italic = true
	}
	return d, true
}

// ColorSpace resolves a colour space name. The device families and Pattern
// need no resource entry; anything else is looked up under /ColorSpace.
func (r *DictResolver) ColorSpace(name string) (Family, bool) {
	f, err := r.ResolveColorSpace(name)
	return f, err == nil
}

// ResolveColorSpace is ColorSpace with the reason for a failure. Entries
// whose value is another entry's name are followed as aliases.
func (r *DictResolver) ResolveColorSpace(name string) (Family, error) {
	switch name {
	case "DeviceGray", "DeviceRGB", "DeviceCMYK", "Pattern":
		f, _ := DeviceFamily(name)
		return f, nil
	}
	return r.resolveColorSpace(name, make(map[string]bool), 0)
}

func (r *DictResolver) resolveColorSpace(name string, visited map[string]bool, depth int) (Family, error) {
	// Check depth limit
	if depth >= r.maxDepth {
		return FamilyUnknown, fmt.Errorf("maximum colour space depth (%d) exceeded", r.maxDepth)
	}

	// Check for cycles
	if visited[name] {
		return FamilyUnknown, fmt.Errorf("circular reference detected for colour space %s", name)
	}
	visited[name] = true

	entry := r.category("ColorSpace").Get(name)
	switch v := entry.(type) {
	case nil:
		return FamilyUnknown, fmt.Errorf("colour space %s not found", name)

	case core.Name:
		if f, ok := DeviceFamily(string(v)); ok {
			return f, nil
		}
		f, err := r.resolveColorSpace(string(v), visited, depth+1)
		if err != nil {
			return FamilyUnknown, fmt.Errorf("colour space %s: %w", name, err)
		}
		return f, nil

	case core.Array:
		family, ok := v.Get(0).(core.Name)
		if !ok {
			return FamilyUnknown, fmt.Errorf("colour space %s: array has no family name", name)
		}
		if f, ok := DeviceFamily(string(family)); ok {
			return f, nil
		}
		return FamilyUnknown, fmt.Errorf("colour space %s: unknown family %s", name, family)

	default:
		return FamilyUnknown, fmt.Errorf("colour space %s: unexpected %s", name, entry.Type())
	}
}

// Color resolves /Pattern/<name> to a representative colour. Only shading
// patterns carry one: the shading's /Background, or else the /C0 end of an
// exponential interpolation function.
func (r *DictResolver) Color(name string) (model.Color, bool) {
	pattern, ok := r.category("Pattern").GetDict(name)
	if !ok {
		return model.Color{}, false
	}
	shading, ok := pattern.GetDict("Shading")
	if !ok {
		return model.Color{}, false
	}

	if bg, ok := shading.GetArray("Background"); ok {
		if c, ok := components(bg); ok {
			return c, true
		}
	}
	if fn, ok := shading.GetDict("Function"); ok {
		if c0, ok := fn.GetArray("C0"); ok {
			return components(c0)
		}
		// C0 defaults to 0.0 for a one-output function
		if _, ok := fn.GetArray("C1"); ok {
			return model.Black, true
		}
	}
	return model.Color{}, false
}

func components(arr core.Array) (model.Color, bool) {
	vals := make([]float64, 0, len(arr))
	for _, obj := range arr {
		v, ok := core.ToFloat(obj)
		if !ok {
			return model.Color{}, false
		}
		vals = append(vals, v)
	}
	return graphicsstate.FromComponents(vals)
}

// Map is a resolver built from literal maps. A nil *Map resolves nothing.
type Map struct {
	Fonts       map[string]font.Descriptor
	Colors      map[string]model.Color
	ColorSpaces map[string]Family
}

// Font looks name up in Fonts
func (m *Map) Font(name string) (font.Descriptor, bool) {
	if m == nil {
		return font.Descriptor{}, false
	}
	d, ok := m.Fonts[name]
	return d, ok
}

// Color looks name up in Colors
func (m *Map) Color(name string) (model.Color, bool) {
	if m == nil {
		return model.Color{}, false
	}
	c, ok := m.Colors[name]
	return c, ok
}

// ColorSpace looks name up in ColorSpaces, falling back to the device
// family names.
func (m *Map) ColorSpace(name string) (Family, bool) {
	if m != nil {
		if f, ok := m.ColorSpaces[name]; ok {
			return f, true
		}
	}
	switch name {
	case "DeviceGray", "DeviceRGB", "DeviceCMYK", "Pattern":
		return DeviceFamily(name)
	}
	return FamilyUnknown, false
}
