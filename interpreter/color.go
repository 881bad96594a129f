package interpreter

import (
	"fmt"

	"github.com/tsawler/pdfreplay/contentstream"
	"github.com/tsawler/pdfreplay/core"
	"github.com/tsawler/pdfreplay/graphicsstate"
	"github.com/tsawler/pdfreplay/model"
	"github.com/tsawler/pdfreplay/resolver"
)

// setColor writes the fill colour for lowercase operators and the stroke
// colour for uppercase ones
func (s *pageState) setColor(code contentstream.Op, c model.Color) {
	switch code {
	case contentstream.OpFillGray, contentstream.OpFillRGB, contentstream.OpFillCMYK,
		contentstream.OpFillColorSpace, contentstream.OpFillColor, contentstream.OpFillColorN:
		s.gs().FillColor = c
	default:
		s.gs().StrokeColor = c
	}
}

// deviceColor handles g, G, rg, RG, k and K
func (s *pageState) deviceColor(code contentstream.Op, operands []core.Object) error {
	n := 1
	switch code {
	case contentstream.OpFillRGB, contentstream.OpStrokeRGB:
		n = 3
	case contentstream.OpFillCMYK, contentstream.OpStrokeCMYK:
		n = 4
	}

	v, err := numbers(operands, n)
	if err != nil {
		return err
	}
	c, _ := graphicsstate.FromComponents(v)
	s.setColor(code, c.Clamp())
	return nil
}

// colorSpace handles cs and CS. Selecting a space resets the colour to the
// space's initial value: black for colour spaces we can show, the fallback
// colour for patterns and for names that do not resolve.
func (s *pageState) colorSpace(code contentstream.Op, operands []core.Object) error {
	n, err := nameOperand(operands)
	if err != nil {
		return err
	}

	family, ok := s.res.ColorSpace(n)
	switch {
	case !ok:
		s.warn(WarnUnresolved, "colour space %s not in resources", n)
		s.setColor(code, s.in.fallback)
	case family == resolver.Pattern:
		s.setColor(code, s.in.fallback)
	default:
		s.setColor(code, model.Black)
	}
	return nil
}

// color handles sc, SC, scn and SCN. Numeric components follow the gray,
// RGB and CMYK rule. A lone name is a pattern looked up in the resources;
// a name after components is an uncoloured pattern and always gets the
// fallback colour.
func (s *pageState) color(code contentstream.Op, operands []core.Object) error {
	if len(operands) == 0 {
		return fmt.Errorf("expected colour components, got none")
	}

	last := len(operands) - 1
	if pattern, ok := operands[last].(core.Name); ok {
		if _, err := numeric(operands[:last]); err != nil {
			return err
		}
		if last > 0 {
			s.setColor(code, s.in.fallback)
			return nil
		}
		c, ok := s.res.Color(string(pattern))
		if !ok {
			s.warn(WarnUnresolved, "pattern %s has no colour", pattern)
			c = s.in.fallback
		}
		s.setColor(code, c)
		return nil
	}

	v, err := numeric(operands)
	if err != nil {
		return err
	}
	c, ok := graphicsstate.FromComponents(v)
	if !ok {
		return fmt.Errorf("expected 1, 3 or 4 colour components, got %d", len(v))
	}
	s.setColor(code, c.Clamp())
	return nil
}
