package interpreter

import (
	"fmt"

	"github.com/tsawler/pdfreplay/canvas"
	"github.com/tsawler/pdfreplay/contentstream"
	"github.com/tsawler/pdfreplay/core"
	"github.com/tsawler/pdfreplay/font"
	"github.com/tsawler/pdfreplay/model"
)

// textParam handles Tc, Tw, Tz, TL, Ts and Tr
func (s *pageState) textParam(code contentstream.Op, operands []core.Object) error {
	v, err := numbers(operands, 1)
	if err != nil {
		return err
	}

	switch code {
	case contentstream.OpCharSpacing:
		s.text.CharSpacing = v[0]
	case contentstream.OpWordSpacing:
		s.text.WordSpacing = v[0]
	case contentstream.OpHorizScaling:
		s.text.HorizontalScaling = v[0]
	case contentstream.OpLeading:
		s.text.Leading = v[0]
	case contentstream.OpRise:
		s.text.Rise = v[0]
	case contentstream.OpRenderMode:
		mode, ok := core.ToInt(operands[0])
		if !ok || mode < 0 || mode > 7 {
			return fmt.Errorf("invalid rendering mode %g", v[0])
		}
		s.text.RenderingMode = mode
	}
	return nil
}

// setFont handles Tf. An unresolved name keeps the previous font but still
// sets the size.
func (s *pageState) setFont(operands []core.Object) error {
	if len(operands) != 2 {
		return fmt.Errorf("expected 2 operands, got %d", len(operands))
	}
	n, ok := operands[0].(core.Name)
	if !ok {
		return fmt.Errorf("operand 0: expected name, got %s", typeName(operands[0]))
	}
	size, ok := core.ToFloat(operands[1])
	if !ok {
		return fmt.Errorf("operand 1: expected number, got %s", typeName(operands[1]))
	}

	d, ok := s.res.Font(string(n))
	if !ok {
		s.warn(WarnUnresolved, "font %s not in resources", n)
		d = s.text.Font
	}
	s.text.SetFont(string(n), d, size)
	return nil
}

// position handles Td, TD, Tm and T*
func (s *pageState) position(code contentstream.Op, operands []core.Object) error {
	switch code {
	case contentstream.OpNextLine:
		s.text.NextLine()

	case contentstream.OpTextMatrix:
		v, err := numbers(operands, 6)
		if err != nil {
			return err
		}
		s.text.SetTextMatrix(model.Matrix{v[0], v[1], v[2], v[3], v[4], v[5]})

	default:
		v, err := numbers(operands, 2)
		if err != nil {
			return err
		}
		if code == contentstream.OpMoveTextLead {
			s.text.MoveTextSetLeading(v[0], v[1])
		} else {
			s.text.MoveText(v[0], v[1])
		}
	}
	return nil
}

// show handles Tj, TJ, ' and "
func (s *pageState) show(code contentstream.Op, operands []core.Object) error {
	switch code {
	case contentstream.OpShowText, contentstream.OpNextLineShow:
		if len(operands) != 1 {
			return fmt.Errorf("expected 1 operand, got %d", len(operands))
		}
		text, err := stringOperand(operands, 0)
		if err != nil {
			return err
		}
		if code == contentstream.OpNextLineShow {
			s.text.NextLine()
		}
		s.showString(text)

	case contentstream.OpNextLineSpaced:
		if len(operands) != 3 {
			return fmt.Errorf("expected 3 operands, got %d", len(operands))
		}
		v, err := numeric(operands[:2])
		if err != nil {
			return err
		}
		text, err := stringOperand(operands, 2)
		if err != nil {
			return err
		}
		s.text.WordSpacing = v[0]
		s.text.CharSpacing = v[1]
		s.text.NextLine()
		s.showString(text)

	case contentstream.OpShowTextArray:
		if len(operands) != 1 {
			return fmt.Errorf("expected 1 operand, got %d", len(operands))
		}
		arr, ok := operands[0].(core.Array)
		if !ok {
			return fmt.Errorf("operand 0: expected array, got %s", typeName(operands[0]))
		}
		for i, elem := range arr {
			if _, ok := elem.(core.String); !ok && !core.IsNumber(elem) {
				return fmt.Errorf("array element %d: expected string or number, got %s", i, typeName(elem))
			}
		}
		for _, elem := range arr {
			if text, ok := elem.(core.String); ok {
				s.showString(text)
				continue
			}
			amount, _ := core.ToFloat(elem)
			s.text.Adjust(amount)
		}
	}
	return nil
}

// showString draws one string at the cursor and advances past it
func (s *pageState) showString(raw core.String) {
	text := font.DecodeString([]byte(raw))
	if text == "" {
		return
	}

	width := s.in.layout.Advance(s.text.Font, s.text.FontSize, text)

	if s.text.Visible() {
		gs := s.gs()
		s.canvas.DrawText(canvas.TextRun{
			Origin: s.device(gs.ToUser(s.text.Cursor())),
			Font:   s.text.Font,
			Size:   s.text.FontSize * s.scale(),
			Text:   text,
			Color:  gs.FillColor,
		})
	}

	s.text.Advance(s.text.Displacement(width, text))
}
