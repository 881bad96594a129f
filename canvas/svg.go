package canvas

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/pdfreplay/model"
)

// SVG builds an SVG document from the canvas calls. Each paint becomes a
// <path> element and each text run a <text> element.
type SVG struct {
	pathBuffer

	root *html.Node
}

// NewSVG creates an empty SVG canvas with the given size in points
func NewSVG(width, height float64) *SVG {
	root := &html.Node{
		Type: html.ElementNode,
		Data: "svg",
		Attr: []html.Attribute{
			{Key: "xmlns", Val: "http://www.w3.org/2000/svg"},
			{Key: "width", Val: num(width)},
			{Key: "height", Val: num(height)},
			{Key: "viewBox", Val: "0 0 " + num(width) + " " + num(height)},
		},
	}
	return &SVG{root: root}
}

// Root returns the <svg> element
func (s *SVG) Root() *html.Node {
	return s.root
}

// WriteTo renders the document
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := html.Render(cw, s.root); err != nil {
		return cw.n, fmt.Errorf("render svg: %w", err)
	}
	return cw.n, nil
}

// String renders the document to a string
func (s *SVG) String() string {
	var sb strings.Builder
	_, _ = s.WriteTo(&sb)
	return sb.String()
}

func (s *SVG) appendElement(tag string, attrs ...html.Attribute) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag, Attr: attrs}
	s.root.AppendChild(n)
	return n
}

// pathData formats buffered path commands as SVG path data
func pathData(ops []pathOp) string {
	var sb strings.Builder
	for _, op := range ops {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		p := op.points
		switch op.kind {
		case 'm':
			fmt.Fprintf(&sb, "M%s %s", num(p[0].X), num(p[0].Y))
		case 'l':
			fmt.Fprintf(&sb, "L%s %s", num(p[0].X), num(p[0].Y))
		case 'c':
			fmt.Fprintf(&sb, "C%s %s %s %s %s %s",
				num(p[0].X), num(p[0].Y), num(p[1].X), num(p[1].Y), num(p[2].X), num(p[2].Y))
		case 'h':
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func (s *SVG) FillPath(c model.Color, rule FillRule) {
	ops := s.take()
	if len(ops) == 0 {
		return
	}
	s.appendElement("path",
		html.Attribute{Key: "d", Val: pathData(ops)},
		html.Attribute{Key: "fill", Val: c.Hex()},
		html.Attribute{Key: "fill-rule", Val: rule.String()},
	)
}

func (s *SVG) StrokePath(c model.Color, width float64) {
	ops := s.take()
	if len(ops) == 0 {
		return
	}
	s.appendElement("path",
		html.Attribute{Key: "d", Val: pathData(ops)},
		html.Attribute{Key: "fill", Val: "none"},
		html.Attribute{Key: "stroke", Val: c.Hex()},
		html.Attribute{Key: "stroke-width", Val: num(width)},
	)
}

func (s *SVG) DrawText(run TextRun) {
	if run.Text == "" {
		return
	}
	attrs := []html.Attribute{
		{Key: "x", Val: num(run.Origin.X)},
		{Key: "y", Val: num(run.Origin.Y)},
		{Key: "font-family", Val: run.Font.Family},
		{Key: "font-size", Val: num(run.Size)},
		{Key: "fill", Val: run.Color.Hex()},
		{Key: "xml:space", Val: "preserve"},
	}
	if run.Font.IsBold() {
		attrs = append(attrs, html.Attribute{Key: "font-weight", Val: strconv.Itoa(int(run.Font.Weight))})
	}
	if run.Font.Italic {
		attrs = append(attrs, html.Attribute{Key: "font-style", Val: "italic"})
	}
	n := s.appendElement("text", attrs...)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: run.Text})
}

// num formats a coordinate with at most three decimals
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
