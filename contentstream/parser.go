package contentstream

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/tsawler/pdfreplay/core"
)

// ErrUnterminated is returned when a string, array or dictionary runs past
// the end of the stream.
var ErrUnterminated = errors.New("unterminated object")

// Operation is one content stream instruction: an operator and the operands
// that preceded it.
type Operation struct {
	Operator string        // operator keyword, e.g. "Tj", "re", "f*"
	Operands []core.Object // operands in stream order
}

// Op returns the operator code for the instruction
func (o Operation) Op() Op {
	return LookupOp(o.Operator)
}

// String formats the instruction the way it appears in a stream
func (o Operation) String() string {
	var buf bytes.Buffer
	for _, operand := range o.Operands {
		buf.WriteString(formatOperand(operand))
		buf.WriteByte(' ')
	}
	buf.WriteString(o.Operator)
	return buf.String()
}

func formatOperand(obj core.Object) string {
	switch v := obj.(type) {
	case core.String:
		return "(" + string(v) + ")"
	case core.Array:
		parts := make([]string, 0, len(v))
		for _, e := range v {
			parts = append(parts, formatOperand(e))
		}
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, p := range parts {
			if i > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(p)
		}
		buf.WriteByte(']')
		return buf.String()
	case nil:
		return "null"
	default:
		return v.String()
	}
}

// Parser tokenizes decoded content stream bytes into operations.
type Parser struct {
	data     []byte
	pos      int
	operands []core.Object
	ops      []Operation
}

// NewParser creates a parser over decoded (unfiltered) stream data
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse consumes the whole stream and returns its operations in order.
// Operands left over at the end of the stream without an operator are
// dropped.
func (p *Parser) Parse() ([]Operation, error) {
	for {
		p.skipSpace()
		if p.pos >= len(p.data) {
			break
		}
		start := p.pos
		if err := p.next(); err != nil {
			return nil, fmt.Errorf("content stream offset %d: %w", start, err)
		}
	}
	if p.ops == nil {
		p.ops = []Operation{}
	}
	return p.ops, nil
}

// Parse is a convenience wrapper around NewParser(data).Parse()
func Parse(data []byte) ([]Operation, error) {
	return NewParser(data).Parse()
}

func (p *Parser) next() error {
	c := p.data[p.pos]
	if isRegular(c) && !startsNumber(c) {
		word := p.readRegular()
		switch word {
		case "true":
			p.operands = append(p.operands, core.Bool(true))
		case "false":
			p.operands = append(p.operands, core.Bool(false))
		case "null":
			p.operands = append(p.operands, core.Null{})
		case "BI":
			return p.inlineImage()
		default:
			p.emit(word)
		}
		return nil
	}

	obj, err := p.readObject()
	if err != nil {
		return err
	}
	p.operands = append(p.operands, obj)
	return nil
}

// emit closes the pending operands into an operation
func (p *Parser) emit(operator string) {
	operands := make([]core.Object, len(p.operands))
	copy(operands, p.operands)
	p.ops = append(p.ops, Operation{Operator: operator, Operands: operands})
	p.operands = p.operands[:0]
}

// inlineImage records BI (with the image dictionary), ID and EI and skips
// the binary sample data between ID and EI.
func (p *Parser) inlineImage() error {
	p.emit("BI")

	params := make(core.Dict)
	for {
		p.skipSpace()
		if p.pos >= len(p.data) {
			return fmt.Errorf("inline image: %w", ErrUnterminated)
		}
		if p.data[p.pos] != '/' {
			word := p.readRegular()
			if word != "ID" {
				return fmt.Errorf("inline image: unexpected %q before ID", word)
			}
			break
		}
		key := p.readName()
		p.skipSpace()
		if p.pos >= len(p.data) {
			return fmt.Errorf("inline image: %w", ErrUnterminated)
		}
		var value core.Object
		var err error
		if isRegular(p.data[p.pos]) && !startsNumber(p.data[p.pos]) {
			value = core.Name(p.readRegular())
		} else if value, err = p.readObject(); err != nil {
			return fmt.Errorf("inline image: %w", err)
		}
		params[string(key)] = value
	}
	p.emit("ID")
	p.ops[len(p.ops)-1].Operands = []core.Object{params}

	// one whitespace byte separates ID from the samples
	if p.pos < len(p.data) {
		p.pos++
	}
	for i := p.pos; i+1 < len(p.data); i++ {
		if p.data[i] != 'E' || p.data[i+1] != 'I' {
			continue
		}
		before := i == 0 || isSpace(p.data[i-1])
		after := i+2 >= len(p.data) || !isRegular(p.data[i+2])
		if before && after {
			p.pos = i + 2
			p.emit("EI")
			return nil
		}
	}
	return fmt.Errorf("inline image data: %w", ErrUnterminated)
}

// readObject reads one operand starting at the current position
func (p *Parser) readObject() (core.Object, error) {
	p.skipSpace()
	if p.pos >= len(p.data) {
		return nil, ErrUnterminated
	}

	c := p.data[p.pos]
	switch {
	case startsNumber(c):
		return p.readNumber()
	case c == '(':
		return p.readLiteral()
	case c == '<' && p.peek(1) == '<':
		return p.readDict()
	case c == '<':
		return p.readHex()
	case c == '/':
		return p.readName(), nil
	case c == '[':
		return p.readArray()
	case isRegular(c):
		word := p.readRegular()
		switch word {
		case "true":
			return core.Bool(true), nil
		case "false":
			return core.Bool(false), nil
		case "null":
			return core.Null{}, nil
		}
		return nil, fmt.Errorf("unexpected keyword %q inside object", word)
	default:
		return nil, fmt.Errorf("unexpected character %q", c)
	}
}

func (p *Parser) readNumber() (core.Object, error) {
	word := p.readRegular()
	if word == "" {
		return nil, fmt.Errorf("unexpected character %q", p.data[p.pos])
	}
	if i, err := strconv.ParseInt(word, 10, 64); err == nil {
		return core.Int(i), nil
	}
	// producers write things like "4." and "-.5" and occasionally "--1"
	trimmed := word
	for len(trimmed) > 1 && (trimmed[0] == '-' || trimmed[0] == '+') && (trimmed[1] == '-' || trimmed[1] == '+') {
		trimmed = trimmed[1:]
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", word, err)
	}
	return core.Real(f), nil
}

func (p *Parser) readLiteral() (core.Object, error) {
	p.pos++ // (
	var buf bytes.Buffer
	depth := 1

	for p.pos < len(p.data) {
		c := p.data[p.pos]
		p.pos++
		switch c {
		case '(':
			depth++
			buf.WriteByte(c)
		case ')':
			depth--
			if depth == 0 {
				return core.String(buf.String()), nil
			}
			buf.WriteByte(c)
		case '\\':
			p.readEscape(&buf)
		default:
			buf.WriteByte(c)
		}
	}
	return nil, fmt.Errorf("literal string: %w", ErrUnterminated)
}

func (p *Parser) readEscape(buf *bytes.Buffer) {
	if p.pos >= len(p.data) {
		return
	}
	c := p.data[p.pos]
	p.pos++
	switch c {
	case 'n':
		buf.WriteByte('\n')
	case 'r':
		buf.WriteByte('\r')
	case 't':
		buf.WriteByte('\t')
	case 'b':
		buf.WriteByte('\b')
	case 'f':
		buf.WriteByte('\f')
	case '\r':
		if p.peek(0) == '\n' {
			p.pos++
		}
	case '\n':
	default:
		if c >= '0' && c <= '7' {
			v := int(c - '0')
			for i := 0; i < 2 && p.pos < len(p.data); i++ {
				d := p.data[p.pos]
				if d < '0' || d > '7' {
					break
				}
				v = v*8 + int(d-'0')
				p.pos++
			}
			buf.WriteByte(byte(v))
			return
		}
		// \( \) \\ and unknown escapes yield the character itself
		buf.WriteByte(c)
	}
}

func (p *Parser) readHex() (core.Object, error) {
	p.pos++ // <
	var buf bytes.Buffer
	var hi byte
	half := false

	for p.pos < len(p.data) {
		c := p.data[p.pos]
		p.pos++
		if c == '>' {
			if half {
				buf.WriteByte(hi << 4)
			}
			return core.String(buf.String()), nil
		}
		if isSpace(c) {
			continue
		}
		v, ok := hexValue(c)
		if !ok {
			return nil, fmt.Errorf("invalid hex digit %q", c)
		}
		if half {
			buf.WriteByte(hi<<4 | v)
		} else {
			hi = v
		}
		half = !half
	}
	return nil, fmt.Errorf("hex string: %w", ErrUnterminated)
}

func (p *Parser) readName() core.Name {
	p.pos++ // /
	var buf bytes.Buffer
	for p.pos < len(p.data) && isRegular(p.data[p.pos]) {
		c := p.data[p.pos]
		if c == '#' && p.pos+2 < len(p.data) {
			h1, ok1 := hexValue(p.data[p.pos+1])
			h2, ok2 := hexValue(p.data[p.pos+2])
			if ok1 && ok2 {
				buf.WriteByte(h1<<4 | h2)
				p.pos += 3
				continue
			}
		}
		buf.WriteByte(c)
		p.pos++
	}
	return core.Name(buf.String())
}

func (p *Parser) readArray() (core.Object, error) {
	p.pos++ // [
	arr := core.Array{}
	for {
		p.skipSpace()
		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("array: %w", ErrUnterminated)
		}
		if p.data[p.pos] == ']' {
			p.pos++
			return arr, nil
		}
		obj, err := p.readObject()
		if err != nil {
			return nil, fmt.Errorf("array element %d: %w", len(arr), err)
		}
		arr = append(arr, obj)
	}
}

func (p *Parser) readDict() (core.Object, error) {
	p.pos += 2 // <<
	dict := make(core.Dict)
	for {
		p.skipSpace()
		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("dictionary: %w", ErrUnterminated)
		}
		if p.data[p.pos] == '>' && p.peek(1) == '>' {
			p.pos += 2
			return dict, nil
		}
		if p.data[p.pos] != '/' {
			return nil, fmt.Errorf("dictionary key must be a name, found %q", p.data[p.pos])
		}
		key := p.readName()
		value, err := p.readObject()
		if err != nil {
			return nil, fmt.Errorf("dictionary value for /%s: %w", key, err)
		}
		dict[string(key)] = value
	}
}

// readRegular reads a run of regular characters
func (p *Parser) readRegular() string {
	start := p.pos
	for p.pos < len(p.data) && isRegular(p.data[p.pos]) {
		p.pos++
	}
	return string(p.data[start:p.pos])
}

// skipSpace skips whitespace and % comments
func (p *Parser) skipSpace() {
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		switch {
		case isSpace(c):
			p.pos++
		case c == '%':
			for p.pos < len(p.data) && p.data[p.pos] != '\n' && p.data[p.pos] != '\r' {
				p.pos++
			}
		default:
			return
		}
	}
}

func (p *Parser) peek(offset int) byte {
	if p.pos+offset >= len(p.data) {
		return 0
	}
	return p.data[p.pos+offset]
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\f', 0:
		return true
	}
	return false
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// isRegular reports whether c can be part of a keyword, number or name
func isRegular(c byte) bool {
	return !isSpace(c) && !isDelimiter(c)
}

func startsNumber(c byte) bool {
	return c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9')
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
