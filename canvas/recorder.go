package canvas

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tsawler/pdfreplay/model"
)

// CommandKind identifies a recorded canvas call
type CommandKind int

const (
	CmdMoveTo CommandKind = iota
	CmdLineTo
	CmdCurveTo
	CmdClose
	CmdStroke
	CmdFill
	CmdText
)

var commandNames = [...]string{"moveTo", "lineTo", "curveTo", "closeSubpath", "strokePath", "fillPath", "drawText"}

// String returns the name of the canvas call
func (k CommandKind) String() string {
	if int(k) < len(commandNames) {
		return commandNames[k]
	}
	return fmt.Sprintf("CommandKind(%d)", int(k))
}

// Command is one recorded canvas call. Only the fields relevant to Kind
// are set.
type Command struct {
	Kind   CommandKind
	Points []model.Point
	Color  model.Color
	Width  float64
	Rule   FillRule
	Run    TextRun
}

// String formats the command for diagnostics
func (c Command) String() string {
	switch c.Kind {
	case CmdMoveTo, CmdLineTo, CmdCurveTo:
		parts := make([]string, len(c.Points))
		for i, p := range c.Points {
			parts[i] = fmt.Sprintf("%g,%g", p.X, p.Y)
		}
		return c.Kind.String() + " " + strings.Join(parts, " ")
	case CmdStroke:
		return fmt.Sprintf("%s %s %g", c.Kind, c.Color.Hex(), c.Width)
	case CmdFill:
		return fmt.Sprintf("%s %s %s", c.Kind, c.Color.Hex(), c.Rule)
	case CmdText:
		return fmt.Sprintf("%s %q at %g,%g size %g", c.Kind, c.Run.Text, c.Run.Origin.X, c.Run.Origin.Y, c.Run.Size)
	default:
		return c.Kind.String()
	}
}

// Recorder is a Canvas that keeps every call in order. It is safe for
// concurrent use.
type Recorder struct {
	mu       sync.Mutex
	commands []Command
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(c Command) {
	r.mu.Lock()
	r.commands = append(r.commands, c)
	r.mu.Unlock()
}

func (r *Recorder) MoveTo(p model.Point) {
	r.add(Command{Kind: CmdMoveTo, Points: []model.Point{p}})
}

func (r *Recorder) LineTo(p model.Point) {
	r.add(Command{Kind: CmdLineTo, Points: []model.Point{p}})
}

func (r *Recorder) CurveTo(c1, c2, end model.Point) {
	r.add(Command{Kind: CmdCurveTo, Points: []model.Point{c1, c2, end}})
}

func (r *Recorder) CloseSubpath() {
	r.add(Command{Kind: CmdClose})
}

func (r *Recorder) StrokePath(c model.Color, width float64) {
	r.add(Command{Kind: CmdStroke, Color: c, Width: width})
}

func (r *Recorder) FillPath(c model.Color, rule FillRule) {
	r.add(Command{Kind: CmdFill, Color: c, Rule: rule})
}

func (r *Recorder) DrawText(run TextRun) {
	r.add(Command{Kind: CmdText, Run: run})
}

// Commands returns a copy of the recorded calls
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Len returns the number of recorded calls
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.commands)
}

// Reset discards all recorded calls
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.commands = nil
	r.mu.Unlock()
}

// String lists the recorded calls one per line
func (r *Recorder) String() string {
	var sb strings.Builder
	for _, c := range r.Commands() {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
