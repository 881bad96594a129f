package graphicsstate

import (
	"github.com/tsawler/pdfreplay/model"
)

// GraphicsState holds the paint parameters saved and restored by q and Q
type GraphicsState struct {
	// Current Transformation Matrix
	CTM model.Matrix

	// Line attributes
	LineWidth float64

	StrokeColor model.Color
	FillColor   model.Color
}

// NewGraphicsState creates a graphics state with PDF defaults: identity CTM,
// line width 1, black stroke and fill.
func NewGraphicsState() GraphicsState {
	return GraphicsState{
		CTM:         model.Identity(),
		LineWidth:   1.0,
		StrokeColor: model.Black,
		FillColor:   model.Black,
	}
}

// Transform concatenates m onto the CTM (cm operator)
func (gs *GraphicsState) Transform(m model.Matrix) {
	gs.CTM = m.Multiply(gs.CTM)
}

// ToUser maps a point given in the current user space through the CTM
func (gs *GraphicsState) ToUser(p model.Point) model.Point {
	return gs.CTM.Transform(p)
}

// Stack is the q/Q stack. The current state is the top of the stack; it
// always exists, and Restore never removes it.
type Stack struct {
	current GraphicsState
	saved   []GraphicsState
}

// NewStack creates a stack whose current state is initial
func NewStack(initial GraphicsState) *Stack {
	return &Stack{current: initial}
}

// Current returns the mutable current state
func (s *Stack) Current() *GraphicsState {
	return &s.current
}

// Save pushes a copy of the current state (q operator)
func (s *Stack) Save() {
	s.saved = append(s.saved, s.current)
}

// Restore pops the most recently saved state (Q operator). It reports
// false and leaves the current state untouched when nothing was saved.
func (s *Stack) Restore() bool {
	if len(s.saved) == 0 {
		return false
	}
	s.current = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
	return true
}

// Depth returns the number of saved states
func (s *Stack) Depth() int {
	return len(s.saved)
}
