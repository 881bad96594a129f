package interpreter

import (
	"fmt"
	"strings"
)

// WarningKind classifies an instruction the interpreter could not fully apply
type WarningKind int

const (
	// WarnUnsupported is a recognised operator that is deliberately not
	// implemented, such as clipping or XObjects
	WarnUnsupported WarningKind = iota
	// WarnUnknown is an operator keyword outside the PDF operator set
	WarnUnknown
	// WarnMalformed is a recognised operator with the wrong number or
	// type of operands; the instruction is skipped
	WarnMalformed
	// WarnUnresolved is a font, colour space or pattern name missing from
	// the page resources; the previous or fallback value is used
	WarnUnresolved
)

// String returns the name of the warning kind
func (k WarningKind) String() string {
	switch k {
	case WarnUnsupported:
		return "unsupported"
	case WarnUnknown:
		return "unknown"
	case WarnMalformed:
		return "malformed"
	case WarnUnresolved:
		return "unresolved"
	default:
		return fmt.Sprintf("WarningKind(%d)", int(k))
	}
}

// Warning is a non-fatal problem with one instruction
type Warning struct {
	Index    int    // position of the instruction in the page's operations
	Operator string // operator keyword
	Kind     WarningKind
	Message  string
}

// String formats the warning for display
func (w Warning) String() string {
	return fmt.Sprintf("op %d (%s): %s: %s", w.Index, w.Operator, w.Kind, w.Message)
}

// FormatWarnings formats warnings one per line
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
