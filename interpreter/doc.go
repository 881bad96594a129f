// Package interpreter replays a page's content stream onto a canvas.
//
// The interpreter walks the operations once, left to right. Graphics state
// operators (q, Q, cm, w and the colour operators) update a save/restore
// stack; path construction operators build a path in user space; painting
// operators send that path to the canvas; text operators move a cursor and
// draw text runs.
//
// # Basic Usage
//
//	page, err := model.ParsePage(612, 792, content)
//	if err != nil {
//	    return err
//	}
//	rec := canvas.NewRecorder()
//	warnings, err := interpreter.New().Interpret(page, rec)
//
// # Coordinates
//
// PDF user space has its origin at the bottom left with y growing upward.
// Every point sent to the canvas is flipped once:
//
//	device = (margin + x, margin + height - y)
//
// # Warnings
//
// A bad instruction never stops the page. Unsupported and unknown operators,
// operands of the wrong number or type, and names missing from the page
// resources are each reported as a [Warning] and logged, and the stream
// continues with state unchanged.
package interpreter
