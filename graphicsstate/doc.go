// Package graphicsstate holds the mutable state threaded through one pass
// over a content stream.
//
// There are three independent pieces, matching the PDF model:
//
//   - [GraphicsState] with its [Stack]: CTM, line width and the stroke and
//     fill colours. q and Q save and restore full value copies; Q with
//     nothing saved is a no-op.
//   - [TextState]: font, size, spacing, leading, rise and the text and line
//     matrices. It is not touched by q and Q.
//   - [Path]: the path under construction between painting operators.
//
// Example usage:
//
//	stack := graphicsstate.NewStack(graphicsstate.NewGraphicsState())
//	stack.Save()                                           // q
//	stack.Current().FillColor = graphicsstate.RGB(1, 0, 0) // rg
//	stack.Restore()                                        // Q
//
// Colour operands are converted to RGB on entry with [Gray], [RGB] and
// [CMYK].
package graphicsstate
