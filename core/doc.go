// Package core defines the typed operands of a PDF content stream.
//
// Every operand is one of a closed set of types satisfying the [Object]
// interface:
//
//   - [Int] and [Real] - numbers
//   - [Name] - names such as /F1 or /DeviceRGB (stored without the slash)
//   - [String] - literal or hexadecimal strings (raw bytes)
//   - [Array] - arrays of operands, e.g. the argument of TJ
//   - [Bool], [Null] and [Dict] - rare in content streams but produced by
//     the tokenizer for completeness
//
// Handlers never branch on Int versus Real themselves; they read numbers
// through [ToFloat] so both encodings are treated alike:
//
//	x, ok := core.ToFloat(op.Operands[0])
//	if !ok {
//	    // malformed instruction
//	}
package core
