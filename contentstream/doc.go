// Package contentstream turns decoded PDF content stream bytes into an
// ordered list of operations.
//
// Each [Operation] holds the operator keyword and the operands that
// preceded it. [Operation.Op] maps the keyword to an [Op] code so callers
// can switch on constants rather than strings:
//
//	ops, err := contentstream.Parse(data)
//	if err != nil {
//	    return err
//	}
//	for _, op := range ops {
//	    switch op.Op() {
//	    case contentstream.OpMoveTo:
//	        // ...
//	    }
//	}
//
// The tokenizer skips % comments and passes over the binary payload of
// inline images (BI ... ID ... EI), recording the three operators so that a
// consumer can report them.
package contentstream
