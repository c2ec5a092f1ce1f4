// Package tinp reads typed values from console input.
//
// A plain line-reading primitive hands back one string and leaves the
// parsing and type conversion to the caller. tinp wraps that primitive with
// three parsing strategies so the caller gets converted values directly:
//
//   - Scan: parse the line with a scanf-style format string; one converted
//     value per directive, arity fixed by the format.
//   - Split: split the line into tokens and convert every token to one
//     uniform target type; variable arity.
//   - Eval: evaluate the line as a CEL expression and return the single
//     result, optionally converted.
//
// # Usage
//
// The package-level functions read from stdin and prompt on stdout:
//
//	values, err := tinp.Scan("date: ", "%d/%d/%d")
//	nums, err := tinp.Split("numbers: ", tinp.SplitAs(convert.TypeInt))
//	area, err := tinp.Eval("area: ", tinp.EvalAs(convert.TypeFloat))
//
// A Reader rebinds the streams and carries per-reader configuration such as
// custom directives, a logger, or a tracer:
//
//	r, err := tinp.NewReader(
//		tinp.WithInput(conn),
//		tinp.WithOutput(conn),
//		tinp.WithPlaceholder('v', format.Placeholder{
//			Pattern: `\d+\.\d+\.\d+`,
//			Type:    convert.TypeString,
//		}),
//	)
//	values, err := r.Scan(ctx, "version: ", "release %v")
//
// # Format Strings
//
// Format strings mix literal separator text with %-prefixed directives:
// %d (decimal int), %f (float), %s (string), %o (octal), %x (hex), %a
// (self-describing literal), and %% for a literal percent sign. Literal
// text is treated as regular-expression text, so separators may use regexp
// constructs. Compiled formats are cached per reader.
//
// # Errors
//
// Every failure surfaces as a *Error carrying the operation, a kind, and a
// wrapped sentinel, so callers can branch with errors.Is:
//
//	if errors.Is(err, tinp.ErrEndOfInput) { ... }
//	if errors.Is(err, tinp.ErrParseMismatch) { ... }
//
// No operation retries, recovers, or returns partial results; the caller
// owns all recovery decisions.
//
// # Trust Boundary
//
// Eval executes user input as an expression. The input source must be
// trusted; hosts that cannot guarantee that should construct readers with
// WithoutEval, which makes every Eval call fail with ErrEvalDisabled. See
// package eval for details.
package tinp
