// Package convert defines the closed set of conversion targets supported by
// the tinp readers and the conversion rules that map raw input tokens (or
// already-evaluated values) onto Go values.
//
// Because Go cannot accept an arbitrary type as a runtime parameter the way a
// dynamic language can, the target of a conversion is expressed as a Type
// value drawn from a fixed enumeration:
//
//   - TypeString: identity, the token is returned unchanged
//   - TypeInt: decimal integer, converted to int
//   - TypeFloat: floating-point number, converted to float64
//   - TypeBool: boolean, converted via strconv.ParseBool
//   - TypeOctal: base-8 integer, converted to int
//   - TypeHex: base-16 integer, converted to int
//   - TypeLiteral: a self-describing literal (quoted string, integer, float,
//     or boolean), converted to the type the literal denotes
//   - TypeAny: identity for already-typed values, used by the evaluating
//     reader when no conversion is requested
//
// Two entry points cover the two shapes of input:
//
//	v, err := convert.Token(convert.TypeInt, "42")     // raw token -> int(42)
//	v, err := convert.Coerce(convert.TypeFloat, int64(4)) // typed value -> float64(4)
//
// Coerce is liberal about numeric source types (int, int64, uint64, float64,
// and numeric strings all coerce to TypeInt/TypeFloat) so that values produced
// by expression evaluation convert without the caller caring which concrete
// numeric type the evaluator returned.
package convert
