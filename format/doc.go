// Package format implements the scan-style format-string mini-language used
// by the format-scan reader.
//
// A format string mixes literal separator text with %-prefixed directives,
// each of which captures one token from the input line and names the
// conversion target for that token:
//
//	%d  decimal integer      %o  octal integer
//	%f  floating-point       %x  hexadecimal integer
//	%s  string               %a  self-describing literal
//	%%  a literal percent sign
//
// Compile parses the format string once into an ordered list of
// {literal, directive} segments and derives a single anchored regular
// expression from it. The resulting Spec is immutable and can be reused
// across any number of Match calls, so callers that read with the same
// format repeatedly pay the compilation cost only once.
//
// Literal text between directives is carried into the derived pattern as
// regular-expression text, so a format string may use regexp constructs in
// its separators (for example `%d\s*:\s*%s`). Parentheses are escaped by
// default so that grouping in a literal does not disturb the capture-group
// to directive correspondence; Options.Raw disables the escaping for
// callers that want full regexp control.
//
// The directive set is extensible: Options.Placeholders maps additional verb
// runes (or overrides of the built-in ones) to a capture pattern and a
// conversion target.
package format
