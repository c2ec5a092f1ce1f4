package format

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dokelung/tinp/convert"
)

// Placeholder describes what one %verb directive captures and which
// conversion target applies to the captured token.
type Placeholder struct {
	// Pattern is the regexp fragment the directive matches, without a
	// surrounding capture group. It must not contain capturing groups of
	// its own. Empty means the default string pattern (a run of
	// non-whitespace characters, or any characters when
	// Options.CaptureWhitespace is set).
	Pattern string

	// Type is the conversion target applied to the captured token.
	Type convert.Type
}

// Built-in directives. Numeric directives match only the shapes their
// conversion accepts, so a mismatched token surfaces as a pattern mismatch
// rather than a conversion failure.
var builtins = map[rune]Placeholder{
	'a': {Type: convert.TypeLiteral},
	'd': {Pattern: `[+-]?\d+`, Type: convert.TypeInt},
	'f': {Pattern: `[+-]?\d+(?:\.\d+)?`, Type: convert.TypeFloat},
	'o': {Pattern: `[+-]?[0-7]+`, Type: convert.TypeOctal},
	's': {Type: convert.TypeString},
	'x': {Pattern: `[+-]?[0-9a-fA-F]+`, Type: convert.TypeHex},
}

// Directive is one placeholder occurrence in a compiled format string, in
// source order.
type Directive struct {
	// Verb is the directive character that followed the '%'.
	Verb rune

	// Type is the conversion target for the token this directive captures.
	Type convert.Type
}

// Options configures format-string compilation.
type Options struct {
	// Placeholders extends or overrides the built-in directive set.
	Placeholders map[rune]Placeholder

	// CaptureWhitespace makes string-like directives (those without an
	// explicit pattern) match runs that include whitespace.
	CaptureWhitespace bool

	// Raw leaves parentheses in literal text unescaped, exposing full
	// regexp grouping to the format string.
	Raw bool
}

// Spec is a compiled format string: the ordered directive list plus the
// derived matching pattern. A Spec is immutable and safe for concurrent use.
type Spec struct {
	source     string
	directives []Directive
	re         *regexp.Regexp
}

// Compile parses fstr into a Spec. It fails if fstr contains an unknown
// directive, ends with a bare '%', or derives an invalid regular expression.
func Compile(fstr string, opts Options) (*Spec, error) {
	tokenPattern := `\S+`
	if opts.CaptureWhitespace {
		tokenPattern = `.+`
	}

	var pattern strings.Builder
	pattern.WriteByte('^')

	var directives []Directive
	runes := []rune(fstr)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '%' {
			if !opts.Raw && (c == '(' || c == ')') {
				pattern.WriteByte('\\')
			}
			pattern.WriteRune(c)
			continue
		}
		if i == len(runes)-1 {
			return nil, fmt.Errorf("format %q ends with a bare %%", fstr)
		}
		i++
		verb := runes[i]
		if verb == '%' {
			pattern.WriteString(`%`)
			continue
		}
		ph, ok := opts.Placeholders[verb]
		if !ok {
			ph, ok = builtins[verb]
		}
		if !ok {
			return nil, fmt.Errorf("unknown directive %%%c in format %q", verb, fstr)
		}
		sub := ph.Pattern
		if sub == "" {
			sub = tokenPattern
		}
		pattern.WriteByte('(')
		pattern.WriteString(sub)
		pattern.WriteByte(')')
		directives = append(directives, Directive{Verb: verb, Type: ph.Type})
	}

	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return nil, fmt.Errorf("format %q derives an invalid pattern: %v", fstr, err)
	}

	return &Spec{source: fstr, directives: directives, re: re}, nil
}

// Arity returns the number of directives in the format string, which is
// also the number of tokens Match captures.
func (s *Spec) Arity() int {
	return len(s.directives)
}

// Directives returns the compiled directives in source order. The returned
// slice must not be modified.
func (s *Spec) Directives() []Directive {
	return s.directives
}

// String returns the original format string.
func (s *Spec) String() string {
	return s.source
}

// Match applies the derived pattern to line. On a match it returns one
// captured token per directive, in directive order. The boolean reports
// whether the line matched; matching is anchored at the start of the line
// but trailing unmatched text is permitted.
func (s *Spec) Match(line string) ([]string, bool) {
	m := s.re.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	return m[1:], true
}
