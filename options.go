package tinp

import (
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/dokelung/tinp/convert"
	"github.com/dokelung/tinp/eval"
	"github.com/dokelung/tinp/format"
)

// ReaderOption configures a Reader.
type ReaderOption func(*readerConfig)

// readerConfig holds configuration for a Reader instance.
type readerConfig struct {
	in           io.Reader
	out          io.Writer
	source       LineSource
	logger       *slog.Logger
	tracer       trace.Tracer
	evaluator    eval.Evaluator
	placeholders map[rune]format.Placeholder
}

// WithInput sets the stream lines are read from. Defaults to os.Stdin.
// Ignored when WithSource is used.
func WithInput(r io.Reader) ReaderOption {
	return func(c *readerConfig) {
		c.in = r
	}
}

// WithOutput sets the stream prompts are written to. Defaults to os.Stdout.
// Ignored when WithSource is used.
func WithOutput(w io.Writer) ReaderOption {
	return func(c *readerConfig) {
		c.out = w
	}
}

// WithSource replaces the console line source entirely, for hosts that
// already own a line-editing or terminal layer.
func WithSource(src LineSource) ReaderOption {
	return func(c *readerConfig) {
		c.source = src
	}
}

// WithLogger sets a logger for debug-level operation logging.
// If not provided, log output is discarded.
func WithLogger(logger *slog.Logger) ReaderOption {
	return func(c *readerConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer; each read operation then runs
// inside its own span. If not provided, a no-op tracer is used.
func WithTracer(tracer trace.Tracer) ReaderOption {
	return func(c *readerConfig) {
		c.tracer = tracer
	}
}

// WithEvaluator replaces the expression evaluator used by Eval.
// The default is a CEL environment; see package eval for the trust
// implications of swapping it.
func WithEvaluator(ev eval.Evaluator) ReaderOption {
	return func(c *readerConfig) {
		c.evaluator = ev
	}
}

// WithoutEval revokes the expression-evaluation capability: every Eval call
// on the reader fails with ErrEvalDisabled. Use this in embeddings where the
// input source cannot be trusted with expression evaluation.
func WithoutEval() ReaderOption {
	return func(c *readerConfig) {
		c.evaluator = eval.Disabled{}
	}
}

// WithPlaceholder registers a custom format directive %verb for the
// reader's Scan calls, overriding a built-in directive of the same verb.
func WithPlaceholder(verb rune, ph format.Placeholder) ReaderOption {
	return func(c *readerConfig) {
		if c.placeholders == nil {
			c.placeholders = make(map[rune]format.Placeholder)
		}
		c.placeholders[verb] = ph
	}
}

// WithPlaceholders registers several custom format directives at once,
// typically a map produced by LoadPlaceholders.
func WithPlaceholders(phs map[rune]format.Placeholder) ReaderOption {
	return func(c *readerConfig) {
		if c.placeholders == nil {
			c.placeholders = make(map[rune]format.Placeholder, len(phs))
		}
		for verb, ph := range phs {
			c.placeholders[verb] = ph
		}
	}
}

// ScanOption configures a single Scan call.
type ScanOption func(*scanConfig)

type scanConfig struct {
	whitespace bool
	raw        bool
}

// CaptureWhitespace makes string-like directives (%s, %a, and custom
// directives without an explicit pattern) capture runs that include
// whitespace instead of stopping at the first blank.
func CaptureWhitespace() ScanOption {
	return func(c *scanConfig) {
		c.whitespace = true
	}
}

// RawFormat leaves parentheses in the format string's literal text
// unescaped, exposing full regular-expression grouping to the caller.
func RawFormat() ScanOption {
	return func(c *scanConfig) {
		c.raw = true
	}
}

// SplitOption configures a single Split call.
type SplitOption func(*splitConfig)

type splitConfig struct {
	typ     convert.Type
	sep     string
	hasSep  bool
	min     int
	max     int
	bounded bool
}

// SplitAs sets the conversion target applied to every token.
// The default is convert.TypeString, which returns tokens unchanged.
func SplitAs(t convert.Type) SplitOption {
	return func(c *splitConfig) {
		c.typ = t
	}
}

// SplitOn splits the line on the exact separator sep instead of runs of
// whitespace. Adjacent separators then produce empty tokens, matching
// strings.Split.
func SplitOn(sep string) SplitOption {
	return func(c *splitConfig) {
		c.sep = sep
		c.hasSep = true
	}
}

// Bounds requires the token count to lie in [min, max]. A negative max
// means no upper bound. Violations fail with ErrCountOutOfRange.
func Bounds(min, max int) SplitOption {
	return func(c *splitConfig) {
		c.min = min
		c.max = max
		c.bounded = true
	}
}

// EvalOption configures a single Eval call.
type EvalOption func(*evalConfig)

type evalConfig struct {
	typ convert.Type
}

// EvalAs sets the conversion target applied to the evaluated result.
// The default is convert.TypeAny, which returns the result as-is.
func EvalAs(t convert.Type) EvalOption {
	return func(c *evalConfig) {
		c.typ = t
	}
}
