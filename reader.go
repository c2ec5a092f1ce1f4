package tinp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/dokelung/tinp/convert"
	"github.com/dokelung/tinp/eval"
	"github.com/dokelung/tinp/format"
)

// LineSource supplies one line of input per call. Implementations write a
// non-empty prompt to their output before reading, and return the line
// without its trailing line terminator. A source signals a closed input
// stream by returning an error matching ErrEndOfInput or io.EOF.
type LineSource interface {
	ReadLine(prompt string) (string, error)
}

// consoleSource is the default LineSource: prompt to a writer, line from a
// buffered reader.
type consoleSource struct {
	in  *bufio.Reader
	out io.Writer
}

func (c *consoleSource) ReadLine(prompt string) (string, error) {
	if prompt != "" && c.out != nil {
		if _, err := io.WriteString(c.out, prompt); err != nil {
			return "", fmt.Errorf("writing prompt: %w", err)
		}
	}

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			// A final line without a terminator still counts as a line;
			// EOF with nothing buffered is end of input.
			if line == "" {
				return "", ErrEndOfInput
			}
			return line, nil
		}
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Reader reads lines of console input and parses them with one of three
// strategies: Scan (format string), Split (uniform token type), and Eval
// (expression evaluation). Each call is independent; a Reader holds no
// state between calls beyond its compiled-format cache.
type Reader struct {
	source       LineSource
	logger       *slog.Logger
	tracer       trace.Tracer
	evaluator    eval.Evaluator
	placeholders map[rune]format.Placeholder

	mu    sync.RWMutex
	specs map[specKey]*format.Spec
}

// specKey identifies one compiled format: the flags participate because
// they change the derived pattern.
type specKey struct {
	format     string
	whitespace bool
	raw        bool
}

// NewReader creates a Reader bound to stdin/stdout unless options rebind
// the streams. Construction fails only if the expression evaluator cannot
// be built.
func NewReader(opts ...ReaderOption) (*Reader, error) {
	cfg := readerConfig{
		in:  os.Stdin,
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.tracer == nil {
		cfg.tracer = noop.NewTracerProvider().Tracer("tinp")
	}
	if cfg.source == nil {
		cfg.source = &consoleSource{in: bufio.NewReader(cfg.in), out: cfg.out}
	}
	if cfg.evaluator == nil {
		ev, err := eval.New()
		if err != nil {
			return nil, &Error{Op: "NewReader", Kind: KindConfiguration, Err: err}
		}
		cfg.evaluator = ev
	}

	return &Reader{
		source:       cfg.source,
		logger:       cfg.logger,
		tracer:       cfg.tracer,
		evaluator:    cfg.evaluator,
		placeholders: cfg.placeholders,
		specs:        make(map[specKey]*format.Spec),
	}, nil
}

// Scan reads one line and parses it according to the scan-style format
// string fstr. It returns one converted value per directive, in directive
// order; the result length always equals the number of directives.
//
// A line whose shape does not match the format fails with ErrParseMismatch.
// A token that matches the pattern but does not convert fails with
// ErrTypeConversion, with the token and its directive index in the error
// context.
func (r *Reader) Scan(ctx context.Context, prompt, fstr string, opts ...ScanOption) ([]any, error) {
	const op = "Reader.Scan"

	var cfg scanConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, span := r.tracer.Start(ctx, "tinp.Scan",
		trace.WithAttributes(attribute.String("tinp.format", fstr)))
	defer span.End()

	spec, err := r.spec(fstr, cfg)
	if err != nil {
		return nil, fail(span, &Error{Op: op, Kind: KindConfiguration, Err: err})
	}
	span.SetAttributes(attribute.Int("tinp.directives", spec.Arity()))

	line, err := r.readLine(ctx, op, prompt)
	if err != nil {
		return nil, fail(span, err)
	}

	tokens, ok := spec.Match(line)
	if !ok {
		return nil, fail(span, &Error{
			Op:      op,
			Kind:    KindParseMismatch,
			Err:     fmt.Errorf("%w %q", ErrParseMismatch, fstr),
			Context: map[string]any{"format": fstr},
		})
	}

	directives := spec.Directives()
	values := make([]any, len(tokens))
	for i, tok := range tokens {
		v, cerr := convert.Token(directives[i].Type, tok)
		if cerr != nil {
			return nil, fail(span, &Error{
				Op:      op,
				Kind:    KindConversion,
				Err:     fmt.Errorf("%w: %v", ErrTypeConversion, cerr),
				Context: map[string]any{"token": tok, "index": i},
			})
		}
		values[i] = v
	}

	r.logger.Debug("scan complete", "format", fstr, "values", len(values))
	return values, nil
}

// Split reads one line, splits it into tokens, and converts every token to
// one uniform target type. By default the line is split on runs of
// whitespace and tokens are returned as strings; see SplitAs, SplitOn, and
// Bounds. An empty line yields an empty result under whitespace splitting.
//
// Conversion stops at the first token that does not convert, failing with
// ErrTypeConversion and the token's position in the error context.
func (r *Reader) Split(ctx context.Context, prompt string, opts ...SplitOption) ([]any, error) {
	const op = "Reader.Split"

	cfg := splitConfig{typ: convert.TypeString}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, span := r.tracer.Start(ctx, "tinp.Split",
		trace.WithAttributes(attribute.String("tinp.type", string(cfg.typ))))
	defer span.End()

	line, err := r.readLine(ctx, op, prompt)
	if err != nil {
		return nil, fail(span, err)
	}

	var tokens []string
	if cfg.hasSep {
		tokens = strings.Split(line, cfg.sep)
	} else {
		tokens = strings.Fields(line)
	}
	span.SetAttributes(attribute.Int("tinp.tokens", len(tokens)))

	if cfg.bounded {
		if len(tokens) < cfg.min || (cfg.max >= 0 && len(tokens) > cfg.max) {
			return nil, fail(span, &Error{
				Op:      op,
				Kind:    KindCount,
				Err:     fmt.Errorf("%w: got %d, want [%d, %d]", ErrCountOutOfRange, len(tokens), cfg.min, cfg.max),
				Context: map[string]any{"count": len(tokens), "min": cfg.min, "max": cfg.max},
			})
		}
	}

	values := make([]any, len(tokens))
	for i, tok := range tokens {
		v, cerr := convert.Token(cfg.typ, tok)
		if cerr != nil {
			return nil, fail(span, &Error{
				Op:      op,
				Kind:    KindConversion,
				Err:     fmt.Errorf("%w: %v", ErrTypeConversion, cerr),
				Context: map[string]any{"token": tok, "index": i},
			})
		}
		values[i] = v
	}

	r.logger.Debug("split complete", "type", string(cfg.typ), "values", len(values))
	return values, nil
}

// Eval reads one line, evaluates it as an expression, and converts the
// single result to a target type (none by default; see EvalAs).
//
// The line executes with the full expressive power of the reader's
// evaluator, so the input source must be trusted; see package eval. On a
// reader configured with WithoutEval, Eval always fails with
// ErrEvalDisabled.
func (r *Reader) Eval(ctx context.Context, prompt string, opts ...EvalOption) (any, error) {
	const op = "Reader.Eval"

	cfg := evalConfig{typ: convert.TypeAny}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, span := r.tracer.Start(ctx, "tinp.Eval",
		trace.WithAttributes(attribute.String("tinp.type", string(cfg.typ))))
	defer span.End()

	line, err := r.readLine(ctx, op, prompt)
	if err != nil {
		return nil, fail(span, err)
	}

	result, err := r.evaluator.Evaluate(ctx, line)
	if err != nil {
		if errors.Is(err, eval.ErrDisabled) {
			return nil, fail(span, &Error{Op: op, Kind: KindConfiguration, Err: err})
		}
		return nil, fail(span, &Error{
			Op:   op,
			Kind: KindEvaluation,
			Err:  fmt.Errorf("%w: %v", ErrEvaluation, err),
		})
	}

	value, cerr := convert.Coerce(cfg.typ, result)
	if cerr != nil {
		return nil, fail(span, &Error{
			Op:      op,
			Kind:    KindConversion,
			Err:     fmt.Errorf("%w: %v", ErrTypeConversion, cerr),
			Context: map[string]any{"value": result},
		})
	}

	r.logger.Debug("eval complete", "type", string(cfg.typ))
	return value, nil
}

// spec returns the compiled format for fstr, compiling and caching it on
// first use.
func (r *Reader) spec(fstr string, cfg scanConfig) (*format.Spec, error) {
	key := specKey{format: fstr, whitespace: cfg.whitespace, raw: cfg.raw}

	r.mu.RLock()
	s := r.specs[key]
	r.mu.RUnlock()
	if s != nil {
		return s, nil
	}

	s, err := format.Compile(fstr, format.Options{
		Placeholders:      r.placeholders,
		CaptureWhitespace: cfg.whitespace,
		Raw:               cfg.raw,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	r.mu.Lock()
	r.specs[key] = s
	r.mu.Unlock()
	return s, nil
}

// readLine fetches one line from the source, mapping a closed stream to a
// structured end-of-input error. The read itself blocks; ctx is only
// consulted before it starts.
func (r *Reader) readLine(ctx context.Context, op, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := r.source.ReadLine(prompt)
	if err != nil {
		if errors.Is(err, ErrEndOfInput) || errors.Is(err, io.EOF) {
			return "", &Error{Op: op, Kind: KindEndOfInput, Err: ErrEndOfInput}
		}
		return "", err
	}
	return line, nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// Package-level convenience functions delegate to a lazily constructed
// default Reader bound to stdin/stdout.
var (
	defaultOnce   sync.Once
	defaultReader *Reader
	defaultErr    error
)

// Default returns the shared stdin/stdout Reader used by the package-level
// Scan, Split, and Eval functions.
func Default() (*Reader, error) {
	defaultOnce.Do(func() {
		defaultReader, defaultErr = NewReader()
	})
	return defaultReader, defaultErr
}

// Scan prompts on stdout, reads one line from stdin, and parses it with the
// format string fstr. See Reader.Scan.
func Scan(prompt, fstr string, opts ...ScanOption) ([]any, error) {
	r, err := Default()
	if err != nil {
		return nil, err
	}
	return r.Scan(context.Background(), prompt, fstr, opts...)
}

// Split prompts on stdout, reads one line from stdin, and splits it into
// uniformly typed tokens. See Reader.Split.
func Split(prompt string, opts ...SplitOption) ([]any, error) {
	r, err := Default()
	if err != nil {
		return nil, err
	}
	return r.Split(context.Background(), prompt, opts...)
}

// Eval prompts on stdout, reads one line from stdin, evaluates it as an
// expression, and returns the result. See Reader.Eval.
func Eval(prompt string, opts ...EvalOption) (any, error) {
	r, err := Default()
	if err != nil {
		return nil, err
	}
	return r.Eval(context.Background(), prompt, opts...)
}
