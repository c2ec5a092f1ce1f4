package tinp

import (
	"errors"
	"fmt"

	"github.com/dokelung/tinp/eval"
)

// Sentinel errors for the failure modes of the readers.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrEndOfInput indicates the input stream closed before a line could
	// be read.
	ErrEndOfInput = errors.New("end of input")

	// ErrParseMismatch indicates the input line does not match the format
	// string.
	ErrParseMismatch = errors.New("input does not match format string")

	// ErrTypeConversion indicates a token or evaluated result could not be
	// converted to the requested type.
	ErrTypeConversion = errors.New("cannot convert input to requested type")

	// ErrEvaluation indicates the input line is not a valid expression or
	// its evaluation failed.
	ErrEvaluation = errors.New("expression evaluation failed")

	// ErrEvalDisabled indicates the reader's expression-evaluation
	// capability has been revoked with WithoutEval.
	ErrEvalDisabled = eval.ErrDisabled

	// ErrCountOutOfRange indicates the number of tokens on the input line
	// is outside the bounds requested with Bounds.
	ErrCountOutOfRange = errors.New("input count out of range")

	// ErrInvalidFormat indicates the format string itself could not be
	// compiled.
	ErrInvalidFormat = errors.New("invalid format string")
)

// Error kinds categorize errors by their type.
const (
	// KindEndOfInput represents failures to read a line at all.
	KindEndOfInput = "end_of_input"

	// KindParseMismatch represents input lines that do not match the
	// declared format.
	KindParseMismatch = "parse_mismatch"

	// KindConversion represents tokens or values that could not be
	// converted to the requested type.
	KindConversion = "conversion"

	// KindEvaluation represents expression-evaluation failures.
	KindEvaluation = "evaluation"

	// KindCount represents token-count bound violations.
	KindCount = "count"

	// KindConfiguration represents invalid reader or call configuration,
	// including bad format strings and revoked capabilities.
	KindConfiguration = "configuration"
)

// Error is a structured error that wraps underlying errors with the
// operation that failed and the category of failure.
//
// Error implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
type Error struct {
	// Op is the operation that failed (e.g., "Reader.Scan").
	Op string

	// Kind categorizes the error (e.g., KindParseMismatch, KindConversion).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional detail about the failure (optional),
	// such as the offending token and its position.
	Context map[string]any
}

// Error implements the error interface, returning a formatted message that
// includes the operation, kind, and underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("tinp: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("tinp: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("tinp: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for Error, allowing comparison based on the
// underlying error or on another Error's Op and Kind.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// WithContext returns a copy of e with the provided context entries added.
func (e *Error) WithContext(ctx map[string]any) *Error {
	newErr := *e
	if newErr.Context == nil {
		newErr.Context = make(map[string]any)
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}
