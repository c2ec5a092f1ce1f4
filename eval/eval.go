package eval

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"
)

// ErrDisabled is returned by the Disabled evaluator for every expression.
var ErrDisabled = errors.New("expression evaluation is disabled")

// Evaluator evaluates one expression and returns its result as a native Go
// value. Implementations decide how much expressive power expression text
// gets; see the package documentation for the trust implications.
type Evaluator interface {
	Evaluate(ctx context.Context, expr string) (any, error)
}

// CEL evaluates expressions in a Common Expression Language environment with
// the strings and math extension libraries enabled. A CEL evaluator is
// immutable and safe for concurrent use.
type CEL struct {
	env *cel.Env
}

// New creates a CEL evaluator.
func New() (*CEL, error) {
	env, err := cel.NewEnv(
		ext.Strings(),
		ext.Math(),
	)
	if err != nil {
		return nil, fmt.Errorf("creating CEL environment: %w", err)
	}
	return &CEL{env: env}, nil
}

// Evaluate compiles and evaluates expr, returning the result converted to a
// native Go value (int64, float64, string, bool, ...). Compilation and
// evaluation failures are both reported as errors; ctx cancellation
// interrupts a running evaluation.
func (c *CEL) Evaluate(ctx context.Context, expr string) (any, error) {
	ast, iss := c.env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("compiling expression: %w", iss.Err())
	}

	prg, err := c.env.Program(ast, cel.InterruptCheckFrequency(100))
	if err != nil {
		return nil, fmt.Errorf("planning expression: %w", err)
	}

	out, _, err := prg.ContextEval(ctx, cel.NoVars())
	if err != nil {
		return nil, fmt.Errorf("evaluating expression: %w", err)
	}
	return out.Value(), nil
}

// Disabled is an Evaluator that rejects every expression with ErrDisabled.
// Install it on a reader to revoke the expression-evaluation capability.
type Disabled struct{}

// Evaluate always fails with ErrDisabled.
func (Disabled) Evaluate(context.Context, string) (any, error) {
	return nil, ErrDisabled
}
