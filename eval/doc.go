// Package eval provides the expression-evaluation capability behind the
// evaluating reader.
//
// The capability is deliberately isolated behind the Evaluator interface so
// that a host application can decide how much expressive power user input
// gets: the default CEL evaluator, a custom implementation, or the Disabled
// evaluator that rejects every expression.
//
// # Trust Boundary
//
// Evaluating a line of user input as an expression is a trust boundary: the
// input executes with the full expressive power of the evaluator. The
// default evaluator is a CEL environment (with the strings and math
// extension libraries), which bounds what an expression can do to pure
// computation over built-in values, but the contract remains: callers must
// treat the input source as trusted, and embeddings that cannot guarantee
// that should install Disabled instead.
package eval
