// Package apperrors defines structured application error types, separating
// caller mistakes (invalid input), evaluator failures (computation faults)
// and everything else, while carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types implement the Unwrap() method to support errors.Is() and errors.As().
package apperrors
