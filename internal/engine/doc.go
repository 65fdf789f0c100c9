// Package engine composes the Fibonacci cache, the Ackermann memo and the
// factorial evaluator into three uniform operations. Every operation
// validates its inputs, times the evaluator, records exactly one outcome in
// the metrics aggregator and returns either a decimal string or a
// *apperrors.ComputeError carrying the user-facing message.
//
// An Engine is safe for concurrent use.
package engine
