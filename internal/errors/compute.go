package apperrors

import "errors"

// Kind classifies a failed engine invocation.
type Kind int

const (
	// KindUnknownFault is any failure that is neither bad input nor a known
	// computation fault. It is the zero value so unclassified errors land here.
	KindUnknownFault Kind = iota
	// KindInvalidInput means an argument was outside the operation's domain.
	KindInvalidInput
	// KindComputationFault means the evaluator failed on valid input.
	KindComputationFault
)

// String returns the kind's name as used in logs.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindComputationFault:
		return "computation_fault"
	default:
		return "unknown_fault"
	}
}

// ComputeError is the error returned across the engine boundary. Its Error
// method yields the user-facing message; Cause keeps the evaluator's own
// error for logging and errors.Is checks.
type ComputeError struct {
	Kind    Kind
	Op      string
	Message string
	Cause   error
}

// Error returns the user-facing message.
func (e *ComputeError) Error() string { return e.Message }

// Unwrap returns the underlying cause, if any.
func (e *ComputeError) Unwrap() error { return e.Cause }

// KindOf classifies err. A *ComputeError reports its own kind, a bare
// ComputationFault is a computation fault and anything else is unknown.
func KindOf(err error) Kind {
	var ce *ComputeError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	if IsComputationFault(err) {
		return KindComputationFault
	}
	return KindUnknownFault
}
