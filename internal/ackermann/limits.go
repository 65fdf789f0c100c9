package ackermann

import "errors"

const (
	// DefaultMaxDepth bounds the recursion depth of a single evaluation.
	// Depth tracks the largest intermediate value closely, so this also caps
	// the inputs that can succeed (A(3, 14) fits, A(4, 2) does not).
	DefaultMaxDepth = 50_000

	// DefaultMaxSteps bounds the number of evaluation steps (memo misses plus
	// memo lookups) one evaluation may take. It stands in for a timeout.
	DefaultMaxSteps = 20_000_000

	// DefaultMaxBits is the widest value an evaluation may produce. Values
	// are carried as uint64 internally, so this is also the ceiling.
	DefaultMaxBits = 64
)

var (
	// ErrDepthExceeded is returned when recursion goes deeper than MaxDepth.
	ErrDepthExceeded = errors.New("recursion depth limit exceeded")
	// ErrStepBudgetExceeded is returned when an evaluation runs out of steps.
	ErrStepBudgetExceeded = errors.New("evaluation step budget exhausted")
	// ErrMagnitudeExceeded is returned when a value outgrows MaxBits.
	ErrMagnitudeExceeded = errors.New("value exceeds magnitude limit")
)

// Limits bounds a single evaluation. Zero fields take their defaults.
type Limits struct {
	MaxDepth int
	MaxSteps int
	MaxBits  int
}

// DefaultLimits returns the default evaluation limits.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth: DefaultMaxDepth,
		MaxSteps: DefaultMaxSteps,
		MaxBits:  DefaultMaxBits,
	}
}

// normalize returns a copy of l with defaults filled in for zero or negative
// fields and MaxBits clamped to the internal representation.
func (l Limits) normalize() Limits {
	normalized := l
	if normalized.MaxDepth <= 0 {
		normalized.MaxDepth = DefaultMaxDepth
	}
	if normalized.MaxSteps <= 0 {
		normalized.MaxSteps = DefaultMaxSteps
	}
	if normalized.MaxBits <= 0 || normalized.MaxBits > DefaultMaxBits {
		normalized.MaxBits = DefaultMaxBits
	}
	return normalized
}
