package engine

import (
	"time"

	"github.com/agbru/mathsvc/internal/ackermann"
	"github.com/agbru/mathsvc/internal/logging"
	"github.com/agbru/mathsvc/internal/sysmon"
)

const (
	// DefaultMaxFibonacciN caps Fibonacci requests. The cache keeps every
	// term, so memory grows roughly with the square of the largest n served.
	DefaultMaxFibonacciN = 10_000

	// DefaultMaxFactorialN caps factorial requests.
	DefaultMaxFactorialN = 20_000
)

// Options configures an Engine. Zero values take defaults; a negative
// MaxFibonacciN or MaxFactorialN removes that ceiling.
type Options struct {
	Ackermann     ackermann.Limits
	MaxFibonacciN int
	MaxFactorialN int
	Logger        logging.Logger
	// Now is the clock used for latency measurement.
	Now func() time.Time
	// SampleSystem reads host load for CacheStats.
	SampleSystem func() sysmon.Stats
}

// normalizeOptions returns a copy of opts with defaults filled in.
func normalizeOptions(opts Options) Options {
	normalized := opts
	if normalized.MaxFibonacciN == 0 {
		normalized.MaxFibonacciN = DefaultMaxFibonacciN
	}
	if normalized.MaxFactorialN == 0 {
		normalized.MaxFactorialN = DefaultMaxFactorialN
	}
	if normalized.Logger == nil {
		normalized.Logger = logging.NewNopLogger()
	}
	if normalized.Now == nil {
		normalized.Now = time.Now
	}
	if normalized.SampleSystem == nil {
		normalized.SampleSystem = sysmon.Sample
	}
	return normalized
}
