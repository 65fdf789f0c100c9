package engine

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/mathsvc/internal/ackermann"
	apperrors "github.com/agbru/mathsvc/internal/errors"
	"github.com/agbru/mathsvc/internal/factorial"
	"github.com/agbru/mathsvc/internal/fibonacci"
	"github.com/agbru/mathsvc/internal/logging"
	"github.com/agbru/mathsvc/internal/metrics"
	"github.com/agbru/mathsvc/internal/sysmon"
)

var tracer = otel.Tracer("github.com/agbru/mathsvc/internal/engine")

// ErrLimitExceeded is the cause of the computation fault returned when n is
// above the configured MaxFibonacciN or MaxFactorialN.
var ErrLimitExceeded = errors.New("input exceeds the configured limit")

// Engine owns the caches and the metrics aggregator.
type Engine struct {
	opts    Options
	logger  logging.Logger
	fib     *fibonacci.Cache
	ack     *ackermann.Memo
	metrics *metrics.Aggregator
	memory  *metrics.MemoryCollector
}

// CacheStats describes the caches, the process heap and host load.
type CacheStats struct {
	FibonacciFrontier int                    `json:"fibonacci_frontier"`
	Ackermann         ackermann.Stats        `json:"ackermann"`
	Memory            metrics.MemorySnapshot `json:"memory"`
	System            sysmon.Stats           `json:"system"`
}

// New returns an Engine with empty caches.
func New(opts Options) *Engine {
	opts = normalizeOptions(opts)
	return &Engine{
		opts:    opts,
		logger:  opts.Logger,
		fib:     fibonacci.NewCache(),
		ack:     ackermann.NewMemo(opts.Ackermann),
		metrics: metrics.NewAggregator(metrics.DefaultOperations()...),
		memory:  metrics.NewMemoryCollector(),
	}
}

// ComputeFibonacci returns term(n) of the sequence 0, 1, 1, 2, 3, ...
// (1-indexed) as a decimal string.
func (e *Engine) ComputeFibonacci(n int) (string, error) {
	return e.invoke(call{
		op:       metrics.OpFibonacci,
		attrs:    []attribute.KeyValue{attribute.Int("n", n)},
		validate: func() error { return validatePositive(metrics.OpFibonacci, n) },
		eval: func() (*big.Int, error) {
			if err := checkLimit(n, e.opts.MaxFibonacciN); err != nil {
				return nil, err
			}
			return e.fib.Get(n)
		},
		faultMsg: fmt.Sprintf("Unable to compute fibonacci of %d", n),
	})
}

// ComputeAckermann returns A(m, n) as a decimal string. Zero is a valid
// value for both arguments.
func (e *Engine) ComputeAckermann(m, n int) (string, error) {
	return e.invoke(call{
		op:    metrics.OpAckermann,
		attrs: []attribute.KeyValue{attribute.Int("m", m), attribute.Int("n", n)},
		validate: func() error {
			if m < 0 || n < 0 {
				return invalidInput(metrics.OpAckermann, "Invalid parameters: `ackermann` takes in non-negative integers")
			}
			return nil
		},
		eval:     func() (*big.Int, error) { return e.ack.Evaluate(uint64(m), uint64(n)) },
		faultMsg: fmt.Sprintf("Unable to compute Ackermann number for m: %d and n: %d", m, n),
	})
}

// ComputeFactorial returns n! as a decimal string.
func (e *Engine) ComputeFactorial(n int) (string, error) {
	return e.invoke(call{
		op:       metrics.OpFactorial,
		attrs:    []attribute.KeyValue{attribute.Int("n", n)},
		validate: func() error { return validatePositive(metrics.OpFactorial, n) },
		eval: func() (*big.Int, error) {
			if err := checkLimit(n, e.opts.MaxFactorialN); err != nil {
				return nil, err
			}
			return factorial.Compute(n)
		},
		faultMsg: fmt.Sprintf("Unable to compute factorial of %d", n),
	})
}

// MetricsSnapshot returns the serialisable metrics report.
func (e *Engine) MetricsSnapshot() metrics.Report {
	return e.metrics.Report()
}

// MetricsJSON returns the metrics report as JSON text.
func (e *Engine) MetricsJSON() ([]byte, error) {
	return e.metrics.Report().JSON()
}

// Metrics exposes the raw per-operation snapshot.
func (e *Engine) Metrics() map[metrics.Operation]metrics.OperationMetrics {
	return e.metrics.Snapshot()
}

// CacheStats reports cache sizes, memo hit rates and resource usage.
func (e *Engine) CacheStats() CacheStats {
	return CacheStats{
		FibonacciFrontier: e.fib.Frontier(),
		Ackermann:         e.ack.Stats(),
		Memory:            e.memory.Snapshot(),
		System:            e.opts.SampleSystem(),
	}
}

// call describes one engine operation for invoke.
type call struct {
	op       metrics.Operation
	attrs    []attribute.KeyValue
	validate func() error
	eval     func() (*big.Int, error)
	faultMsg string
}

// invoke runs c and records exactly one outcome for it.
func (e *Engine) invoke(c call) (string, error) {
	start := e.opts.Now()
	_, span := tracer.Start(context.Background(), "engine."+string(c.op), trace.WithAttributes(c.attrs...))
	defer span.End()

	if err := c.validate(); err != nil {
		e.record(c.op, e.opts.Now().Sub(start), false)
		span.SetStatus(codes.Error, apperrors.KindInvalidInput.String())
		e.logger.Debug("rejected invalid input", logging.String("operation", string(c.op)), logging.Err(err))
		return "", err
	}

	value, err := safeEval(c.eval)
	elapsed := e.opts.Now().Sub(start)
	if err != nil {
		cerr := classify(c, err)
		e.record(c.op, elapsed, false)
		span.RecordError(err)
		span.SetStatus(codes.Error, cerr.Kind.String())
		e.logger.Error("computation failed", err,
			logging.String("operation", string(c.op)),
			logging.String("kind", cerr.Kind.String()),
			logging.Duration("latency", elapsed))
		return "", cerr
	}

	e.record(c.op, elapsed, true)
	span.SetStatus(codes.Ok, "")
	e.logger.Debug("computation served",
		logging.String("operation", string(c.op)),
		logging.Int("bits", value.BitLen()),
		logging.Duration("latency", elapsed))
	return value.String(), nil
}

// record stores one outcome. Only the three known operations reach here, so
// the aggregator cannot reject op.
func (e *Engine) record(op metrics.Operation, latency time.Duration, ok bool) {
	if err := e.metrics.Record(op, latency.Seconds(), ok); err != nil {
		e.logger.Error("metrics record failed", err, logging.String("operation", string(op)))
	}
}

// safeEval turns a panic inside fn into an error.
func safeEval(fn func() (*big.Int, error)) (value *big.Int, err error) {
	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = fmt.Errorf("evaluator panic: %v", r)
		}
	}()
	value, err = fn()
	if err == nil && value == nil {
		err = errors.New("evaluator returned no value")
	}
	return value, err
}

// classify maps an evaluator error to its user-facing ComputeError.
func classify(c call, err error) *apperrors.ComputeError {
	if apperrors.IsComputationFault(err) {
		return &apperrors.ComputeError{
			Kind:    apperrors.KindComputationFault,
			Op:      string(c.op),
			Message: c.faultMsg,
			Cause:   err,
		}
	}
	return &apperrors.ComputeError{
		Kind:    apperrors.KindUnknownFault,
		Op:      string(c.op),
		Message: fmt.Sprintf("Unknown error for `%s`", c.op),
		Cause:   err,
	}
}

func invalidInput(op metrics.Operation, msg string) *apperrors.ComputeError {
	return &apperrors.ComputeError{Kind: apperrors.KindInvalidInput, Op: string(op), Message: msg}
}

// validatePositive accepts any n >= 1. The wording of the message is kept
// from the service's original API.
func validatePositive(op metrics.Operation, n int) error {
	if n >= 1 {
		return nil
	}
	return invalidInput(op, fmt.Sprintf("Invalid parameters: `%s` takes in non-negative integers", op))
}

// checkLimit refuses n above the configured ceiling. A negative limit
// disables the check.
func checkLimit(n, limit int) error {
	if limit >= 0 && n > limit {
		return apperrors.NewComputationFault(fmt.Errorf("%w: %d > %d", ErrLimitExceeded, n, limit))
	}
	return nil
}
