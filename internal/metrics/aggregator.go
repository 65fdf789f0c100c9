// Package metrics aggregates per-operation invocation counts and a running
// average latency without keeping per-call history.
package metrics

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
)

// Operation names a tracked engine operation.
type Operation string

// Tracked operations.
const (
	OpFibonacci Operation = "fibonacci"
	OpAckermann Operation = "ackermann"
	OpFactorial Operation = "factorial"
)

const (
	// LatencyPrecision is the number of fractional digits kept on the
	// running average after every update.
	LatencyPrecision = 6

	// NoLatency is the average reported before the first recorded call.
	NoLatency = -1.0

	// LatencyUnits labels the average in reports.
	LatencyUnits = "seconds"
)

// ErrUnknownOperation is returned by Record for an operation the aggregator
// was not built with.
var ErrUnknownOperation = errors.New("unknown operation")

// OperationMetrics is the state of one operation. InvocationsTotal always
// equals InvocationsSuccess + InvocationsError.
type OperationMetrics struct {
	InvocationsSuccess uint64
	InvocationsError   uint64
	InvocationsTotal   uint64
	// AverageLatency is in seconds, or NoLatency before the first call.
	AverageLatency float64
}

type record struct {
	mu sync.Mutex
	m  OperationMetrics
}

// Aggregator holds one independently locked record per operation. The set
// of operations is fixed at construction.
type Aggregator struct {
	records map[Operation]*record
	ops     []Operation
}

// DefaultOperations returns the three engine operations.
func DefaultOperations() []Operation {
	return []Operation{OpFibonacci, OpAckermann, OpFactorial}
}

// NewAggregator creates an aggregator tracking ops, or the default
// operations when none are given.
func NewAggregator(ops ...Operation) *Aggregator {
	if len(ops) == 0 {
		ops = DefaultOperations()
	}
	a := &Aggregator{records: make(map[Operation]*record, len(ops))}
	for _, op := range ops {
		if _, dup := a.records[op]; dup {
			continue
		}
		a.records[op] = &record{m: OperationMetrics{AverageLatency: NoLatency}}
		a.ops = append(a.ops, op)
	}
	sort.Slice(a.ops, func(i, j int) bool { return a.ops[i] < a.ops[j] })
	return a
}

// Operations returns the tracked operations in sorted order.
func (a *Aggregator) Operations() []Operation {
	out := make([]Operation, len(a.ops))
	copy(out, a.ops)
	return out
}

// Record counts one invocation of op and folds latencySeconds into the
// running average:
//
//	avg_1 = x_1
//	avg_k = (avg_{k-1} * (k-1) + x_k) / k
//
// rounded to LatencyPrecision digits. Negative or NaN latencies count as 0.
func (a *Aggregator) Record(op Operation, latencySeconds float64, succeeded bool) error {
	r, ok := a.records[op]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	if latencySeconds < 0 || math.IsNaN(latencySeconds) {
		latencySeconds = 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	before := r.m.InvocationsTotal
	r.m.InvocationsTotal++
	if succeeded {
		r.m.InvocationsSuccess++
	} else {
		r.m.InvocationsError++
	}

	var avg float64
	if before == 0 || r.m.AverageLatency == NoLatency {
		avg = latencySeconds
	} else {
		avg = (r.m.AverageLatency*float64(before) + latencySeconds) / float64(r.m.InvocationsTotal)
	}
	r.m.AverageLatency = roundLatency(avg)
	return nil
}

// Get returns a copy of one operation's metrics.
func (a *Aggregator) Get(op Operation) (OperationMetrics, bool) {
	r, ok := a.records[op]
	if !ok {
		return OperationMetrics{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.m, true
}

// Snapshot copies every record. Each record is read under its own lock, so
// no record is ever observed mid-update.
func (a *Aggregator) Snapshot() map[Operation]OperationMetrics {
	out := make(map[Operation]OperationMetrics, len(a.records))
	for _, op := range a.ops {
		m, _ := a.Get(op)
		out[op] = m
	}
	return out
}

func roundLatency(v float64) float64 {
	scale := math.Pow10(LatencyPrecision)
	return math.Round(v*scale) / scale
}
