package ackermann

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	apperrors "github.com/agbru/mathsvc/internal/errors"
)

type key struct {
	m, n uint64
}

// Memo caches Ackermann values by (m, n). Entries are immutable once
// published and are never evicted.
type Memo struct {
	limits Limits

	mu      sync.RWMutex
	entries map[key]uint64

	group  singleflight.Group
	hits   atomic.Uint64
	misses atomic.Uint64
}

// Stats is a point-in-time view of the memo.
type Stats struct {
	Entries int    `json:"entries"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
}

// NewMemo returns an empty memo enforcing limits.
func NewMemo(limits Limits) *Memo {
	return &Memo{
		limits:  limits.normalize(),
		entries: make(map[key]uint64),
	}
}

// Limits returns the effective limits.
func (mm *Memo) Limits() Limits { return mm.limits }

// Evaluate returns A(m, n).
//
//	A(0, n) = n + 1
//	A(m, 0) = A(m-1, 1)
//	A(m, n) = A(m-1, A(m, n-1))
//
// A memo hit is served without recursion. Otherwise the value is derived
// with every recursive step consulting the memo first. Sub-results are kept
// in a private scratch map and published only if the whole evaluation
// succeeds, so a tripped limit never leaves partial state behind. Tripped
// limits surface as apperrors.ComputationFault wrapping ErrDepthExceeded,
// ErrStepBudgetExceeded or ErrMagnitudeExceeded.
func (mm *Memo) Evaluate(m, n uint64) (*big.Int, error) {
	k := key{m, n}
	if v, ok := mm.lookup(k); ok {
		mm.hits.Add(1)
		return new(big.Int).SetUint64(v), nil
	}
	mm.misses.Add(1)

	flightKey := strconv.FormatUint(m, 10) + "_" + strconv.FormatUint(n, 10)
	res, err, _ := mm.group.Do(flightKey, func() (any, error) {
		if v, ok := mm.lookup(k); ok {
			return v, nil
		}
		ev := &evaluation{memo: mm, limits: mm.limits, scratch: make(map[key]uint64)}
		v, err := ev.eval(m, n, 1)
		if err != nil {
			return nil, apperrors.NewComputationFault(fmt.Errorf("A(%d, %d): %w", m, n, err))
		}
		ev.scratch[k] = v
		mm.commit(ev.scratch)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetUint64(res.(uint64)), nil
}

// Stats returns entry and hit/miss counts.
func (mm *Memo) Stats() Stats {
	mm.mu.RLock()
	entries := len(mm.entries)
	mm.mu.RUnlock()
	return Stats{
		Entries: entries,
		Hits:    mm.hits.Load(),
		Misses:  mm.misses.Load(),
	}
}

func (mm *Memo) lookup(k key) (uint64, bool) {
	mm.mu.RLock()
	v, ok := mm.entries[k]
	mm.mu.RUnlock()
	return v, ok
}

func (mm *Memo) commit(scratch map[key]uint64) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	for k, v := range scratch {
		if _, ok := mm.entries[k]; !ok {
			mm.entries[k] = v
		}
	}
}

// evaluation is the state of one in-flight derivation. It is owned by a
// single goroutine.
type evaluation struct {
	memo    *Memo
	limits  Limits
	scratch map[key]uint64
	steps   int
}

func (ev *evaluation) lookup(k key) (uint64, bool) {
	if v, ok := ev.scratch[k]; ok {
		return v, true
	}
	return ev.memo.lookup(k)
}

func (ev *evaluation) eval(m, n uint64, depth int) (uint64, error) {
	if depth > ev.limits.MaxDepth {
		return 0, ErrDepthExceeded
	}
	ev.steps++
	if ev.steps > ev.limits.MaxSteps {
		return 0, ErrStepBudgetExceeded
	}

	if m == 0 {
		if n == math.MaxUint64 {
			return 0, ErrMagnitudeExceeded
		}
		return ev.checkBits(n + 1)
	}

	k := key{m, n}
	if v, ok := ev.lookup(k); ok {
		return v, nil
	}

	var (
		v   uint64
		err error
	)
	if n == 0 {
		v, err = ev.eval(m-1, 1, depth+1)
	} else {
		var inner uint64
		inner, err = ev.eval(m, n-1, depth+1)
		if err != nil {
			return 0, err
		}
		v, err = ev.eval(m-1, inner, depth+1)
	}
	if err != nil {
		return 0, err
	}
	if v, err = ev.checkBits(v); err != nil {
		return 0, err
	}
	ev.scratch[k] = v
	return v, nil
}

func (ev *evaluation) checkBits(v uint64) (uint64, error) {
	if bits.Len64(v) > ev.limits.MaxBits {
		return 0, ErrMagnitudeExceeded
	}
	return v, nil
}
