// Package fibonacci serves Fibonacci terms from a process-wide, append-only
// sequence cache.
package fibonacci

import (
	"fmt"
	"math/big"
	"sync"

	apperrors "github.com/agbru/mathsvc/internal/errors"
)

// Cache holds every Fibonacci term computed so far. Terms are 1-indexed:
// term(1) = 0, term(2) = 1. The sequence only ever grows, and existing
// entries are never mutated once published.
type Cache struct {
	mu  sync.RWMutex
	seq []*big.Int
}

// NewCache returns a cache seeded with the first two terms.
func NewCache() *Cache {
	return &Cache{seq: []*big.Int{big.NewInt(0), big.NewInt(1)}}
}

// Get returns term(n). Terms inside the frontier are served under a read
// lock; larger n extends the sequence once under the write lock. The
// returned value is a copy and may be modified by the caller.
func (c *Cache) Get(n int) (*big.Int, error) {
	if n < 1 {
		return nil, apperrors.NewComputationFault(fmt.Errorf("fibonacci term index %d is not positive", n))
	}

	c.mu.RLock()
	if n <= len(c.seq) {
		v := new(big.Int).Set(c.seq[n-1])
		c.mu.RUnlock()
		return v, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another caller may have extended past n while we waited.
	if n <= len(c.seq) {
		return new(big.Int).Set(c.seq[n-1]), nil
	}
	c.extendLocked(n)
	return new(big.Int).Set(c.seq[n-1]), nil
}

// extendLocked appends terms until the sequence holds n of them. append
// grows the backing array geometrically, so short extensions past the
// frontier rarely copy. The slice header is replaced in one assignment so
// the frontier moves once.
func (c *Cache) extendLocked(n int) {
	seq := c.seq
	for len(seq) < n {
		l := len(seq)
		seq = append(seq, new(big.Int).Add(seq[l-1], seq[l-2]))
	}
	c.seq = seq
}

// Frontier returns the number of terms currently cached.
func (c *Cache) Frontier() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.seq)
}

