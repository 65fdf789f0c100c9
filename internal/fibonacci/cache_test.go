package fibonacci

import (
	"math/big"
	"sync"
	"testing"

	apperrors "github.com/agbru/mathsvc/internal/errors"
)

// TestCacheGet_KnownValues checks terms against known Fibonacci numbers under
// the term(1)=0, term(2)=1 convention.
func TestCacheGet_KnownValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		n        int
		expected string
	}{
		{"term(1) first seed", 1, "0"},
		{"term(2) second seed", 2, "1"},
		{"term(3)", 3, "1"},
		{"term(4)", 4, "2"},
		{"term(6)", 6, "5"},
		{"term(11)", 11, "55"},
		{"term(21)", 21, "6765"},
		{"term(51)", 51, "12586269025"},
		{"term(94) overflows uint64", 94, "12200160415121876738"},
		{"term(101)", 101, "354224848179261915075"},
	}

	c := NewCache()
	for _, tt := range tests {
		got, err := c.Get(tt.n)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if got.String() != tt.expected {
			t.Errorf("%s: Get(%d) = %s, want %s", tt.name, tt.n, got, tt.expected)
		}
	}
}

// TestCacheGet_OrderIndependent verifies a fresh cache asked for a large term
// first agrees with one grown incrementally.
func TestCacheGet_OrderIndependent(t *testing.T) {
	t.Parallel()
	incremental := NewCache()
	for n := 1; n <= 300; n++ {
		if _, err := incremental.Get(n); err != nil {
			t.Fatalf("Get(%d): %v", n, err)
		}
	}
	jump := NewCache()
	big300, err := jump.Get(300)
	if err != nil {
		t.Fatalf("Get(300): %v", err)
	}
	for n := 1; n <= 300; n++ {
		a, _ := incremental.Get(n)
		b, _ := jump.Get(n)
		if a.Cmp(b) != 0 {
			t.Fatalf("term(%d) differs: %s vs %s", n, a, b)
		}
	}
	inc300, _ := incremental.Get(300)
	if inc300.Cmp(big300) != 0 {
		t.Errorf("term(300) differs")
	}
}

// TestCacheFrontier checks the frontier only grows.
func TestCacheFrontier(t *testing.T) {
	t.Parallel()
	c := NewCache()
	if c.Frontier() != 2 {
		t.Fatalf("seeded frontier = %d, want 2", c.Frontier())
	}

	steps := []struct {
		n    int
		want int
	}{
		{1, 2},
		{2, 2},
		{10, 10},
		{5, 10},
		{50, 50},
		{49, 50},
	}
	for _, s := range steps {
		if _, err := c.Get(s.n); err != nil {
			t.Fatalf("Get(%d): %v", s.n, err)
		}
		if got := c.Frontier(); got != s.want {
			t.Errorf("after Get(%d) frontier = %d, want %d", s.n, got, s.want)
		}
	}
}

// TestCacheGet_ReturnsCopies ensures callers cannot corrupt cached terms.
func TestCacheGet_ReturnsCopies(t *testing.T) {
	t.Parallel()
	c := NewCache()
	v, err := c.Get(11)
	if err != nil {
		t.Fatal(err)
	}
	v.SetInt64(-1)

	again, _ := c.Get(11)
	if again.Cmp(big.NewInt(55)) != 0 {
		t.Errorf("cached term mutated through returned value: %s", again)
	}
}

// TestCacheGet_NonPositive verifies the cache rejects indices below 1 with a
// computation fault rather than panicking.
func TestCacheGet_NonPositive(t *testing.T) {
	t.Parallel()
	c := NewCache()
	for _, n := range []int{0, -1, -100} {
		_, err := c.Get(n)
		if err == nil {
			t.Fatalf("Get(%d) expected error", n)
		}
		if !apperrors.IsComputationFault(err) {
			t.Errorf("Get(%d) error %v is not a computation fault", n, err)
		}
	}
	if c.Frontier() != 2 {
		t.Errorf("frontier changed after rejected calls: %d", c.Frontier())
	}
}

// TestCacheGet_Concurrent hammers one cache from many goroutines with mixed
// indices and checks every answer against a reference cache.
func TestCacheGet_Concurrent(t *testing.T) {
	t.Parallel()
	ref := NewCache()
	if _, err := ref.Get(500); err != nil {
		t.Fatal(err)
	}

	c := NewCache()
	const goroutines = 64
	var wg sync.WaitGroup
	barrier := make(chan struct{})
	errs := make(chan string, goroutines)

	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			<-barrier
			for i := 0; i < 50; i++ {
				n := (id*37+i*13)%500 + 1
				got, err := c.Get(n)
				if err != nil {
					errs <- err.Error()
					return
				}
				exp, _ := ref.Get(n)
				if got.Cmp(exp) != 0 {
					errs <- "mismatch"
					return
				}
			}
		}(g)
	}
	close(barrier)
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Errorf("concurrent Get failed: %s", e)
	}
	if f := c.Frontier(); f < 2 || f > 500 {
		t.Errorf("frontier out of range: %d", f)
	}
}

func BenchmarkCacheGet_Hit(b *testing.B) {
	c := NewCache()
	_, _ = c.Get(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Get(1000)
	}
}

// TestCacheGet_GrowthIsGeometric extends the sequence one term at a time
// and counts how often the backing array moves. Growing to the exact
// length on every extension would move it on each step.
func TestCacheGet_GrowthIsGeometric(t *testing.T) {
	t.Parallel()
	c := NewCache()

	const limit = 2000
	moves := 0
	prev := &c.seq[0]
	for n := 3; n <= limit; n++ {
		if _, err := c.Get(n); err != nil {
			t.Fatalf("Get(%d): %v", n, err)
		}
		if head := &c.seq[0]; head != prev {
			moves++
			prev = head
		}
	}

	if moves > 40 {
		t.Errorf("backing array moved %d times over %d single-term extensions", moves, limit-2)
	}
	if got := c.Frontier(); got != limit {
		t.Errorf("Frontier() = %d, want %d", got, limit)
	}
}
