package fibonacci

import (
	"math/big"
	"testing"
)

// fastDoubling computes F(k) (0-indexed) independently of the cache using
// F(2k) = F(k)(2F(k+1) - F(k)) and F(2k+1) = F(k)^2 + F(k+1)^2.
func fastDoubling(k uint) *big.Int {
	a, b := big.NewInt(0), big.NewInt(1)
	t1, t2 := new(big.Int), new(big.Int)
	for i := 63; i >= 0; i-- {
		// c = a(2b - a), d = a^2 + b^2
		t1.Lsh(b, 1).Sub(t1, a).Mul(t1, a)
		t2.Mul(a, a)
		b.Mul(b, b).Add(b, t2)
		a.Set(t1)
		if (k>>uint(i))&1 == 1 {
			a.Add(a, b)
			a, b = b, a
		}
	}
	return a
}

// FuzzCacheConsistency verifies that cached terms agree with the fast
// doubling identities, whatever order the terms are requested in.
func FuzzCacheConsistency(f *testing.F) {
	f.Add(1, 1)
	f.Add(2, 1)
	f.Add(10, 3)
	f.Add(93, 94)
	f.Add(94, 93)
	f.Add(500, 2)
	f.Add(5000, 4999)

	f.Fuzz(func(t *testing.T, first, second int) {
		if first < 1 || second < 1 || first > 5000 || second > 5000 {
			return
		}
		c := NewCache()
		for _, n := range []int{first, second} {
			got, err := c.Get(n)
			if err != nil {
				t.Fatalf("Get(%d): %v", n, err)
			}
			if want := fastDoubling(uint(n - 1)); got.Cmp(want) != 0 {
				t.Errorf("term(%d) = %s, want %s", n, got, want)
			}
		}
		if want := max(first, second); c.Frontier() < want {
			t.Errorf("frontier = %d, want >= %d", c.Frontier(), want)
		}
	})
}
