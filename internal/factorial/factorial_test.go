package factorial

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	apperrors "github.com/agbru/mathsvc/internal/errors"
)

func TestCompute_KnownValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int
		want string
	}{
		{1, "1"},
		{2, "2"},
		{5, "120"},
		{10, "3628800"},
		{20, "2432902008176640000"},
		{21, "51090942171709440000"},
		{25, "15511210043330985984000000"},
	}
	for _, tt := range tests {
		got, err := Compute(tt.n)
		if err != nil {
			t.Fatalf("Compute(%d): %v", tt.n, err)
		}
		if got.String() != tt.want {
			t.Errorf("Compute(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestCompute_MatchesMulRange(t *testing.T) {
	t.Parallel()
	for _, n := range []int{30, 100, 1000} {
		got, err := Compute(n)
		if err != nil {
			t.Fatal(err)
		}
		want := new(big.Int).MulRange(1, int64(n))
		if got.Cmp(want) != 0 {
			t.Errorf("Compute(%d) disagrees with MulRange", n)
		}
	}
}

func TestCompute_NonPositive(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, -5} {
		_, err := Compute(n)
		if !apperrors.IsComputationFault(err) {
			t.Errorf("Compute(%d) err = %v, want computation fault", n, err)
		}
	}
}

// TestRecurrence_PropertyBased verifies n! = n · (n-1)!.
func TestRecurrence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("n! = n * (n-1)!", prop.ForAll(
		func(n int) bool {
			fn, err := Compute(n)
			if err != nil {
				return false
			}
			prev, err := Compute(n - 1)
			if err != nil {
				return false
			}
			return fn.Cmp(new(big.Int).Mul(prev, big.NewInt(int64(n)))) == 0
		},
		gen.IntRange(2, 500),
	))

	properties.TestingRun(t)
}

func BenchmarkCompute1000(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Compute(1000)
	}
}
