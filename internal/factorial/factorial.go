// Package factorial computes n! iteratively on arbitrary-precision integers.
// It keeps no state between calls.
package factorial

import (
	"fmt"
	"math/big"

	apperrors "github.com/agbru/mathsvc/internal/errors"
)

// Compute returns n! for n >= 1 by multiplying 1×2×…×n.
func Compute(n int) (*big.Int, error) {
	if n < 1 {
		return nil, apperrors.NewComputationFault(fmt.Errorf("factorial argument %d is not positive", n))
	}
	result := big.NewInt(1)
	factor := new(big.Int)
	for i := 2; i <= n; i++ {
		result.Mul(result, factor.SetInt64(int64(i)))
	}
	return result, nil
}
