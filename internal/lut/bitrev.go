package lut

import (
	"fmt"

	imath "github.com/cwbudde/dsplut/internal/math"
)

// BitReversal returns the bit-reversal permutation of [0, n) where
// n = 2^exp. Entry i is i with its lower exp bits reversed.
func BitReversal(n, exp int) ([]uint16, error) {
	if exp < 0 || exp > MaxExponent || !imath.IsPowerOfTwo(n) || imath.Log2(n) != exp {
		return nil, fmt.Errorf("%w: bit reversal of %d entries over %d bits", ErrInvalidLength, n, exp)
	}

	rev := make([]uint16, n)
	for i, r := range imath.ComputeBitReversalIndices(n) {
		rev[i] = uint16(r)
	}

	return rev, nil
}
