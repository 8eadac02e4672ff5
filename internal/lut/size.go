package lut

import (
	"fmt"

	"github.com/cwbudde/dsplut/internal/fftypes"
)

const (
	// MinExponent is the smallest supported exponent. N=0 would give a
	// single-sample window whose denominator L-1 is zero.
	MinExponent = 1

	// MaxExponent is the largest exponent whose indices fit the uint16_t
	// entries of rev_bits_lut.
	MaxExponent = 16
)

// DeriveSizes returns L = 2^exp and M = L/2.
func DeriveSizes(exp int) (fftypes.Sizes, error) {
	if exp < MinExponent || exp > MaxExponent {
		return fftypes.Sizes{}, fmt.Errorf("%w: %d not in [%d, %d]",
			ErrInvalidExponent, exp, MinExponent, MaxExponent)
	}

	in := 1 << exp

	return fftypes.Sizes{
		Exp: exp,
		In:  in,
		Res: in >> 1,
	}, nil
}
