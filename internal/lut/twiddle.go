package lut

import (
	"fmt"
	"math"

	"github.com/cwbudde/dsplut/internal/fftypes"
	imath "github.com/cwbudde/dsplut/internal/math"
)

// Twiddle returns the first res twiddle factors (roots of unity) of a
// size-n transform: W[k] = cos(2πk/n) + i·sin(2πk/n) for k = 0..res-1.
//
// The runtime butterflies only need the first half of the circle, so
// callers pass res = n/2.
func Twiddle(n, res int) ([]fftypes.Comp, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: twiddle needs at least 2 points, got %d", ErrInvalidLength, n)
	}

	if res < 0 || res > n {
		return nil, fmt.Errorf("%w: %d twiddle factors requested for size %d", ErrInvalidLength, res, n)
	}

	twiddle := make([]fftypes.Comp, res)

	for k := range res {
		angle := imath.TwoPi * float64(k) / float64(n)
		twiddle[k] = fftypes.Comp{
			Re: math.Cos(angle),
			Im: math.Sin(angle),
		}
	}

	return twiddle, nil
}
