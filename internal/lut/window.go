package lut

import (
	"fmt"
	"math"
)

// Four-term Blackman-Harris coefficients.
const (
	bhA0 = 0.35875
	bhA1 = 0.48829
	bhA2 = 0.14128
	bhA3 = 0.01168
)

// BlackmanHarris returns the symmetric four-term Blackman-Harris window
// of length n:
//
//	w[i] = a0 - a1*cos(2πi/(n-1)) + a2*cos(4πi/(n-1)) - a3*cos(6πi/(n-1))
//
// Values are returned as computed, without clamping; the endpoints sit
// at a0-a1+a2-a3 (about 6e-5), not exactly zero.
func BlackmanHarris(n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: window needs at least 2 points, got %d", ErrInvalidLength, n)
	}

	// pi is a variable so 2π, 4π and 6π are rounded in float64 arithmetic
	// instead of being folded as exact constants.
	pi := math.Pi
	den := float64(n - 1)
	window := make([]float64, n)

	for i := range n {
		x := float64(i)
		window[i] = bhA0 -
			bhA1*math.Cos(2*pi*x/den) +
			bhA2*math.Cos(4*pi*x/den) -
			bhA3*math.Cos(6*pi*x/den)
	}

	return window, nil
}
