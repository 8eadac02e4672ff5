package lut

import "errors"

var (
	// ErrInvalidExponent is returned when the exponent is outside
	// [MinExponent, MaxExponent].
	ErrInvalidExponent = errors.New("dsplut: invalid FFT exponent")

	// ErrInvalidLength is returned when a generator is asked for a table
	// size it cannot produce (window and twiddle need at least 2 points).
	ErrInvalidLength = errors.New("dsplut: invalid table length")

	// ErrCorruptTable is returned by Validate when a computed table breaks
	// one of its invariants.
	ErrCorruptTable = errors.New("dsplut: corrupt table")
)
