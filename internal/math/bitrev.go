package math

// ComputeBitReversalIndices returns the bit-reversal permutation of
// [0, n) for a size-n radix-2 FFT, or nil when n is not a power of two.
func ComputeBitReversalIndices(n int) []int {
	if !IsPowerOfTwo(n) {
		return nil
	}

	bitrev := make([]int, n)
	bits := Log2(n)

	for i := range n {
		bitrev[i] = ReverseBits(i, bits)
	}

	return bitrev
}

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func Log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// ReverseBits mirrors the lower 'bits' bits of x: bit p moves to
// bit bits-1-p. Bits of x above that width are dropped.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(x, bits int) int {
	result := 0

	for pos := range bits {
		if x&(1<<pos) != 0 {
			result |= 1 << (bits - 1 - pos)
		}
	}

	return result
}
