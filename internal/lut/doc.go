// Package lut computes the lookup tables consumed by the fixed-size
// radix-2 FFT runtime: a Blackman-Harris window, the first half of the
// twiddle factors, and the bit-reversal permutation.
//
// Every table is a pure function of the exponent. Generate derives the
// sizes once and builds the three tables in parallel.
package lut
