package fftypes

// Comp is one complex sample as laid out in the generated C tables:
// real component first, imaginary second.
type Comp struct {
	Re float64
	Im float64
}

// Sizes holds the transform dimensions derived from the exponent.
type Sizes struct {
	Exp int // DSP_FFT_EXP
	In  int // DSP_FFT_IN_N = 2^Exp
	Res int // DSP_FFT_RES_N = In / 2
}
