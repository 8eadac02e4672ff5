// Command dsplutgen writes the FFT lookup tables for one transform size
// as a C source file.
//
//	dsplutgen --fft_exp N OUTPUT
//
// The output defines window_lut, twiddle_lut and rev_bits_lut sized by
// DSP_FFT_IN_N and DSP_FFT_RES_N from the project's dsp.h. It is meant to
// run once per build, before the sources that include it are compiled.
package main

import (
	"os"

	"github.com/cwbudde/dsplut"
)

func main() {
	os.Exit(dsplut.Run(os.Args[1:], os.Stderr))
}
