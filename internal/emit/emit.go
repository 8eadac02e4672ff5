// Package emit serializes lookup tables into the generated C source
// consumed by the DSP runtime.
//
// The collaborating header (dsp.h by default) must declare dsp_comp and
// the DSP_FFT_IN_N, DSP_FFT_RES_N and DSP_FFT_EXP constants; they are
// referenced here by name only.
package emit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cwbudde/dsplut/internal/fftypes"
	"github.com/cwbudde/dsplut/internal/lut"
	"github.com/cwbudde/dsplut/internal/render"
)

// ErrIOFailure is returned when the artifact cannot be written.
var ErrIOFailure = errors.New("dsplut: artifact I/O failure")

// TimeLayout is the format of the "at" line in the preamble.
const TimeLayout = "2006.01.02. 15:04:05"

// Values per line for each table.
const (
	WindowPerLine  = 8
	TwiddlePerLine = 4
	BitRevPerLine  = 22
)

const indent = "    "

// Preamble holds the variable parts of the file header.
type Preamble struct {
	Generator string    // name written on the "from" line
	Time      time.Time // generation time, written with TimeLayout
	DSPHeader string    // project-local include declaring dsp_comp and the sizes
}

const headerFormat = `/*
 * GENERATED FILE
 * from %s
 * at %s
 * for DSP FFT (Fast Fourier Transform)
 */

#include "stdint.h"

#include "%s"


/* Blackman–Harris window implemented
 * from https://en.wikipedia.org/wiki/Window_function#Blackman–Harris_window */
const float window_lut[DSP_FFT_IN_N] = {
` + indent

const (
	twiddleOpen = "\n};\nconst dsp_comp twiddle_lut[DSP_FFT_RES_N] = {\n" + indent
	bitRevOpen  = "\n};\nconst uint16_t rev_bits_lut[DSP_FFT_IN_N] = {\n" + indent
	tablesClose = "\n};\n"
)

// Write renders the complete artifact for t to w.
func Write(w io.Writer, t *lut.Tables, p Preamble) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, headerFormat, p.Generator, p.Time.Format(TimeLayout), p.DSPHeader)

	if err := render.Grouped(bw, t.Window, WindowPerLine, indent, render.Fixed); err != nil {
		return fmt.Errorf("%w: window_lut: %w", ErrIOFailure, err)
	}

	bw.WriteString(twiddleOpen)

	if err := render.Grouped(bw, t.Twiddle, TwiddlePerLine, indent, formatComp); err != nil {
		return fmt.Errorf("%w: twiddle_lut: %w", ErrIOFailure, err)
	}

	bw.WriteString(bitRevOpen)

	if err := render.Grouped(bw, t.BitRev, BitRevPerLine, indent, render.Uint[uint16]); err != nil {
		return fmt.Errorf("%w: rev_bits_lut: %w", ErrIOFailure, err)
	}

	bw.WriteString(tablesClose)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	return nil
}

func formatComp(c fftypes.Comp) string {
	return "{" + render.Fixed(c.Re) + render.Separator + render.Fixed(c.Im) + "}"
}
