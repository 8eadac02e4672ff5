package dsplut

import (
	"github.com/cwbudde/dsplut/internal/emit"
	"github.com/cwbudde/dsplut/internal/fftypes"
	"github.com/cwbudde/dsplut/internal/lut"
)

// Supported exponent range. The upper bound keeps every bit-reversal
// index within uint16_t.
const (
	MinExponent = lut.MinExponent
	MaxExponent = lut.MaxExponent
)

// Tables is the window, twiddle and bit-reversal tables for one size.
// The canonical definition is in internal/lut.
type Tables = lut.Tables

// Sizes holds the exponent, input length and output length.
type Sizes = fftypes.Sizes

// Comp is one (real, imaginary) twiddle factor.
type Comp = fftypes.Comp

// Preamble is the variable part of the generated file header.
type Preamble = emit.Preamble
