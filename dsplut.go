// Package dsplut precomputes the lookup tables of a fixed-size radix-2
// FFT and emits them as C array initializers.
//
// For an exponent N the generated file holds a 2^N point Blackman-Harris
// window, 2^(N-1) twiddle factors and the 2^N entry bit-reversal
// permutation:
//
//	tables, err := dsplut.Generate(10)
//	if err != nil {
//		return err
//	}
//	err = dsplut.WriteFile("dsp_lut.c", tables, dsplut.Preamble{
//		Generator: "dsplutgen",
//		Time:      time.Now(),
//		DSPHeader: "dsp.h",
//	})
package dsplut

import (
	"fmt"
	"io"

	"github.com/cwbudde/dsplut/internal/emit"
	"github.com/cwbudde/dsplut/internal/lut"
)

// Generate computes and checks all tables for exponent exp.
func Generate(exp int) (*Tables, error) {
	tables, err := lut.Generate(exp)
	if err != nil {
		return nil, err
	}

	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("exp %d: %w", exp, err)
	}

	return tables, nil
}

// Write renders the artifact for tables to w.
func Write(w io.Writer, tables *Tables, p Preamble) error {
	return emit.Write(w, tables, p)
}

// WriteFile renders the artifact for tables and atomically replaces path
// with it.
func WriteFile(path string, tables *Tables, p Preamble) error {
	return emit.WriteFile(path, tables, p)
}
