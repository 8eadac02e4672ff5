package lut

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/dsplut/internal/fftypes"
	imath "github.com/cwbudde/dsplut/internal/math"
)

// unitTolerance bounds |W[k]|² - 1 for a valid twiddle factor.
const unitTolerance = 1e-9

// Tables is the full set of lookup tables for one transform size.
type Tables struct {
	fftypes.Sizes

	Window  []float64      // len In
	Twiddle []fftypes.Comp // len Res
	BitRev  []uint16       // len In
}

// Generate derives the sizes for exp and computes all three tables.
func Generate(exp int) (*Tables, error) {
	sizes, err := DeriveSizes(exp)
	if err != nil {
		return nil, err
	}

	t := &Tables{Sizes: sizes}

	var g errgroup.Group

	g.Go(func() error {
		var err error
		t.Window, err = BlackmanHarris(sizes.In)
		return err
	})
	g.Go(func() error {
		var err error
		t.Twiddle, err = Twiddle(sizes.In, sizes.Res)
		return err
	})
	g.Go(func() error {
		var err error
		t.BitRev, err = BitReversal(sizes.In, sizes.Exp)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate checks the structural invariants of t. Table lengths must
// match the sizes, BitRev must be a permutation of [0, In) holding the
// bit reversal of each index, and every twiddle factor must lie on the
// unit circle.
func (t *Tables) Validate() error {
	if t.Exp < MinExponent || t.Exp > MaxExponent || t.In != 1<<t.Exp || t.Res != t.In/2 {
		return fmt.Errorf("%w: sizes %+v", ErrCorruptTable, t.Sizes)
	}

	if len(t.Window) != t.In {
		return fmt.Errorf("%w: window has %d entries, want %d", ErrCorruptTable, len(t.Window), t.In)
	}

	if len(t.Twiddle) != t.Res {
		return fmt.Errorf("%w: twiddle has %d entries, want %d", ErrCorruptTable, len(t.Twiddle), t.Res)
	}

	if len(t.BitRev) != t.In {
		return fmt.Errorf("%w: bitrev has %d entries, want %d", ErrCorruptTable, len(t.BitRev), t.In)
	}

	seen := make([]bool, t.In)
	for i, r := range t.BitRev {
		if int(r) >= t.In || seen[r] {
			return fmt.Errorf("%w: bitrev[%d] = %d is not a permutation entry", ErrCorruptTable, i, r)
		}

		if int(r) != imath.ReverseBits(i, t.Exp) {
			return fmt.Errorf("%w: bitrev[%d] = %d, want %d", ErrCorruptTable, i, r, imath.ReverseBits(i, t.Exp))
		}

		seen[r] = true
	}

	for k, w := range t.Twiddle {
		if d := w.Re*w.Re + w.Im*w.Im - 1; math.Abs(d) > unitTolerance {
			return fmt.Errorf("%w: twiddle[%d] = %v is off the unit circle", ErrCorruptTable, k, w)
		}
	}

	return nil
}
