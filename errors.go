package dsplut

import (
	"errors"

	"github.com/cwbudde/dsplut/internal/emit"
	"github.com/cwbudde/dsplut/internal/lut"
)

// Sentinel errors returned by table generation and the command line.
var (
	// ErrInvalidInvocation is returned when the command line is not
	// exactly "--fft_exp N OUTPUT".
	ErrInvalidInvocation = errors.New("dsplut: invalid invocation")

	// ErrInvalidExponent is returned when N does not parse as an integer
	// or lies outside [MinExponent, MaxExponent].
	ErrInvalidExponent = lut.ErrInvalidExponent

	// ErrIOFailure is returned when the artifact cannot be written. The
	// destination is left untouched in that case.
	ErrIOFailure = emit.ErrIOFailure

	// ErrDirSync is returned when the artifact was fully written and
	// renamed into place but its directory could not be synced.
	ErrDirSync = emit.ErrDirSync

	// ErrCorruptTable is returned when a generated table fails its own
	// invariant checks. It indicates a bug, never bad input.
	ErrCorruptTable = lut.ErrCorruptTable
)
