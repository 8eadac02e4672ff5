package dsplut

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/mdobak/go-xerrors"

	"github.com/cwbudde/dsplut/internal/config"
	"github.com/cwbudde/dsplut/internal/logging"
)

// ModeFlag is the flag that selects FFT table generation.
const ModeFlag = "fft_exp"

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

const usage = "usage: dsplutgen --fft_exp N [--] OUTPUT\n" +
	"  put -- before an OUTPUT that starts with '-'"

// Invocation is a parsed command line.
type Invocation struct {
	Exp    int
	Output string
}

// ParseArgs parses "--fft_exp N OUTPUT" (args excludes the program name).
// Flag parser diagnostics go to stderr; the usage text is left to the
// caller.
func ParseArgs(args []string, stderr io.Writer) (Invocation, error) {
	fs := flag.NewFlagSet("dsplutgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}

	expArg := fs.String(ModeFlag, "", "FFT size exponent N (size = 2^N)")

	if err := fs.Parse(args); err != nil {
		return Invocation{}, fmt.Errorf("%w: %w", ErrInvalidInvocation, err)
	}

	seen := false
	fs.Visit(func(f *flag.Flag) { seen = seen || f.Name == ModeFlag })

	if !seen || fs.NArg() != 1 {
		return Invocation{}, fmt.Errorf("%w: want --%s N OUTPUT, got %q", ErrInvalidInvocation, ModeFlag, args)
	}

	exp, err := strconv.Atoi(*expArg)
	if err != nil {
		return Invocation{}, fmt.Errorf("%w: %q is not an integer", ErrInvalidExponent, *expArg)
	}

	return Invocation{Exp: exp, Output: fs.Arg(0)}, nil
}

// Run executes the generator command line and returns the process exit
// code. Nothing is written to the output path unless every step
// succeeds.
func Run(args []string, stderr io.Writer) int {
	inv, err := ParseArgs(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "dsplutgen: %v\n", err)

		if errors.Is(err, ErrInvalidInvocation) {
			fmt.Fprintln(stderr, usage)
		}

		return ExitFailure
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "dsplutgen: %v\n", err)
		return ExitFailure
	}

	logger := logging.New(stderr, cfg.LogLevel)
	ctx := context.Background()

	err = generate(ctx, logger, cfg, inv)
	if errors.Is(err, ErrDirSync) {
		logger.WarnContext(ctx, "Artifact written but directory sync failed.",
			slog.String("path", inv.Output), slog.Any("error", err))

		return ExitOK
	}

	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate FFT tables.", slog.Any("error", xerrors.New(err)))
		fmt.Fprintf(stderr, "dsplutgen: %v\n", err)

		return ExitFailure
	}

	return ExitOK
}

func generate(ctx context.Context, logger *slog.Logger, cfg config.Config, inv Invocation) error {
	tables, err := Generate(inv.Exp)
	if err != nil {
		return err
	}

	logger.DebugContext(ctx, "Tables computed.",
		slog.Int("exp", tables.Exp),
		slog.Int("in_n", tables.In),
		slog.Int("res_n", tables.Res),
	)

	p := Preamble{
		Generator: cfg.Generator,
		Time:      cfg.Timestamp(time.Now),
		DSPHeader: cfg.DSPHeader,
	}

	if err := WriteFile(inv.Output, tables, p); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Artifact written.",
		slog.String("path", inv.Output),
		slog.Int("exp", tables.Exp),
	)

	return nil
}
