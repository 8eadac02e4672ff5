package dsplut

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/dsplut/internal/config"
)

func TestParseArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    Invocation
		wantErr error
	}{
		{"valid", []string{"--fft_exp", "10", "out.c"}, Invocation{Exp: 10, Output: "out.c"}, nil},
		{"single dash", []string{"-fft_exp", "3", "out.c"}, Invocation{Exp: 3, Output: "out.c"}, nil},
		{"equals form", []string{"--fft_exp=4", "out.c"}, Invocation{Exp: 4, Output: "out.c"}, nil},
		{"no args", nil, Invocation{}, ErrInvalidInvocation},
		{"missing output", []string{"--fft_exp", "10"}, Invocation{}, ErrInvalidInvocation},
		{"extra positional", []string{"--fft_exp", "10", "a.c", "b.c"}, Invocation{}, ErrInvalidInvocation},
		{"missing mode", []string{"10", "out.c"}, Invocation{}, ErrInvalidInvocation},
		{"wrong mode", []string{"--fft_size", "10", "out.c"}, Invocation{}, ErrInvalidInvocation},
		{"mode after positional", []string{"out.c", "--fft_exp", "10"}, Invocation{}, ErrInvalidInvocation},
		{"missing value", []string{"--fft_exp"}, Invocation{}, ErrInvalidInvocation},
		{"not an integer", []string{"--fft_exp", "ten", "out.c"}, Invocation{}, ErrInvalidExponent},
		{"float exponent", []string{"--fft_exp", "3.5", "out.c"}, Invocation{}, ErrInvalidExponent},
		{"dash output after terminator", []string{"--fft_exp", "3", "--", "-lut.c"}, Invocation{Exp: 3, Output: "-lut.c"}, nil},
		{"dash output without terminator", []string{"--fft_exp", "3", "-lut.c"}, Invocation{}, ErrInvalidInvocation},
		{"negative parses", []string{"--fft_exp", "-2", "out.c"}, Invocation{Exp: -2, Output: "out.c"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stderr bytes.Buffer

			got, err := ParseArgs(tt.args, &stderr)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The Run tests share the process environment (config.Load), so they
// run sequentially.

func isolateEnv(t *testing.T) {
	t.Helper()

	t.Setenv(config.EnvFile, filepath.Join(t.TempDir(), "none.env"))
	t.Setenv(config.EnvGenerator, "dsplutgen")
	t.Setenv(config.EnvDSPHeader, "dsp.h")
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvSourceDateEpoch, "1704067200")
}

func TestRunWritesArtifact(t *testing.T) {
	isolateEnv(t)

	out := filepath.Join(t.TempDir(), "dsp_lut.c")

	var stderr bytes.Buffer
	code := Run([]string{"--fft_exp", "3", out}, &stderr)
	require.Equal(t, ExitOK, code, stderr.String())
	assert.Empty(t, stderr.String())

	got, err := os.ReadFile(out)
	require.NoError(t, err)

	text := string(got)
	assert.True(t, strings.HasPrefix(text, "/*\n * GENERATED FILE\n * from dsplutgen\n * at 2024.01.01. 00:00:00\n"))
	assert.Contains(t, text, "const float window_lut[DSP_FFT_IN_N] = {\n")
	assert.Contains(t, text, "const dsp_comp twiddle_lut[DSP_FFT_RES_N] = {\n")
	assert.Contains(t, text, "    0, 4, 2, 6, 1, 5, 3, 7\n};\n")
}

func TestRunIsReproducible(t *testing.T) {
	isolateEnv(t)

	dir := t.TempDir()
	first := filepath.Join(dir, "first.c")
	second := filepath.Join(dir, "second.c")

	var stderr bytes.Buffer
	require.Equal(t, ExitOK, Run([]string{"--fft_exp", "9", first}, &stderr), stderr.String())
	require.Equal(t, ExitOK, Run([]string{"--fft_exp", "9", second}, &stderr), stderr.String())

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunRejectsBadInvocation(t *testing.T) {
	isolateEnv(t)

	tests := []struct {
		name string
		args func(out string) []string
	}{
		{"no args", func(string) []string { return nil }},
		{"missing output", func(string) []string { return []string{"--fft_exp", "3"} }},
		{"wrong mode", func(out string) []string { return []string{"--size", "3", out} }},
		{"extra argument", func(out string) []string { return []string{"--fft_exp", "3", out, "x"} }},
		{"exponent not integer", func(out string) []string { return []string{"--fft_exp", "abc", out} }},
		{"exponent zero", func(out string) []string { return []string{"--fft_exp", "0", out} }},
		{"exponent negative", func(out string) []string { return []string{"--fft_exp", "-1", out} }},
		{"exponent too large", func(out string) []string { return []string{"--fft_exp", "17", out} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			out := filepath.Join(dir, "dsp_lut.c")

			var stderr bytes.Buffer
			assert.Equal(t, ExitFailure, Run(tt.args(out), &stderr))
			assert.Contains(t, stderr.String(), "dsplutgen:")

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries, "no artifact may be created")
		})
	}
}

func TestRunLeavesExistingArtifactOnBadInvocation(t *testing.T) {
	isolateEnv(t)

	out := filepath.Join(t.TempDir(), "dsp_lut.c")
	require.NoError(t, os.WriteFile(out, []byte("previous"), 0o644))

	var stderr bytes.Buffer
	assert.Equal(t, ExitFailure, Run([]string{"--fft_exp", out}, &stderr))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(got))
}

func TestRunReportsIOFailure(t *testing.T) {
	isolateEnv(t)

	out := filepath.Join(t.TempDir(), "missing", "dsp_lut.c")

	var stderr bytes.Buffer
	assert.Equal(t, ExitFailure, Run([]string{"--fft_exp", "4", out}, &stderr))
	assert.Contains(t, stderr.String(), "Failed to generate FFT tables.")
	assert.Contains(t, stderr.String(), ErrIOFailure.Error())
}

func TestRunRejectsBadConfig(t *testing.T) {
	isolateEnv(t)
	t.Setenv(config.EnvLogLevel, "chatty")

	out := filepath.Join(t.TempDir(), "dsp_lut.c")

	var stderr bytes.Buffer
	assert.Equal(t, ExitFailure, Run([]string{"--fft_exp", "4", out}, &stderr))
	assert.Contains(t, stderr.String(), config.ErrInvalidConfig.Error())

	_, err := os.Stat(out)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunPrintsUsageOnce(t *testing.T) {
	isolateEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"help", []string{"-h"}},
		{"unknown flag", []string{"--fft_size", "3", "out.c"}},
		{"missing value", []string{"--fft_exp"}},
		{"missing output", []string{"--fft_exp", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			assert.Equal(t, ExitFailure, Run(tt.args, &stderr))
			assert.Equal(t, 1, strings.Count(stderr.String(), "usage: dsplutgen"), stderr.String())
		})
	}
}

func TestRunAcceptsDashOutputAfterTerminator(t *testing.T) {
	isolateEnv(t)

	dir := t.TempDir()
	t.Chdir(dir)

	var stderr bytes.Buffer
	require.Equal(t, ExitOK, Run([]string{"--fft_exp", "3", "--", "-lut.c"}, &stderr), stderr.String())

	_, err := os.Stat(filepath.Join(dir, "-lut.c"))
	assert.NoError(t, err)
}
