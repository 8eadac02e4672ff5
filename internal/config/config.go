// Package config resolves generator settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvFile            = "DSPLUT_ENV_FILE"
	EnvGenerator       = "DSPLUT_GENERATOR"
	EnvDSPHeader       = "DSPLUT_DSP_HEADER"
	EnvLogLevel        = "DSPLUT_LOG_LEVEL"
	EnvSourceDateEpoch = "SOURCE_DATE_EPOCH"
)

// Defaults.
const (
	DefaultEnvFile   = ".env"
	DefaultGenerator = "dsplutgen"
	DefaultDSPHeader = "dsp.h"
)

// ErrInvalidConfig is returned for malformed settings.
var ErrInvalidConfig = errors.New("dsplut: invalid configuration")

// Config holds the resolved settings.
type Config struct {
	Generator string
	DSPHeader string
	LogLevel  slog.Level

	// SourceDate fixes the preamble timestamp when non-nil.
	SourceDate *time.Time
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Generator: DefaultGenerator,
		DSPHeader: DefaultDSPHeader,
		LogLevel:  slog.LevelWarn,
	}
}

// Load reads the .env file named by DSPLUT_ENV_FILE (default ".env") if
// it exists, then resolves the configuration from the environment.
// Variables already set in the process environment win over the file.
func Load() (Config, error) {
	path := os.Getenv(EnvFile)
	if path == "" {
		path = DefaultEnvFile
	}

	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
	}

	return FromLookup(os.LookupEnv)
}

// FromLookup resolves the configuration through lookup, which has the
// signature of os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvGenerator); ok {
		v = strings.TrimSpace(v)
		if v == "" {
			return Config{}, fmt.Errorf("%w: %s is empty", ErrInvalidConfig, EnvGenerator)
		}

		cfg.Generator = v
	}

	if v, ok := lookup(EnvDSPHeader); ok {
		v = strings.TrimSpace(v)
		if v == "" || strings.ContainsAny(v, "\"\n") {
			return Config{}, fmt.Errorf("%w: %s=%q is not an include name", ErrInvalidConfig, EnvDSPHeader, v)
		}

		cfg.DSPHeader = v
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvLogLevel, err)
		}
	}

	if v, ok := lookup(EnvSourceDateEpoch); ok && v != "" {
		sec, err := strconv.ParseInt(v, 10, 64)
		if err != nil || sec < 0 {
			return Config{}, fmt.Errorf("%w: %s=%q is not a non-negative integer", ErrInvalidConfig, EnvSourceDateEpoch, v)
		}

		ts := time.Unix(sec, 0).UTC()
		cfg.SourceDate = &ts
	}

	return cfg, nil
}

// Timestamp returns the time to write in the preamble: SourceDate when
// set, otherwise now.
func (c Config) Timestamp(now func() time.Time) time.Time {
	if c.SourceDate != nil {
		return *c.SourceDate
	}

	return now()
}
