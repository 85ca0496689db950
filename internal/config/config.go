// Package config defines the ui512calc application configuration and its
// resolution chain: CLI flags take priority over UI512_-prefixed environment
// variables, which take priority over defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/widebit/ui512/internal/errors"
)

// Operation names accepted by the -op flag.
const (
	OpMul = "mul"
	OpDiv = "div"
	OpAdd = "add"
	OpSub = "sub"
)

// DefaultSelfTestRounds is the number of cross-check rounds run when
// -selftest is given without a count.
const DefaultSelfTestRounds = 1000

// AppConfig holds the complete runtime configuration for ui512calc.
type AppConfig struct {
	// Op is the arithmetic operation to perform (mul, div, add, sub).
	Op string
	// A and B are the textual operands (decimal, or 0x/0o/0b prefixed).
	A string
	// B is the second operand.
	B string
	// Base is the output base: 2, 8, 10 or 16.
	Base int
	// SelfTest, when positive, runs that many randomized cross-check
	// rounds against the reference backends instead of a single operation.
	SelfTest int
	// Seed seeds the self-test workload generator; 0 uses the current time.
	Seed int64
	// ServeAddr, when non-empty, starts the HTTP API on this address.
	ServeAddr string
	// Timeout bounds self-test and server shutdown.
	Timeout time.Duration
	// Quiet suppresses everything but the bare result.
	Quiet bool
	// Verbose enables debug logging.
	Verbose bool
	// NoColor disables styled terminal output.
	NoColor bool
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags that were not set explicitly, and
// validates the result.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		Op:      OpMul,
		Base:    10,
		Timeout: 5 * time.Minute,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s -op mul|div|add|sub -a <num> -b <num> [options]\n", programName)
		fmt.Fprintf(errWriter, "       %s -selftest [n] [options]\n", programName)
		fmt.Fprintf(errWriter, "       %s -serve <addr> [options]\n\n", programName)
		fmt.Fprintf(errWriter, "512-bit unsigned integer calculator. Operands accept decimal or\n")
		fmt.Fprintf(errWriter, "0x/0o/0b prefixed values, with optional underscore separators.\n\nOptions:\n")
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.Op, "op", cfg.Op, "operation: mul, div, add or sub")
	fs.StringVar(&cfg.A, "a", "", "first operand")
	fs.StringVar(&cfg.B, "b", "", "second operand")
	fs.IntVar(&cfg.Base, "base", cfg.Base, "output base (2, 8, 10 or 16)")
	fs.IntVar(&cfg.SelfTest, "selftest", 0, "run n randomized cross-check rounds")
	fs.Int64Var(&cfg.Seed, "seed", 0, "self-test workload seed (0 = time-based)")
	fs.StringVar(&cfg.ServeAddr, "serve", "", "serve the HTTP API on this address")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall operation timeout")
	fs.BoolVar(&cfg.Quiet, "q", false, "print only the bare result")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the bare result")
	fs.BoolVar(&cfg.Verbose, "v", false, "enable debug logging")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable styled output")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// validate checks cross-field constraints after flags and environment
// overrides are merged.
func validate(cfg AppConfig) error {
	switch cfg.Op {
	case OpMul, OpDiv, OpAdd, OpSub:
	default:
		return apperrors.NewConfigError("unknown operation %q (want mul, div, add or sub)", cfg.Op)
	}

	switch cfg.Base {
	case 2, 8, 10, 16:
	default:
		return apperrors.NewConfigError("unsupported base %d (want 2, 8, 10 or 16)", cfg.Base)
	}

	if cfg.SelfTest < 0 {
		return apperrors.NewConfigError("selftest count must be non-negative, got %d", cfg.SelfTest)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}

	// One-shot mode needs both operands; the other modes need none.
	if cfg.SelfTest == 0 && cfg.ServeAddr == "" {
		if cfg.A == "" || cfg.B == "" {
			return apperrors.NewConfigError("operands -a and -b are required (or use -selftest / -serve)")
		}
	}
	return nil
}
