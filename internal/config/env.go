// This file contains environment variable utilities for configuration
// override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "UI512_"

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may
// be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override. Each entry
// maps an env key (without the UI512_ prefix) to the CLI flag name(s) it
// corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable
// overrides.
var envOverrides = []envOverride{
	{"OP", []string{"op"}, func(c *AppConfig, v string) {
		c.Op = v
	}},
	{"A", []string{"a"}, func(c *AppConfig, v string) {
		c.A = v
	}},
	{"B", []string{"b"}, func(c *AppConfig, v string) {
		c.B = v
	}},
	{"BASE", []string{"base"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Base = parsed
		}
	}},
	{"SELFTEST", []string{"selftest"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.SelfTest = parsed
		}
	}},
	{"SEED", []string{"seed"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}},
	{"SERVE", []string{"serve"}, func(c *AppConfig, v string) {
		c.ServeAddr = v
	}},
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},
	{"QUIET", []string{"q", "quiet"}, func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
	{"VERBOSE", []string{"v", "verbose"}, func(c *AppConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
}

// parseBoolEnv parses a boolean environment variable value. Accepts "true",
// "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the
// configuration for any flags that were not explicitly set on the command
// line. This implements the priority: CLI flags > environment variables >
// defaults.
//
// Supported environment variables (all prefixed with UI512_):
//   - OP, A, B, BASE, SELFTEST, SEED, SERVE, TIMEOUT, QUIET, VERBOSE, NO_COLOR
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
