// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation.
package config

import (
	"os"

	"github.com/pkg/errors"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Data source. Empty means the built-in data set.
	DataDir string

	// Behavior.
	Strict       bool     // Fail on invalid rule data instead of running with no rules.
	ShowPhonemes bool     // Default: true. Cleared by --no-phonemes.
	ListRules    bool     // Print the rule catalog and exit.
	CheckOnly    bool     // Verify documented rule examples and exit.
	Words        []string // One-shot lookups; empty means interactive mode.

	// Display and logging.
	Verbose      bool
	ColorMode    ColorMode // Default: "auto".
	LogFile      string    // Optional log file path.
	LogMaxSizeMB int       // Default: 10. Rotation threshold for LogFile.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		ShowPhonemes: true,
		ColorMode:    ColorAuto,
		LogMaxSizeMB: 10,
	}
}

// Interactive reports whether the session loop should run.
func (c *Config) Interactive() bool {
	return !c.CheckOnly && !c.ListRules && len(c.Words) == 0
}

// Validate checks enum fields and limits, and that DataDir, when set, is an
// existing directory.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.LogMaxSizeMB <= 0 {
		return errors.Errorf("log max size must be positive (got %d)", c.LogMaxSizeMB)
	}

	if c.DataDir == "" {
		return nil
	}
	fi, err := os.Stat(c.DataDir)
	if err != nil {
		return errors.Wrap(err, "data directory")
	}
	if !fi.IsDir() {
		return errors.Errorf("data directory %s is not a directory", c.DataDir)
	}
	return nil
}
