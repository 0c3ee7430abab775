// Package config holds runtime configuration: defaults, an optional YAML
// defaults file, CLI flag parsing, and validation.
package config

import (
	"errors"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [LoadFile], then mutated by [ParseFlags] before
// being passed (by pointer) to packages that need it.
type Config struct {
	// Inputs are the positional arguments: files, directories, or (with
	// ShowTokens) arbitrary strings.
	Inputs []string

	// Edits.
	YearSet     string   // --year / -y
	YearAppend  []string // --Year / -Y, repeatable.
	LabelSet    string   // --label / -l
	LabelAppend []string // --Label / -L, repeatable.
	Date        string   // --date / -d, YYYY-MM-DD.

	// Behavior flags.
	DryRun     bool
	Force      bool // Overwrite existing targets.
	Recursive  bool // Descend into directory arguments.
	MatchFlags bool // Classify literal flag spellings as Arg tokens.
	ShowTokens bool // Print token tables instead of renaming.

	// Display and logging.
	Verbose    bool
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	ConfigFile string    // Optional YAML defaults file.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [LoadFile] and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		DryRun:     false,
		Force:      false,
		Recursive:  false,
		MatchFlags: false,
		ShowTokens: false,
		Verbose:    false,
		ColorMode:  ColorAuto,
	}
}

// HasEdits reports whether any edit flag was given.
func (c *Config) HasEdits() bool {
	return c.YearSet != "" || len(c.YearAppend) > 0 ||
		c.LabelSet != "" || len(c.LabelAppend) > 0 ||
		c.Date != ""
}

// Validate checks enum fields, and that there is at least one input and
// something to do with it. Edit values are checked by the naming package
// once per run.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	for _, in := range c.Inputs {
		if strings.TrimSpace(in) == "" {
			return errors.New("inputs must not be empty")
		}
	}
	if len(c.Inputs) == 0 {
		return errors.New("need at least one input")
	}
	if !c.ShowTokens && !c.HasEdits() {
		return errors.New("nothing to do (use --year, --label or --date, or --tokens to inspect)")
	}
	return nil
}
