package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML defaults file. Every field is optional; only the
// keys present override the current Config.
type fileConfig struct {
	DryRun     *bool   `yaml:"dry_run"`
	Force      *bool   `yaml:"force"`
	Recursive  *bool   `yaml:"recursive"`
	MatchFlags *bool   `yaml:"match_flags"`
	Verbose    *bool   `yaml:"verbose"`
	Color      *string `yaml:"color"`
	Log        *string `yaml:"log"`
}

// LoadFile overlays the YAML file at path onto cfg. Unknown keys are an
// error so typos do not silently fall back to defaults.
func LoadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("config file %s: %w", path, err)
	}
	fc.apply(cfg)
	return nil
}

func (fc *fileConfig) apply(cfg *Config) {
	setBool(&cfg.DryRun, fc.DryRun)
	setBool(&cfg.Force, fc.Force)
	setBool(&cfg.Recursive, fc.Recursive)
	setBool(&cfg.MatchFlags, fc.MatchFlags)
	setBool(&cfg.Verbose, fc.Verbose)
	if fc.Color != nil {
		cfg.ColorMode = ColorMode(*fc.Color)
	}
	if fc.Log != nil {
		cfg.LogFile = *fc.Log
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
