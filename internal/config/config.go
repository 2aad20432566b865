// Package config loads the publint.yaml project configuration and
// materializes the per-engine configs from it. A missing file is not
// an error; everything falls back to the engine defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pthm/publint/internal/quality"
	"github.com/pthm/publint/internal/risk"
	"github.com/pthm/publint/internal/validate"
)

// DefaultFiles are the filenames searched, in order, when no explicit
// config path is given.
var DefaultFiles = []string{"publint.yaml", "publint.yml", ".publint.yaml"}

// ValidationSection wraps the validator config so the freshness window
// can be written in days rather than a raw duration.
type ValidationSection struct {
	validate.Config   `yaml:",inline"`
	MaxContentAgeDays int `yaml:"maxContentAgeDays"`
}

// File is the decoded project configuration.
type File struct {
	Quality    quality.Config    `yaml:"quality"`
	Risk       risk.Config       `yaml:"risk"`
	Validation ValidationSection `yaml:"validation"`

	// Path records where the config was loaded from, "" for defaults.
	Path string `yaml:"-"`
}

// Default returns an empty configuration; every engine applies its own
// defaults on top.
func Default() *File {
	return &File{}
}

// Load reads the configuration at path. An empty path searches
// DefaultFiles in the current directory and falls back to Default when
// none exists; an explicit path that cannot be read is an error.
func Load(path string) (*File, error) {
	if path == "" {
		for _, name := range DefaultFiles {
			if _, err := os.Stat(name); err == nil {
				path = name
				break
			}
		}
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	f.Path = path

	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}

func (f *File) validate() error {
	if err := f.Quality.Validate(); err != nil {
		return err
	}
	if err := f.Risk.Validate(); err != nil {
		return err
	}
	return f.Validation.Config.Validate()
}

// QualityConfig returns the quality engine configuration.
func (f *File) QualityConfig() quality.Config {
	return f.Quality
}

// RiskConfig returns the risk engine configuration. Banned phrases
// configured only on the quality section carry over.
func (f *File) RiskConfig() risk.Config {
	cfg := f.Risk
	if len(cfg.BannedPhrases) == 0 {
		cfg.BannedPhrases = f.Quality.BannedPhrases
	}
	return cfg
}

// ValidationConfig returns the validator configuration with the
// freshness window materialized.
func (f *File) ValidationConfig() validate.Config {
	cfg := f.Validation.Config
	if cfg.MaxContentAge == 0 && f.Validation.MaxContentAgeDays > 0 {
		cfg.MaxContentAge = time.Duration(f.Validation.MaxContentAgeDays) * 24 * time.Hour
	}
	if len(cfg.BannedPhrases) == 0 {
		cfg.BannedPhrases = f.Quality.BannedPhrases
	}
	if len(cfg.BlockedDomains) == 0 {
		cfg.BlockedDomains = f.Risk.BlockedDomains
	}
	if cfg.MinWordCount == 0 {
		cfg.MinWordCount = f.Quality.MinWordCount
	}
	if cfg.MaxWordCount == 0 {
		cfg.MaxWordCount = f.Quality.MaxWordCount
	}
	return cfg
}
