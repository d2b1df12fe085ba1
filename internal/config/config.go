// Package config provides the analyzer configuration: classification
// thresholds, the known-operator list, and the extraction rule set.
// Configuration is loaded once at startup and treated as immutable.
package config

import (
	"fmt"
	"os"

	"netshot/internal/extract"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable the pipeline consumes.
type Config struct {
	// BrightnessThreshold is the minimum mean-over-baseline delta for an
	// active classification.
	BrightnessThreshold float64 `yaml:"brightness_threshold"`

	// ContrastThreshold is the minimum std-dev-over-group-minimum delta.
	ContrastThreshold float64 `yaml:"contrast_threshold"`

	// Languages is the "+"-separated Tesseract language list.
	Languages string `yaml:"languages"`

	// KnownOperators are the candidate labels scanned for in OCR text.
	// Order matters only as a fallback; output order follows first
	// appearance in the text.
	KnownOperators []string `yaml:"known_operators"`

	// Rules is the extraction rule set. When a config file provides rules
	// they replace the default set entirely.
	Rules []extract.RuleSpec `yaml:"rules"`
}

// Default returns the built-in configuration: thresholds 15/30, the four
// Chinese carriers, and the default regex rule set.
func Default() *Config {
	return &Config{
		BrightnessThreshold: 15,
		ContrastThreshold:   30,
		Languages:           "chi_sim+eng",
		KnownOperators:      []string{"中国移动", "中国联通", "中国电信", "中国广电"},
		Rules:               extract.DefaultSpecs(),
	}
}

// Load reads a YAML config file over the defaults. Keys absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
