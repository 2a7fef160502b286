package config

import (
	"os"
	"path/filepath"
)

// Config represents the complete docsight configuration.
// It can be loaded from .docsight/config.yml with environment variable
// overrides.
type Config struct {
	Parser  ParserConfig  `yaml:"parser" mapstructure:"parser"`
	Paths   PathsConfig   `yaml:"paths" mapstructure:"paths"`
	Blame   BlameConfig   `yaml:"blame" mapstructure:"blame"`
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`
}

// ParserConfig configures the documentation parser and cursor pipeline.
type ParserConfig struct {
	DebounceMs    int `yaml:"debounce_ms" mapstructure:"debounce_ms"`       // quiet interval for cursor and watch events
	CacheCapacity int `yaml:"cache_capacity" mapstructure:"cache_capacity"` // max cached document outlines
}

// PathsConfig defines which files to parse and which to skip.
type PathsConfig struct {
	Include string `yaml:"include" mapstructure:"include"` // glob for source files
	Exclude string `yaml:"exclude" mapstructure:"exclude"` // glob for paths to skip
}

// BlameConfig controls the git authorship lookup.
type BlameConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// StorageConfig defines where parse snapshots are persisted.
type StorageConfig struct {
	SnapshotPath string `yaml:"snapshot_path" mapstructure:"snapshot_path"` // Override default ~/.docsight/docs.db
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Parser: ParserConfig{
			DebounceMs:    300,
			CacheCapacity: 1024,
		},
		Paths: PathsConfig{
			Include: "**/*.java",
			Exclude: "**/target/**",
		},
		Blame: BlameConfig{
			Enabled: true,
		},
		Storage: StorageConfig{
			SnapshotPath: filepath.Join(home, ".docsight", "docs.db"),
		},
	}
}
