package config

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Validate checks a configuration for values the runtime cannot work with.
func Validate(cfg *Config) error {
	if cfg.Parser.DebounceMs < 0 {
		return fmt.Errorf("parser.debounce_ms must not be negative, got %d", cfg.Parser.DebounceMs)
	}
	if cfg.Parser.CacheCapacity <= 0 {
		return fmt.Errorf("parser.cache_capacity must be positive, got %d", cfg.Parser.CacheCapacity)
	}

	if cfg.Paths.Include == "" {
		return fmt.Errorf("paths.include must not be empty")
	}
	if _, err := glob.Compile(cfg.Paths.Include, '/'); err != nil {
		return fmt.Errorf("paths.include is not a valid glob: %w", err)
	}
	if cfg.Paths.Exclude != "" {
		if _, err := glob.Compile(cfg.Paths.Exclude, '/'); err != nil {
			return fmt.Errorf("paths.exclude is not a valid glob: %w", err)
		}
	}

	if cfg.Storage.SnapshotPath == "" {
		return fmt.Errorf("storage.snapshot_path must not be empty")
	}

	return nil
}
