package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/docsight/docsight/internal/config"
	"github.com/docsight/docsight/internal/docindex"
	"github.com/docsight/docsight/internal/git"
	"github.com/docsight/docsight/internal/javadoc"
	"github.com/docsight/docsight/internal/outline"
	"github.com/docsight/docsight/internal/store"
)

// loadConfig resolves the effective configuration, honoring --config-dir.
func loadConfig() (*config.Config, error) {
	if cfgDir != "" {
		return config.LoadConfigFromDir(cfgDir)
	}
	return config.LoadConfig()
}

// buildService assembles the documentation service from configuration. The
// returned cleanup closes the outline cache and snapshot store.
func buildService(cfg *config.Config, persist bool) (*docindex.Service, func(), error) {
	provider, err := outline.NewCachingProvider(outline.NewJavaProvider(), cfg.Parser.CacheCapacity)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build outline provider: %w", err)
	}

	var blame docindex.AuthorshipFunc
	if cfg.Blame.Enabled {
		blame = blameFunc(git.NewOperations())
	}

	var snapshots *store.Store
	if persist {
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.SnapshotPath), 0o755); err != nil {
			provider.Close()
			return nil, nil, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		snapshots, err = store.Open(cfg.Storage.SnapshotPath)
		if err != nil {
			provider.Close()
			return nil, nil, err
		}
	}

	cleanup := func() {
		provider.Close()
		if snapshots != nil {
			if err := snapshots.Close(); err != nil {
				log.Printf("Warning: failed to close snapshot store: %v", err)
			}
		}
	}

	return docindex.NewService(provider, blame, snapshots), cleanup, nil
}

// blameFunc adapts git operations to the authorship contract: any failure
// degrades to nil, never an error.
func blameFunc(ops git.Operations) docindex.AuthorshipFunc {
	return func(ctx context.Context, path string) *javadoc.Authorship {
		summary := ops.FileSummary(path)
		if summary == nil {
			return nil
		}
		return &javadoc.Authorship{
			Author:         summary.Author,
			LastModifier:   summary.LastModifier,
			LastModifyDate: summary.LastModifyDate,
		}
	}
}
