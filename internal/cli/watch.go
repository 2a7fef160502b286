package cli

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/docsight/docsight/internal/watcher"
)

// watchCmd re-parses Java files as they change on disk.
var watchCmd = &cobra.Command{
	Use:   "watch <dir>...",
	Short: "Watch directories and re-parse changed Java files",
	Long: `Watch one or more directories for Java source changes. Bursts of saves
are coalesced by the configured debounce interval; each changed file is then
re-parsed and its snapshot refreshed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	service, cleanup, err := buildService(cfg, true)
	if err != nil {
		return err
	}
	defer cleanup()

	fw, err := watcher.NewFileWatcher(args, watcher.Options{
		Include:  cfg.Paths.Include,
		Exclude:  cfg.Paths.Exclude,
		Debounce: time.Duration(cfg.Parser.DebounceMs) * time.Millisecond,
	})
	if err != nil {
		return err
	}
	defer fw.Stop()

	ctx := cmd.Context()
	err = fw.Start(ctx, func(files []string) {
		for _, file := range files {
			if _, statErr := os.Stat(file); statErr != nil {
				// Deleted files leave the index.
				service.Purge(file)
				log.Printf("Purged %s", file)
				continue
			}
			doc, parseErr := service.FileDocs(ctx, file)
			if parseErr != nil {
				log.Printf("Warning: failed to re-parse %s: %v", file, parseErr)
				continue
			}
			log.Printf("Re-parsed %s: %d methods, %d fields, %d enum constants",
				file, len(doc.Methods), len(doc.Fields), len(doc.EnumConstants))
		}
	})
	if err != nil {
		return err
	}

	log.Printf("Watching %v for changes (debounce %dms)...", args, cfg.Parser.DebounceMs)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sigCh:
		log.Printf("Received shutdown signal, stopping...")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
