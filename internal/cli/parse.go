package cli

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gobwas/glob"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/docsight/docsight/internal/javadoc"
)

var (
	parseNoCache bool
	parseQuiet   bool
)

// parseCmd extracts documentation from files or directories and prints JSON.
var parseCmd = &cobra.Command{
	Use:   "parse <path>...",
	Short: "Extract Javadoc documentation from Java files",
	Long: `Parse one or more Java files or directories and print the extracted
documentation model as JSON. Directories are walked recursively, filtered by
the configured include/exclude globs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseNoCache, "no-cache", false, "skip the snapshot store and re-parse everything")
	parseCmd.Flags().BoolVarP(&parseQuiet, "quiet", "q", false, "suppress the progress bar")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	service, cleanup, err := buildService(cfg, !parseNoCache)
	if err != nil {
		return err
	}
	defer cleanup()

	files, err := collectFiles(args, cfg.Paths.Include, cfg.Paths.Exclude)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no Java files matched")
	}

	var bar *progressbar.ProgressBar
	if !parseQuiet && len(files) > 1 {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription("Parsing files"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("files/s"),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
			progressbar.OptionSetWriter(os.Stderr),
		)
	}

	docs := make([]*javadoc.FileDoc, 0, len(files))
	for _, file := range files {
		doc, err := service.FileDocs(cmd.Context(), file)
		if err != nil {
			log.Printf("Warning: failed to parse %s: %v", file, err)
		} else {
			docs = append(docs, doc)
		}
		if bar != nil {
			bar.Add(1)
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if len(docs) == 1 {
		return encoder.Encode(docs[0])
	}
	return encoder.Encode(docs)
}

// collectFiles expands the argument list: files pass through the include
// filter, directories are walked recursively.
func collectFiles(args []string, includePattern, excludePattern string) ([]string, error) {
	include, err := glob.Compile(includePattern, '/')
	if err != nil {
		return nil, fmt.Errorf("invalid include glob: %w", err)
	}
	var exclude glob.Glob
	if excludePattern != "" {
		exclude, err = glob.Compile(excludePattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude glob: %w", err)
		}
	}

	matches := func(path string) bool {
		slashed := filepath.ToSlash(path)
		if exclude != nil && exclude.Match(slashed) {
			return false
		}
		return include.Match(slashed)
	}

	var files []string
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			// Explicit file arguments bypass the include filter.
			files = append(files, abs)
			continue
		}

		err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				log.Printf("Warning: error accessing %s: %v", path, err)
				return nil
			}
			if !d.IsDir() && matches(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
