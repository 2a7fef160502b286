// Package watcher monitors directories for Java source changes and delivers
// them to a callback after a debounce interval, so a burst of editor saves
// triggers one re-parse.
package watcher

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	"github.com/docsight/docsight/internal/docindex"
)

// FileWatcher watches directories for source file changes.
type FileWatcher interface {
	// Start begins watching; changed file paths are delivered to callback
	// after the debounce interval. Must be called at most once.
	Start(ctx context.Context, callback func(files []string)) error

	// Stop stops the watcher and waits for its goroutine. Idempotent.
	Stop() error
}

// javaWatcher implements FileWatcher for .java files.
type javaWatcher struct {
	watcher *fsnotify.Watcher
	dirs    []string
	include glob.Glob
	exclude glob.Glob

	debounce *docindex.Debouncer[struct{}]

	accumulated   map[string]bool
	accumulatedMu sync.Mutex

	callback func(files []string)
	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
	doneCh   chan struct{}
}

// Options configures a watcher. Include and Exclude are glob patterns
// matched against the full path; an empty Include means "**/*.java".
type Options struct {
	Include  string
	Exclude  string
	Debounce time.Duration
}

// NewFileWatcher creates a debounced watcher over the given directories.
func NewFileWatcher(dirs []string, opts Options) (FileWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if opts.Include == "" {
		opts.Include = "**/*.java"
	}
	include, err := glob.Compile(opts.Include, '/')
	if err != nil {
		fsw.Close()
		return nil, err
	}

	var exclude glob.Glob
	if opts.Exclude != "" {
		exclude, err = glob.Compile(opts.Exclude, '/')
		if err != nil {
			fsw.Close()
			return nil, err
		}
	}

	if opts.Debounce <= 0 {
		opts.Debounce = 500 * time.Millisecond
	}

	jw := &javaWatcher{
		watcher:     fsw,
		dirs:        dirs,
		include:     include,
		exclude:     exclude,
		accumulated: make(map[string]bool),
		doneCh:      make(chan struct{}),
	}
	jw.debounce = docindex.NewDebouncer(opts.Debounce, func(struct{}) {
		jw.flush()
	})

	for _, dir := range dirs {
		if err := jw.addDirectoriesRecursively(dir); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	return jw, nil
}

func (jw *javaWatcher) Start(ctx context.Context, callback func(files []string)) error {
	if callback == nil {
		return nil
	}

	jw.callback = callback
	jw.ctx, jw.cancel = context.WithCancel(ctx)

	go jw.watch()
	return nil
}

func (jw *javaWatcher) Stop() error {
	var err error
	jw.stopOnce.Do(func() {
		jw.debounce.Cancel()
		if jw.cancel != nil {
			jw.cancel()
			<-jw.doneCh
		} else {
			close(jw.doneCh)
		}
		err = jw.watcher.Close()
	})
	return err
}

// watch is the main event loop.
func (jw *javaWatcher) watch() {
	defer close(jw.doneCh)

	for {
		select {
		case <-jw.ctx.Done():
			return

		case event, ok := <-jw.watcher.Events:
			if !ok {
				return
			}

			// New directories join the watch set.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := jw.addDirectoriesRecursively(event.Name); err != nil {
						log.Printf("Warning: failed to watch new directory %s: %v", event.Name, err)
					}
				}
			}

			if !jw.shouldProcessEvent(event) {
				continue
			}

			jw.accumulatedMu.Lock()
			jw.accumulated[event.Name] = true
			jw.accumulatedMu.Unlock()

			jw.debounce.Call(struct{}{})

		case err, ok := <-jw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}

// flush delivers the accumulated paths after the quiet interval.
func (jw *javaWatcher) flush() {
	jw.accumulatedMu.Lock()
	if len(jw.accumulated) == 0 {
		jw.accumulatedMu.Unlock()
		return
	}
	files := make([]string, 0, len(jw.accumulated))
	for file := range jw.accumulated {
		files = append(files, file)
	}
	jw.accumulated = make(map[string]bool)
	jw.accumulatedMu.Unlock()

	jw.callback(files)
}

// shouldProcessEvent filters events to matching source files.
func (jw *javaWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
		return false
	}

	path := filepath.ToSlash(event.Name)
	if jw.exclude != nil && jw.exclude.Match(path) {
		return false
	}
	return jw.include.Match(path)
}

// addDirectoriesRecursively adds all directories in the tree to the watcher.
func (jw *javaWatcher) addDirectoriesRecursively(rootPath string) error {
	return filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == rootPath {
				return err
			}
			log.Printf("Warning: error accessing %s: %v", path, err)
			return nil
		}

		if !info.IsDir() {
			return nil
		}

		if err := jw.watcher.Add(path); err != nil {
			log.Printf("Warning: failed to watch directory %s: %v", path, err)
			return nil
		}

		return nil
	})
}
