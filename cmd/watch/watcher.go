package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounceInterval = 300 * time.Millisecond

// rebuilder serializes rebuilds triggered by the debounce timer. Once
// stopped, pending timer callbacks do nothing.
type rebuilder struct {
	mu      sync.Mutex
	stopped bool
	rebuild func()
}

func (r *rebuilder) run() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	r.rebuild()
}

// stop waits for an in-flight rebuild and prevents further ones.
func (r *rebuilder) stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
}

// watchAndRebuild calls rebuild once events stop arriving for debounce.
// Only events for paths accepted by relevant count. It returns when ctx is
// done.
func watchAndRebuild(
	ctx context.Context,
	root string,
	skipDirs map[string]bool,
	debounce time.Duration,
	relevant func(path string) bool,
	rebuild func(),
	errOut io.Writer,
) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchDirsWithAdder(root, skipDirs, watcher.Add); err != nil {
		return fmt.Errorf("failed to watch directories: %w", err)
	}

	r := &rebuilder{rebuild: rebuild}
	defer r.stop()
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) {
				addIfDirectory(root, skipDirs, watcher.Add, event.Name)
			}

			if !isRelevantChange(event, relevant) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounce, r.run)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(errOut, "watcher error: %v\n", err)
		}
	}
}

func isRelevantChange(event fsnotify.Event, relevant func(path string) bool) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return relevant(event.Name)
}

// addWatchDirsWithAdder registers root and every directory below it, except
// skipped ones. Directories that vanish during the walk are ignored.
func addWatchDirsWithAdder(root string, skipDirs map[string]bool, add func(path string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path != root {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && skipDirs[d.Name()] {
			return filepath.SkipDir
		}
		if err := add(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipDir
			}
			return err
		}
		return nil
	})
}

func addIfDirectory(root string, skipDirs map[string]bool, add func(path string) error, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	if path != root && skipDirs[filepath.Base(path)] {
		return
	}
	_ = addWatchDirsWithAdder(path, skipDirs, add)
}
