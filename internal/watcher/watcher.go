// Package watcher rebuilds the script library when the source tree changes.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	oerrors "github.com/scriptsync/cli/internal/errors"
	"github.com/scriptsync/cli/internal/output"
)

// debounceDelay batches bursts of file events into a single rebuild.
const debounceDelay = 500 * time.Millisecond

// Watcher watches a source tree recursively and invokes a callback after
// changes settle.
type Watcher struct {
	root     string
	excluded func(string) bool
	onChange func()

	fsw *fsnotify.Watcher

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a Watcher over root. excluded receives paths relative to root
// with slashes; onChange runs after the debounce window closes.
func New(root string, excluded func(string) bool, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	return &Watcher{
		root:     root,
		excluded: excluded,
		onChange: onChange,
		fsw:      fsw,
	}, nil
}

// Watch blocks, dispatching rebuilds until the context is cancelled or the
// watcher fails.
func (w *Watcher) Watch(ctx context.Context) error {
	if err := w.addRecursive(w.root); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if w.skip(event.Name) {
				continue
			}
			output.Debug("file event", "op", event.Op.String(), "path", event.Name)

			// New directories need their own watch to catch files
			// created inside them later.
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addRecursive(event.Name); err != nil {
						output.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
				}
			}

			w.debounce()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			output.Error("watcher error", "error", err)
		}
	}
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fsw.Close()
}

// debounce restarts the rebuild timer.
func (w *Watcher) debounce() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(debounceDelay, func() {
		output.Debug("changes settled, rebuilding")
		w.onChange()
	})
}

// skip reports whether an event path is excluded from watching.
func (w *Watcher) skip(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil || rel == "." {
		return false
	}
	return w.excluded(filepath.ToSlash(rel))
}

// addRecursive registers root and every non-excluded directory below it.
func (w *Watcher) addRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return oerrors.WrapIO(err, fmt.Sprintf("scanning %s", path))
		}
		if !info.IsDir() {
			return nil
		}
		if w.skip(path) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}
