// Package watcher re-runs rotation analysis whenever a deck list file
// changes on disk.
package watcher

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces editor write bursts into one callback.
const debounceDelay = 250 * time.Millisecond

// DeckWatcher watches a deck list file and invokes a callback on change.
type DeckWatcher struct {
	path     string
	onChange func(path string) error
}

// New creates a watcher for path. onChange is called once at start and
// again after every write to the file.
func New(path string, onChange func(path string) error) *DeckWatcher {
	return &DeckWatcher{path: path, onChange: onChange}
}

// Run watches until the context is canceled. Callback errors are logged,
// not fatal: a half-saved file should not stop the watch.
func (w *DeckWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(w.path); err != nil {
		return fmt.Errorf("watch %s: %w", w.path, err)
	}

	if err := w.onChange(w.path); err != nil {
		log.Printf("watch %s: %v", w.path, err)
	}

	var pending *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(debounceDelay, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			if err := w.onChange(w.path); err != nil {
				log.Printf("watch %s: %v", w.path, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("file watcher error: %v", err)
		}
	}
}
