// Package watch monitors a SQL source tree and reports changed files in
// debounced batches.
package watch

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/selquery/selq/internal/errors"
	"github.com/selquery/selq/internal/logger"
)

// DefaultDebounce is the default event batching interval.
const DefaultDebounce = 200 * time.Millisecond

// Watcher monitors a directory tree for .sql file changes. Events are
// accumulated and delivered as one batch per debounce interval, so a save
// that touches several files triggers a single callback.
type Watcher struct {
	mu sync.RWMutex

	root string

	fsWatcher *fsnotify.Watcher

	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	// Debouncing: collect events and process in batches
	debounce      time.Duration
	pendingEvents map[string]fsnotify.Op
	eventTimer    *time.Timer

	// Callbacks
	onChange func(paths []string) // called with each batch of changed files
	onError  func(err error)      // called on watch errors
}

// Option configures the watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce interval for batching file events.
// Non-positive values keep the default.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithOnChange sets the callback invoked with each batch of changed files.
func WithOnChange(fn func(paths []string)) Option {
	return func(w *Watcher) {
		w.onChange = fn
	}
}

// WithOnError sets a callback for watch errors.
func WithOnError(fn func(err error)) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// NewWatcher creates a watcher rooted at the given directory.
func NewWatcher(root string, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.NewWatchError(root, err.Error())
	}

	w := &Watcher{
		root:          root,
		fsWatcher:     fsw,
		stopCh:        make(chan struct{}),
		doneCh:        make(chan struct{}),
		debounce:      DefaultDebounce,
		pendingEvents: make(map[string]fsnotify.Op),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Start begins watching for file changes.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.addWatchesRecursive(w.root); err != nil {
		// Roll back so a later Stop does not wait for an event loop
		// that never started
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return errors.NewWatchError(w.root, err.Error())
	}

	logger.Debug("watching %s", w.root)

	go w.processEvents()

	return nil
}

// Stop stops the watcher and waits for the event processor to finish.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	return w.fsWatcher.Close()
}

// IsRunning returns whether the watcher is currently running.
func (w *Watcher) IsRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// addWatchesRecursive adds watches for a directory and all subdirectories,
// skipping hidden directories.
func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		if path != root && strings.HasPrefix(info.Name(), ".") {
			return filepath.SkipDir
		}

		if err := w.fsWatcher.Add(path); err != nil {
			logger.Warn("failed to watch directory %s: %v", path, err)
			// Continue watching other directories
			return nil
		}

		logger.Debug("watching directory %s", path)

		return nil
	})
}

// processEvents handles fsnotify events until Stop is called.
func (w *Watcher) processEvents() {
	defer close(w.doneCh)

	for {
		select {
		case <-w.stopCh:
			w.mu.Lock()
			if w.eventTimer != nil {
				w.eventTimer.Stop()
			}
			w.mu.Unlock()
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logger.Error("watch error: %v", err)
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

// handleEvent processes a single fsnotify event with debouncing.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !strings.HasSuffix(strings.ToLower(event.Name), ".sql") {
		// New directories must be watched as they appear
		if event.Has(fsnotify.Create) {
			if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
				if !strings.HasPrefix(info.Name(), ".") {
					_ = w.fsWatcher.Add(event.Name)
					logger.Debug("added watch for new directory %s", event.Name)
				}
			}
		}
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	// Accumulate events (last operation wins for same file)
	w.pendingEvents[event.Name] = event.Op

	// Reset/start debounce timer
	if w.eventTimer != nil {
		w.eventTimer.Stop()
	}
	w.eventTimer = time.AfterFunc(w.debounce, w.processPendingEvents)
}

// processPendingEvents delivers all accumulated events as one batch.
func (w *Watcher) processPendingEvents() {
	w.mu.Lock()
	events := w.pendingEvents
	w.pendingEvents = make(map[string]fsnotify.Op)
	w.mu.Unlock()

	if len(events) == 0 {
		return
	}

	paths := make([]string, 0, len(events))
	for path := range events {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	if w.onChange != nil {
		w.onChange(paths)
	}
}
