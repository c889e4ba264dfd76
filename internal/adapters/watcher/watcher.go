package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"sync"

	"github.com/bytes00000111/nativelink/internal/core/ports"
	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher watches a fixed set of files using fsnotify. The parent directories
// are registered rather than the files themselves, because editors typically
// replace files via rename, which would silently drop a per-file watch.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer

	watched map[string]bool
	events  chan ports.WatchEvent
	batches chan []string
	done    chan struct{}

	mu      sync.Mutex
	lastOps map[string]ports.WatchOp
}

// NewWatcher creates a new file watcher.
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create fsnotify watcher")
	}
	w := &Watcher{
		fsWatcher: fsWatcher,
		watched:   make(map[string]bool),
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
		batches:   make(chan []string, 1),
		done:      make(chan struct{}),
		lastOps:   make(map[string]ports.WatchOp),
	}
	w.debouncer = NewDebouncer(DefaultDebounceWindow, w.deliver)
	return w, nil
}

// Start begins watching the given file paths.
func (w *Watcher) Start(ctx context.Context, paths []string) error {
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return zerr.Wrap(err, "failed to resolve watch path")
		}
		w.watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to watch directory"), "dir", dir)
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of debounced file system events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// deliver is the debouncer callback. It hands the batch to processEvents,
// which is the only goroutine writing to the events channel.
func (w *Watcher) deliver(paths []string) {
	select {
	case w.batches <- paths:
	case <-w.done:
	}
}

// processEvents filters raw fsnotify events down to the watched files,
// debounces them and forwards batches as ports.WatchEvent values.
func (w *Watcher) processEvents(ctx context.Context) {
	defer func() {
		close(w.done)
		close(w.events)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.watched[event.Name] {
				continue
			}
			op, ok := convertOp(event.Op)
			if !ok {
				continue
			}
			w.mu.Lock()
			w.lastOps[event.Name] = op
			w.mu.Unlock()
			w.debouncer.Add(event.Name)

		case paths := <-w.batches:
			for _, path := range paths {
				w.mu.Lock()
				op, ok := w.lastOps[path]
				delete(w.lastOps, path)
				w.mu.Unlock()
				if !ok {
					continue
				}
				select {
				case w.events <- ports.WatchEvent{Path: path, Operation: op}:
				case <-ctx.Done():
					return
				}
			}

		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// convertOp maps an fsnotify operation to a ports.WatchOp.
func convertOp(op fsnotify.Op) (ports.WatchOp, bool) {
	switch {
	case op.Has(fsnotify.Write):
		return ports.OpWrite, true
	case op.Has(fsnotify.Create):
		return ports.OpCreate, true
	case op.Has(fsnotify.Remove):
		return ports.OpRemove, true
	case op.Has(fsnotify.Rename):
		return ports.OpRename, true
	default:
		return 0, false
	}
}
