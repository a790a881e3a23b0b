// Package watch re-runs an action whenever a single file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// DefaultDebounce is the quiet period after the last event before OnChange runs.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors one file and invokes OnChange after changes settle.
type Watcher struct {
	path     string
	onChange func(context.Context) error
	debounce time.Duration
	logger   *slog.Logger

	watcher   *fsnotify.Watcher
	trigger   chan struct{}
	ready     chan struct{}
	readyOnce sync.Once
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce interval.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// New creates a watcher for path. onChange runs on the watcher's goroutine;
// its errors are logged and do not stop watching.
func New(path string, onChange func(context.Context) error, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve watch path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		path:     absPath,
		onChange: onChange,
		debounce: DefaultDebounce,
		logger:   slog.Default(),
		watcher:  fsw,
		trigger:  make(chan struct{}, 1),
		ready:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run watches until ctx is done. The directory of the file is watched rather
// than the file itself so editors that replace files on save are handled.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			w.logger.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to watch directory").
			WithContext("path", dir).
			Build()
	}
	w.logger.Info("Watching for changes", logfields.Path(w.path))
	w.readyOnce.Do(func() { close(w.ready) })

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		w.reloadLoop(ctx)
	}()

	w.watchLoop(ctx)
	<-loopDone
	return nil
}

// Ready is closed once the watch is registered. Changes made before that may be missed.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

func (w *Watcher) watchLoop(ctx context.Context) {
	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				w.logger.Debug("Change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
				w.notify()
			case event.Has(fsnotify.Remove):
				w.logger.Warn("Watched file removed", logfields.Path(event.Name))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) notify() {
	select {
	case w.trigger <- struct{}{}:
	default:
		// already pending
	}
}

func (w *Watcher) reloadLoop(ctx context.Context) {
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.trigger:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
		case <-timer.C:
			w.run(ctx)
		}
	}
}

func (w *Watcher) run(ctx context.Context) {
	start := time.Now()
	if err := w.onChange(ctx); err != nil {
		w.logger.Error("Change handler failed", logfields.Path(w.path), logfields.Error(err))
		return
	}
	w.logger.Info("Change handled", logfields.Path(w.path),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
}
