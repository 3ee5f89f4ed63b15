// Package watcher provides a debounced file watcher for template files.
// Editors save in bursts (write, chmod, rename dances included), so raw
// fsnotify events are grouped within a debounce window and delivered as
// one change notification.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/inkpress/typeset/internal/logging"
)

// ChangeHandler is invoked once per debounced change burst.
type ChangeHandler func(path string)

// TemplateWatcher watches one template file and fires a handler after
// changes settle.
type TemplateWatcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	log      logging.Logger

	mu       sync.Mutex
	handlers []ChangeHandler
	timer    *time.Timer
}

// New creates a watcher for the given template file. The containing
// directory is watched rather than the file itself so atomic-save
// editors (write to temp, rename over) keep working.
func New(path string, debounce time.Duration, log logging.Logger) (*TemplateWatcher, error) {
	if log == nil {
		log = logging.Nop()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	return &TemplateWatcher{
		path:     abs,
		debounce: debounce,
		watcher:  fsw,
		log:      log.WithComponent("watcher"),
	}, nil
}

// OnChange registers a handler. Handlers run on the watcher goroutine;
// slow work should be dispatched by the handler itself.
func (w *TemplateWatcher) OnChange(handler ChangeHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Start runs the watch loop until the context is cancelled.
func (w *TemplateWatcher) Start(ctx context.Context) {
	go w.loop(ctx)
}

// Stop closes the underlying watcher.
func (w *TemplateWatcher) Stop() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}

func (w *TemplateWatcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "error", err.Error())
		}
	}
}

func (w *TemplateWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	// Restart the debounce window on every event in a burst.
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *TemplateWatcher) fire() {
	w.mu.Lock()
	handlers := make([]ChangeHandler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	w.log.Debug("template changed", "path", w.path)
	for _, h := range handlers {
		h(w.path)
	}
}
