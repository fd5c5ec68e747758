package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
)

type implWatcher struct {
	dir     string
	handler EventHandler
	logger  logger.Logger
	watcher *fsnotify.Watcher
}

// Start forwards changes in the download directory to the handler until
// ctx is cancelled or the watcher is stopped.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Download watcher started. Monitoring: %s", w.dir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Download watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			ev, ok := translate(event)
			if !ok {
				continue
			}
			if err := w.handler(ctx, ev); err != nil {
				w.logger.Error(ctx, "Failed to handle %s: %v", ev.Path, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// translate maps an fsnotify event onto an Event. Hidden files are ignored.
func translate(event fsnotify.Event) (Event, bool) {
	if isHidden(event.Name) {
		return Event{}, false
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return Event{Path: event.Name, Removed: true}, true
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write), event.Has(fsnotify.Chmod):
		return Event{Path: event.Name}, true
	}
	return Event{}, false
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
