package watcher

import "context"

// Watcher defines the interface for download directory monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Event is a change to one file in the watched directory.
type Event struct {
	Path    string
	Removed bool
}

// EventHandler is a function that handles file events
type EventHandler func(ctx context.Context, ev Event) error
