package watcher

import "context"

// Watcher feeds transcripts dropped into a folder to an EventHandler.
type Watcher interface {
	// Start blocks until ctx is cancelled or the underlying watch fails.
	// Handlers still running are awaited before it returns.
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one transcript file. Errors are logged by the
// watcher and do not stop it.
type EventHandler func(ctx context.Context, filePath string) error
