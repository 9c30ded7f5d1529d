// Package watch re-runs a callback whenever a watched file is written.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher observes a single file. The parent directory is watched so that
// editors replacing the file atomically are still noticed.
type Watcher struct {
	path    string
	logger  *zap.Logger
	watcher *fsnotify.Watcher
	wg      sync.WaitGroup
}

// New starts watching path. Call Close when done.
func New(path string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:    abs,
		logger:  logger,
		watcher: watcher,
	}, nil
}

// Start calls fn in a background goroutine for every write or create event
// on the watched file until ctx is cancelled or the watcher is closed.
// Errors from fn are logged and don't stop the loop.
func (w *Watcher) Start(ctx context.Context, fn func() error) {
	w.wg.Add(1)
	go w.loop(ctx, fn)
}

func (w *Watcher) loop(ctx context.Context, fn func() error) {
	defer w.wg.Done()

	name := filepath.Base(w.path)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != name {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			w.logger.Debug("file changed", zap.String("path", event.Name), zap.Stringer("op", event.Op))

			if err := fn(); err != nil {
				w.logger.Warn("reload failed", zap.String("path", w.path), zap.Error(err))
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			w.logger.Error("watcher error", zap.Error(err))

		case <-ctx.Done():
			return
		}
	}
}

// Close stops the watcher and waits for the loop to return.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	w.wg.Wait()

	return err
}
