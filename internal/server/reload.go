package server

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 500 * time.Millisecond

// Reloadable is anything whose configuration can be re-read on demand.
type Reloadable interface {
	Reload() error
}

// Reloader watches a config file for changes and triggers hot-reload.
type Reloader struct {
	watcher *fsnotify.Watcher
	target  Reloadable
	path    string
	logger  *slog.Logger
}

// NewReloader creates a file watcher for the config file at path.
// The file's directory is watched rather than the file itself, so that
// editors and tools that replace the file by renaming are handled too.
func NewReloader(target Reloadable, path string, logger *slog.Logger) (*Reloader, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", path, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %q: %w", filepath.Dir(abs), err)
	}
	return &Reloader{
		watcher: watcher,
		target:  target,
		path:    abs,
		logger:  logger,
	}, nil
}

// Run watches for file changes and reloads. Blocks until ctx is cancelled.
func (r *Reloader) Run(ctx context.Context) error {
	defer r.watcher.Close()

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-r.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != r.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(reloadDebounce, r.reload)

		case err, ok := <-r.watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Error("file watcher error", "err", err)
		}
	}
}

func (r *Reloader) reload() {
	if err := r.target.Reload(); err != nil {
		r.logger.Error("hot-reload failed; keeping previous policy", "path", r.path, "err", err)
		return
	}
	r.logger.Debug("hot-reload done", "path", r.path)
}
