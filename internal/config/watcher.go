package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"metronome/internal/logger"
)

// Update is delivered whenever the config file changes on disk. Err is
// informational only: consumers keep their previous config when set.
type Update struct {
	Config Config
	Err    error
}

// Watcher reloads the config file when it changes and publishes the
// result on Updates. Editors replace rather than rewrite files, so the
// parent directory is watched and events are filtered by name.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan Update
	logger  logger.Logger
}

func NewWatcher(path string, log logger.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{
		path:    path,
		watcher: fsw,
		updates: make(chan Update, 1),
		logger:  log,
	}, nil
}

// Updates returns the channel reload results are published on. The
// channel is closed when the watcher stops.
func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

// Run consumes filesystem events until the context is cancelled. Blocks;
// callers run it in a goroutine.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.updates)
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("ConfigWatcher", "stopping", nil)
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warning("ConfigWatcher", "filesystem watch error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	cfg, err := LoadFile(w.path)
	if err != nil {
		w.logger.Warning("ConfigWatcher", "reload failed, keeping previous config", map[string]interface{}{
			"path":  w.path,
			"error": err.Error(),
		})
		w.publish(Update{Err: err})
		return
	}

	w.logger.Debug("ConfigWatcher", "config reloaded", map[string]interface{}{
		"path": w.path,
	})
	w.publish(Update{Config: cfg})
}

// publish never blocks: a slow consumer only ever misses intermediate
// updates, the latest one is retained.
func (w *Watcher) publish(u Update) {
	select {
	case w.updates <- u:
	default:
		select {
		case <-w.updates:
		default:
		}
		select {
		case w.updates <- u:
		default:
		}
	}
}
