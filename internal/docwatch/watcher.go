package docwatch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/askroute/internal/logging"
	"github.com/dshills/askroute/pkg/types"
)

// DefaultDebounce coalesces the burst of events an editor save produces
const DefaultDebounce = 200 * time.Millisecond

// Sink receives each reloaded document
type Sink interface {
	SetDocContext(doc types.DocContext)
}

// Watcher reloads a document whenever it changes on disk
type Watcher struct {
	path     string
	sink     Sink
	logger   *slog.Logger
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// NewWatcher watches path and pushes reloads into sink. The parent
// directory is watched so that editors replacing the file are followed.
func NewWatcher(path string, sink Sink, logger *slog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		sink:     sink,
		logger:   logging.OrDefault(logger),
		debounce: DefaultDebounce,
		watcher:  w,
	}, nil
}

// Run processes file events until ctx is done or the watcher is closed
func (w *Watcher) Run(ctx context.Context) error {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			switch {
			case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
				if timer == nil {
					timer = time.NewTimer(w.debounce)
				} else {
					timer.Reset(w.debounce)
				}
				fire = timer.C
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				w.logger.Warn("watched document removed", "path", w.path)
			}

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("document watcher error", logging.FieldError, err)
		}
	}
}

func (w *Watcher) reload() {
	doc, err := Load(w.path)
	if err != nil {
		w.logger.Warn("document reload failed", "path", w.path, logging.FieldError, err)
		return
	}
	w.sink.SetDocContext(doc)
	w.logger.Info("document reloaded", "name", doc.Name)
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
