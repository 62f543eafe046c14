package scene

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/lumen/engine/core"
)

// Watcher reloads a scene configuration whenever the file changes on disk,
// so light and material values can be tuned live against the output image.
type Watcher struct {
	path string

	fsnotify  *fsnotify.Watcher
	closeOnce sync.Once
	events    chan *Config
	done      chan struct{}
}

// NewWatcher starts watching the scene config at path. Each successful
// reload is delivered on Events; parse errors are logged and skipped so a
// half-saved file does not kill the session.
func NewWatcher(path string) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// watch the directory, not the file: editors replace files on save and
	// the watch on the old inode would be lost
	if err := fsWatch.Add(filepath.Dir(path)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		fsnotify: fsWatch,
		events:   make(chan *Config),
		done:     make(chan struct{}),
	}
	go w.start()
	return w, nil
}

// Events returns the channel of reloaded configurations.
func (w *Watcher) Events() <-chan *Config {
	return w.events
}

// Close stops the watcher. Safe to call from any goroutine; every call after
// the first reports the watcher as already closed.
func (w *Watcher) Close() error {
	err := errors.New("scene watcher already closed")
	w.closeOnce.Do(func() {
		close(w.done)
		err = nil
	})
	return err
}

func (w *Watcher) start() {
	for {
		select {
		case e := <-w.fsnotify.Events:
			if filepath.Clean(e.Name) != filepath.Clean(w.path) {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			cfg, err := LoadConfig(w.path)
			if err != nil {
				core.LogWarn("scene reload skipped: %v", err)
				continue
			}
			core.LogInfo("scene config %s reloaded", w.path)
			select {
			case w.events <- cfg:
			case <-w.done:
				w.fsnotify.Close()
				close(w.events)
				return
			}

		case err := <-w.fsnotify.Errors:
			core.LogError("scene watcher: %v", err)

		case <-w.done:
			w.fsnotify.Close()
			close(w.events)
			return
		}
	}
}
