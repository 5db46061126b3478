package watch

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/penwyp/go-log-grapher/internal/util"
)

// FileEvent reports a change to the watched file.
type FileEvent struct {
	Path      string
	Operation string
}

// FileWatcher reports writes to a single file. The parent directory is watched so
// editors that replace the file on save are still seen.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	target  string
	events  chan FileEvent
}

// NewFileWatcher starts watching path.
func NewFileWatcher(path string) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	fw := &FileWatcher{
		watcher: watcher,
		target:  abs,
		events:  make(chan FileEvent, 16),
	}
	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) processEvents() {
	defer close(fw.events)
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fw.target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			select {
			case fw.events <- FileEvent{Path: event.Name, Operation: event.Op.String()}:
			default:
				// A re-render is already queued.
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("File monitoring error: " + err.Error())
		}
	}
}

// Events is closed when the watcher is closed.
func (fw *FileWatcher) Events() <-chan FileEvent {
	return fw.events
}

func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
