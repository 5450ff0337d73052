package watcher

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DirWatcher watches drop directories for incoming mesh files and
// triggers a callback once writes have settled. Uploads arrive as a
// create followed by a burst of writes, so events are debounced per
// file before the callback fires.
type DirWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	exts     map[string]bool
	callback func(string)

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewDirWatcher creates a watcher that reports files matching one of
// the given extensions (e.g. ".stl").
func NewDirWatcher(debounce time.Duration, extensions []string, callback func(string)) (*DirWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	exts := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(ext)] = true
	}

	return &DirWatcher{
		watcher:  w,
		debounce: debounce,
		exts:     exts,
		callback: callback,
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Watch adds a directory to the watch set
func (dw *DirWatcher) Watch(dir string) error {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", dir, err)
	}
	if err := dw.watcher.Add(absPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}
	return nil
}

// Start begins dispatching file events in a background goroutine
func (dw *DirWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-dw.watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					dw.handleFileChange(event.Name)
				}

			case err, ok := <-dw.watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("Watcher error: %v\n", err)
			}
		}
	}()
}

// handleFileChange debounces events for one file and schedules the
// callback
func (dw *DirWatcher) handleFileChange(path string) {
	if !dw.exts[strings.ToLower(filepath.Ext(path))] {
		return
	}

	dw.mu.Lock()
	defer dw.mu.Unlock()

	if timer, exists := dw.timers[path]; exists {
		timer.Stop()
	}

	dw.timers[path] = time.AfterFunc(dw.debounce, func() {
		dw.callback(path)
	})
}

// Close stops the watcher
func (dw *DirWatcher) Close() error {
	return dw.watcher.Close()
}
