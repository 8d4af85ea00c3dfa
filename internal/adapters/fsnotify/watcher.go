// Package fsnotify implements the ports.Watcher interface using
// github.com/fsnotify/fsnotify. It recursively watches a directory for
// text files, skips junk directories, and debounces rapid events
// (editors often trigger multiple writes per save).
package fsnotify

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Directories to ignore when watching.
var ignoreDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	".venv":        true,
	"__pycache__":  true,
	"vendor":       true,
	".idea":        true,
	".vscode":      true,
	"dist":         true,
	"build":        true,
	".next":        true,
	"target":       true,
}

// DefaultExtensions are the file extensions watched when none are
// configured.
var DefaultExtensions = []string{".txt", ".md", ".text"}

const defaultDebounce = 50 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify. Only files whose
// extension is in the configured set trigger the callback.
type Watcher struct {
	fw         *fsnotify.Watcher
	extensions map[string]bool
	debounce   *debouncer
	done       chan struct{}
	stopped    bool
	mu         sync.Mutex
}

// NewWatcher creates a watcher that reacts to files with the given
// extensions. Empty extensions or a zero debounce fall back to
// defaults.
func NewWatcher(extensions []string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	exts := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts[ext] = true
	}

	return &Watcher{
		fw:         fw,
		extensions: exts,
		debounce:   newDebouncer(debounce),
		done:       make(chan struct{}),
	}, nil
}

// Watch starts monitoring root recursively. onChange is called with the
// path of each changed text file.
func (w *Watcher) Watch(root string, onChange func(path string)) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	// Walk and add all directories
	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip inaccessible paths
		}
		if info.IsDir() {
			if ignoreDirs[info.Name()] && path != absRoot {
				return filepath.SkipDir
			}
			return w.fw.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				path := event.Name

				// New directories join the watch list so files created
				// inside them are seen too.
				if event.Has(fsnotify.Create) {
					if info, err := os.Stat(path); err == nil && info.IsDir() {
						if !ignoreDirs[info.Name()] {
							w.fw.Add(path)
						}
					}
				}

				if !w.wantsPath(path) {
					continue
				}

				// Only events that leave readable content behind matter.
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if w.debounce.allow(path, time.Now()) {
					onChange(path)
				}

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// Errors are swallowed — fsnotify recovers automatically

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}

// wantsPath reports whether path is a watched text file outside any
// ignored directory.
func (w *Watcher) wantsPath(path string) bool {
	if !w.extensions[strings.ToLower(filepath.Ext(path))] {
		return false
	}
	for _, part := range strings.Split(path, string(filepath.Separator)) {
		if ignoreDirs[part] {
			return false
		}
	}
	return true
}

// debouncer suppresses repeat events for the same path within an
// interval.
type debouncer struct {
	mu       sync.Mutex
	last     map[string]time.Time
	interval time.Duration
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{
		last:     make(map[string]time.Time),
		interval: interval,
	}
}

// allow reports whether an event for path at time now should fire.
func (d *debouncer) allow(path string, now time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if prev, ok := d.last[path]; ok && now.Sub(prev) < d.interval {
		return false
	}
	d.last[path] = now
	return true
}
