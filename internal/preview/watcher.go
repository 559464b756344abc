package preview

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/muurk/ptable/internal/logging"
)

// DefaultDebounce groups bursts of editor writes into one change.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reports changes to a fixed set of files.
//
// Parent directories are watched rather than the files, so that editors
// which save by renaming a temporary file over the original keep working.
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	delay   time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending []string
}

// NewWatcher watches files, calling back at most once per delay window.
func NewWatcher(files []string, delay time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		watcher: fw,
		files:   make(map[string]bool),
		delay:   delay,
	}

	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("invalid path %s: %w", f, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Run delivers debounced changes to onChange until ctx is done.
func (w *Watcher) Run(ctx context.Context, onChange func(paths []string)) {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			if w.timer != nil {
				w.timer.Stop()
			}
			w.mu.Unlock()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			logging.LogWatchEvent(event.Name, event.Op.String())
			w.schedule(event.Name, onChange)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Warn("File watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}

func (w *Watcher) schedule(path string, onChange func(paths []string)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = append(w.pending, path)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, func() {
		w.mu.Lock()
		paths := dedupe(w.pending)
		w.pending = nil
		w.mu.Unlock()

		if len(paths) > 0 {
			onChange(paths)
		}
	})
}

func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
