package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultLull is how long the watcher waits after the last filesystem
// event before firing, so an editor's write-rename burst collapses into
// a single run.
const DefaultLull = 100 * time.Millisecond

// Watcher invokes a callback when any of a fixed set of files changes.
type Watcher struct {
	fw    *fsnotify.Watcher
	lull  time.Duration
	paths map[string]bool
}

// New builds a watcher for the given files. The parent directories are
// watched rather than the files themselves: editors and atomic writers
// replace files, which would otherwise detach the watch. The files may
// not exist yet; their creation counts as a change.
func New(lull time.Duration, paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{fw: fw, lull: lull, paths: make(map[string]bool)}

	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.paths[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	return w, nil
}

// Run blocks, invoking onChange once per burst of events touching the
// watched files. It returns nil after Close, or the first watch error.
func (w *Watcher) Run(onChange func()) error {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev.Name) {
				continue
			}
			// Restart the lull timer; the callback runs once the
			// events stop coming.
			if timer == nil {
				timer = time.NewTimer(w.lull)
				fire = timer.C
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.lull)

		case <-fire:
			timer = nil
			fire = nil
			onChange()

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// relevant reports whether the event path is one of the watched files.
func (w *Watcher) relevant(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return w.paths[abs]
}

// Close stops the watcher; a blocked Run returns nil.
func (w *Watcher) Close() error {
	return w.fw.Close()
}
