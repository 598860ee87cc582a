// pattern: Imperative Shell

package discovery

import (
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce is how long the watcher waits after the last filesystem
// event before requesting a rescan. Clone/remove operations touch a
// directory many times in quick succession; one rescan is enough.
const watchDebounce = 500 * time.Millisecond

// Watcher observes the base directory and requests a rescan when
// subdirectories appear, disappear, or are renamed.
type Watcher struct {
	fw     *fsnotify.Watcher
	notify func()
	done   chan struct{}
}

// NewWatcher starts watching baseDir. notify is invoked (on the watcher
// goroutine) after events settle; callers typically forward it to the UI
// event loop as a rescan request.
func NewWatcher(baseDir string, notify func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(baseDir); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		fw:     fw,
		notify: notify,
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(watchDebounce)
			}
		case <-fire:
			timer = nil
			fire = nil
			w.notify()
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Watch errors are not actionable here; the next manual
			// refresh still works.
		}
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.done
	return err
}
