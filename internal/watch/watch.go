// Package watch delivers reloads of the opened file when it changes on
// disk. Editors typically save through a rename-and-replace dance, so
// the parent directory is watched rather than the file itself.
package watch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/jacoelho/vy/internal/ratelimit"
)

// Reload carries fresh file content: the display name for the root node
// and the raw text to re-parse.
type Reload struct {
	Name string
	Text string
}

// Watcher watches a single file and emits rate-damped Reload events.
type Watcher struct {
	fsw     *fsnotify.Watcher
	limiter *ratelimit.Limiter
	path    string
	base    string
	reloads chan Reload
	done    chan struct{}
}

// New watches path. eventsPerSecond damps editor save bursts;
// 0 disables damping.
func New(path string, eventsPerSecond float64) (*Watcher, error) {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(absolute)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch: add %s: %w", filepath.Dir(absolute), err)
	}

	w := &Watcher{
		fsw:     fsw,
		limiter: ratelimit.New(eventsPerSecond),
		path:    absolute,
		base:    filepath.Base(absolute),
		reloads: make(chan Reload, 1),
		done:    make(chan struct{}),
	}

	go w.loop()

	return w, nil
}

// Reloads returns the channel of damped reload events.
func (w *Watcher) Reloads() <-chan Reload {
	return w.reloads
}

// Close stops watching. The reloads channel is closed afterwards.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	defer close(w.reloads)

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if !w.limiter.Allow() {
				continue
			}

			text, err := os.ReadFile(w.path)
			if err != nil {
				// The file may be mid-replace; the next event retries.
				continue
			}

			w.emit(Reload{Name: w.base, Text: string(text)})
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// relevant filters directory noise down to writes of the watched file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != w.base {
		return false
	}

	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}

// emit replaces a stale undelivered reload with the newest one.
func (w *Watcher) emit(reload Reload) {
	for {
		select {
		case w.reloads <- reload:
			return
		default:
			select {
			case <-w.reloads:
			default:
			}
		}
	}
}
