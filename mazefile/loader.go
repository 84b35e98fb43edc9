package mazefile

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Loader reads a maze file and watches it for changes.
type Loader struct {
	path     string
	mu       sync.RWMutex
	current  *Labyrinth
	onChange []func(*Labyrinth)
	onError  []func(error)
}

// NewLoader creates a Loader and performs the initial load.
func NewLoader(path string) (*Loader, error) {
	l := &Loader{path: path}
	lab, err := Load(path)
	if err != nil {
		return nil, err
	}
	l.current = lab

	return l, nil
}

// Path returns the watched file path.
func (l *Loader) Path() string { return l.path }

// Current returns the latest successfully built maze.
func (l *Loader) Current() *Labyrinth {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// OnChange registers a callback invoked after every successful reload.
func (l *Loader) OnChange(fn func(*Labyrinth)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// OnError registers a callback invoked when a watched reload fails.
// The previous maze stays current.
func (l *Loader) OnError(fn func(error)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onError = append(l.onError, fn)
}

// Reload forces an immediate re-read of the file. On failure the current
// maze is kept and the error returned; OnError callbacks are not invoked.
func (l *Loader) Reload() (*Labyrinth, error) {
	lab, err := Load(l.path)
	if err != nil {
		return nil, err
	}
	l.publish(lab)

	return lab, nil
}

// Watch starts a background goroutine that rebuilds the maze on file
// writes. Call the returned stop function to clean up.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("mazefile: watcher: %w", err)
	}
	if err := w.Add(l.path); err != nil {
		w.Close()
		return nil, fmt.Errorf("mazefile: watch %s: %w", l.path, err)
	}

	done := make(chan struct{})
	var once sync.Once
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				lab, err := Load(l.path)
				if err != nil {
					l.fail(err)
					continue
				}
				l.publish(lab)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.fail(fmt.Errorf("mazefile: watch %s: %w", l.path, err))
			case <-done:
				return
			}
		}
	}()

	return func() { once.Do(func() { close(done) }) }, nil
}

// publish swaps in lab and notifies OnChange callbacks outside the lock.
func (l *Loader) publish(lab *Labyrinth) {
	l.mu.Lock()
	l.current = lab
	callbacks := make([]func(*Labyrinth), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()

	for _, fn := range callbacks {
		fn(lab)
	}
}

// fail notifies OnError callbacks.
func (l *Loader) fail(err error) {
	l.mu.RLock()
	callbacks := make([]func(error), len(l.onError))
	copy(callbacks, l.onError)
	l.mu.RUnlock()

	for _, fn := range callbacks {
		fn(err)
	}
}
