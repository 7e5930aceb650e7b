package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is the quiet period a file must go without events before it is
// reported. Editors that truncate then write produce a single report.
const debounce = 100 * time.Millisecond

// Watcher reports edited prefab files. Paths arrive on Events from the
// fsnotify pump goroutine once their writes settle; the game loop drains them
// between frames.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the pump and closes both channels.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// Poll returns the paths reported since the last call without blocking.
func (w *Watcher) Poll() []string {
	var out []string
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return out
			}
			out = append(out, name)
		default:
			return out
		}
	}
}

// PollErrors returns the watcher errors reported since the last call.
func (w *Watcher) PollErrors() []error {
	var out []error
	for {
		select {
		case err, ok := <-w.Errors:
			if !ok {
				return out
			}
			out = append(out, err)
		default:
			return out
		}
	}
}

func (w *Watcher) run() {
	defer close(w.done)

	var (
		pending []string
		seen    = make(map[string]bool)
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSpecFile(event.Name) {
				continue
			}
			if !seen[event.Name] {
				seen[event.Name] = true
				pending = append(pending, event.Name)
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			for _, name := range pending {
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			pending = pending[:0]
			clear(seen)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
