package settings

import (
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// DebounceInterval collapses bursts of writes to the settings file into one
// reload after quiescence.
const DebounceInterval = 500 * time.Millisecond

// ChangedMsg is emitted after a debounced external edit to the settings
// file. The receiver decides whether to Reload; the watcher never touches
// the manager, so the aggregate is only ever mutated on the Update
// goroutine.
type ChangedMsg struct{}

type WatcherErrMsg struct {
	Err error
}

// Watcher observes the canonical settings file for external edits and
// reports them after a debounce window.
type Watcher struct {
	manager  *Manager
	watcher  *fsnotify.Watcher
	done     chan struct{}
	once     sync.Once
	debounce time.Duration
}

func NewWatcher(manager *Manager) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory rather than the file: editors replace files by
	// rename, which drops a watch on the file itself.
	if err := w.Add(filepath.Dir(manager.Path())); err != nil {
		_ = w.Close()
		return nil, err
	}

	return &Watcher{
		manager:  manager,
		watcher:  w,
		done:     make(chan struct{}),
		debounce: DebounceInterval,
	}, nil
}

// Start returns a command that blocks until the next debounced external edit
// to the settings file, then emits ChangedMsg. Re-issue after each message,
// as with the vault watcher.
func (w *Watcher) Start() tea.Cmd {
	if w == nil {
		return nil
	}

	return func() tea.Msg {
		var timer *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case <-w.done:
				if timer != nil {
					timer.Stop()
				}
				return nil
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != filepath.Clean(w.manager.Path()) {
					continue
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(w.debounce)
					fire = timer.C
				} else {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(w.debounce)
				}
			case <-fire:
				timer = nil
				fire = nil
				return ChangedMsg{}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil {
					return WatcherErrMsg{Err: err}
				}
			}
		}
	}
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}

	var closeErr error
	w.once.Do(func() {
		close(w.done)
		closeErr = w.watcher.Close()
	})
	return closeErr
}
