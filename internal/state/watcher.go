package state

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/vault"
)

type VaultOp int

const (
	VaultCreated VaultOp = iota
	VaultWritten
	VaultRemoved
)

// VaultChangedMsg reports an externally observed vault mutation. Renames
// surface as a removal of the old path followed by a creation of the new one.
type VaultChangedMsg struct {
	Path     string // vault-relative
	IsFolder bool
	Op       VaultOp
}

type VaultWatcherErrMsg struct {
	Err error
}

// VaultWatcher surfaces filesystem notifications for the whole vault tree as
// bubbletea messages.
type VaultWatcher struct {
	watcher *fsnotify.Watcher
	store   *vault.DirStore
	done    chan struct{}
	once    sync.Once
}

func NewVaultWatcher(store *vault.DirStore) (*VaultWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watcher := &VaultWatcher{
		watcher: w,
		store:   store,
		done:    make(chan struct{}),
	}

	if err := watcher.addRecursive(store.Root()); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return watcher, nil
}

// Start returns a command that blocks until the next relevant vault event.
// Re-issue it after every received message.
func (w *VaultWatcher) Start() tea.Cmd {
	if w == nil {
		return nil
	}

	return func() tea.Msg {
		for {
			select {
			case <-w.done:
				return nil
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}

				isFolder := false
				if event.Op&fsnotify.Create != 0 {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						isFolder = true
						_ = w.addRecursive(event.Name)
					}
				}

				rel, ok := w.store.Rel(event.Name)
				if !ok || rel == "/" {
					continue
				}
				// Dot-directories like .trash and .notidian churn constantly
				// and are never rendered.
				if hasHiddenSegment(rel) {
					continue
				}

				switch {
				case event.Op&fsnotify.Create != 0:
					return VaultChangedMsg{Path: rel, IsFolder: isFolder, Op: VaultCreated}
				case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
					return VaultChangedMsg{Path: rel, Op: VaultRemoved}
				case event.Op&fsnotify.Write != 0:
					return VaultChangedMsg{Path: rel, Op: VaultWritten}
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil {
					return VaultWatcherErrMsg{Err: err}
				}
			}
		}
	}
}

func (w *VaultWatcher) Close() error {
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

func (w *VaultWatcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return filepath.SkipDir
			}
			return err
		}

		if !d.IsDir() {
			return nil
		}
		if d.Name() != "." && strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}

		return w.watcher.Add(path)
	})
}

func hasHiddenSegment(rel string) bool {
	for _, segment := range strings.Split(strings.TrimPrefix(rel, "/"), "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}
