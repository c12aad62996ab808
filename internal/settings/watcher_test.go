package settings

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestWatcherReportsExternalEdit(t *testing.T) {
	root := t.TempDir()
	m, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Save(); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(m)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	w.debounce = 20 * time.Millisecond

	msgs := make(chan tea.Msg, 1)
	go func() { msgs <- w.Start()() }()

	// Simulate an external editor rewriting the file.
	external := m.Snapshot()
	external.ExclusionPatterns = ".git"
	edited := *m
	edited.Current = external
	if err := edited.Save(); err != nil {
		t.Fatal(err)
	}

	select {
	case msg := <-msgs:
		if _, ok := msg.(ChangedMsg); !ok {
			t.Fatalf("got %T, want ChangedMsg", msg)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no message after external edit")
	}
}

// The watcher goroutine must never touch the aggregate; reloading is the
// receiver's job, on its own goroutine.
func TestWatcherDoesNotMutateManager(t *testing.T) {
	root := t.TempDir()
	m, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Save(); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(m)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	w.debounce = 20 * time.Millisecond

	before := m.Current

	msgs := make(chan tea.Msg, 1)
	go func() { msgs <- w.Start()() }()

	external := m.Snapshot()
	external.ExclusionPatterns = "node_modules"
	edited := *m
	edited.Current = external
	if err := edited.Save(); err != nil {
		t.Fatal(err)
	}

	select {
	case <-msgs:
	case <-time.After(3 * time.Second):
		t.Fatal("no message after external edit")
	}

	if m.Current != before {
		t.Error("watcher replaced the settings aggregate itself")
	}
	if m.Current.ExclusionPatterns != "" {
		t.Errorf("watcher applied content: %q", m.Current.ExclusionPatterns)
	}

	// The receiver applies the change explicitly.
	changed, err := m.Reload()
	if err != nil {
		t.Fatal(err)
	}
	if !changed || m.Current.ExclusionPatterns != "node_modules" {
		t.Errorf("reload after change message: changed=%v patterns=%q",
			changed, m.Current.ExclusionPatterns)
	}
}
