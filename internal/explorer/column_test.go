package explorer

import (
	"testing"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/icons"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/settings"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/vault"
)

func newTestRenderer(t *testing.T, store vault.Store) (*Renderer, *settings.Manager) {
	t.Helper()
	root := t.TempDir()
	manager, err := settings.Load(root)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	return NewRenderer(store, manager, icons.NewResolver(root, manager)), manager
}

func notesStore() *vault.MemStore {
	store := vault.NewMemStore()
	store.AddFolder("/Notes/2024")
	store.AddFile("/Notes/todo.md", []byte("- [ ] write tests"))
	return store
}

func TestRenderPartitionsFoldersBeforeFiles(t *testing.T) {
	r, _ := newTestRenderer(t, notesStore())

	col := r.Render("/Notes", 1)
	if col.Err != nil {
		t.Fatalf("unexpected render error: %v", col.Err)
	}
	if len(col.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(col.Rows))
	}
	if col.Rows[0].Name != "2024" || !col.Rows[0].IsFolder {
		t.Errorf("first row should be the 2024 folder: %+v", col.Rows[0])
	}
	if col.Rows[1].Name != "todo.md" || col.Rows[1].IsFolder {
		t.Errorf("second row should be todo.md: %+v", col.Rows[1])
	}
}

func TestRenderAppliesExclusionsAndHiddenFiles(t *testing.T) {
	store := notesStore()
	store.AddFile("/Notes/.hidden.md", []byte("secret"))
	store.AddFolder("/Notes/templates")
	store.AddFile("/Notes/draft.md", []byte("abc"))

	r, manager := newTestRenderer(t, store)
	manager.Current.ExclusionPatterns = "templates"

	col := r.Render("/Notes", 1)

	for _, row := range col.Rows {
		if row.Name == "templates" {
			t.Error("excluded folder rendered")
		}
		if row.Name == ".hidden.md" {
			t.Error("dotfile rendered")
		}
	}

	// Stats reflect the post-exclusion set, dotfiles included.
	if col.Stats.Folders != 1 {
		t.Errorf("folder stat = %d, want 1", col.Stats.Folders)
	}
	if col.Stats.Files != 3 {
		t.Errorf("file stat = %d, want 3", col.Stats.Files)
	}
	if col.Stats.Hidden != 1 {
		t.Errorf("hidden stat = %d, want 1", col.Stats.Hidden)
	}
	wantBytes := int64(len("- [ ] write tests") + len("secret") + len("abc"))
	if col.Stats.Bytes != wantBytes {
		t.Errorf("byte stat = %d, want %d", col.Stats.Bytes, wantBytes)
	}
}

func TestRenderPlaceholderForMissingOrFilePath(t *testing.T) {
	r, _ := newTestRenderer(t, notesStore())

	col := r.Render("/gone", 0)
	if col.Err == nil {
		t.Error("missing folder should produce a placeholder column")
	}
	if len(col.Rows) != 0 {
		t.Error("placeholder column should have no rows")
	}

	col = r.Render("/Notes/todo.md", 1)
	if col.Err == nil {
		t.Error("file path should produce a placeholder column")
	}
}

func TestCustomOrderOverlay(t *testing.T) {
	store := vault.NewMemStore()
	store.AddFile("/Notes/alpha.md", nil)
	store.AddFile("/Notes/beta.md", nil)
	store.AddFile("/Notes/gamma.md", nil)
	store.AddFile("/Notes/delta.md", nil)

	r, manager := newTestRenderer(t, store)
	manager.Current.CustomFolderOrder["/Notes"] = []string{"/Notes/gamma.md", "/Notes/alpha.md"}

	col := r.Render("/Notes", 0)

	got := make([]string, len(col.Rows))
	for i, row := range col.Rows {
		got[i] = row.Name
	}

	// Custom-ordered items first by list index, the rest alphabetical after.
	want := []string{"gamma.md", "alpha.md", "beta.md", "delta.md"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row order = %v, want %v", got, want)
		}
	}
}

func TestFavoritesBlockAtDepthZeroOnly(t *testing.T) {
	store := notesStore()
	r, manager := newTestRenderer(t, store)
	manager.Current.Favorites = []string{"/Notes/todo.md", "/gone.md", "/Notes/2024"}

	root := r.Render("/", 0)
	if len(root.Favorites) != 2 {
		t.Fatalf("expected 2 resolvable favorites, got %d", len(root.Favorites))
	}
	if root.Favorites[0].Path != "/Notes/todo.md" || root.Favorites[1].Path != "/Notes/2024" {
		t.Errorf("favorites order not preserved: %+v", root.Favorites)
	}

	deeper := r.Render("/Notes", 1)
	if len(deeper.Favorites) != 0 {
		t.Error("favorites block must only render at depth 0")
	}
}

func TestDisplayNameStripsDrawingSuffix(t *testing.T) {
	n := vault.FileNode("/Notes/sketch.excalidraw.md", 0)
	if got := DisplayName(n); got != "sketch" {
		t.Errorf("DisplayName = %q, want sketch", got)
	}

	plain := vault.FileNode("/Notes/todo.md", 0)
	if got := DisplayName(plain); got != "todo.md" {
		t.Errorf("DisplayName = %q, want todo.md", got)
	}
}

func TestAlphabeticalSortIsCaseAware(t *testing.T) {
	store := vault.NewMemStore()
	store.AddFile("/n/banana.md", nil)
	store.AddFile("/n/Apple.md", nil)
	store.AddFile("/n/apple.md", nil)

	r, _ := newTestRenderer(t, store)
	col := r.Render("/n", 0)

	if col.Rows[0].Name != "Apple.md" || col.Rows[1].Name != "apple.md" || col.Rows[2].Name != "banana.md" {
		names := []string{col.Rows[0].Name, col.Rows[1].Name, col.Rows[2].Name}
		t.Errorf("sort order = %v", names)
	}
}
