package settings

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadDefaultsWhenNoFileExists(t *testing.T) {
	m, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if m.Current.ColumnDisplayMode != 3 {
		t.Errorf("default column mode = %d, want 3", m.Current.ColumnDisplayMode)
	}
	if m.Current.DragInitiationDelay != 200 || m.Current.DragFolderOpenDelay != 300 {
		t.Errorf("unexpected default delays: %d/%d",
			m.Current.DragInitiationDelay, m.Current.DragFolderOpenDelay)
	}
	if m.Current.EmojiMap == nil || m.Current.CustomFolderOrder == nil {
		t.Error("maps not initialized")
	}
}

func TestLoadMigratesLegacyLocation(t *testing.T) {
	root := t.TempDir()
	legacy := filepath.Join(root, ".notidian-file-explorer", "data.json")
	if err := os.MkdirAll(filepath.Dir(legacy), 0o755); err != nil {
		t.Fatal(err)
	}
	content := `{"exclusionPatterns":".git","favorites":["/Notes"],"columnDisplayMode":2}`
	if err := os.WriteFile(legacy, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(root)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if m.Current.ExclusionPatterns != ".git" {
		t.Errorf("exclusionPatterns = %q", m.Current.ExclusionPatterns)
	}
	if m.Current.ColumnDisplayMode != 2 {
		t.Errorf("columnDisplayMode = %d, want 2", m.Current.ColumnDisplayMode)
	}

	if _, err := os.Stat(m.Path()); err != nil {
		t.Errorf("settings not migrated to canonical path: %v", err)
	}

	// The canonical copy wins on subsequent loads.
	again, err := Load(root)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !again.Current.Equal(m.Current) {
		t.Error("canonical reload differs from migrated content")
	}
}

func TestCanonicalPreferredOverLegacy(t *testing.T) {
	root := t.TempDir()

	canonical := filepath.Join(root, filepath.FromSlash(CanonicalPath))
	if err := os.MkdirAll(filepath.Dir(canonical), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(canonical, []byte(`{"templatePath":"/tpl.md"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	legacy := filepath.Join(root, ".notidian-file-explorer", "data.json")
	if err := os.MkdirAll(filepath.Dir(legacy), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(legacy, []byte(`{"templatePath":"/old.md"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(root)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if m.Current.TemplatePath != "/tpl.md" {
		t.Errorf("templatePath = %q, canonical should win", m.Current.TemplatePath)
	}
}

func TestCustomOrderRoundTrip(t *testing.T) {
	root := t.TempDir()
	m, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}

	order := []string{"/Notes/z.md", "/Notes/a.md"}
	if err := m.SetCustomOrder("/Notes", order); err != nil {
		t.Fatalf("set custom order failed: %v", err)
	}

	reloaded, err := Load(root)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got := reloaded.CustomOrder("/Notes"); !reflect.DeepEqual(got, order) {
		t.Errorf("custom order after round trip = %v, want %v", got, order)
	}
}

func TestToggleFavorite(t *testing.T) {
	m, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	added, err := m.ToggleFavorite("/Notes/todo.md")
	if err != nil || !added {
		t.Fatalf("toggle add failed: added=%v err=%v", added, err)
	}
	if !m.IsFavorite("/Notes/todo.md") {
		t.Error("favorite not recorded")
	}

	removed, err := m.ToggleFavorite("/Notes/todo.md")
	if err != nil || removed {
		t.Fatalf("toggle remove failed: added=%v err=%v", removed, err)
	}
	if m.IsFavorite("/Notes/todo.md") {
		t.Error("favorite not removed")
	}
}

func TestRenamePathRewritesRecords(t *testing.T) {
	m, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	m.Current.EmojiMap["/a/sub"] = "📁"
	m.Current.EmojiMap["/a/sub/x.md"] = "📝"
	m.Current.Favorites = []string{"/a/sub/x.md", "/other.md"}
	m.Current.CustomFolderOrder["/a/sub"] = []string{"/a/sub/x.md"}

	if err := m.RenamePath("/a/sub", "/b/sub"); err != nil {
		t.Fatalf("rename failed: %v", err)
	}

	if m.Current.EmojiMap["/b/sub"] != "📁" || m.Current.EmojiMap["/b/sub/x.md"] != "📝" {
		t.Errorf("emoji records not rewritten: %v", m.Current.EmojiMap)
	}
	if m.Current.Favorites[0] != "/b/sub/x.md" || m.Current.Favorites[1] != "/other.md" {
		t.Errorf("favorites not rewritten: %v", m.Current.Favorites)
	}
	if got := m.CustomOrder("/b/sub"); len(got) != 1 || got[0] != "/b/sub/x.md" {
		t.Errorf("custom order not rewritten: %v", got)
	}
}

func TestReloadDetectsChangedContentOnly(t *testing.T) {
	root := t.TempDir()
	m, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Save(); err != nil {
		t.Fatal(err)
	}

	changed, err := m.Reload()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if changed {
		t.Error("identical content reported as changed")
	}

	external := m.Snapshot()
	external.ExclusionPatterns = ".git"
	edited := *m
	edited.Current = external
	if err := edited.Save(); err != nil {
		t.Fatal(err)
	}

	changed, err = m.Reload()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !changed {
		t.Error("external edit not detected")
	}
	if m.Current.ExclusionPatterns != ".git" {
		t.Errorf("reload did not apply new content: %q", m.Current.ExclusionPatterns)
	}
}
