package vault

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirStoreListAndStat(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "Notes", "2024"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "Notes", "todo.md"), []byte("- [ ] x"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewDirStore(root)

	nodes, err := store.List("/Notes")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 children, got %d", len(nodes))
	}
	if nodes[0].Path != "/Notes/2024" || !nodes[0].IsFolder() {
		t.Errorf("unexpected first node: %+v", nodes[0])
	}
	if nodes[1].Path != "/Notes/todo.md" || nodes[1].IsFolder() {
		t.Errorf("unexpected second node: %+v", nodes[1])
	}
	if nodes[1].Extension != "md" {
		t.Errorf("extension = %q, want md", nodes[1].Extension)
	}
	if nodes[1].Size != int64(len("- [ ] x")) {
		t.Errorf("size = %d", nodes[1].Size)
	}

	node, err := store.Stat("/Notes")
	if err != nil || !node.IsFolder() {
		t.Errorf("stat folder failed: %+v err=%v", node, err)
	}
	if _, err := store.Stat("/missing"); err == nil {
		t.Error("stat of missing path should fail")
	}
}

func TestDirStoreMoveAndTrash(t *testing.T) {
	root := t.TempDir()
	store := NewDirStore(root)

	if err := store.Write("/a/x.md", []byte("hi")); err != nil {
		t.Fatal(err)
	}
	if err := store.Mkdir("/b"); err != nil {
		t.Fatal(err)
	}

	if err := store.Move("/a/x.md", "/b/x.md"); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if store.Exists("/a/x.md") || !store.Exists("/b/x.md") {
		t.Error("move did not relocate file")
	}

	if err := store.Trash("/b/x.md"); err != nil {
		t.Fatalf("trash failed: %v", err)
	}
	if store.Exists("/b/x.md") {
		t.Error("trashed file still present")
	}
	if !store.Exists("/.trash/b/x.md") {
		t.Error("trashed file not under .trash with subpath preserved")
	}
}

func TestUniqueName(t *testing.T) {
	store := NewMemStore()
	store.AddFile("/Notes/todo.md", nil)
	store.AddFile("/Notes/todo 1.md", nil)

	if got := UniqueName(store, "/Notes", "todo.md"); got != "/Notes/todo 2.md" {
		t.Errorf("UniqueName = %q, want /Notes/todo 2.md", got)
	}
	if got := UniqueName(store, "/Notes", "fresh.md"); got != "/Notes/fresh.md" {
		t.Errorf("UniqueName without collision = %q", got)
	}
	if got := UniqueName(store, "/Notes", ".hidden"); got != "/Notes/.hidden" {
		t.Errorf("UniqueName dotfile = %q", got)
	}

	store.AddFolder("/Notes/sub")
	if got := UniqueName(store, "/Notes", "sub"); got != "/Notes/sub 1" {
		t.Errorf("UniqueName folder = %q, want /Notes/sub 1", got)
	}
}

func TestMemStoreMoveFolderMovesDescendants(t *testing.T) {
	store := NewMemStore()
	store.AddFile("/a/sub/deep.md", []byte("x"))
	store.AddFolder("/b")

	if err := store.Move("/a/sub", "/b/sub"); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if !store.Exists("/b/sub/deep.md") {
		t.Error("descendant file did not move with folder")
	}
	if store.Exists("/a/sub") {
		t.Error("source folder still present")
	}
}

// Moving a large folder must relocate every descendant exactly once,
// whatever order the backing maps iterate in.
func TestMemStoreMoveManyDescendants(t *testing.T) {
	store := NewMemStore()
	names := []string{"one", "two", "three", "four", "five", "six", "seven", "eight"}
	for _, n := range names {
		store.AddFile("/src/"+n+"/note.md", []byte(n))
		store.AddFolder("/src/" + n + "/nested")
	}

	if err := store.Move("/src", "/dst"); err != nil {
		t.Fatalf("move failed: %v", err)
	}

	for _, n := range names {
		if !store.Exists("/dst/" + n + "/note.md") {
			t.Errorf("missing /dst/%s/note.md", n)
		}
		if !store.Exists("/dst/" + n + "/nested") {
			t.Errorf("missing /dst/%s/nested", n)
		}
		if store.Exists("/src/" + n) {
			t.Errorf("/src/%s still present", n)
		}
	}

	nodes, err := store.List("/dst")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(nodes) != len(names) {
		t.Errorf("/dst has %d children, want %d", len(nodes), len(names))
	}
}
