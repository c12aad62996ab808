package icons

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/settings"
)

func newManager(t *testing.T, root string) *settings.Manager {
	t.Helper()
	m, err := settings.Load(root)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	return m
}

func TestResolvePrecedence(t *testing.T) {
	root := t.TempDir()
	m := newManager(t, root)
	r := NewResolver(root, m)

	// Default when nothing is set.
	d := r.Resolve("/Notes/todo.md", false)
	if d.Kind != DecorationDefault || d.Glyph != "📄" {
		t.Errorf("default decoration = %+v", d)
	}

	// Emoji beats default.
	m.Current.EmojiMap["/Notes/todo.md"] = "✅"
	d = r.Resolve("/Notes/todo.md", false)
	if d.Kind != DecorationEmoji || d.Glyph != "✅" {
		t.Errorf("emoji decoration = %+v", d)
	}

	// Existing custom icon beats emoji.
	filename, err := StoreImage(root, "logo.png", []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("store image: %v", err)
	}
	m.Current.IconAssociations["/Notes/todo.md"] = filename
	d = r.Resolve("/Notes/todo.md", false)
	if d.Kind != DecorationCustomIcon {
		t.Errorf("custom icon decoration = %+v", d)
	}
	if _, err := os.Stat(d.File); err != nil {
		t.Errorf("resolved icon file missing: %v", err)
	}

	// A dangling association falls back to the emoji.
	m.Current.IconAssociations["/Notes/todo.md"] = "gone.png"
	d = r.Resolve("/Notes/todo.md", false)
	if d.Kind != DecorationEmoji {
		t.Errorf("dangling icon should fall back to emoji, got %+v", d)
	}
}

func TestDefaultGlyphKinds(t *testing.T) {
	if DefaultGlyph("/x", true) != "📁" {
		t.Error("folder glyph wrong")
	}
	if DefaultGlyph("/x/a.png", false) != "🏞" {
		t.Error("image glyph wrong")
	}
	if DefaultGlyph("/x/a.unknown", false) != "📎" {
		t.Error("fallback glyph wrong")
	}
}

func TestStoreImageNaming(t *testing.T) {
	root := t.TempDir()

	filename, err := StoreImage(root, "My Cool Logo!.png", []byte("img"))
	if err != nil {
		t.Fatalf("store image: %v", err)
	}
	if !strings.HasSuffix(filename, "-My-Cool-Logo-.png") && !strings.Contains(filename, "My") {
		t.Errorf("unexpected sanitized filename: %q", filename)
	}
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(settings.ImagesDir), filename)); err != nil {
		t.Errorf("stored image missing: %v", err)
	}
}

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"logo.png", "logo.png"},
		{"my logo.png", "my-logo.png"},
		{"überfile.png", "berfile.png"},
		{"???", "icon"},
	}
	for _, tc := range cases {
		if got := SanitizeName(tc.in); got != tc.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
