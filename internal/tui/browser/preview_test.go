package browser

import (
	"strings"
	"testing"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/vault"
)

func TestSplitFrontmatter(t *testing.T) {
	meta, body := splitFrontmatter("---\ntitle: Plan\ntags:\n  - work\n---\n# Heading\n\nbody\n")
	if meta == nil {
		t.Fatal("frontmatter not detected")
	}
	if meta["title"] != "Plan" {
		t.Errorf("title = %v", meta["title"])
	}
	if !strings.HasPrefix(body, "# Heading") {
		t.Errorf("body = %q", body)
	}
}

func TestSplitFrontmatterAbsent(t *testing.T) {
	meta, body := splitFrontmatter("# Just a note\n")
	if meta != nil {
		t.Errorf("meta = %v, want nil", meta)
	}
	if body != "# Just a note\n" {
		t.Errorf("body = %q", body)
	}
}

func TestSplitFrontmatterUnterminated(t *testing.T) {
	content := "---\ntitle: broken\n"
	meta, body := splitFrontmatter(content)
	if meta != nil || body != content {
		t.Errorf("unterminated block should pass through, got meta=%v body=%q", meta, body)
	}
}

func TestFirstHeading(t *testing.T) {
	if got := firstHeading("para\n\n## Second Level\n\n# Later\n"); got != "Second Level" {
		t.Errorf("heading = %q", got)
	}
	if got := firstHeading("no headings here\n"); got != "" {
		t.Errorf("heading = %q, want empty", got)
	}
}

func TestPreviewTitlePrefersFrontmatter(t *testing.T) {
	meta := map[string]interface{}{"title": "From Meta"}
	if got := previewTitle(meta, "# From Body\n"); got != "From Meta" {
		t.Errorf("title = %q", got)
	}
	if got := previewTitle(nil, "# From Body\n"); got != "From Body" {
		t.Errorf("title = %q", got)
	}
}

func TestFrontmatterSummary(t *testing.T) {
	meta := map[string]interface{}{
		"tags": []interface{}{"work", "plan"},
		"date": "Feb 3, 2024",
	}
	summary := frontmatterSummary(meta)
	if !strings.Contains(summary, "#work #plan") {
		t.Errorf("summary missing tags: %q", summary)
	}
	if !strings.Contains(summary, "date 2024-02-03") {
		t.Errorf("summary missing parsed date: %q", summary)
	}
}

func TestRenderPreviewNonMarkdown(t *testing.T) {
	store := vault.NewMemStore()
	store.AddFile("/photo.png", make([]byte, 2048))

	out := renderPreview(store, "/photo.png", 40)
	if !strings.Contains(out, "2.0 KB") || !strings.Contains(out, "no preview") {
		t.Errorf("preview = %q", out)
	}
}

func TestRenderPreviewMarkdown(t *testing.T) {
	store := vault.NewMemStore()
	store.AddFile("/note.md", []byte("---\ntitle: Plan\n---\nSome *text*.\n"))

	out := renderPreview(store, "/note.md", 40)
	if !strings.Contains(out, "Plan") {
		t.Errorf("preview missing title: %q", out)
	}
	if !strings.Contains(out, "text") {
		t.Errorf("preview missing body: %q", out)
	}
}

func TestRenderPreviewMissingFile(t *testing.T) {
	store := vault.NewMemStore()
	if out := renderPreview(store, "/gone.md", 40); out != "Error reading file" {
		t.Errorf("preview = %q", out)
	}
}
