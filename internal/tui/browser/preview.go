package browser

import (
	"fmt"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v2"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/vault"
)

// renderPreview builds the preview pane body for a file: a frontmatter
// summary when one is present, then the markdown rendered for the terminal.
// Non-markdown files get a short byte-count placeholder instead.
func renderPreview(store vault.Store, path string, width int) string {
	content, err := store.Read(path)
	if err != nil {
		return "Error reading file"
	}

	if !strings.HasSuffix(path, ".md") {
		return fmt.Sprintf("%s\n\n(no preview)", formatBytes(int64(len(content))))
	}

	meta, body := splitFrontmatter(string(content))

	var b strings.Builder
	if title := previewTitle(meta, body); title != "" {
		b.WriteString(title)
		b.WriteString("\n")
	}
	if summary := frontmatterSummary(meta); summary != "" {
		b.WriteString(summary)
		b.WriteString("\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		b.WriteString(body)
		return b.String()
	}

	rendered, err := r.Render(body)
	if err != nil {
		return "Error rendering markdown"
	}
	b.WriteString(rendered)
	return b.String()
}

// splitFrontmatter separates a leading YAML block delimited by "---" lines
// from the markdown body. Files without one return nil metadata.
func splitFrontmatter(content string) (map[string]interface{}, string) {
	if !strings.HasPrefix(content, "---\n") {
		return nil, content
	}

	rest := content[len("---\n"):]
	idx := strings.Index(rest, "\n---")
	if idx < 0 {
		return nil, content
	}

	var meta map[string]interface{}
	if err := yaml.Unmarshal([]byte(rest[:idx]), &meta); err != nil {
		return nil, content
	}

	body := rest[idx+len("\n---"):]
	body = strings.TrimPrefix(body, "\n")
	return meta, body
}

// previewTitle prefers the frontmatter title and falls back to the first
// markdown heading.
func previewTitle(meta map[string]interface{}, body string) string {
	if meta != nil {
		if title, ok := meta["title"].(string); ok && title != "" {
			return title
		}
	}
	return firstHeading(body)
}

func firstHeading(body string) string {
	source := []byte(body)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var heading string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			heading = string(h.Text(source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return heading
}

// frontmatterSummary reports the tags and best-effort parsed date from the
// metadata block.
func frontmatterSummary(meta map[string]interface{}) string {
	if meta == nil {
		return ""
	}

	var parts []string
	if tags := metaTags(meta); len(tags) > 0 {
		parts = append(parts, "#"+strings.Join(tags, " #"))
	}
	for _, field := range []string{"date", "created", "updated"} {
		raw, ok := meta[field].(string)
		if !ok || raw == "" {
			continue
		}
		if t, err := dateparse.ParseAny(raw); err == nil {
			parts = append(parts, fmt.Sprintf("%s %s", field, t.Format("2006-01-02")))
		}
	}
	return strings.Join(parts, " · ")
}

func metaTags(meta map[string]interface{}) []string {
	raw, ok := meta["tags"]
	if !ok {
		return nil
	}

	switch v := raw.(type) {
	case string:
		return strings.Fields(v)
	case []interface{}:
		tags := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				tags = append(tags, s)
			}
		}
		return tags
	}
	return nil
}
