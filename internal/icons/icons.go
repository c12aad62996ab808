// Package icons resolves per-item decorations and stores custom icon images.
package icons

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/settings"
)

type DecorationKind int

const (
	DecorationDefault DecorationKind = iota
	DecorationEmoji
	DecorationCustomIcon
)

// Decoration is what a row shows in front of its name: exactly one of a
// custom icon file, an emoji glyph, or the default type icon.
type Decoration struct {
	Kind  DecorationKind
	Glyph string // emoji or default glyph
	File  string // absolute path of the custom icon image
}

// Resolver decides an item's decoration with precedence
// custom icon > emoji > default type icon. Custom icons whose backing image
// no longer exists fall through to the next rule.
type Resolver struct {
	vaultRoot string
	manager   *settings.Manager
}

func NewResolver(vaultRoot string, manager *settings.Manager) *Resolver {
	return &Resolver{vaultRoot: vaultRoot, manager: manager}
}

func (r *Resolver) Resolve(path string, isFolder bool) Decoration {
	if filename := r.manager.Current.IconAssociations[path]; filename != "" {
		abs := filepath.Join(r.vaultRoot, filepath.FromSlash(settings.ImagesDir), filename)
		if _, err := os.Stat(abs); err == nil {
			return Decoration{Kind: DecorationCustomIcon, File: abs, Glyph: "🖼"}
		}
	}

	if emoji := r.manager.Current.EmojiMap[path]; emoji != "" {
		return Decoration{Kind: DecorationEmoji, Glyph: emoji}
	}

	return Decoration{Kind: DecorationDefault, Glyph: DefaultGlyph(path, isFolder)}
}

// DefaultGlyph returns the type-based icon for an undecorated item.
func DefaultGlyph(path string, isFolder bool) string {
	if isFolder {
		return "📁"
	}

	switch ext(path) {
	case "md", "markdown", "txt":
		return "📄"
	case "png", "jpg", "jpeg", "gif", "svg", "webp":
		return "🏞"
	case "pdf":
		return "📕"
	case "mp3", "wav", "flac", "ogg":
		return "🎵"
	case "mp4", "mov", "webm", "mkv":
		return "🎞"
	case "canvas":
		return "🗺"
	default:
		return "📎"
	}
}

func ext(path string) string {
	base := filepath.Base(path)
	idx := strings.LastIndex(base, ".")
	if idx <= 0 {
		return ""
	}
	return strings.ToLower(base[idx+1:])
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeName reduces an uploaded image name to filesystem-safe characters.
func SanitizeName(name string) string {
	sanitized := unsafeChars.ReplaceAllString(name, "-")
	sanitized = strings.Trim(sanitized, "-.")
	if sanitized == "" {
		sanitized = "icon"
	}
	return sanitized
}

// StoreImage writes icon image data under the vault's images directory with a
// content-addressed filename and returns that filename for the association
// record.
func StoreImage(vaultRoot, originalName string, data []byte) (string, error) {
	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), SanitizeName(originalName))

	dir := filepath.Join(vaultRoot, filepath.FromSlash(settings.ImagesDir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}
