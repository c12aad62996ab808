// Package settings owns the explorer preferences and per-item metadata
// persisted as JSON inside the vault.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/filter"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/pathutil"
)

const (
	// CanonicalPath is where settings live, relative to the vault root.
	CanonicalPath = ".notidian/file-explorer.json"

	// ImagesDir holds custom icon images, relative to the vault root.
	ImagesDir = ".notidian/images"
)

// legacyPaths are tried in priority order when the canonical file is missing.
// A successful read from any of them migrates the file to CanonicalPath.
var legacyPaths = []string{
	".notidian-file-explorer/data.json",
	".obsidian/plugins/notidian-file-explorer/data.json",
}

type Settings struct {
	ExclusionPatterns   string              `json:"exclusionPatterns"`
	TemplatePath        string              `json:"templatePath"`
	EmojiMap            map[string]string   `json:"emojiMap"`
	IconAssociations    map[string]string   `json:"iconAssociations"`
	Favorites           []string            `json:"favorites"`
	FavoritesCollapsed  bool                `json:"favoritesCollapsed"`
	CustomFolderOrder   map[string][]string `json:"customFolderOrder"`
	ColumnDisplayMode   int                 `json:"columnDisplayMode"`
	DragInitiationDelay int                 `json:"dragInitiationDelay"`
	DragFolderOpenDelay int                 `json:"dragFolderOpenDelay"`
}

func defaults() *Settings {
	return &Settings{
		EmojiMap:            make(map[string]string),
		IconAssociations:    make(map[string]string),
		CustomFolderOrder:   make(map[string][]string),
		ColumnDisplayMode:   3,
		DragInitiationDelay: 200,
		DragFolderOpenDelay: 300,
	}
}

func (s *Settings) ensureDefaults() {
	if s.EmojiMap == nil {
		s.EmojiMap = make(map[string]string)
	}
	if s.IconAssociations == nil {
		s.IconAssociations = make(map[string]string)
	}
	if s.CustomFolderOrder == nil {
		s.CustomFolderOrder = make(map[string][]string)
	}
	if s.ColumnDisplayMode != 2 && s.ColumnDisplayMode != 3 {
		s.ColumnDisplayMode = 3
	}
	if s.DragInitiationDelay < 0 {
		s.DragInitiationDelay = 0
	}
	if s.DragFolderOpenDelay < 0 {
		s.DragFolderOpenDelay = 0
	}
}

// Patterns returns the parsed exclusion patterns.
func (s *Settings) Patterns() []string {
	return filter.SplitPatterns(s.ExclusionPatterns)
}

// Equal reports whether two settings snapshots carry the same content. Used
// by the hot-reload watcher to skip redundant UI refreshes.
func (s *Settings) Equal(other *Settings) bool {
	if s == nil || other == nil {
		return s == other
	}
	return reflect.DeepEqual(*s, *other)
}

func (s *Settings) clone() *Settings {
	data, err := json.Marshal(s)
	if err != nil {
		copied := *s
		return &copied
	}
	copied := &Settings{}
	if err := json.Unmarshal(data, copied); err != nil {
		dup := *s
		return &dup
	}
	copied.ensureDefaults()
	return copied
}

// Manager owns the in-memory settings aggregate for one vault. Mutations are
// applied synchronously and persisted through an explicit Save after each one.
type Manager struct {
	vaultRoot string
	Current   *Settings
}

// Load reads settings from the canonical path, falling back through legacy
// locations. Reading from a legacy location migrates the file to the
// canonical path. A vault without settings starts from defaults.
func Load(vaultRoot string) (*Manager, error) {
	m := &Manager{vaultRoot: vaultRoot, Current: defaults()}

	candidates := append([]string{CanonicalPath}, legacyPaths...)
	for i, rel := range candidates {
		data, err := os.ReadFile(m.abs(rel))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read settings from %s: %w", rel, err)
		}

		loaded := defaults()
		if err := json.Unmarshal(data, loaded); err != nil {
			return nil, fmt.Errorf("failed to parse settings from %s: %w", rel, err)
		}
		loaded.ensureDefaults()
		m.Current = loaded

		if i > 0 {
			if err := m.Save(); err != nil {
				return nil, fmt.Errorf("failed to migrate settings to %s: %w", CanonicalPath, err)
			}
		}
		return m, nil
	}

	return m, nil
}

// Path returns the absolute location of the canonical settings file.
func (m *Manager) Path() string {
	return m.abs(CanonicalPath)
}

func (m *Manager) abs(rel string) string {
	return filepath.Join(m.vaultRoot, filepath.FromSlash(rel))
}

// Save serializes whatever the in-memory aggregate currently holds.
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m.Current, "", "  ")
	if err != nil {
		return err
	}

	path := m.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Reload re-reads the canonical file and reports whether the content differed
// from the in-memory copy. Unparseable or missing files leave state as is.
func (m *Manager) Reload() (bool, error) {
	data, err := os.ReadFile(m.Path())
	if err != nil {
		return false, err
	}

	loaded := defaults()
	if err := json.Unmarshal(data, loaded); err != nil {
		return false, err
	}
	loaded.ensureDefaults()

	if m.Current.Equal(loaded) {
		return false, nil
	}
	m.Current = loaded
	return true, nil
}

func (m *Manager) SetEmoji(path, emoji string) error {
	key := pathutil.Normalize(path)
	if emoji == "" {
		delete(m.Current.EmojiMap, key)
	} else {
		m.Current.EmojiMap[key] = emoji
	}
	return m.Save()
}

func (m *Manager) SetIcon(path, filename string) error {
	key := pathutil.Normalize(path)
	if filename == "" {
		delete(m.Current.IconAssociations, key)
	} else {
		m.Current.IconAssociations[key] = filename
	}
	return m.Save()
}

// IsFavorite reports whether path is on the favorites pinboard.
func (m *Manager) IsFavorite(path string) bool {
	key := pathutil.Normalize(path)
	for _, fav := range m.Current.Favorites {
		if fav == key {
			return true
		}
	}
	return false
}

// ToggleFavorite adds or removes path from the pinboard and reports the new
// state.
func (m *Manager) ToggleFavorite(path string) (bool, error) {
	key := pathutil.Normalize(path)
	for i, fav := range m.Current.Favorites {
		if fav == key {
			m.Current.Favorites = append(m.Current.Favorites[:i], m.Current.Favorites[i+1:]...)
			return false, m.Save()
		}
	}
	m.Current.Favorites = append(m.Current.Favorites, key)
	return true, m.Save()
}

func (m *Manager) SetFavorites(ordered []string) error {
	m.Current.Favorites = ordered
	return m.Save()
}

func (m *Manager) SetFavoritesCollapsed(collapsed bool) error {
	m.Current.FavoritesCollapsed = collapsed
	return m.Save()
}

func (m *Manager) SetCustomOrder(folderPath string, order []string) error {
	key := pathutil.Normalize(folderPath)
	if len(order) == 0 {
		delete(m.Current.CustomFolderOrder, key)
	} else {
		m.Current.CustomFolderOrder[key] = order
	}
	return m.Save()
}

// CustomOrder returns the explicit child ordering for folderPath, or nil.
func (m *Manager) CustomOrder(folderPath string) []string {
	return m.Current.CustomFolderOrder[pathutil.Normalize(folderPath)]
}

// RenamePath rewrites every per-item record referencing oldPath (or a
// descendant of it) to newPath, keeping decorations and favorites attached
// across renames and moves.
func (m *Manager) RenamePath(oldPath, newPath string) error {
	old := pathutil.Normalize(oldPath)
	updated := pathutil.Normalize(newPath)

	rewrite := func(p string) (string, bool) {
		if p == old {
			return updated, true
		}
		if strings.HasPrefix(p, old+"/") {
			return updated + strings.TrimPrefix(p, old), true
		}
		return p, false
	}

	for key, emoji := range m.Current.EmojiMap {
		if next, ok := rewrite(key); ok {
			delete(m.Current.EmojiMap, key)
			m.Current.EmojiMap[next] = emoji
		}
	}
	for key, icon := range m.Current.IconAssociations {
		if next, ok := rewrite(key); ok {
			delete(m.Current.IconAssociations, key)
			m.Current.IconAssociations[next] = icon
		}
	}
	for i, fav := range m.Current.Favorites {
		if next, ok := rewrite(fav); ok {
			m.Current.Favorites[i] = next
		}
	}
	for key, order := range m.Current.CustomFolderOrder {
		for i, child := range order {
			if next, ok := rewrite(child); ok {
				order[i] = next
			}
		}
		if next, ok := rewrite(key); ok {
			delete(m.Current.CustomFolderOrder, key)
			m.Current.CustomFolderOrder[next] = order
		}
	}

	return m.Save()
}

// Snapshot returns a deep copy for comparisons across an async boundary.
func (m *Manager) Snapshot() *Settings {
	return m.Current.clone()
}
