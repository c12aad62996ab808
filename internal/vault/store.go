// Package vault provides access to the document tree the explorer displays.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/pathutil"
)

// TrashDir is where deleted items are moved, preserving their subpath.
const TrashDir = ".trash"

// Store abstracts the vault filesystem. All paths are vault-relative and
// slash-normalized; implementations own path mapping to real storage.
type Store interface {
	List(folderPath string) ([]Node, error)
	Stat(path string) (Node, error)
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
	Mkdir(path string) error
	Move(oldPath, newPath string) error
	Trash(path string) error
	Exists(path string) bool
}

// DirStore implements Store over a directory on the local filesystem.
type DirStore struct {
	root string
}

func NewDirStore(root string) *DirStore {
	return &DirStore{root: filepath.Clean(root)}
}

// Root returns the absolute directory backing the store.
func (s *DirStore) Root() string {
	return s.root
}

// Abs maps a vault path to its location on disk.
func (s *DirStore) Abs(path string) string {
	normalized := pathutil.Normalize(path)
	if normalized == "/" {
		return s.root
	}
	return filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(normalized, "/")))
}

// Rel maps an absolute disk path back into the vault, or returns false when
// the path lies outside it.
func (s *DirStore) Rel(abs string) (string, bool) {
	rel, err := filepath.Rel(s.root, abs)
	if err != nil {
		return "", false
	}
	slashed := filepath.ToSlash(rel)
	if slashed == "." {
		return "/", true
	}
	if strings.HasPrefix(slashed, "..") {
		return "", false
	}
	return "/" + slashed, true
}

func (s *DirStore) List(folderPath string) ([]Node, error) {
	folder := pathutil.Normalize(folderPath)
	entries, err := os.ReadDir(s.Abs(folder))
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, 0, len(entries))
	for _, entry := range entries {
		child := pathutil.Join(folder, entry.Name())
		if entry.IsDir() {
			nodes = append(nodes, FolderNode(child))
			continue
		}
		var size int64
		if info, err := entry.Info(); err == nil {
			size = info.Size()
		}
		nodes = append(nodes, FileNode(child, size))
	}

	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Path < nodes[j].Path })
	return nodes, nil
}

func (s *DirStore) Stat(path string) (Node, error) {
	info, err := os.Stat(s.Abs(path))
	if err != nil {
		return Node{}, err
	}
	if info.IsDir() {
		return FolderNode(path), nil
	}
	return FileNode(path, info.Size()), nil
}

func (s *DirStore) Read(path string) ([]byte, error) {
	return os.ReadFile(s.Abs(path))
}

func (s *DirStore) Write(path string, data []byte) error {
	abs := s.Abs(path)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return err
	}
	return os.WriteFile(abs, data, 0o644)
}

func (s *DirStore) Mkdir(path string) error {
	return os.MkdirAll(s.Abs(path), 0o755)
}

func (s *DirStore) Move(oldPath, newPath string) error {
	dest := s.Abs(newPath)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.Rename(s.Abs(oldPath), dest)
}

// Trash moves an item under the trash directory, preserving its subpath so it
// can be restored later.
func (s *DirStore) Trash(path string) error {
	normalized := pathutil.Normalize(path)
	trashed := pathutil.Join("/"+TrashDir, strings.TrimPrefix(normalized, "/"))

	dest := s.Abs(trashed)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	// A previously trashed item of the same name would block the rename.
	if _, err := os.Stat(dest); err == nil {
		dest = s.Abs(UniqueName(s, pathutil.Parent(trashed), pathutil.Base(trashed)))
	}

	return os.Rename(s.Abs(normalized), dest)
}

func (s *DirStore) Exists(path string) bool {
	_, err := os.Stat(s.Abs(path))
	return err == nil
}

// UniqueName returns a child path under folder that does not collide with an
// existing item, suffixing " 1", " 2", ... before the extension.
func UniqueName(store Store, folder, base string) string {
	candidate := pathutil.Join(folder, base)
	if !store.Exists(candidate) {
		return candidate
	}

	stem, ext := splitName(base)
	for i := 1; ; i++ {
		candidate = pathutil.Join(folder, fmt.Sprintf("%s %d%s", stem, i, ext))
		if !store.Exists(candidate) {
			return candidate
		}
	}
}

func splitName(base string) (stem, ext string) {
	idx := strings.LastIndex(base, ".")
	if idx <= 0 {
		return base, ""
	}
	return base[:idx], base[idx:]
}
