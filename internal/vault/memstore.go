package vault

import (
	"os"
	"sort"
	"strings"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/pathutil"
)

// MemStore is an in-memory Store used by tests and by the external-import
// dry-run path. Folders exist explicitly; the root always exists.
type MemStore struct {
	files   map[string][]byte
	folders map[string]bool
}

func NewMemStore() *MemStore {
	return &MemStore{
		files:   make(map[string][]byte),
		folders: map[string]bool{"/": true},
	}
}

// AddFile creates the file and any missing parent folders.
func (s *MemStore) AddFile(path string, data []byte) {
	normalized := pathutil.Normalize(path)
	s.ensureParents(normalized)
	s.files[normalized] = data
}

// AddFolder creates the folder and any missing parents.
func (s *MemStore) AddFolder(path string) {
	normalized := pathutil.Normalize(path)
	s.ensureParents(normalized)
	s.folders[normalized] = true
}

func (s *MemStore) ensureParents(path string) {
	for parent := pathutil.Parent(path); ; parent = pathutil.Parent(parent) {
		s.folders[parent] = true
		if parent == "/" {
			break
		}
	}
}

func (s *MemStore) List(folderPath string) ([]Node, error) {
	folder := pathutil.Normalize(folderPath)
	if !s.folders[folder] {
		return nil, os.ErrNotExist
	}

	var nodes []Node
	for p := range s.folders {
		if p != folder && pathutil.Parent(p) == folder {
			nodes = append(nodes, FolderNode(p))
		}
	}
	for p, data := range s.files {
		if pathutil.Parent(p) == folder {
			nodes = append(nodes, FileNode(p, int64(len(data))))
		}
	}

	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Path < nodes[j].Path })
	return nodes, nil
}

func (s *MemStore) Stat(path string) (Node, error) {
	normalized := pathutil.Normalize(path)
	if s.folders[normalized] {
		return FolderNode(normalized), nil
	}
	if data, ok := s.files[normalized]; ok {
		return FileNode(normalized, int64(len(data))), nil
	}
	return Node{}, os.ErrNotExist
}

func (s *MemStore) Read(path string) ([]byte, error) {
	data, ok := s.files[pathutil.Normalize(path)]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func (s *MemStore) Write(path string, data []byte) error {
	s.AddFile(path, data)
	return nil
}

func (s *MemStore) Mkdir(path string) error {
	s.AddFolder(path)
	return nil
}

func (s *MemStore) Move(oldPath, newPath string) error {
	old := pathutil.Normalize(oldPath)
	dest := pathutil.Normalize(newPath)

	if data, ok := s.files[old]; ok {
		delete(s.files, old)
		s.AddFile(dest, data)
		return nil
	}

	if !s.folders[old] {
		return os.ErrNotExist
	}

	delete(s.folders, old)
	s.AddFolder(dest)

	// Collect first: inserting renamed keys while ranging could visit them.
	prefix := old + "/"
	var movedFolders, movedFiles []string
	for p := range s.folders {
		if strings.HasPrefix(p, prefix) {
			movedFolders = append(movedFolders, p)
		}
	}
	for p := range s.files {
		if strings.HasPrefix(p, prefix) {
			movedFiles = append(movedFiles, p)
		}
	}

	for _, p := range movedFolders {
		delete(s.folders, p)
		s.folders[dest+"/"+strings.TrimPrefix(p, prefix)] = true
	}
	for _, p := range movedFiles {
		data := s.files[p]
		delete(s.files, p)
		s.files[dest+"/"+strings.TrimPrefix(p, prefix)] = data
	}
	return nil
}

func (s *MemStore) Trash(path string) error {
	normalized := pathutil.Normalize(path)
	trashed := pathutil.Join("/"+TrashDir, strings.TrimPrefix(normalized, "/"))
	if s.Exists(trashed) {
		trashed = UniqueName(s, pathutil.Parent(trashed), pathutil.Base(trashed))
	}
	return s.Move(normalized, trashed)
}

func (s *MemStore) Exists(path string) bool {
	normalized := pathutil.Normalize(path)
	if s.folders[normalized] {
		return true
	}
	_, ok := s.files[normalized]
	return ok
}
