package vault

import "github.com/ctwhome/notidian-file-explorer-sub000/internal/pathutil"

type Kind int

const (
	KindFile Kind = iota
	KindFolder
)

// Node is a read-only snapshot of one file or folder in the vault. Paths are
// vault-relative, slash-normalized, root "/".
type Node struct {
	Path      string
	Name      string
	Kind      Kind
	Size      int64  // files only
	Extension string // files only, lowered, no dot
}

func (n Node) IsFolder() bool {
	return n.Kind == KindFolder
}

func FileNode(path string, size int64) Node {
	normalized := pathutil.Normalize(path)
	return Node{
		Path:      normalized,
		Name:      pathutil.Base(normalized),
		Kind:      KindFile,
		Size:      size,
		Extension: pathutil.Ext(normalized),
	}
}

func FolderNode(path string) Node {
	normalized := pathutil.Normalize(path)
	return Node{
		Path: normalized,
		Name: pathutil.Base(normalized),
		Kind: KindFolder,
	}
}
