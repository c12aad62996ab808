package explorer

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/pathutil"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/settings"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/vault"
)

// Ops executes vault mutations on behalf of the view. Every operation
// validates before any store call and reports which folders need a refresh;
// in-memory settings mutate only after the store confirms the change.
type Ops struct {
	store   vault.Store
	manager *settings.Manager
}

func NewOps(store vault.Store, manager *settings.Manager) *Ops {
	return &Ops{store: store, manager: manager}
}

// Result tells the caller what to reconcile after a successful operation.
type Result struct {
	RefreshFolders []string
	SelectPath     string
	SelectIsFolder bool
}

// ValidateName rejects empty names and names that cannot form a single path
// segment.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return invalidName(name)
	}
	if strings.ContainsAny(trimmed, "/\\\x00") || trimmed == "." || trimmed == ".." {
		return invalidName(name)
	}
	return nil
}

// CreateFile creates a file under folder, suffixing the name when it
// collides. New markdown files are seeded from the template when one is
// configured.
func (o *Ops) CreateFile(folder, name string) (Result, error) {
	if err := ValidateName(name); err != nil {
		return Result{}, err
	}
	if !o.store.Exists(folder) {
		return Result{}, notFound(folder)
	}

	path := vault.UniqueName(o.store, folder, strings.TrimSpace(name))

	var content []byte
	if tpl := o.manager.Current.TemplatePath; tpl != "" && pathutil.Ext(path) == "md" {
		if data, err := o.store.Read(tpl); err == nil {
			content = data
		}
	}

	if err := o.store.Write(path, content); err != nil {
		return Result{}, storageFailure(err)
	}

	return Result{
		RefreshFolders: []string{folder},
		SelectPath:     path,
	}, nil
}

// CreateFolder creates a subfolder, suffixing the name when it collides.
func (o *Ops) CreateFolder(folder, name string) (Result, error) {
	if err := ValidateName(name); err != nil {
		return Result{}, err
	}
	if !o.store.Exists(folder) {
		return Result{}, notFound(folder)
	}

	path := vault.UniqueName(o.store, folder, strings.TrimSpace(name))
	if err := o.store.Mkdir(path); err != nil {
		return Result{}, storageFailure(err)
	}

	return Result{
		RefreshFolders: []string{folder},
		SelectPath:     path,
		SelectIsFolder: true,
	}, nil
}

// Rename gives an item a new name inside its current folder. Collisions
// abort before any mutation.
func (o *Ops) Rename(path string, newName string) (Result, error) {
	if err := ValidateName(newName); err != nil {
		return Result{}, err
	}

	node, err := o.store.Stat(path)
	if err != nil {
		return Result{}, notFound(path)
	}

	parent := pathutil.Parent(path)
	newPath := pathutil.Join(parent, strings.TrimSpace(newName))
	if newPath == node.Path {
		return Result{RefreshFolders: []string{parent}, SelectPath: path, SelectIsFolder: node.IsFolder()}, nil
	}
	if o.store.Exists(newPath) {
		return Result{}, nameCollision(newPath)
	}

	if err := o.store.Move(path, newPath); err != nil {
		return Result{}, storageFailure(err)
	}
	if err := o.manager.RenamePath(path, newPath); err != nil {
		return Result{}, err
	}

	return Result{
		RefreshFolders: []string{parent},
		SelectPath:     newPath,
		SelectIsFolder: node.IsFolder(),
	}, nil
}

// Move relocates an item into targetFolder. Self-moves, moves into the
// current parent, cycles, and name collisions are rejected before any store
// call.
func (o *Ops) Move(sourcePath, targetFolder string) (Result, error) {
	source, err := o.store.Stat(sourcePath)
	if err != nil {
		return Result{}, notFound(sourcePath)
	}
	target, err := o.store.Stat(targetFolder)
	if err != nil || !target.IsFolder() {
		return Result{}, notFound(targetFolder)
	}

	oldParent := pathutil.Parent(source.Path)
	if target.Path == oldParent {
		return Result{}, nil
	}
	if target.Path == source.Path ||
		(source.IsFolder() && pathutil.IsAncestor(source.Path, target.Path)) {
		return Result{}, cyclicMove(source.Path, target.Path)
	}

	newPath := pathutil.Join(target.Path, source.Name)
	if o.store.Exists(newPath) {
		return Result{}, nameCollision(newPath)
	}

	if err := o.store.Move(source.Path, newPath); err != nil {
		return Result{}, storageFailure(err)
	}
	if err := o.manager.RenamePath(source.Path, newPath); err != nil {
		return Result{}, err
	}

	return Result{
		RefreshFolders: []string{oldParent, target.Path},
		SelectPath:     newPath,
		SelectIsFolder: source.IsFolder(),
	}, nil
}

// Delete moves an item to the trash.
func (o *Ops) Delete(path string) (Result, error) {
	node, err := o.store.Stat(path)
	if err != nil {
		return Result{}, notFound(path)
	}

	if err := o.store.Trash(node.Path); err != nil {
		return Result{}, storageFailure(err)
	}

	return Result{RefreshFolders: []string{pathutil.Parent(node.Path)}}, nil
}

// ImportFiles copies OS files into targetFolder, suffixing names that
// collide. Unreadable sources are skipped; the rest still import.
func (o *Ops) ImportFiles(targetFolder string, osPaths []string) (Result, error) {
	target, err := o.store.Stat(targetFolder)
	if err != nil || !target.IsFolder() {
		return Result{}, notFound(targetFolder)
	}

	var lastImported string
	for _, osPath := range osPaths {
		data, err := os.ReadFile(osPath)
		if err != nil {
			continue
		}
		dest := vault.UniqueName(o.store, target.Path, filepath.Base(osPath))
		if err := o.store.Write(dest, data); err != nil {
			return Result{}, storageFailure(err)
		}
		lastImported = dest
	}

	return Result{
		RefreshFolders: []string{target.Path},
		SelectPath:     lastImported,
	}, nil
}

// Reorder splices sourcePath immediately before or after targetPath in the
// folder's custom order, seeding from the currently displayed order when no
// custom order exists yet.
func (o *Ops) Reorder(folderPath string, displayed []string, sourcePath, targetPath string, before bool) (Result, error) {
	order := o.manager.CustomOrder(folderPath)
	if len(order) == 0 {
		order = append([]string(nil), displayed...)
	}

	without := make([]string, 0, len(order))
	for _, p := range order {
		if p != sourcePath {
			without = append(without, p)
		}
	}

	insert := -1
	for i, p := range without {
		if p == targetPath {
			insert = i
			break
		}
	}
	if insert < 0 {
		return Result{}, notFound(targetPath)
	}
	if !before {
		insert++
	}

	reordered := make([]string, 0, len(without)+1)
	reordered = append(reordered, without[:insert]...)
	reordered = append(reordered, sourcePath)
	reordered = append(reordered, without[insert:]...)

	if err := o.manager.SetCustomOrder(folderPath, reordered); err != nil {
		return Result{}, err
	}

	return Result{
		RefreshFolders: []string{folderPath},
		SelectPath:     sourcePath,
	}, nil
}
