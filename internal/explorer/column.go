// Package explorer implements the column-view state machine: rendering one
// folder per column, the selection path across columns, in-place refresh, and
// drag reconciliation.
package explorer

import (
	"sort"
	"strings"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/filter"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/icons"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/settings"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/vault"
)

// DrawingSuffix is the compound extension whose files display without it.
const DrawingSuffix = ".excalidraw.md"

type Mark int

const (
	MarkNone Mark = iota
	MarkAncestor
	MarkSelected
)

// Row is one rendered item inside a column.
type Row struct {
	Path       string
	Name       string
	IsFolder   bool
	Size       int64
	Decoration icons.Decoration
	Favorite   bool
	Mark       Mark
}

// Stats summarizes a folder's children after exclusion filtering. Dotfiles
// count toward Hidden and Bytes even though they are not rendered.
type Stats struct {
	Folders int
	Files   int
	Hidden  int
	Bytes   int64
}

// Column is the rendered view of one folder at a fixed depth. A column whose
// folder failed to resolve carries Err and renders as a placeholder rather
// than failing the view.
type Column struct {
	FolderPath string
	Depth      int
	Rows       []Row
	Favorites  []Row // depth 0 only
	Stats      Stats
	Err        error
}

// RowAt returns the row with the given path, if present.
func (c *Column) RowAt(path string) (*Row, bool) {
	for i := range c.Rows {
		if c.Rows[i].Path == path {
			return &c.Rows[i], true
		}
	}
	return nil, false
}

// Renderer builds columns from vault snapshots, consulting the exclusion
// filter, custom ordering, decorations, and the favorites pinboard.
type Renderer struct {
	store    vault.Store
	manager  *settings.Manager
	resolver *icons.Resolver
}

func NewRenderer(store vault.Store, manager *settings.Manager, resolver *icons.Resolver) *Renderer {
	return &Renderer{store: store, manager: manager, resolver: resolver}
}

// Render produces the column for folderPath at depth. Paths that no longer
// resolve to a folder yield a placeholder column, never an error value.
func (r *Renderer) Render(folderPath string, depth int) *Column {
	col := &Column{FolderPath: folderPath, Depth: depth}

	node, err := r.store.Stat(folderPath)
	if err != nil {
		col.Err = notFound(folderPath)
		return col
	}
	if !node.IsFolder() {
		col.Err = notFound(folderPath)
		return col
	}

	children, err := r.store.List(folderPath)
	if err != nil {
		col.Err = storageFailure(err)
		return col
	}

	patterns := r.manager.Current.Patterns()

	var folders, files []vault.Node
	for _, child := range children {
		if filter.IsExcluded(child.Path, patterns) {
			continue
		}
		if child.IsFolder() {
			folders = append(folders, child)
		} else {
			files = append(files, child)
		}
	}

	// Stats reflect the post-exclusion child set, dotfiles included; the
	// hidden-file convention only drops them from the rendered list.
	col.Stats.Folders = len(folders)
	for _, f := range files {
		col.Stats.Files++
		col.Stats.Bytes += f.Size
		if strings.HasPrefix(f.Name, ".") {
			col.Stats.Hidden++
		}
	}

	visible := files[:0]
	for _, f := range files {
		if strings.HasPrefix(f.Name, ".") {
			continue
		}
		visible = append(visible, f)
	}
	files = visible

	order := r.manager.CustomOrder(folderPath)
	sortNodes(folders, order)
	sortNodes(files, order)

	col.Rows = make([]Row, 0, len(folders)+len(files))
	for _, n := range folders {
		col.Rows = append(col.Rows, r.row(n))
	}
	for _, n := range files {
		col.Rows = append(col.Rows, r.row(n))
	}

	if depth == 0 {
		col.Favorites = r.renderFavorites()
	}

	return col
}

func (r *Renderer) row(n vault.Node) Row {
	return Row{
		Path:       n.Path,
		Name:       DisplayName(n),
		IsFolder:   n.IsFolder(),
		Size:       n.Size,
		Decoration: r.resolver.Resolve(n.Path, n.IsFolder()),
		Favorite:   r.manager.IsFavorite(n.Path),
	}
}

// renderFavorites keeps only favorites that still resolve, preserving the
// pinboard's stored order.
func (r *Renderer) renderFavorites() []Row {
	var rows []Row
	for _, fav := range r.manager.Current.Favorites {
		node, err := r.store.Stat(fav)
		if err != nil {
			continue
		}
		row := r.row(node)
		row.Favorite = true
		rows = append(rows, row)
	}
	return rows
}

// DisplayName returns what a row shows: the folder name, or the file basename
// with the compound drawing extension stripped.
func DisplayName(n vault.Node) string {
	if n.IsFolder() {
		return n.Name
	}
	if strings.HasSuffix(strings.ToLower(n.Name), DrawingSuffix) {
		return n.Name[:len(n.Name)-len(DrawingSuffix)]
	}
	return n.Name
}

// sortNodes orders a single group (folders or files). Items present in the
// custom order list come first, by list index; the rest sort alphabetically
// after them.
func sortNodes(nodes []vault.Node, customOrder []string) {
	indexOf := make(map[string]int, len(customOrder))
	for i, p := range customOrder {
		indexOf[p] = i
	}

	sort.SliceStable(nodes, func(i, j int) bool {
		oi, iOK := indexOf[nodes[i].Path]
		oj, jOK := indexOf[nodes[j].Path]
		switch {
		case iOK && jOK:
			return oi < oj
		case iOK:
			return true
		case jOK:
			return false
		default:
			return lessName(nodes[i].Name, nodes[j].Name)
		}
	})
}

// lessName compares display names case-insensitively with a case-sensitive
// tie-break, approximating locale-aware ordering.
func lessName(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}
