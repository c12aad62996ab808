package explorer

import (
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/pathutil"
)

// ScrollRequest asks the view to bring a column's edge into sight with a
// small margin; the scroll itself is animated and non-blocking.
type ScrollRequest struct {
	TargetDepth int
}

// Explorer owns the column sequence and the selection path. Activate is the
// single drill-down codepath: clicks, Enter/ArrowRight, post-create
// selection, and post-drop re-selection all land here with the same pair.
type Explorer struct {
	renderer *Renderer
	seq      Sequence
	selected string // path of the final-selected item, "" when none

	// spring is cancelled at the start of every activation: last committed
	// navigation wins over a pending spring-load open.
	spring *SpringLoader
}

func New(renderer *Renderer) *Explorer {
	e := &Explorer{renderer: renderer}
	e.spring = newSpringLoader(e)
	return e
}

// OpenRoot renders depth 0 and resets all navigation.
func (e *Explorer) OpenRoot() *Column {
	e.selected = ""
	root := e.renderer.Render("/", 0)
	e.seq.Reset(root)
	return root
}

func (e *Explorer) Sequence() *Sequence {
	return &e.seq
}

func (e *Explorer) Selected() string {
	return e.selected
}

// Spring exposes the spring-load timer owned by this explorer.
func (e *Explorer) Spring() *SpringLoader {
	return e.spring
}

// Activate marks the item at depth as final-selected, rebuilds the ancestor
// chain, and opens or trims columns to the right.
func (e *Explorer) Activate(path string, isFolder bool, depth int) ScrollRequest {
	e.spring.Cancel()

	col, ok := e.seq.At(depth)
	if !ok {
		return ScrollRequest{TargetDepth: e.seq.Len() - 1}
	}

	e.clearMarks()
	e.selected = path
	if row, ok := col.RowAt(path); ok {
		row.Mark = MarkSelected
	}
	e.markAncestors(depth)

	if isFolder {
		if next, ok := e.seq.At(depth + 1); ok && next.FolderPath == path {
			// Already showing this folder: leave it and everything deeper
			// untouched so deep navigation survives re-activation.
			return ScrollRequest{TargetDepth: depth + 1}
		}
		e.seq.TrimAfter(depth)
		e.seq.Append(e.renderer.Render(path, depth+1))
		return ScrollRequest{TargetDepth: depth + 1}
	}

	// Files are terminal.
	e.seq.TrimAfter(depth)
	return ScrollRequest{TargetDepth: depth}
}

// Reveal navigates to an arbitrary path by activating each ancestor in turn,
// then the item itself. Used by favorites clicks and quick-open.
func (e *Explorer) Reveal(path string, isFolder bool) ScrollRequest {
	segments := pathutil.SplitSegments(path)
	if len(segments) == 0 {
		e.OpenRoot()
		return ScrollRequest{TargetDepth: 0}
	}

	if e.seq.Len() == 0 {
		e.OpenRoot()
	}

	req := ScrollRequest{TargetDepth: 0}
	current := ""
	for i, segment := range segments {
		current += "/" + segment
		last := i == len(segments)-1
		folder := !last || isFolder
		req = e.Activate(current, folder, i)
	}
	return req
}

func (e *Explorer) clearMarks() {
	for _, col := range e.seq.Columns() {
		for i := range col.Rows {
			col.Rows[i].Mark = MarkNone
		}
		for i := range col.Favorites {
			col.Favorites[i].Mark = MarkNone
		}
	}
}

// markAncestors walks columns depth-1..0 and marks, in each, the row whose
// path matches the folder shown by the column to its right. Missing rows are
// skipped without failing; a later refresh corrects the transient state.
func (e *Explorer) markAncestors(depth int) {
	for i := depth - 1; i >= 0; i-- {
		col, ok := e.seq.At(i)
		if !ok {
			continue
		}
		next, ok := e.seq.At(i + 1)
		if !ok {
			continue
		}
		if row, ok := col.RowAt(next.FolderPath); ok {
			row.Mark = MarkAncestor
		}
	}
}

// Refresh re-renders the live column for folderPath in place, at the same
// depth and position. Not visible: no-op — never a full reset, that would
// destroy unrelated navigation state. The live column is re-resolved on
// every call rather than through a cached handle.
func (e *Explorer) Refresh(folderPath string) *Column {
	index, _ := e.seq.ByFolder(folderPath)
	if index < 0 {
		return nil
	}

	fresh := e.renderer.Render(folderPath, index)
	e.seq.replaceAt(index, fresh)

	// A refresh can reveal that the next column's folder no longer exists
	// under this one (deleted or moved away); stale trailing columns are
	// removed to restore the path invariant.
	if next, ok := e.seq.At(index + 1); ok {
		if _, stillChild := fresh.RowAt(next.FolderPath); !stillChild {
			e.seq.TrimAfter(index)
		}
	}

	e.restoreMarks()
	return fresh
}

// restoreMarks reapplies selection markers after a refresh replaced row
// instances.
func (e *Explorer) restoreMarks() {
	e.clearMarks()
	if e.selected == "" {
		return
	}
	for _, col := range e.seq.Columns() {
		if row, ok := col.RowAt(e.selected); ok {
			row.Mark = MarkSelected
			e.markAncestors(col.Depth)
			return
		}
	}
}

// DropColumnsFor removes columns whose backing folder was deleted externally,
// trimming from the shallowest affected depth.
func (e *Explorer) DropColumnsFor(deletedPath string) {
	for i, col := range e.seq.Columns() {
		if pathutil.IsAncestor(deletedPath, col.FolderPath) {
			e.seq.TrimAfter(i - 1)
			return
		}
	}
}
