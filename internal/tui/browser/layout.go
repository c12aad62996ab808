package browser

import (
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/explorer"
)

// Vertical anatomy of one column, in terminal lines: a title, a rule under
// it, the favorites block on the root column, the rows, and a stats line
// pinned to the bottom. The final terminal line is the status bar shared by
// the whole view.
const (
	headerLines = 2
	statsLines  = 1
	statusLines = 1

	minColumnWidth = 18
)

// layout is the geometry of one frame. The view renders from it and the
// mouse handler hit-tests against it, so both always agree on where a row
// sits on screen.
type layout struct {
	width   int
	height  int
	visible int // columns on screen at once
	start   int // depth of the leftmost visible column

	colWidth     int
	columnsWidth int
	previewWidth int
}

func computeLayout(width, height, displayMode, scroll, seqLen int, previewOpen bool) layout {
	visible := displayMode
	if visible < 2 {
		visible = 2
	}
	if visible > 3 {
		visible = 3
	}

	previewWidth := 0
	if previewOpen {
		previewWidth = width / 3
	}
	columnsWidth := width - previewWidth

	colWidth := columnsWidth / visible
	if colWidth < minColumnWidth {
		colWidth = minColumnWidth
		fit := columnsWidth / colWidth
		if fit >= 1 && fit < visible {
			visible = fit
		}
	}

	start := scroll
	if start > seqLen-visible {
		start = seqLen - visible
	}
	if start < 0 {
		start = 0
	}

	return layout{
		width:        width,
		height:       height,
		visible:      visible,
		start:        start,
		colWidth:     colWidth,
		columnsWidth: colWidth * visible,
		previewWidth: previewWidth,
	}
}

func (l layout) columnHeight() int {
	return l.height - statusLines
}

// favoritesLines is how many lines the pinboard block occupies on the root
// column: a header, the pinned rows unless collapsed, and a blank spacer.
func favoritesLines(col *explorer.Column, collapsed bool) int {
	if col == nil || col.Depth != 0 || len(col.Favorites) == 0 {
		return 0
	}
	if collapsed {
		return 2
	}
	return len(col.Favorites) + 2
}

func (l layout) rowsTop(col *explorer.Column, collapsed bool) int {
	return headerLines + favoritesLines(col, collapsed)
}

// rowCapacity is how many rows fit in a column before it scrolls.
func (l layout) rowCapacity(col *explorer.Column, collapsed bool) int {
	capacity := l.columnHeight() - l.rowsTop(col, collapsed) - statsLines
	if capacity < 1 {
		capacity = 1
	}
	return capacity
}

type hitKind int

const (
	hitNone hitKind = iota
	hitRow
	hitFavorite
	hitFavoritesHeader
	hitBackground
	hitPreview
)

type hit struct {
	kind  hitKind
	depth int
	index int // into col.Rows or col.Favorites
}

// hitTest maps a terminal cell to what the frame drew there.
func (l layout) hitTest(x, y int, cols []*explorer.Column, collapsed bool, rowOffset map[int]int) hit {
	if x < 0 || y < 0 || y >= l.columnHeight() {
		return hit{kind: hitNone}
	}
	if x >= l.columnsWidth {
		if l.previewWidth > 0 && x < l.width {
			return hit{kind: hitPreview}
		}
		return hit{kind: hitNone}
	}

	depth := l.start + x/l.colWidth
	if depth < 0 || depth >= len(cols) {
		return hit{kind: hitNone}
	}
	col := cols[depth]

	if col.Depth == 0 && len(col.Favorites) > 0 {
		if y == headerLines {
			return hit{kind: hitFavoritesHeader, depth: depth}
		}
		if !collapsed {
			favIdx := y - headerLines - 1
			if favIdx >= 0 && favIdx < len(col.Favorites) {
				return hit{kind: hitFavorite, depth: depth, index: favIdx}
			}
		}
	}

	top := l.rowsTop(col, collapsed)
	if y >= top && y < top+l.rowCapacity(col, collapsed) {
		idx := y - top + rowOffset[depth]
		if idx >= 0 && idx < len(col.Rows) {
			return hit{kind: hitRow, depth: depth, index: idx}
		}
	}
	return hit{kind: hitBackground, depth: depth}
}
