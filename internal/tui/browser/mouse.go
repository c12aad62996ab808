package browser

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/explorer"
)

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeBrowse {
		return m, nil
	}

	now := time.Now()
	l := m.layout()
	cols := m.ex.Sequence().Columns()
	collapsed := m.favoritesCollapsed()
	h := l.hitTest(msg.X, msg.Y, cols, collapsed, m.rowOffset)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m.scrollRows(h, -1), nil
		case tea.MouseButtonWheelDown:
			return m.scrollRows(h, 1), nil
		case tea.MouseButtonLeft:
			return m.handlePress(h, msg, now)
		}
		return m, nil

	case tea.MouseActionMotion:
		return m.handleMotion(h, msg, now)

	case tea.MouseActionRelease:
		if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone {
			return m.handleRelease(h, msg, now)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handlePress(h hit, msg tea.MouseMsg, now time.Time) (tea.Model, tea.Cmd) {
	m.pointerDown = true

	switch h.kind {
	case hitFavoritesHeader:
		collapsed := m.favoritesCollapsed()
		if err := m.state.Settings.SetFavoritesCollapsed(!collapsed); err != nil {
			return m.setError(err.Error()), nil
		}
		return m, nil

	case hitRow:
		col := m.ex.Sequence().Columns()[h.depth]
		row := col.Rows[h.index]
		m.gate.PointerDown(
			row.Path, row.IsFolder, h.depth, false,
			msg.X, msg.Y,
			m.dragInitiationDelay(), now,
		)
		return m.startTicking()

	case hitFavorite:
		col := m.ex.Sequence().Columns()[h.depth]
		fav := col.Favorites[h.index]
		m.gate.PointerDown(
			fav.Path, fav.IsFolder, h.depth, true,
			msg.X, msg.Y,
			m.dragInitiationDelay(), now,
		)
		return m.startTicking()
	}

	return m, nil
}

func (m Model) handleMotion(h hit, msg tea.MouseMsg, now time.Time) (tea.Model, tea.Cmd) {
	if !m.pointerDown {
		return m, nil
	}

	m.gate.PointerMove(msg.X, msg.Y, now)
	if !m.dragging && m.gate.Allowed(now) {
		m.dragging = true
	}
	if !m.dragging {
		return m.startTicking()
	}

	// Spring-load the folder row under the drag.
	if h.kind == hitRow {
		col := m.ex.Sequence().Columns()[h.depth]
		row := col.Rows[h.index]
		if row.IsFolder && row.Path != m.gate.SourcePath {
			m.hoverFolder = row.Path
			m.ex.Spring().Hover(row.Path, h.depth, m.folderOpenDelay(), now)
			return m.startTicking()
		}
	}
	if m.hoverFolder != "" {
		m.ex.Spring().Leave(m.hoverFolder)
		m.hoverFolder = ""
	}
	return m.startTicking()
}

func (m Model) handleRelease(h hit, msg tea.MouseMsg, now time.Time) (tea.Model, tea.Cmd) {
	wasDragging := m.dragging
	gate := m.gate

	m.gate.PointerUp(now)
	m.gate.Reset()
	m.pointerDown = false
	m.dragging = false
	m.hoverFolder = ""
	m.ex.Spring().Cancel()

	if wasDragging {
		return m.completeDrop(gate, h, msg)
	}

	// A plain click.
	switch h.kind {
	case hitRow:
		col := m.ex.Sequence().Columns()[h.depth]
		m = m.activateRow(col.Rows[h.index], h.depth)
		return m.startTicking()
	case hitFavorite:
		col := m.ex.Sequence().Columns()[h.depth]
		fav := col.Favorites[h.index]
		req := m.ex.Reveal(fav.Path, fav.IsFolder)
		m = m.syncCursorToSelection()
		m = m.ensureColumnVisible(req.TargetDepth)
		m = m.refreshPreview()
		return m.startTicking()
	}
	return m, nil
}

func (m Model) completeDrop(gate explorer.DragGate, h hit, msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	payload := explorer.DropPayload{
		SourcePath:     gate.SourcePath,
		SourceIsFolder: gate.SourceIsFolder,
		SourceDepth:    gate.SourceDepth,
		FromFavorites:  gate.FromFavorites,
	}
	target, ok := m.dropTarget(payload, h, msg)
	if !ok {
		return m, nil
	}

	action, err := explorer.ResolveDrop(payload, target)
	if err != nil {
		return m.setError(err.Error()), nil
	}

	switch action.Kind {
	case explorer.DropMove:
		res, err := m.state.Ops.Move(action.SourcePath, action.TargetFolder)
		if err != nil {
			return m.setError(err.Error()), nil
		}
		m = m.applyResult(res)
		m = m.setStatus(fmt.Sprintf("moved to %s", action.TargetFolder))
		return m.startTicking()

	case explorer.DropReorder:
		col, ok := m.ex.Sequence().At(target.Depth)
		if !ok {
			return m, nil
		}
		displayed := make([]string, len(col.Rows))
		for i, r := range col.Rows {
			displayed[i] = r.Path
		}
		res, err := m.state.Ops.Reorder(
			col.FolderPath, displayed,
			action.SourcePath, action.TargetRow, action.Before,
		)
		if err != nil {
			return m.setError(err.Error()), nil
		}
		m = m.applyResult(res)
		return m.startTicking()

	case explorer.DropFavoritesReorder:
		favorites := m.state.Settings.Snapshot().Favorites
		reordered := explorer.ReorderFavorites(
			favorites, action.SourcePath, action.TargetRow, action.Before,
		)
		if err := m.state.Settings.SetFavorites(reordered); err != nil {
			return m.setError(err.Error()), nil
		}
		m.ex.Refresh("/")
		return m, nil
	}

	return m, nil
}

// dropTarget translates a terminal hit into drop coordinates. Rows are one
// cell tall, so the edge bands a pointer-height drop zone would give us come
// from the shift modifier instead: a plain drop on a folder row targets its
// middle, a shifted drop (or any drop on a sibling file) targets the edge
// facing the grab point.
func (m Model) dropTarget(payload explorer.DropPayload, h hit, msg tea.MouseMsg) (explorer.DropTarget, bool) {
	cols := m.ex.Sequence().Columns()

	switch h.kind {
	case hitRow:
		col := cols[h.depth]
		row := col.Rows[h.index]
		band := explorer.BandMiddle
		if !row.IsFolder || msg.Shift {
			band = m.edgeBandFor(payload, col, row)
		}
		return explorer.DropTarget{
			FolderPath:  col.FolderPath,
			Depth:       h.depth,
			RowPath:     row.Path,
			RowIsFolder: row.IsFolder,
			Band:        band,
		}, true

	case hitFavorite:
		col := cols[h.depth]
		fav := col.Favorites[h.index]
		band := explorer.BandTop
		if m.favoriteIndex(payload.SourcePath) < h.index {
			band = explorer.BandBottom
		}
		return explorer.DropTarget{
			FolderPath:  col.FolderPath,
			Depth:       h.depth,
			RowPath:     fav.Path,
			Band:        band,
			OnFavorites: true,
		}, true

	case hitBackground:
		col := cols[h.depth]
		return explorer.DropTarget{
			FolderPath: col.FolderPath,
			Depth:      h.depth,
		}, true
	}

	return explorer.DropTarget{}, false
}

// edgeBandFor picks the reorder edge: dropping on a row above the source
// inserts before it, on a row below inserts after.
func (m Model) edgeBandFor(payload explorer.DropPayload, col *explorer.Column, row explorer.Row) explorer.DropBand {
	srcIdx, dstIdx := -1, -1
	for i, r := range col.Rows {
		switch r.Path {
		case payload.SourcePath:
			srcIdx = i
		case row.Path:
			dstIdx = i
		}
	}
	if srcIdx >= 0 && dstIdx > srcIdx {
		return explorer.BandBottom
	}
	return explorer.BandTop
}

func (m Model) favoriteIndex(path string) int {
	for i, fav := range m.state.Settings.Snapshot().Favorites {
		if fav == path {
			return i
		}
	}
	return -1
}

func (m Model) scrollRows(h hit, delta int) Model {
	depth := h.depth
	if h.kind == hitNone || h.kind == hitPreview {
		depth = m.focus
	}
	col, ok := m.ex.Sequence().At(depth)
	if !ok {
		return m
	}
	l := m.layout()
	capacity := l.rowCapacity(col, m.favoritesCollapsed())

	off := m.rowOffset[depth] + delta
	max := len(col.Rows) - capacity
	if max < 0 {
		max = 0
	}
	if off > max {
		off = max
	}
	if off < 0 {
		off = 0
	}
	m.rowOffset[depth] = off
	return m
}
