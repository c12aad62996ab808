package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/explorer"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/pathutil"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	l := m.layout()
	collapsed := m.favoritesCollapsed()
	cols := m.ex.Sequence().Columns()

	// Every pane is padded to exactly colWidth so the mouse handler's
	// geometry matches what was drawn.
	pad := lipgloss.NewStyle().Width(l.colWidth).MaxWidth(l.colWidth)
	panes := make([]string, 0, l.visible+1)
	for i := 0; i < l.visible; i++ {
		depth := l.start + i
		if depth < len(cols) {
			panes = append(panes, pad.Render(m.renderColumn(l, cols[depth], collapsed)))
		} else {
			panes = append(panes, m.renderBlank(l))
		}
	}

	if l.previewWidth > 0 {
		panes = append(panes, m.renderPreviewPane(l))
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Top, panes...)
	return lipgloss.JoinVertical(lipgloss.Left, strip, m.renderStatusBar(l))
}

func (m Model) renderColumn(l layout, col *explorer.Column, collapsed bool) string {
	width := l.colWidth
	lines := make([]string, 0, l.columnHeight())

	title := pathutil.Base(col.FolderPath)
	if col.FolderPath == "/" {
		title = m.state.WorkspaceName
	}
	lines = append(lines,
		clip(titleStyle.Render(title), width),
		ruleStyle.Render(strings.Repeat("─", width)),
	)

	if col.Depth == 0 && len(col.Favorites) > 0 {
		marker := "▾"
		if collapsed {
			marker = "▸"
		}
		lines = append(lines, clip(
			favoritesHeaderStyle.Render(fmt.Sprintf("%s ★ favorites (%d)", marker, len(col.Favorites))),
			width,
		))
		if !collapsed {
			for _, fav := range col.Favorites {
				lines = append(lines, clip(
					favoriteRowStyle.Render(fmt.Sprintf(" %s %s", fav.Decoration.Glyph, fav.Name)),
					width,
				))
			}
		}
		lines = append(lines, "")
	}

	capacity := l.rowCapacity(col, collapsed)
	if col.Err != nil {
		lines = append(lines, clip(placeholderStyle.Render("folder unavailable"), width))
		for len(lines) < l.columnHeight()-statsLines {
			lines = append(lines, "")
		}
		lines = append(lines, "")
		return strings.Join(lines[:l.columnHeight()], "\n")
	}

	off := m.rowOffset[col.Depth]
	if off > len(col.Rows) {
		off = len(col.Rows)
	}
	end := off + capacity
	if end > len(col.Rows) {
		end = len(col.Rows)
	}

	focused := col.Depth == m.focus
	cursorIdx := m.clampCursor(col)
	for i := off; i < end; i++ {
		lines = append(lines, m.renderRow(col.Rows[i], width, focused && i == cursorIdx))
	}
	for len(lines) < l.columnHeight()-statsLines {
		lines = append(lines, "")
	}

	lines = append(lines, clip(statsStyle.Render(statsLine(col.Stats)), width))
	return strings.Join(lines[:l.columnHeight()], "\n")
}

func (m Model) renderRow(row explorer.Row, width int, underCursor bool) string {
	suffix := ""
	if row.IsFolder {
		suffix = " ▸"
	}
	text := fmt.Sprintf(" %s %s%s", row.Decoration.Glyph, row.Name, suffix)

	style := rowStyle
	switch {
	case m.dragging && row.Path == m.gate.SourcePath:
		style = dragRowStyle
	case row.Mark == explorer.MarkSelected:
		style = selectedRowStyle
	case row.Mark == explorer.MarkAncestor:
		style = ancestorRowStyle
	case underCursor:
		style = cursorRowStyle
	}
	return clip(style.Render(text), width)
}

func (m Model) renderBlank(l layout) string {
	blank := strings.Repeat(" ", l.colWidth)
	lines := make([]string, l.columnHeight())
	for i := range lines {
		lines[i] = blank
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderPreviewPane(l layout) string {
	content := fmt.Sprintf("%s\n%s", titleStyle.Render("Preview"), m.preview)
	return previewStyle.
		Width(l.previewWidth).
		Height(l.columnHeight()).
		MaxHeight(l.columnHeight()).
		Render(content)
}

func (m Model) renderStatusBar(l layout) string {
	switch m.mode {
	case modeCreateFile, modeCreateFolder, modeRename, modeEmoji:
		prompt := map[inputMode]string{
			modeCreateFile:   "new file",
			modeCreateFolder: "new folder",
			modeRename:       "rename",
			modeEmoji:        "emoji",
		}[m.mode]
		return clip(
			inputPromptStyle.Render(prompt+": ")+m.input.View(),
			l.width,
		)
	case modeConfirmDelete:
		return clip(
			inputPromptStyle.Render(fmt.Sprintf("move %s to trash? (y/n)", m.subject)),
			l.width,
		)
	}

	left := statusStyle.Render(m.ex.Selected())
	if m.status != "" {
		if m.statusErr {
			left = errorStatusStyle.Render(m.status)
		} else {
			left = statusStyle.Render(m.status)
		}
	}
	entries := make([]string, 0, len(m.keys.shortHelp()))
	for _, b := range m.keys.shortHelp() {
		h := b.Help()
		entries = append(entries, h.Key+" "+h.Desc)
	}
	help := helpStyle.Render(strings.Join(entries, " · "))

	gap := l.width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 1 {
		return clip(left, l.width)
	}
	return left + strings.Repeat(" ", gap) + help
}

func statsLine(s explorer.Stats) string {
	parts := []string{
		fmt.Sprintf("%d folders", s.Folders),
		fmt.Sprintf("%d files", s.Files),
	}
	if s.Hidden > 0 {
		parts = append(parts, fmt.Sprintf("%d hidden", s.Hidden))
	}
	parts = append(parts, formatBytes(s.Bytes))
	return strings.Join(parts, " · ")
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}

func clip(s string, width int) string {
	return lipgloss.NewStyle().MaxWidth(width).MaxHeight(1).Render(s)
}
