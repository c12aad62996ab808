// Package browser is the column-view vault explorer: a horizontal strip of
// folder columns in the Finder style, driven by keyboard and mouse.
package browser

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/cache"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/explorer"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/pathutil"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/settings"
	"github.com/ctwhome/notidian-file-explorer-sub000/internal/state"
)

const tickInterval = 50 * time.Millisecond

type tickMsg time.Time

type inputMode int

const (
	modeBrowse inputMode = iota
	modeCreateFile
	modeCreateFolder
	modeRename
	modeEmoji
	modeConfirmDelete
)

type Model struct {
	state *state.State
	ex    *explorer.Explorer
	keys  *explorerKeyMap
	input textinput.Model

	mode    inputMode
	subject string // path (or folder) the active prompt applies to

	width  int
	height int

	focus     int         // depth of the column owning the keyboard cursor
	cursor    map[int]int // row index per depth
	rowOffset map[int]int // vertical scroll per depth

	scroll       int // leftmost visible depth, stepped toward scrollTarget
	scrollTarget int

	preview     string
	previewPath string
	showPreview bool
	previews    *cache.PreviewCache

	gate        explorer.DragGate
	pointerDown bool
	dragging    bool
	hoverFolder string // folder row currently under a drag, for spring leave

	status    string
	statusErr bool
	ticking   bool
}

func NewModel(s *state.State) *Model {
	renderer := explorer.NewRenderer(s.Store, s.Settings, s.Resolver)
	ex := explorer.New(renderer)
	ex.OpenRoot()

	input := textinput.New()
	input.CharLimit = 120

	return &Model{
		state:       s,
		ex:          ex,
		keys:        newExplorerKeyMap(),
		input:       input,
		cursor:      make(map[int]int),
		rowOffset:   make(map[int]int),
		showPreview: true,
		previews:    cache.NewPreviewCache(64),
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.state.Watcher.Start()}
	if m.state.SettingsWatcher != nil {
		cmds = append(cmds, m.state.SettingsWatcher.Start())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.handlePromptKey(msg)
		}
		return m.handleBrowseKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case state.VaultChangedMsg:
		return m.handleVaultChange(msg)

	case state.VaultWatcherErrMsg:
		m = m.setError(fmt.Sprintf("vault watcher: %v", msg.Err))
		return m, m.state.Watcher.Start()

	case settings.ChangedMsg:
		// Reload here rather than in the watcher goroutine, so the
		// aggregate is only mutated between Update calls.
		var cmd tea.Cmd
		if m.state.SettingsWatcher != nil {
			cmd = m.state.SettingsWatcher.Start()
		}
		changed, err := m.state.Settings.Reload()
		if err != nil {
			// Transient read/parse failures keep the in-memory copy.
			return m, cmd
		}
		if changed {
			m = m.refreshAllColumns()
			m = m.setStatus("settings reloaded")
		}
		return m, cmd

	case settings.WatcherErrMsg:
		m = m.setError(fmt.Sprintf("settings watcher: %v", msg.Err))
		if m.state.SettingsWatcher != nil {
			return m, m.state.SettingsWatcher.Start()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.scroll < m.scrollTarget {
		m.scroll++
	} else if m.scroll > m.scrollTarget {
		m.scroll--
	}

	if req, fired := m.ex.Spring().Tick(now); fired {
		m = m.ensureColumnVisible(req.TargetDepth)
	}

	if m.needsTick() {
		return m, m.tick()
	}
	m.ticking = false
	return m, nil
}

// needsTick keeps the animation loop alive only while something moves.
// A held-down pointer needs no ticks: the gate is consulted on the next
// motion event, and a release with no motion stays a click.
func (m Model) needsTick() bool {
	return m.scroll != m.scrollTarget || m.ex.Spring().Armed()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// startTicking returns the model plus a tick command when the animation loop
// is not already running.
func (m Model) startTicking() (Model, tea.Cmd) {
	if m.ticking || !m.needsTick() {
		return m, nil
	}
	m.ticking = true
	return m, m.tick()
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.up):
		return m.moveCursorAndCmd(-1)

	case key.Matches(msg, m.keys.down):
		return m.moveCursorAndCmd(1)

	case key.Matches(msg, m.keys.left):
		if m.focus > 0 {
			m.focus--
			if col, ok := m.ex.Sequence().At(m.focus); ok && len(col.Rows) > 0 {
				for i, r := range col.Rows {
					if r.Mark != explorer.MarkNone {
						m.cursor[m.focus] = i
						break
					}
				}
				m = m.activateRow(col.Rows[m.clampCursor(col)], m.focus)
			}
		}
		return m.startTicking()

	case key.Matches(msg, m.keys.right):
		row, depth, ok := m.rowUnderCursor()
		if ok && row.IsFolder {
			if next, open := m.ex.Sequence().At(depth + 1); open && next.FolderPath == row.Path {
				m.focus = depth + 1
				m.cursor[m.focus] = 0
				m = m.ensureColumnVisible(m.focus)
			} else {
				m = m.activateRow(row, depth)
			}
		}
		return m.startTicking()

	case key.Matches(msg, m.keys.open):
		if row, depth, ok := m.rowUnderCursor(); ok {
			m = m.activateRow(row, depth)
		}
		return m.startTicking()

	case key.Matches(msg, m.keys.createFile):
		return m.openPrompt(modeCreateFile, m.focusedFolder(), "name for the new file"), nil

	case key.Matches(msg, m.keys.createFolder):
		return m.openPrompt(modeCreateFolder, m.focusedFolder(), "name for the new folder"), nil

	case key.Matches(msg, m.keys.rename):
		if row, _, ok := m.rowUnderCursor(); ok {
			m = m.openPrompt(modeRename, row.Path, "new name")
			m.input.SetValue(pathutil.Base(row.Path))
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, m.keys.remove):
		if row, _, ok := m.rowUnderCursor(); ok {
			m.mode = modeConfirmDelete
			m.subject = row.Path
		}
		return m, nil

	case key.Matches(msg, m.keys.moveUp):
		return m.reorderCursorRow(-1), nil

	case key.Matches(msg, m.keys.moveDown):
		return m.reorderCursorRow(1), nil

	case key.Matches(msg, m.keys.toggleFavorite):
		if row, _, ok := m.rowUnderCursor(); ok {
			added, err := m.state.Settings.ToggleFavorite(row.Path)
			if err != nil {
				return m.setError(err.Error()), nil
			}
			m.ex.Refresh("/")
			if added {
				m = m.setStatus(fmt.Sprintf("pinned %s", row.Name))
			} else {
				m = m.setStatus(fmt.Sprintf("unpinned %s", row.Name))
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.foldFavorites):
		collapsed := m.state.Settings.Snapshot().FavoritesCollapsed
		if err := m.state.Settings.SetFavoritesCollapsed(!collapsed); err != nil {
			return m.setError(err.Error()), nil
		}
		return m, nil

	case key.Matches(msg, m.keys.setEmoji):
		if row, _, ok := m.rowUnderCursor(); ok {
			m = m.openPrompt(modeEmoji, row.Path, "emoji (empty clears)")
		}
		return m, nil

	case key.Matches(msg, m.keys.copyPath):
		if row, _, ok := m.rowUnderCursor(); ok {
			if err := clipboard.WriteAll(row.Path); err != nil {
				return m.setError(err.Error()), nil
			}
			m = m.setStatus("path copied")
		}
		return m, nil

	case key.Matches(msg, m.keys.togglePreview):
		m.showPreview = !m.showPreview
		m = m.refreshPreview()
		return m, nil
	}

	return m, nil
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeConfirmDelete {
		switch msg.String() {
		case "y", "Y":
			res, err := m.state.Ops.Delete(m.subject)
			m.mode = modeBrowse
			if err != nil {
				return m.setError(err.Error()), nil
			}
			m = m.applyResult(res)
			return m.setStatus("moved to trash"), nil
		case "n", "N", "esc":
			m.mode = modeBrowse
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.cancel):
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.submit):
		return m.submitPrompt()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitPrompt() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	mode, subject := m.mode, m.subject
	m.mode = modeBrowse
	m.input.Blur()

	var (
		res explorer.Result
		err error
	)
	switch mode {
	case modeCreateFile:
		res, err = m.state.Ops.CreateFile(subject, value)
	case modeCreateFolder:
		res, err = m.state.Ops.CreateFolder(subject, value)
	case modeRename:
		res, err = m.state.Ops.Rename(subject, value)
	case modeEmoji:
		err = m.state.Settings.SetEmoji(subject, value)
		res = explorer.Result{RefreshFolders: []string{pathutil.Parent(subject)}}
	default:
		return m, nil
	}

	if err != nil {
		return m.setError(err.Error()), nil
	}
	m = m.applyResult(res)
	return m.startTicking()
}

// applyResult re-renders the folders an operation touched and re-selects the
// item it reports, walking the activation codepath so the column chain stays
// consistent.
func (m Model) applyResult(res explorer.Result) Model {
	for _, folder := range res.RefreshFolders {
		m.ex.Refresh(folder)
	}
	if res.SelectPath != "" {
		req := m.ex.Reveal(res.SelectPath, res.SelectIsFolder)
		m = m.syncCursorToSelection()
		m = m.ensureColumnVisible(req.TargetDepth)
	} else {
		m = m.syncCursorToSelection()
	}
	m = m.refreshPreview()
	return m
}

func (m Model) moveCursorAndCmd(delta int) (tea.Model, tea.Cmd) {
	col, ok := m.ex.Sequence().At(m.focus)
	if !ok || len(col.Rows) == 0 {
		return m, nil
	}
	idx := m.clampCursor(col) + delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(col.Rows) {
		idx = len(col.Rows) - 1
	}
	m.cursor[m.focus] = idx
	m = m.activateRow(col.Rows[idx], m.focus)
	return m.startTicking()
}

func (m Model) reorderCursorRow(delta int) Model {
	col, ok := m.ex.Sequence().At(m.focus)
	if !ok || len(col.Rows) < 2 {
		return m
	}
	idx := m.clampCursor(col)
	neighbor := idx + delta
	if neighbor < 0 || neighbor >= len(col.Rows) {
		return m
	}

	displayed := make([]string, len(col.Rows))
	for i, r := range col.Rows {
		displayed[i] = r.Path
	}
	res, err := m.state.Ops.Reorder(
		col.FolderPath,
		displayed,
		col.Rows[idx].Path,
		col.Rows[neighbor].Path,
		delta < 0,
	)
	if err != nil {
		return m.setError(err.Error())
	}
	return m.applyResult(res)
}

// activateRow routes every selection through the explorer so the ancestor
// chain, trimming, and spring cancellation behave the same for keys, clicks,
// and post-operation re-selection.
func (m Model) activateRow(row explorer.Row, depth int) Model {
	req := m.ex.Activate(row.Path, row.IsFolder, depth)
	m.focus = depth
	if col, ok := m.ex.Sequence().At(depth); ok {
		for i, r := range col.Rows {
			if r.Path == row.Path {
				m.cursor[depth] = i
				break
			}
		}
	}
	m = m.ensureRowVisible(depth)
	m = m.ensureColumnVisible(req.TargetDepth)
	m = m.refreshPreview()
	return m
}

func (m Model) handleVaultChange(msg state.VaultChangedMsg) (tea.Model, tea.Cmd) {
	parent := pathutil.Parent(msg.Path)
	m.previews.Invalidate(msg.Path)

	switch msg.Op {
	case state.VaultRemoved:
		m.ex.DropColumnsFor(msg.Path)
		m.ex.Refresh(parent)
		if m.previewPath == msg.Path {
			m.preview = ""
			m.previewPath = ""
		}
	case state.VaultCreated:
		m.ex.Refresh(parent)
	case state.VaultWritten:
		m.ex.Refresh(parent)
		if m.previewPath == msg.Path {
			m = m.refreshPreview()
		}
	}

	m = m.syncCursorToSelection()
	return m, m.state.Watcher.Start()
}

// refreshAllColumns re-renders every open column in place after a settings
// change, preserving depth, order of columns, and the selection chain.
func (m Model) refreshAllColumns() Model {
	folders := make([]string, 0, m.ex.Sequence().Len())
	for _, col := range m.ex.Sequence().Columns() {
		folders = append(folders, col.FolderPath)
	}
	for _, folder := range folders {
		m.ex.Refresh(folder)
	}
	return m.syncCursorToSelection()
}

func (m Model) syncCursorToSelection() Model {
	for _, col := range m.ex.Sequence().Columns() {
		for i, r := range col.Rows {
			if r.Mark == explorer.MarkSelected {
				m.focus = col.Depth
				m.cursor[col.Depth] = i
				return m.ensureRowVisible(col.Depth)
			}
		}
	}

	// Nothing selected: clamp the cursor to whatever the focused column
	// still holds.
	if m.focus >= m.ex.Sequence().Len() {
		m.focus = m.ex.Sequence().Len() - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
	if col, ok := m.ex.Sequence().At(m.focus); ok {
		m.cursor[m.focus] = m.clampCursor(col)
	}
	return m
}

func (m Model) clampCursor(col *explorer.Column) int {
	idx := m.cursor[col.Depth]
	if idx >= len(col.Rows) {
		idx = len(col.Rows) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func (m Model) rowUnderCursor() (explorer.Row, int, bool) {
	col, ok := m.ex.Sequence().At(m.focus)
	if !ok || len(col.Rows) == 0 {
		return explorer.Row{}, 0, false
	}
	return col.Rows[m.clampCursor(col)], m.focus, true
}

func (m Model) focusedFolder() string {
	if col, ok := m.ex.Sequence().At(m.focus); ok {
		return col.FolderPath
	}
	return "/"
}

func (m Model) openPrompt(mode inputMode, subject, placeholder string) Model {
	m.mode = mode
	m.subject = subject
	m.input.SetValue("")
	m.input.Placeholder = placeholder
	m.input.Focus()
	return m
}

func (m Model) ensureColumnVisible(depth int) Model {
	l := m.layout()
	target := m.scrollTarget
	if depth < target {
		target = depth
	}
	if depth > target+l.visible-1 {
		target = depth - l.visible + 1
	}
	if target < 0 {
		target = 0
	}
	m.scrollTarget = target
	return m
}

func (m Model) ensureRowVisible(depth int) Model {
	col, ok := m.ex.Sequence().At(depth)
	if !ok {
		return m
	}
	l := m.layout()
	capacity := l.rowCapacity(col, m.favoritesCollapsed())
	idx := m.clampCursor(col)
	off := m.rowOffset[depth]
	if idx < off {
		off = idx
	}
	if idx >= off+capacity {
		off = idx - capacity + 1
	}
	if off < 0 {
		off = 0
	}
	m.rowOffset[depth] = off
	return m
}

func (m Model) layout() layout {
	snap := m.state.Settings.Snapshot()
	return computeLayout(
		m.width, m.height,
		snap.ColumnDisplayMode,
		m.scroll, m.ex.Sequence().Len(),
		m.showPreview && m.previewPath != "",
	)
}

func (m Model) favoritesCollapsed() bool {
	return m.state.Settings.Snapshot().FavoritesCollapsed
}

func (m Model) dragInitiationDelay() time.Duration {
	return time.Duration(m.state.Settings.Snapshot().DragInitiationDelay) * time.Millisecond
}

func (m Model) folderOpenDelay() time.Duration {
	return time.Duration(m.state.Settings.Snapshot().DragFolderOpenDelay) * time.Millisecond
}

func (m Model) refreshPreview() Model {
	path := m.ex.Selected()
	if !m.showPreview || path == "" {
		m.preview = ""
		m.previewPath = ""
		return m
	}
	if row, ok := m.selectedRow(); !ok || row.IsFolder {
		m.preview = ""
		m.previewPath = ""
		return m
	}

	if rendered, ok := m.previews.Get(path); ok {
		m.preview = rendered
		m.previewPath = path
		return m
	}

	l := m.layout()
	width := l.previewWidth
	if width == 0 {
		width = m.width / 3
	}
	rendered := renderPreview(m.state.Store, path, width-2)
	m.previews.Put(path, rendered)
	m.preview = rendered
	m.previewPath = path
	return m
}

func (m Model) selectedRow() (explorer.Row, bool) {
	for _, col := range m.ex.Sequence().Columns() {
		if row, ok := col.RowAt(m.ex.Selected()); ok && row.Mark == explorer.MarkSelected {
			return *row, true
		}
	}
	return explorer.Row{}, false
}

func (m Model) setStatus(msg string) Model {
	m.status = msg
	m.statusErr = false
	return m
}

func (m Model) setError(msg string) Model {
	m.status = msg
	m.statusErr = true
	return m
}

// Run starts the explorer TUI over the given state and blocks until it
// exits.
func Run(s *state.State) error {
	m := NewModel(s)
	defer s.Close()

	if _, err := tea.NewProgram(
		m,
		tea.WithInput(os.Stdin),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run(); err != nil {
		if strings.Contains(err.Error(), "resource temporarily unavailable") {
			os.Exit(0)
		} else {
			log.Fatalf("Error running program: %v", err)
		}
	}
	return nil
}
