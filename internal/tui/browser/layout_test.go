package browser

import (
	"testing"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/explorer"
)

func testColumns() []*explorer.Column {
	root := &explorer.Column{
		FolderPath: "/",
		Depth:      0,
		Rows: []explorer.Row{
			{Path: "/docs", Name: "docs", IsFolder: true},
			{Path: "/media", Name: "media", IsFolder: true},
			{Path: "/todo.md", Name: "todo"},
		},
		Favorites: []explorer.Row{
			{Path: "/docs/plan.md", Name: "plan", Favorite: true},
			{Path: "/media", Name: "media", IsFolder: true, Favorite: true},
		},
	}
	docs := &explorer.Column{
		FolderPath: "/docs",
		Depth:      1,
		Rows: []explorer.Row{
			{Path: "/docs/plan.md", Name: "plan"},
		},
	}
	return []*explorer.Column{root, docs}
}

func TestComputeLayoutSplitsWidthAcrossVisibleColumns(t *testing.T) {
	l := computeLayout(90, 24, 3, 0, 2, false)

	if l.visible != 3 {
		t.Fatalf("visible = %d, want 3", l.visible)
	}
	if l.colWidth != 30 {
		t.Errorf("colWidth = %d, want 30", l.colWidth)
	}
	if l.previewWidth != 0 {
		t.Errorf("previewWidth = %d, want 0", l.previewWidth)
	}
}

func TestComputeLayoutReservesPreviewPane(t *testing.T) {
	l := computeLayout(90, 24, 2, 0, 2, true)

	if l.previewWidth != 30 {
		t.Errorf("previewWidth = %d, want 30", l.previewWidth)
	}
	if l.colWidth != 30 {
		t.Errorf("colWidth = %d, want 30", l.colWidth)
	}
}

func TestComputeLayoutClampsDisplayMode(t *testing.T) {
	if l := computeLayout(90, 24, 7, 0, 5, false); l.visible != 3 {
		t.Errorf("visible = %d, want 3", l.visible)
	}
	if l := computeLayout(90, 24, 0, 0, 5, false); l.visible != 2 {
		t.Errorf("visible = %d, want 2", l.visible)
	}
}

func TestComputeLayoutClampsScrollToSequence(t *testing.T) {
	l := computeLayout(90, 24, 3, 9, 4, false)
	if l.start != 1 {
		t.Errorf("start = %d, want 1", l.start)
	}

	l = computeLayout(90, 24, 3, -2, 4, false)
	if l.start != 0 {
		t.Errorf("start = %d, want 0", l.start)
	}
}

func TestHitTestRowsAccountForFavoritesBlock(t *testing.T) {
	cols := testColumns()
	l := computeLayout(90, 24, 3, 0, len(cols), false)
	offsets := map[int]int{}

	// Root column: header(2) + favorites header + 2 pins + blank = rows
	// begin at y 6.
	h := l.hitTest(2, 6, cols, false, offsets)
	if h.kind != hitRow || h.depth != 0 || h.index != 0 {
		t.Fatalf("hit = %+v, want first row of depth 0", h)
	}

	h = l.hitTest(2, 8, cols, false, offsets)
	if h.kind != hitRow || h.index != 2 {
		t.Errorf("hit = %+v, want third row", h)
	}
}

func TestHitTestFavorites(t *testing.T) {
	cols := testColumns()
	l := computeLayout(90, 24, 3, 0, len(cols), false)
	offsets := map[int]int{}

	h := l.hitTest(2, 2, cols, false, offsets)
	if h.kind != hitFavoritesHeader {
		t.Fatalf("hit = %+v, want favorites header", h)
	}

	h = l.hitTest(2, 4, cols, false, offsets)
	if h.kind != hitFavorite || h.index != 1 {
		t.Errorf("hit = %+v, want second favorite", h)
	}
}

func TestHitTestCollapsedFavoritesHidePins(t *testing.T) {
	cols := testColumns()
	l := computeLayout(90, 24, 3, 0, len(cols), false)
	offsets := map[int]int{}

	// Collapsed block: header at y 2, blank at 3, rows start at y 4.
	h := l.hitTest(2, 4, cols, true, offsets)
	if h.kind != hitRow || h.index != 0 {
		t.Errorf("hit = %+v, want first row under collapsed block", h)
	}
}

func TestHitTestSecondColumnUsesItsOwnOrigin(t *testing.T) {
	cols := testColumns()
	l := computeLayout(90, 24, 3, 0, len(cols), false)
	offsets := map[int]int{}

	h := l.hitTest(l.colWidth+1, 2, cols, false, offsets)
	if h.kind != hitRow || h.depth != 1 || h.index != 0 {
		t.Errorf("hit = %+v, want first row of depth 1", h)
	}
}

func TestHitTestRespectsRowScrollOffset(t *testing.T) {
	cols := testColumns()
	l := computeLayout(90, 24, 3, 0, len(cols), false)
	offsets := map[int]int{0: 1}

	h := l.hitTest(2, 6, cols, false, offsets)
	if h.kind != hitRow || h.index != 1 {
		t.Errorf("hit = %+v, want second row after scrolling by one", h)
	}
}

func TestHitTestBackgroundAndOutside(t *testing.T) {
	cols := testColumns()
	l := computeLayout(90, 24, 3, 0, len(cols), false)
	offsets := map[int]int{}

	h := l.hitTest(2, 15, cols, false, offsets)
	if h.kind != hitBackground || h.depth != 0 {
		t.Errorf("hit = %+v, want column background", h)
	}

	if h := l.hitTest(2, 23, cols, false, offsets); h.kind != hitNone {
		t.Errorf("status bar hit = %+v, want none", h)
	}
	if h := l.hitTest(2*l.colWidth+1, 2, cols, false, offsets); h.kind != hitNone {
		t.Errorf("empty slot hit = %+v, want none", h)
	}
}

func TestFavoritesLinesOnlyOnRoot(t *testing.T) {
	cols := testColumns()

	if got := favoritesLines(cols[0], false); got != 4 {
		t.Errorf("expanded favorites lines = %d, want 4", got)
	}
	if got := favoritesLines(cols[0], true); got != 2 {
		t.Errorf("collapsed favorites lines = %d, want 2", got)
	}
	if got := favoritesLines(cols[1], false); got != 0 {
		t.Errorf("non-root favorites lines = %d, want 0", got)
	}
}

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}
	for _, tc := range cases {
		if got := formatBytes(tc.in); got != tc.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStatsLineOmitsZeroHidden(t *testing.T) {
	line := statsLine(explorer.Stats{Folders: 2, Files: 3, Bytes: 100})
	if line != "2 folders · 3 files · 100 B" {
		t.Errorf("stats line = %q", line)
	}

	line = statsLine(explorer.Stats{Folders: 1, Files: 1, Hidden: 2, Bytes: 100})
	if line != "1 folders · 1 files · 2 hidden · 100 B" {
		t.Errorf("stats line = %q", line)
	}
}
