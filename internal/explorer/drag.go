package explorer

import (
	"time"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/pathutil"
)

// MoveThreshold is how far the pointer may travel during the initiation
// delay before the gesture stops being a drag candidate.
const MoveThreshold = 2

type GateState int

const (
	GateIdle GateState = iota
	GatePending
	GateAllowed
	GateCancelled
)

// DragGate is the per-gesture initiation delay state machine. A pointer-down
// arms it; movement beyond MoveThreshold or a pointer-up before the deadline
// cancels, so a click-and-hold can begin a rename without starting a drag.
// Zero delay permits dragging immediately.
type DragGate struct {
	state    GateState
	deadline time.Time
	originX  int
	originY  int

	SourcePath     string
	SourceIsFolder bool
	SourceDepth    int
	FromFavorites  bool
}

func (g *DragGate) PointerDown(path string, isFolder bool, depth int, fromFavorites bool, x, y int, delay time.Duration, now time.Time) {
	g.SourcePath = path
	g.SourceIsFolder = isFolder
	g.SourceDepth = depth
	g.FromFavorites = fromFavorites
	g.originX = x
	g.originY = y

	if delay <= 0 {
		g.state = GateAllowed
		return
	}
	g.state = GatePending
	g.deadline = now.Add(delay)
}

func (g *DragGate) PointerMove(x, y int, now time.Time) {
	if g.state != GatePending {
		return
	}
	if !now.Before(g.deadline) {
		g.state = GateAllowed
		return
	}
	if abs(x-g.originX) > MoveThreshold || abs(y-g.originY) > MoveThreshold {
		g.state = GateCancelled
	}
}

func (g *DragGate) PointerUp(now time.Time) {
	if g.state == GatePending {
		g.state = GateCancelled
	}
}

// Allowed reports whether a native drag may start now. A pending gate whose
// deadline has passed is promoted.
func (g *DragGate) Allowed(now time.Time) bool {
	if g.state == GatePending && !now.Before(g.deadline) {
		g.state = GateAllowed
	}
	return g.state == GateAllowed
}

func (g *DragGate) Reset() {
	*g = DragGate{}
}

func (g *DragGate) State() GateState {
	return g.state
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// SpringLoader auto-opens a folder column after the pointer hovers it during
// a drag. One timer at a time: retargeting cancels the previous candidate,
// and every committed activation cancels it outright.
type SpringLoader struct {
	explorer    *Explorer
	target      string
	targetDepth int
	deadline    time.Time
	armed       bool
}

func newSpringLoader(e *Explorer) *SpringLoader {
	return &SpringLoader{explorer: e}
}

// Hover arms the timer for a folder row unless that folder is already the
// open column at the next depth. Zero delay disables spring loading.
func (s *SpringLoader) Hover(folderPath string, depth int, delay time.Duration, now time.Time) {
	if delay <= 0 {
		s.Cancel()
		return
	}
	if next, ok := s.explorer.seq.At(depth + 1); ok && next.FolderPath == folderPath {
		s.Cancel()
		return
	}
	if s.armed && s.target == folderPath {
		return
	}
	s.target = folderPath
	s.targetDepth = depth
	s.deadline = now.Add(delay)
	s.armed = true
}

// Leave cancels the timer when the pointer leaves its target.
func (s *SpringLoader) Leave(folderPath string) {
	if s.armed && s.target == folderPath {
		s.Cancel()
	}
}

func (s *SpringLoader) Cancel() {
	s.armed = false
	s.target = ""
}

func (s *SpringLoader) Armed() bool {
	return s.armed
}

// Tick fires the open once the deadline passes, routing through the
// activation codepath so column reuse and stale trimming behave exactly like
// a click.
func (s *SpringLoader) Tick(now time.Time) (ScrollRequest, bool) {
	if !s.armed || now.Before(s.deadline) {
		return ScrollRequest{}, false
	}
	target, depth := s.target, s.targetDepth
	s.Cancel()
	return s.explorer.Activate(target, true, depth), true
}

// DropBand is where a drop landed vertically on a row. The top and bottom
// ~30% of a folder row mean reorder; the middle means move-into. Files
// reorder from either half.
type DropBand int

const (
	BandMiddle DropBand = iota
	BandTop
	BandBottom
)

// BandForPosition classifies the pointer offset within a row of the given
// height.
func BandForPosition(offsetY, rowHeight int, isFolder bool) DropBand {
	if rowHeight <= 0 {
		return BandMiddle
	}
	pos := float64(offsetY) / float64(rowHeight)
	if isFolder {
		switch {
		case pos < 0.3:
			return BandTop
		case pos > 0.7:
			return BandBottom
		default:
			return BandMiddle
		}
	}
	if pos < 0.5 {
		return BandTop
	}
	return BandBottom
}

// DropPayload identifies what is being dragged: a vault item, a favorites
// row, or an OS file list from outside the vault.
type DropPayload struct {
	SourcePath     string
	SourceIsFolder bool
	SourceDepth    int
	FromFavorites  bool
	ExternalPaths  []string
}

// DropTarget identifies where the payload landed.
type DropTarget struct {
	FolderPath  string // folder of the column under the pointer
	Depth       int
	RowPath     string // row under the pointer, "" for column background
	RowIsFolder bool
	Band        DropBand
	OnFavorites bool
}

type DropActionKind int

const (
	DropNone DropActionKind = iota
	DropMove
	DropReorder
	DropFavoritesReorder
	DropImport
)

type DropAction struct {
	Kind         DropActionKind
	SourcePath   string
	TargetFolder string // move/import destination
	TargetRow    string // reorder anchor
	Before       bool   // insert before (true) or after the anchor
}

// ResolveDrop disambiguates move vs. reorder vs. import. Self-drops and
// drops onto the item's current parent resolve to no action; a folder
// dropped into its own subtree is a CyclicMove error.
func ResolveDrop(payload DropPayload, target DropTarget) (DropAction, error) {
	if len(payload.ExternalPaths) > 0 {
		folder := target.FolderPath
		if target.RowPath != "" && target.RowIsFolder {
			folder = target.RowPath
		}
		return DropAction{Kind: DropImport, TargetFolder: folder}, nil
	}

	// Favorites payloads stay on the pinboard and vault payloads stay off it.
	if payload.FromFavorites != target.OnFavorites {
		return DropAction{}, nil
	}
	if payload.FromFavorites {
		if target.RowPath == "" || target.RowPath == payload.SourcePath {
			return DropAction{}, nil
		}
		return DropAction{
			Kind:       DropFavoritesReorder,
			SourcePath: payload.SourcePath,
			TargetRow:  target.RowPath,
			Before:     target.Band != BandBottom,
		}, nil
	}

	if payload.SourcePath == "" {
		return DropAction{}, nil
	}

	// Reorder: dropped on a sibling row's edge band within the source column.
	if target.RowPath != "" && target.Depth == payload.SourceDepth &&
		pathutil.Parent(target.RowPath) == pathutil.Parent(payload.SourcePath) {
		edge := target.Band == BandTop || target.Band == BandBottom
		if edge && target.RowPath != payload.SourcePath {
			return DropAction{
				Kind:       DropReorder,
				SourcePath: payload.SourcePath,
				TargetRow:  target.RowPath,
				Before:     target.Band == BandTop,
			}, nil
		}
		if !target.RowIsFolder {
			// Mid-row on a sibling file still means nothing else; ignore.
			return DropAction{}, nil
		}
	}

	// Move into the folder under the pointer: a folder row's middle, or the
	// column background.
	folder := target.FolderPath
	if target.RowPath != "" && target.RowIsFolder && target.Band == BandMiddle {
		folder = target.RowPath
	}

	if folder == payload.SourcePath {
		return DropAction{}, nil
	}
	if folder == pathutil.Parent(payload.SourcePath) {
		return DropAction{}, nil
	}
	if payload.SourceIsFolder && pathutil.IsAncestor(payload.SourcePath, folder) {
		return DropAction{}, cyclicMove(payload.SourcePath, folder)
	}

	return DropAction{
		Kind:         DropMove,
		SourcePath:   payload.SourcePath,
		TargetFolder: folder,
	}, nil
}

// FavoritesInsertIndex computes where a dragged favorite lands: the target's
// index, shifted by one when dropping after the anchor, and adjusted when the
// removal of the source from earlier in the list shifts the anchor left.
func FavoritesInsertIndex(favorites []string, source, target string, before bool) int {
	sourceIdx, targetIdx := -1, -1
	for i, fav := range favorites {
		switch fav {
		case source:
			sourceIdx = i
		case target:
			targetIdx = i
		}
	}
	if targetIdx < 0 {
		return -1
	}

	insert := targetIdx
	if !before {
		insert++
	}
	if sourceIdx >= 0 && sourceIdx < insert {
		insert--
	}
	return insert
}

// ReorderFavorites returns the pinboard with source moved next to target.
func ReorderFavorites(favorites []string, source, target string, before bool) []string {
	insert := FavoritesInsertIndex(favorites, source, target, before)
	if insert < 0 {
		return favorites
	}

	without := make([]string, 0, len(favorites))
	for _, fav := range favorites {
		if fav != source {
			without = append(without, fav)
		}
	}
	if insert > len(without) {
		insert = len(without)
	}

	reordered := make([]string, 0, len(favorites))
	reordered = append(reordered, without[:insert]...)
	reordered = append(reordered, source)
	reordered = append(reordered, without[insert:]...)
	return reordered
}
