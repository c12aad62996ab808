package explorer

// Sequence is the explicit index of live columns, ordered by depth. Column
// identity is the entry in this slice, not any rendered artifact; lookups go
// through it rather than over a rendering tree. Invariant: columns[i].Depth
// == i, and each column's folder is a child of the previous column's folder.
type Sequence struct {
	columns []*Column
}

func (s *Sequence) Len() int {
	return len(s.columns)
}

func (s *Sequence) Columns() []*Column {
	return s.columns
}

// At returns the column at depth, if one is live.
func (s *Sequence) At(depth int) (*Column, bool) {
	if depth < 0 || depth >= len(s.columns) {
		return nil, false
	}
	return s.columns[depth], true
}

// ByFolder locates the live column displaying folderPath. Index -1 when the
// folder is not currently visible.
func (s *Sequence) ByFolder(folderPath string) (int, *Column) {
	for i, col := range s.columns {
		if col.FolderPath == folderPath {
			return i, col
		}
	}
	return -1, nil
}

// TrimAfter removes every column deeper than depth.
func (s *Sequence) TrimAfter(depth int) {
	if depth < -1 {
		depth = -1
	}
	if depth+1 < len(s.columns) {
		s.columns = s.columns[:depth+1]
	}
}

// Append adds a column at the next depth.
func (s *Sequence) Append(col *Column) {
	col.Depth = len(s.columns)
	s.columns = append(s.columns, col)
}

// Reset replaces the whole sequence with a single root column.
func (s *Sequence) Reset(root *Column) {
	root.Depth = 0
	s.columns = []*Column{root}
}

// replaceAt swaps the column at index in place, keeping depth and position so
// deeper siblings are positionally undisturbed.
func (s *Sequence) replaceAt(index int, col *Column) {
	col.Depth = index
	s.columns[index] = col
}
