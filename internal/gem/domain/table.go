package gem

// RawTable is a GEM sheet as loaded from disk: a header row plus string
// cells, before any cleaning. Rows may be ragged; Cell guards short rows.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex returns the position of a header, or -1 when absent.
func (t RawTable) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at (row, col), or "" for absent columns and short rows.
func (t RawTable) Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
