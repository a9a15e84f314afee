// Package models defines data structures for worksheet grid extraction.
package models

// GridData is the dense rectangular result of extracting one worksheet.
type GridData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Rows holds the grid in row-major order. Each cell value is one of
	// string, int64, or float64; positions with no cell in the source
	// worksheet hold the empty string. A nil Rows means the worksheet
	// contained no placeable cells (a successful, empty extraction).
	Rows [][]any `json:"rows"`
}

// Empty reports whether the extraction found no cells at all.
func (g *GridData) Empty() bool {
	return len(g.Rows) == 0
}

// RowCount returns the number of rows in the grid.
func (g *GridData) RowCount() int {
	return len(g.Rows)
}

// ColCount returns the number of columns in the grid, which is uniform
// across all rows.
func (g *GridData) ColCount() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows[0])
}
