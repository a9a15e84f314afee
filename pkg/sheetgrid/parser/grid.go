package parser

// AssembleGrid converts a sparse grid into a dense, gap-filled rectangle in
// row-major order. Dimensions are exactly the maximum row and column
// observed among inserted cells; every position with no cell becomes the
// empty string. Rows and columns are emitted by counting 1..max, so output
// ordering never depends on map iteration order. An empty sparse grid
// yields nil, the successful empty result.
func AssembleGrid(sparse SparseGrid) [][]any {
	if len(sparse) == 0 {
		return nil
	}

	maxRow, maxCol := 0, 0
	for r, cols := range sparse {
		if r > maxRow {
			maxRow = r
		}
		for c := range cols {
			if c > maxCol {
				maxCol = c
			}
		}
	}

	rows := make([][]any, maxRow)
	for r := 1; r <= maxRow; r++ {
		row := make([]any, maxCol)
		for c := 1; c <= maxCol; c++ {
			if v, ok := sparse[r][c]; ok {
				row[c-1] = v
			} else {
				row[c-1] = ""
			}
		}
		rows[r-1] = row
	}
	return rows
}
