package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/osada9/sheetgrid-go/pkg/sheetgrid/models"
)

// WriteCSV writes the grid to w as RFC 4180 CSV, one record per grid row.
func WriteCSV(w io.Writer, grid *models.GridData) error {
	cw := csv.NewWriter(w)
	for _, row := range grid.Rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = formatValue(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// formatValue renders a cell value the way it appeared in the source:
// integers without a decimal point, floats in shortest round-trip form.
func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
