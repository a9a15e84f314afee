// Package output serializes extracted grids for downstream consumers.
package output

import (
	"encoding/json"

	"github.com/osada9/sheetgrid-go/pkg/sheetgrid/models"
)

// ToJSON serializes a grid to JSON, optionally pretty-printed.
func ToJSON(grid *models.GridData, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(grid, "", "  ")
	}
	return json.Marshal(grid)
}
