package parser

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// Cell type tags from the OOXML t attribute.
const (
	cellTypeShared = "s"
	cellTypeNumber = "n"
)

// SparseGrid maps 1-based row to 1-based column to a resolved cell value.
// Only cells actually present in the worksheet XML appear; it is built by
// ParseWorksheet and consumed whole by AssembleGrid, never queried by
// address.
type SparseGrid map[int]map[int]any

// ParseWorksheet walks every <c> element in a worksheet part, resolves each
// cell's value against the shared-string table, and collects the results
// into a sparse grid. Placement comes solely from each cell's own r
// attribute, so <row> nesting is irrelevant; a <c> without an r attribute,
// or with one that does not parse as a cell reference, is skipped. Cells
// that resolve to no value (no <v> child, or an unresolvable shared-string
// index) are likewise skipped — a single bad cell never aborts the sheet.
func ParseWorksheet(data []byte, shared []string) SparseGrid {
	grid := make(SparseGrid)

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		se, ok := token.(xml.StartElement)
		if !ok || se.Name != qnCell {
			continue
		}

		var ref, typ string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "r":
				ref = attr.Value
			case "t":
				typ = attr.Value
			}
		}

		raw, hasValue := parseCellValue(decoder)
		if ref == "" {
			continue
		}
		col, row, err := DecodeCellRef(ref)
		if err != nil {
			continue
		}

		value, ok := resolveValue(typ, raw, hasValue, shared)
		if !ok {
			continue
		}
		if grid[row] == nil {
			grid[row] = make(map[int]any)
		}
		grid[row][col] = value
	}

	return grid
}

// parseCellValue consumes the remainder of a <c> element and returns the
// text of its first <v> child. hasValue distinguishes a present-but-empty
// <v> from a cell with no value child at all.
func parseCellValue(decoder *xml.Decoder) (raw string, hasValue bool) {
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name == qnV && !hasValue {
				if text, err := readElementText(decoder); err == nil {
					raw = text
				}
				hasValue = true
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return raw, hasValue
}

// resolveValue turns a raw cell into a typed value. The returned value is
// one of string, int64, or float64; ok is false when the cell contributes
// nothing to the grid.
func resolveValue(typ, raw string, hasValue bool, shared []string) (any, bool) {
	if !hasValue {
		return nil, false
	}

	switch typ {
	case cellTypeShared:
		idx, err := strconv.Atoi(raw)
		if err != nil || idx < 0 || idx >= len(shared) {
			return nil, false
		}
		return shared[idx], true
	case cellTypeNumber:
		if strings.Contains(raw, ".") {
			if f, err := strconv.ParseFloat(raw, 64); err == nil {
				return f, true
			}
		} else if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return i, true
		}
		// Numeric-looking but unparseable text is kept, not dropped.
		return raw, true
	default:
		// Inline strings, booleans, cached formula results: raw text as-is.
		return raw, true
	}
}
