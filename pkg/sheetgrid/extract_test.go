package sheetgrid

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

const (
	sheetHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"><sheetData>`
	sheetFooter = `</sheetData></worksheet>`
)

func buildPackage(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Failed to create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractBytesEndToEnd(t *testing.T) {
	pkg := buildPackage(t, map[string]string{
		"xl/sharedStrings.xml": `<?xml version="1.0"?>
<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
<si><t>Name</t></si><si><t>Hours</t></si><si><t>Alice</t></si></sst>`,
		"xl/worksheets/sheet1.xml": sheetHeader +
			`<row r="1"><c r="A1" t="s"><v>0</v></c><c r="B1" t="s"><v>1</v></c></row>` +
			`<row r="2"><c r="A2" t="s"><v>2</v></c><c r="B2" t="n"><v>3</v></c></row>` +
			sheetFooter,
	})

	grid, err := ExtractBytes(pkg, "timesheet.xlsx", DefaultOptions())
	if err != nil {
		t.Fatalf("ExtractBytes failed: %v", err)
	}

	want := [][]any{
		{"Name", "Hours"},
		{"Alice", int64(3)},
	}
	if !reflect.DeepEqual(grid.Rows, want) {
		t.Errorf("Rows = %v, want %v", grid.Rows, want)
	}
	if grid.BookName != "timesheet.xlsx" {
		t.Errorf("BookName = %q, want timesheet.xlsx", grid.BookName)
	}
}

func TestExtractBytesMissingSharedStringsDegrades(t *testing.T) {
	pkg := buildPackage(t, map[string]string{
		"xl/worksheets/sheet1.xml": sheetHeader +
			`<row r="1"><c r="A1" t="n"><v>10</v></c><c r="B1" t="s"><v>0</v></c><c r="C1" t="n"><v>7</v></c></row>` +
			sheetFooter,
	})

	grid, err := ExtractBytes(pkg, "nostrings.xlsx", DefaultOptions())
	if err != nil {
		t.Fatalf("ExtractBytes failed: %v", err)
	}

	// Numeric cells parse as usual. The shared-string cell at B1 resolves to
	// nothing and is never inserted, but it sits inside the extent observed
	// from A1 and C1, so assembly fills its position with an empty string.
	want := [][]any{{int64(10), "", int64(7)}}
	if !reflect.DeepEqual(grid.Rows, want) {
		t.Errorf("Rows = %v, want %v", grid.Rows, want)
	}
}

func TestExtractBytesMissingWorksheet(t *testing.T) {
	pkg := buildPackage(t, map[string]string{
		"xl/sharedStrings.xml": `<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"/>`,
	})

	_, err := ExtractBytes(pkg, "nosheet.xlsx", DefaultOptions())
	if !errors.Is(err, ErrMissingWorksheet) {
		t.Fatalf("error = %v, want ErrMissingWorksheet", err)
	}

	var xerr *ExtractError
	if !errors.As(err, &xerr) {
		t.Fatalf("error is not an *ExtractError: %v", err)
	}
	if xerr.File != "nosheet.xlsx" || xerr.Part != "xl/worksheets/sheet1.xml" {
		t.Errorf("ExtractError context = (%q, %q), want (nosheet.xlsx, xl/worksheets/sheet1.xml)", xerr.File, xerr.Part)
	}
}

func TestExtractBytesInvalidArchive(t *testing.T) {
	_, err := ExtractBytes([]byte("definitely not a zip"), "bad.xlsx", DefaultOptions())
	if !errors.Is(err, ErrInvalidArchive) {
		t.Fatalf("error = %v, want ErrInvalidArchive", err)
	}
}

func TestExtractBytesEmptySheet(t *testing.T) {
	pkg := buildPackage(t, map[string]string{
		"xl/worksheets/sheet1.xml": sheetHeader + sheetFooter,
	})

	grid, err := ExtractBytes(pkg, "empty.xlsx", DefaultOptions())
	if err != nil {
		t.Fatalf("ExtractBytes failed: %v", err)
	}
	if !grid.Empty() {
		t.Errorf("Empty() = false for sheet with no cells: %v", grid.Rows)
	}
}

func TestExtractBytesIdempotent(t *testing.T) {
	pkg := buildPackage(t, map[string]string{
		"xl/worksheets/sheet1.xml": sheetHeader +
			`<row r="1"><c r="A1" t="n"><v>1.5</v></c><c r="C2" t="n"><v>9</v></c></row>` +
			sheetFooter,
	})

	first, err := ExtractBytes(pkg, "same.xlsx", DefaultOptions())
	if err != nil {
		t.Fatalf("first ExtractBytes failed: %v", err)
	}
	second, err := ExtractBytes(pkg, "same.xlsx", DefaultOptions())
	if err != nil {
		t.Fatalf("second ExtractBytes failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction differs: %v vs %v", first, second)
	}
}

func TestExtractExcelizeWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A3", "Text")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	grid, err := Extract(tmpFile, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if grid.RowCount() != 3 || grid.ColCount() != 2 {
		t.Fatalf("grid is %dx%d, want 3x2", grid.RowCount(), grid.ColCount())
	}
	if grid.Rows[0][0] != "Header1" || grid.Rows[0][1] != "Header2" {
		t.Errorf("header row = %v, want [Header1 Header2]", grid.Rows[0])
	}
	if grid.Rows[2][0] != "Text" {
		t.Errorf("Rows[2][0] = %v, want Text", grid.Rows[2][0])
	}
	// Whether numeric cells carry an explicit type tag varies by writer, so
	// compare the rendered form rather than the dynamic type.
	if got := fmt.Sprint(grid.Rows[1][0]); got != "100" {
		t.Errorf("Rows[1][0] renders as %q, want 100", got)
	}
	if got := fmt.Sprint(grid.Rows[1][1]); got != "200.5" {
		t.Errorf("Rows[1][1] renders as %q, want 200.5", got)
	}
	if grid.BookName != "test.xlsx" {
		t.Errorf("BookName = %q, want test.xlsx", grid.BookName)
	}
}

func TestExtractFileNotFound(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "absent.xlsx"), DefaultOptions())
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("error = %v, want ErrFileNotFound", err)
	}
}
