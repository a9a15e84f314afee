package sheetgrid

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/osada9/sheetgrid-go/pkg/sheetgrid/models"
	"github.com/osada9/sheetgrid-go/pkg/sheetgrid/parser"
)

// Extract reads an xlsx file and returns its first worksheet as a dense
// grid. It is a pure function of the file's bytes: independent calls may
// run concurrently, nothing is cached across calls, and identical input
// always produces an identical grid.
//
// An archive that is not a valid zip container, or one lacking the first
// worksheet part, fails with an *ExtractError wrapping ErrInvalidArchive or
// ErrMissingWorksheet. A missing shared-strings part is not an error: any
// shared-string cell then resolves to nothing, and parsing continues.
func Extract(path string, opts Options) (*models.GridData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newExtractError(path, "", fmt.Errorf("%w: %s", ErrFileNotFound, path))
		}
		return nil, newExtractError(path, "", err)
	}
	return ExtractBytes(data, filepath.Base(path), opts)
}

// ExtractBytes extracts the grid from in-memory xlsx package bytes. The
// name appears in the result and in error context only.
func ExtractBytes(data []byte, name string, opts Options) (*models.GridData, error) {
	archive, err := parser.OpenArchive(data)
	if err != nil {
		return nil, newExtractError(name, "", fmt.Errorf("%w: %v", ErrInvalidArchive, err))
	}

	// Shared strings are optional; a workbook with no string cells has no
	// such part, and extraction degrades rather than fails.
	sstData, err := archive.Part(parser.SharedStringsPath)
	if err != nil {
		return nil, newExtractError(name, parser.SharedStringsPath, err)
	}
	var shared []string
	if sstData != nil {
		shared = parser.ParseSharedStrings(sstData, opts.ConcatRichText)
	}

	sheetData, err := archive.Part(parser.WorksheetPath)
	if err != nil {
		return nil, newExtractError(name, parser.WorksheetPath, err)
	}
	if sheetData == nil {
		return nil, newExtractError(name, parser.WorksheetPath, ErrMissingWorksheet)
	}

	sparse := parser.ParseWorksheet(sheetData, shared)
	return &models.GridData{
		BookName: name,
		Rows:     parser.AssembleGrid(sparse),
	}, nil
}
