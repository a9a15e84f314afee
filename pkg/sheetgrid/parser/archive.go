// Package parser implements OOXML part parsing for worksheet grid extraction.
package parser

import (
	"archive/zip"
	"bytes"
	"io"
)

// Conventional part paths inside an xlsx package.
const (
	// SharedStringsPath is the shared-string table part. Optional: workbooks
	// with no string cells omit it entirely.
	SharedStringsPath = "xl/sharedStrings.xml"
	// WorksheetPath is the first worksheet part. Extraction always reads the
	// first sheet; there is no sheet selection.
	WorksheetPath = "xl/worksheets/sheet1.xml"
)

// Archive wraps an opened xlsx zip container. Parts are decompressed
// individually on request; opening the archive reads only the central
// directory.
type Archive struct {
	r *zip.Reader
}

// OpenArchive opens an xlsx package from its raw bytes. It fails if the
// bytes are not a valid zip container.
func OpenArchive(data []byte) (*Archive, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	return &Archive{r: r}, nil
}

// Part returns the uncompressed content of the named archive entry.
// A missing part returns (nil, nil): absence is a normal outcome, since
// several xlsx parts are optional.
func (a *Archive) Part(name string) ([]byte, error) {
	for _, f := range a.r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}
