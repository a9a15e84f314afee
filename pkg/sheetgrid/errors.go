package sheetgrid

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidArchive indicates the input is not a valid zip container.
var ErrInvalidArchive = errors.New("not a valid xlsx archive")

// ErrMissingWorksheet indicates the mandatory first-worksheet part is absent
// from the archive.
var ErrMissingWorksheet = errors.New("worksheet part not found")

// ExtractError carries the file and archive part a fatal extraction failure
// occurred on, so batch callers can log the cause and move to the next file.
type ExtractError struct {
	File string
	Part string // archive part involved, empty for container-level failures
	Err  error
}

func (e *ExtractError) Error() string {
	if e.Part != "" {
		return fmt.Sprintf("extract %s: part %s: %v", e.File, e.Part, e.Err)
	}
	return fmt.Sprintf("extract %s: %v", e.File, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

func newExtractError(file, part string, err error) *ExtractError {
	return &ExtractError{File: file, Part: part, Err: err}
}
