// Package sheetgrid extracts the first worksheet of an xlsx package into a
// dense rectangular grid of typed values, parsing the OOXML parts directly
// instead of going through a spreadsheet library.
package sheetgrid

// Options configures extraction behavior.
type Options struct {
	// ConcatRichText controls how a shared-string entry split into multiple
	// rich-text runs is read. When false (the default), only the first run
	// is used; when true, all runs are concatenated into the entry's text.
	ConcatRichText bool
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{}
}
