package parser

import "fmt"

// MaxColumn is the largest column index Excel supports (column "XFD").
const MaxColumn = 16384

// DecodeCellRef converts an A1-style cell reference into 1-based column and
// row numbers. The reference must match ^[A-Z]+[0-9]+$; column letters are a
// bijective base-26 code with A=1..Z=26 and no zero digit, so "Z"=26,
// "AA"=27, "AZ"=52. Columns beyond MaxColumn are rejected as malformed.
func DecodeCellRef(ref string) (col, row int, err error) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		col = col*26 + int(ref[i]-'A'+1)
		// Checked per digit so a long letter run errors before it can
		// overflow int.
		if col > MaxColumn {
			return 0, 0, fmt.Errorf("malformed cell reference %q: column exceeds %s", ref, EncodeColumn(MaxColumn))
		}
		i++
	}
	if i == 0 {
		return 0, 0, fmt.Errorf("malformed cell reference %q: no column letters", ref)
	}
	if i == len(ref) {
		return 0, 0, fmt.Errorf("malformed cell reference %q: no row digits", ref)
	}
	for j := i; j < len(ref); j++ {
		if ref[j] < '0' || ref[j] > '9' {
			return 0, 0, fmt.Errorf("malformed cell reference %q: unexpected character %q", ref, ref[j])
		}
		row = row*10 + int(ref[j]-'0')
	}
	if row < 1 {
		return 0, 0, fmt.Errorf("malformed cell reference %q: row must be >= 1", ref)
	}
	return col, row, nil
}

// EncodeColumn converts a 1-based column number into its letter code, the
// inverse of the column part of DecodeCellRef.
func EncodeColumn(col int) string {
	if col < 1 {
		return ""
	}
	var buf [8]byte
	i := len(buf)
	for col > 0 {
		col--
		i--
		buf[i] = byte('A' + col%26)
		col /= 26
	}
	return string(buf[i:])
}
