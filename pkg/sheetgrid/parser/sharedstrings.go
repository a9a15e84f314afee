package parser

import (
	"bytes"
	"encoding/xml"
	"io"
)

// nsMain is the SpreadsheetML namespace all consumed elements live in.
const nsMain = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"

// Qualified names consumed from worksheet and shared-string parts.
var (
	qnSI   = xml.Name{Space: nsMain, Local: "si"}
	qnT    = xml.Name{Space: nsMain, Local: "t"}
	qnRPh  = xml.Name{Space: nsMain, Local: "rPh"}
	qnCell = xml.Name{Space: nsMain, Local: "c"}
	qnV    = xml.Name{Space: nsMain, Local: "v"}
)

// ParseSharedStrings parses the sharedStrings part into an ordered table.
// Every <si> contributes exactly one entry, in document order, so that cell
// indices stay aligned: an <si> with no <t> child still yields an empty
// string at its position.
//
// With concatRuns false, only the first <t> inside an <si> is read, matching
// files written by tools that never emit rich text. With concatRuns true,
// all display-text runs in the entry are concatenated, which is what
// rich-text formatted entries require. Phonetic guide (<rPh>) text is never
// part of the display text and is skipped in both modes.
func ParseSharedStrings(data []byte, concatRuns bool) []string {
	var table []string

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name == qnSI {
			table = append(table, parseStringItem(decoder, concatRuns))
		}
	}

	return table
}

// parseStringItem consumes one <si> element and returns its display text.
func parseStringItem(decoder *xml.Decoder, concatRuns bool) string {
	var text string
	seenT := false

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			// Phonetic guide runs hold pronunciation, not display text.
			if t.Name == qnRPh {
				if decoder.Skip() != nil {
					return text
				}
				depth--
				continue
			}
			if t.Name == qnT && (concatRuns || !seenT) {
				if run, err := readElementText(decoder); err == nil {
					text += run
				}
				seenT = true
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return text
}

// readElementText consumes the current element and returns its character
// data, including that of any nested elements.
func readElementText(decoder *xml.Decoder) (string, error) {
	var text string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}
		switch t := token.(type) {
		case xml.CharData:
			text += string(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text, nil
}
