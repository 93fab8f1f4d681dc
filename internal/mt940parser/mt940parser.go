// Package mt940parser reads and writes SWIFT MT940 statements.
//
// Only tag recognition is performed: lines of the form :TAG:VALUE become
// records, and the movement (61) and narrative (86) tags are folded into
// transactions. No checksum or block structure validation is done.
package mt940parser

import (
	"io"
	"strings"

	"fjacquet/stmt-convert/internal/fileutils"
	"fjacquet/stmt-convert/internal/parsererror"
)

const formatName = "mt940"

// Tags used by canonicalization. Any other tag (60F, 62F, 28C, ...) is kept
// in the document but ignored.
const (
	TagReference = "20"
	TagAccount   = "25"
	TagMovement  = "61"
	TagNarrative = "86"
)

// Record is one :TAG:VALUE line.
type Record struct {
	Tag   string
	Value string
}

// Document is the ordered list of records, duplicates included.
type Document struct {
	Records []Record
}

// Parse reads an MT940 statement.
func Parse(r io.Reader) (*Document, error) {
	text, err := fileutils.ReadText(r)
	if err != nil {
		return nil, err
	}
	if len(text) == 0 {
		return nil, parsererror.NewInvalidFormat(formatName, "empty input")
	}

	doc := &Document{}
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || !strings.HasPrefix(line, ":") {
			continue
		}
		tag, value, found := strings.Cut(line[1:], ":")
		if !found {
			return nil, &parsererror.InvalidFormatError{
				ExpectedFormat:       formatName,
				Msg:                  "tag line without closing ':'",
				Line:                 i + 1,
				ActualContentSnippet: parsererror.Snippet(line, 40),
			}
		}
		doc.Records = append(doc.Records, Record{Tag: tag, Value: value})
	}
	return doc, nil
}
