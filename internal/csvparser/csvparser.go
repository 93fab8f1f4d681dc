// Package csvparser reads and writes the generic CSV ledger export.
package csvparser

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"fjacquet/stmt-convert/internal/fileutils"
	"fjacquet/stmt-convert/internal/parsererror"
)

const formatName = "csv"

// Delimiter is the only supported field separator.
const Delimiter = ','

// Options tune the parser.
type Options struct {
	// RejectSingleQuotes enables the strict dialect guard: any single quote in
	// the raw text makes the input invalid.
	RejectSingleQuotes bool
}

// Document is the parsed CSV: ordered rows of trimmed fields. Row 0 is the header.
type Document struct {
	Rows [][]string
}

// Parse reads a whole CSV document. Quoted fields may embed the delimiter,
// line breaks and doubled quotes. A bare quote inside an unquoted field is
// kept as data, and a quoted field left open runs to the end of the input.
// Blank lines are skipped and every field is trimmed of surrounding whitespace.
func Parse(r io.Reader, opts Options) (*Document, error) {
	text, err := fileutils.ReadText(r)
	if err != nil {
		return nil, err
	}
	if len(text) == 0 {
		return nil, parsererror.NewInvalidFormat(formatName, "empty input")
	}
	if opts.RejectSingleQuotes && strings.ContainsRune(text, '\'') {
		return nil, parsererror.NewInvalidFormat(formatName, "single quotes are not supported")
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	doc := &Document{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, toInvalidFormat(err)
		}
		row := make([]string, len(record))
		for i, field := range record {
			row[i] = strings.TrimSpace(field)
		}
		if isBlank(row) {
			continue
		}
		doc.Rows = append(doc.Rows, row)
	}
	return doc, nil
}

// isBlank reports whether a row came from a whitespace-only line.
func isBlank(row []string) bool {
	return len(row) == 1 && row[0] == ""
}

func toInvalidFormat(err error) error {
	invalid := &parsererror.InvalidFormatError{ExpectedFormat: formatName, Msg: err.Error()}
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		invalid.Msg = parseErr.Err.Error()
		invalid.Line = parseErr.Line
	}
	return invalid
}
