package models

import (
	"strings"

	"fjacquet/stmt-convert/internal/parsererror"
)

// Format identifies one of the supported statement formats. The set is closed:
// dispatching code switches over these values explicitly.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatMT940   Format = "mt940"
	FormatCAMT053 Format = "camt053"
)

// Formats lists every supported format in a stable order.
var Formats = []Format{FormatCSV, FormatMT940, FormatCAMT053}

// ParseFormat maps a case-insensitive tag to a Format. Unrecognized tags are
// rejected with an *parsererror.UnknownFormatError.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatMT940:
		return FormatMT940, nil
	case FormatCAMT053:
		return FormatCAMT053, nil
	default:
		return "", &parsererror.UnknownFormatError{Value: s}
	}
}

// ParseFormatLenient behaves like ParseFormat but falls back to FormatCSV for
// unrecognized tags. The second return value reports whether the fallback fired.
func ParseFormatLenient(s string) (Format, bool) {
	f, err := ParseFormat(s)
	if err != nil {
		return FormatCSV, true
	}
	return f, false
}

// IsValid reports whether f is one of the supported formats.
func (f Format) IsValid() bool {
	switch f {
	case FormatCSV, FormatMT940, FormatCAMT053:
		return true
	}
	return false
}

// String returns the tag
func (f Format) String() string {
	return string(f)
}

// Extension returns the file extension used when writing this format.
func (f Format) Extension() string {
	switch f {
	case FormatMT940:
		return ".sta"
	case FormatCAMT053:
		return ".xml"
	default:
		return ".csv"
	}
}

// InputExtensions returns the file extensions recognized as this format when
// scanning a directory.
func (f Format) InputExtensions() []string {
	switch f {
	case FormatCSV:
		return []string{".csv"}
	case FormatMT940:
		return []string{".sta", ".mt940", ".940", ".txt"}
	case FormatCAMT053:
		return []string{".xml"}
	default:
		return nil
	}
}
