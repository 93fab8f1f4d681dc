// Package converter is the public entry point for converting bank statements
// between CSV, MT940 and CAMT.053 from other Go programs.
//
// Format names are matched case-insensitively: "csv", "mt940" and "camt053".
// Unknown names are rejected.
package converter

import (
	"bytes"
	"fmt"

	"fjacquet/stmt-convert/internal/converter"
	"fjacquet/stmt-convert/internal/fileutils"
	"fjacquet/stmt-convert/internal/models"
	"fjacquet/stmt-convert/internal/parsererror"
)

// Errors that callers can match with errors.Is.
var (
	ErrIO            = parsererror.ErrIO
	ErrInvalidFormat = parsererror.ErrInvalidFormat
	ErrUnsupported   = parsererror.ErrUnsupported
	ErrUnknownFormat = parsererror.ErrUnknownFormat
	ErrInputTooLarge = fileutils.ErrInputTooLarge
)

// Options tune a conversion.
type Options struct {
	// RejectSingleQuotes makes CSV input containing a single quote invalid.
	RejectSingleQuotes bool
	// ExtractCAMTEntries reads each CAMT.053 Ntry as a transaction instead of
	// producing the single placeholder transaction.
	ExtractCAMTEntries bool
	// MaxInputBytes caps ConvertFile inputs; zero means 100 MiB.
	MaxInputBytes int64
}

// Convert converts input from one named format to another with default options.
func Convert(input []byte, from, to string) ([]byte, error) {
	return ConvertWithOptions(input, from, to, Options{})
}

// ConvertWithOptions converts input from one named format to another.
func ConvertWithOptions(input []byte, from, to string, opts Options) ([]byte, error) {
	fromFormat, toFormat, err := parseFormats(from, to)
	if err != nil {
		return nil, err
	}
	return newConverter(opts).Convert(input, fromFormat, toFormat)
}

// ConvertFile converts the file at inputPath and writes the result to
// outputPath, creating parent directories as needed.
func ConvertFile(inputPath, outputPath, from, to string, opts Options) error {
	fromFormat, toFormat, err := parseFormats(from, to)
	if err != nil {
		return err
	}

	limit := opts.MaxInputBytes
	if limit <= 0 {
		limit = fileutils.DefaultMaxInputBytes
	}
	input, err := fileutils.ReadInput(inputPath, nil, limit)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", inputPath, err)
	}

	output, err := newConverter(opts).Convert(input, fromFormat, toFormat)
	if err != nil {
		return fmt.Errorf("error converting %s: %w", inputPath, err)
	}
	return fileutils.WriteFile(outputPath, output, models.PermissionOutputFile)
}

// Validate reports whether input parses as the named format.
func Validate(input []byte, format string) error {
	f, err := models.ParseFormat(format)
	if err != nil {
		return err
	}
	_, err = converter.New(converter.Options{}, nil).Parse(f, bytes.NewReader(input))
	return err
}

// Formats lists the accepted format names.
func Formats() []string {
	names := make([]string, 0, len(models.Formats))
	for _, f := range models.Formats {
		names = append(names, f.String())
	}
	return names
}

func parseFormats(from, to string) (models.Format, models.Format, error) {
	fromFormat, err := models.ParseFormat(from)
	if err != nil {
		return "", "", err
	}
	toFormat, err := models.ParseFormat(to)
	if err != nil {
		return "", "", err
	}
	return fromFormat, toFormat, nil
}

func newConverter(opts Options) *converter.Converter {
	return converter.New(converter.Options{
		RejectSingleQuotes: opts.RejectSingleQuotes,
		ExtractCAMTEntries: opts.ExtractCAMTEntries,
	}, nil)
}
