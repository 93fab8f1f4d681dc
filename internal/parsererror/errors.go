// Package parsererror defines the error taxonomy shared by parsers, serializers
// and the conversion dispatcher.
package parsererror

import (
	"errors"
	"fmt"
)

// Sentinel errors used with errors.Is to classify failures.
var (
	ErrIO            = errors.New("io error")
	ErrInvalidFormat = errors.New("invalid format")
	ErrUnsupported   = errors.New("unsupported conversion")
	ErrUnknownFormat = errors.New("unknown format")
)

// IOError wraps a failure of the underlying reader or writer, including
// input that cannot be decoded as text.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error during %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// InvalidFormatError represents an input that does not satisfy a structural
// precondition of the expected format.
type InvalidFormatError struct {
	ExpectedFormat       string
	Msg                  string
	Line                 int    // 1-based; zero when not tied to a line
	ActualContentSnippet string // Optional: a snippet of the actual content for debugging
}

func (e *InvalidFormatError) Error() string {
	msg := fmt.Sprintf("invalid %s input: %s", e.ExpectedFormat, e.Msg)
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (line %d)", msg, e.Line)
	}
	if e.ActualContentSnippet != "" {
		msg = fmt.Sprintf("%s. Content snippet: '%s'", msg, e.ActualContentSnippet)
	}
	return msg
}

// Is reports whether target is ErrInvalidFormat.
func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// UnsupportedError is returned by the dispatcher for a source/destination pair
// it has no implementation for.
type UnsupportedError struct {
	From string
	To   string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported conversion: %s -> %s", e.From, e.To)
}

// Is reports whether target is ErrUnsupported.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// UnknownFormatError is returned when a format tag does not name a known format.
type UnknownFormatError struct {
	Value string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format %q (expected csv, mt940 or camt053)", e.Value)
}

// Is reports whether target is ErrUnknownFormat.
func (e *UnknownFormatError) Is(target error) bool {
	return target == ErrUnknownFormat
}

// NewInvalidFormat is a shorthand for the common case without line information.
func NewInvalidFormat(format, msg string) *InvalidFormatError {
	return &InvalidFormatError{ExpectedFormat: format, Msg: msg}
}

// Snippet truncates s for inclusion in error messages.
func Snippet(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
