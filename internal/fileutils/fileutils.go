// Package fileutils provides the input acquisition and output delivery used
// around the conversion core, plus the file helpers batch processing needs.
package fileutils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"fjacquet/stmt-convert/internal/models"
	"fjacquet/stmt-convert/internal/parsererror"
)

// DefaultMaxInputBytes caps a single input at 100 MiB.
const DefaultMaxInputBytes int64 = 100 * 1024 * 1024

// StdStream is the path value that selects stdin/stdout.
const StdStream = "-"

// ErrInputTooLarge is returned when an input exceeds the configured cap.
var ErrInputTooLarge = errors.New("input exceeds size limit")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, models.PermissionDirectory); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// ReadInput reads a whole input of at most limit bytes. An empty path or "-"
// reads from stdin; anything else names a file. Exceeding the limit returns
// an error wrapping ErrInputTooLarge. A limit <= 0 uses DefaultMaxInputBytes.
func ReadInput(path string, stdin io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultMaxInputBytes
	}

	if path == "" || path == StdStream {
		if stdin == nil {
			stdin = os.Stdin
		}
		return ReadLimited(stdin, limit, "stdin")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("input path is a directory: %s", path)
	}
	if info.Size() > limit {
		return nil, fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrInputTooLarge, path, info.Size(), limit)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return ReadLimited(file, limit, path)
}

// ReadLimited reads r to the end, failing with ErrInputTooLarge as soon as
// more than limit bytes are available.
func ReadLimited(r io.Reader, limit int64, name string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrInputTooLarge, name, limit)
	}
	return data, nil
}

// WriteOutput delivers data to a file, or to stdout when path is empty or "-".
// Parent directories of the output file are created as needed.
func WriteOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == StdStream {
		if stdout == nil {
			stdout = os.Stdout
		}
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return nil
	}
	return WriteFile(path, data, models.PermissionOutputFile)
}

// WriteFile writes data to a file, creating the file if it doesn't exist
// and creating any parent directories if needed
func WriteFile(filePath string, data []byte, perm os.FileMode) error {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return err
	}
	if err := os.WriteFile(filePath, data, perm); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// ReadText reads all of r and decodes it as UTF-8 text, dropping a leading
// byte order mark. Read failures and invalid UTF-8 are reported as
// *parsererror.IOError.
func ReadText(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", &parsererror.IOError{Op: "read input", Err: err}
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", &parsererror.IOError{Op: "decode input", Err: errors.New("input is not valid UTF-8")}
	}
	return string(data), nil
}

// ListFilesWithExtensions returns the regular files directly inside dirPath
// whose extension (case-insensitive) is one of extensions, sorted by name.
func ListFilesWithExtensions(dirPath string, extensions []string) ([]string, error) {
	if !DirectoryExists(dirPath) {
		return nil, fmt.Errorf("directory does not exist: %s", dirPath)
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, want := range extensions {
			if ext == strings.ToLower(want) {
				files = append(files, filepath.Join(dirPath, entry.Name()))
				break
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// ReplaceExtension returns the base name of path with its extension replaced by ext.
func ReplaceExtension(path, ext string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}
