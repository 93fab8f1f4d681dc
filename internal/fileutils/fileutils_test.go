package fileutils_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"fjacquet/stmt-convert/internal/fileutils"
	"fjacquet/stmt-convert/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0600))

	assert.True(t, fileutils.FileExists(testFile))
	assert.False(t, fileutils.FileExists(filepath.Join(tmpDir, "nonexistent.txt")))
	assert.False(t, fileutils.FileExists(tmpDir))
}

func TestEnsureDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()

	newDir := filepath.Join(tmpDir, "new", "nested", "dir")
	require.NoError(t, fileutils.EnsureDirectoryExists(newDir))
	assert.True(t, fileutils.DirectoryExists(newDir))

	assert.NoError(t, fileutils.EnsureDirectoryExists(tmpDir))
}

func TestReadInput_File(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "statement.sta")
	require.NoError(t, os.WriteFile(testFile, []byte(":20:REF\n"), 0600))

	data, err := fileutils.ReadInput(testFile, nil, 1024)
	require.NoError(t, err)
	assert.Equal(t, ":20:REF\n", string(data))
}

func TestReadInput_FileTooLarge(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "big.csv")
	require.NoError(t, os.WriteFile(testFile, bytes.Repeat([]byte("a"), 11), 0600))

	_, err := fileutils.ReadInput(testFile, nil, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fileutils.ErrInputTooLarge))

	// Exactly at the limit is accepted
	data, err := fileutils.ReadInput(testFile, nil, 11)
	require.NoError(t, err)
	assert.Len(t, data, 11)
}

func TestReadInput_MissingFile(t *testing.T) {
	_, err := fileutils.ReadInput(filepath.Join(t.TempDir(), "missing.csv"), nil, 10)
	require.Error(t, err)
	assert.False(t, errors.Is(err, fileutils.ErrInputTooLarge))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadInput_Stdin(t *testing.T) {
	for _, path := range []string{"", "-"} {
		data, err := fileutils.ReadInput(path, strings.NewReader("ref,acc,desc\n"), 100)
		require.NoError(t, err)
		assert.Equal(t, "ref,acc,desc\n", string(data))
	}
}

func TestReadInput_StdinTooLarge(t *testing.T) {
	_, err := fileutils.ReadInput("-", strings.NewReader("0123456789X"), 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fileutils.ErrInputTooLarge))
}

func TestReadLimited_ReadError(t *testing.T) {
	_, err := fileutils.ReadLimited(iotest.ErrReader(errors.New("disk gone")), 10, "stdin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestWriteOutput(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, fileutils.WriteOutput("", &buf, []byte("hello")))
		assert.Equal(t, "hello", buf.String())

		buf.Reset()
		require.NoError(t, fileutils.WriteOutput("-", &buf, []byte("dash")))
		assert.Equal(t, "dash", buf.String())
	})

	t.Run("file in new directory", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "nested", "out.xml")
		require.NoError(t, fileutils.WriteOutput(out, nil, []byte("<Document/>")))

		content, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "<Document/>", string(content))
	})

	t.Run("failing writer", func(t *testing.T) {
		err := fileutils.WriteOutput("", failingWriter{}, []byte("x"))
		assert.Error(t, err)
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestReadText(t *testing.T) {
	text, err := fileutils.ReadText(strings.NewReader("\xEF\xBB\xBF<Document/>"))
	require.NoError(t, err)
	assert.Equal(t, "<Document/>", text)

	_, err = fileutils.ReadText(bytes.NewReader([]byte{0xff, 0xfe, 0xfd}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, parsererror.ErrIO))

	_, err = fileutils.ReadText(iotest.ErrReader(errors.New("boom")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, parsererror.ErrIO))
}

func TestListFilesWithExtensions(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"b.STA", "a.sta", "c.txt", "d.xml"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "sub.sta"), 0750))

	files, err := fileutils.ListFilesWithExtensions(tmpDir, []string{".sta", ".txt"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "a.sta"),
		filepath.Join(tmpDir, "b.STA"),
		filepath.Join(tmpDir, "c.txt"),
	}, files)

	_, err = fileutils.ListFilesWithExtensions(filepath.Join(tmpDir, "missing"), []string{".xml"})
	assert.Error(t, err)
}

func TestReplaceExtension(t *testing.T) {
	assert.Equal(t, "statement.csv", fileutils.ReplaceExtension("/in/statement.sta", ".csv"))
	assert.Equal(t, "noext.xml", fileutils.ReplaceExtension("noext", ".xml"))
}
