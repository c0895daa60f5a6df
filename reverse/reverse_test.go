package reverse_test

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"deedles.dev/dlist/reverse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"a\nb\nc\n", "c\nb\na\n"},
		{"a\nb\nc", "c\nb\na\n"},
		{"only\n", "only\n"},
		{"only", "only\n"},
		{"", ""},
		{"\n\nx\n", "x\n\n\n"},
		{"one\r\ntwo\r\n", "two\r\none\r\n"},
	}
	for _, test := range tests {
		var buf strings.Builder
		require.NoError(t, reverse.Lines(strings.NewReader(test.in), &buf))
		assert.Equal(t, test.out, buf.String(), "%q", test.in)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestLinesWriteError(t *testing.T) {
	err := reverse.Lines(strings.NewReader("a\nb\n"), failWriter{})
	require.EqualError(t, err, "write failed")
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func requireNoTemp(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		require.False(t, strings.HasSuffix(e.Name(), ".tmp"), e.Name())
	}
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	writeFile(t, in, "a\nb\nc\n")

	var rv reverse.Reverser
	require.NoError(t, rv.File(t.Context(), in, out))
	assert.Equal(t, "c\nb\na\n", readFile(t, out))
	assert.Equal(t, "a\nb\nc\n", readFile(t, in))
	requireNoTemp(t, dir)

	writeFile(t, in, "1\n2")
	require.NoError(t, rv.File(t.Context(), in, out))
	assert.Equal(t, "2\n1\n", readFile(t, out))
	requireNoTemp(t, dir)
}

func TestFileInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	writeFile(t, path, "x\ny\n")

	var rv reverse.Reverser
	require.NoError(t, rv.File(t.Context(), path, path))
	assert.Equal(t, "y\nx\n", readFile(t, path))
}

func TestFileKeepsPermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	writeFile(t, path, "x\ny\n")
	require.NoError(t, os.Chmod(path, 0o600))

	var rv reverse.Reverser
	require.NoError(t, rv.File(t.Context(), path, path))
	assert.Equal(t, "y\nx\n", readFile(t, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o600), info.Mode().Perm())

	out := filepath.Join(dir, "out.txt")
	writeFile(t, out, "old\n")
	require.NoError(t, os.Chmod(out, 0o640))
	require.NoError(t, rv.File(t.Context(), path, out))
	assert.Equal(t, "x\ny\n", readFile(t, out))

	info, err = os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o640), info.Mode().Perm())
	requireNoTemp(t, dir)
}

func TestFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	var rv reverse.Reverser
	err := rv.File(t.Context(), filepath.Join(dir, "missing.txt"), out)
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = os.Stat(out)
	require.ErrorIs(t, err, fs.ErrNotExist)
	requireNoTemp(t, dir)
}

func TestFileMissingOutputDir(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	writeFile(t, in, "a\n")

	var rv reverse.Reverser
	err := rv.File(t.Context(), in, filepath.Join(dir, "nope", "out.txt"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFileCanceled(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	writeFile(t, in, "a\n")

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	var rv reverse.Reverser
	err := rv.File(ctx, in, out)
	require.ErrorIs(t, err, context.Canceled)

	_, err = os.Stat(out)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()

	var jobs []reverse.Job
	for i := range 10 {
		in := filepath.Join(dir, fmt.Sprintf("in%d.txt", i))
		writeFile(t, in, fmt.Sprintf("%d\n%d\n%d\n", i, i+1, i+2))
		jobs = append(jobs, reverse.Job{In: in, Out: in + ".rev"})
	}

	rv := reverse.Reverser{Concurrency: 3}
	require.NoError(t, rv.Files(t.Context(), jobs...))

	for i, job := range jobs {
		assert.Equal(t, fmt.Sprintf("%d\n%d\n%d\n", i+2, i+1, i), readFile(t, job.Out))
	}
	requireNoTemp(t, dir)
}

func TestFilesError(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	writeFile(t, in, "a\n")

	var rv reverse.Reverser
	err := rv.Files(t.Context(),
		reverse.Job{In: in, Out: in + ".rev"},
		reverse.Job{In: filepath.Join(dir, "missing.txt"), Out: filepath.Join(dir, "missing.rev")},
	)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestShouldRetry(t *testing.T) {
	assert.False(t, reverse.ShouldRetry(nil))
	assert.False(t, reverse.ShouldRetry(context.Canceled))
	assert.False(t, reverse.ShouldRetry(fmt.Errorf("wrapped: %w", context.DeadlineExceeded)))
	assert.False(t, reverse.ShouldRetry(&fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}))
	assert.False(t, reverse.ShouldRetry(&os.LinkError{Op: "rename", Old: "a", New: "b", Err: syscall.EXDEV}))
	assert.False(t, reverse.ShouldRetry(&fs.PathError{Op: "open", Path: "x", Err: syscall.ENOSPC}))

	assert.True(t, reverse.ShouldRetry(&os.LinkError{Op: "rename", Old: "a", New: "b", Err: syscall.EBUSY}))
	assert.True(t, reverse.ShouldRetry(errors.New("transient")))
}
