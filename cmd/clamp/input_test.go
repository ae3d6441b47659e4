package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectInputs(t *testing.T) {
	t.Parallel()

	t.Run("no arguments reads stdin", func(t *testing.T) {
		t.Parallel()
		inputs, err := collectInputs(nil, strings.NewReader("piped content"))
		require.NoError(t, err)
		require.Len(t, inputs, 1)
		assert.Equal(t, "stdin", inputs[0].name)
		assert.Equal(t, "piped content", inputs[0].source)
	})

	t.Run("literal path reads the file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "a.md")
		require.NoError(t, os.WriteFile(path, []byte("# hello"), 0o644))

		inputs, err := collectInputs([]string{path}, nil)
		require.NoError(t, err)
		require.Len(t, inputs, 1)
		assert.Equal(t, path, inputs[0].name)
		assert.Equal(t, "# hello", inputs[0].source)
	})

	t.Run("glob pattern matches recursively", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("a"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.md"), []byte("b"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte("c"), 0o644))

		inputs, err := collectInputs([]string{filepath.Join(dir, "**", "*.md")}, nil)
		require.NoError(t, err)
		assert.Len(t, inputs, 2)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()
		_, err := collectInputs([]string{filepath.Join(t.TempDir(), "missing.md")}, nil)
		assert.Error(t, err)
	})
}
