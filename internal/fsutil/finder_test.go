package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindModelFile(t *testing.T) {
	t.Run("plain file path is returned as-is", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "model.hcl")
		require.NoError(t, os.WriteFile(path, []byte(""), 0o600))

		got, err := FindModelFile(path)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("directory with one model file", func(t *testing.T) {
		dir := t.TempDir()
		sub := filepath.Join(dir, "nested")
		require.NoError(t, os.Mkdir(sub, 0o755))
		path := filepath.Join(sub, "model.hcl")
		require.NoError(t, os.WriteFile(path, []byte(""), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(""), 0o600))

		got, err := FindModelFile(dir)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("directory with no model files", func(t *testing.T) {
		_, err := FindModelFile(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no .hcl model file found")
	})

	t.Run("directory with several model files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte(""), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.hcl"), []byte(""), 0o600))

		_, err := FindModelFile(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "want exactly one")
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := FindModelFile(filepath.Join(t.TempDir(), "absent"))
		assert.Error(t, err)
	})
}
