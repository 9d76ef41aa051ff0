package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/mcpack/internal/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "mmc-pack.json")

	require.NoError(t, fsutil.WriteFileAtomic(path, []byte("first")))
	require.NoError(t, fsutil.WriteFileAtomic(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files should be left behind")
}

func TestRemoveIfExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patch.json")

	t.Run("missing file", func(t *testing.T) {
		assert.NoError(t, fsutil.RemoveIfExists(path))
	})

	t.Run("existing file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
		require.NoError(t, fsutil.RemoveIfExists(path))
		assert.False(t, fsutil.Exists(path))
	})
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "mod.jar")
	dst := filepath.Join(dir, "jarmods", "copy.jar")
	require.NoError(t, os.WriteFile(src, []byte("PK\x03\x04"), 0644))

	require.NoError(t, fsutil.CopyFile(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "PK\x03\x04", string(data))
}

func TestRenameBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "version.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	require.NoError(t, fsutil.RenameBackup(path))

	assert.False(t, fsutil.Exists(path))
	assert.True(t, fsutil.Exists(path+".old"))
}
