//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Exists(t *testing.T) {
	fs := NewFS()

	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("content"), 0644))

	exists, err := fs.Exists(file)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.Exists(filepath.Join(tmpDir, "missing.txt"))
	assert.NoError(t, err)
	assert.False(t, exists)

	exists, err = fs.Exists(tmpDir)
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestFS_IsDir(t *testing.T) {
	fs := NewFS()

	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("content"), 0644))

	isDir, err := fs.IsDir(tmpDir)
	assert.NoError(t, err)
	assert.True(t, isDir)

	isDir, err = fs.IsDir(file)
	assert.NoError(t, err)
	assert.False(t, isDir)
}

func TestFS_IsSymlink(t *testing.T) {
	fs := NewFS()

	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "target")
	require.NoError(t, os.Mkdir(target, 0755))

	link := filepath.Join(tmpDir, "link")
	require.NoError(t, fs.Symlink(target, link))

	isLink, err := fs.IsSymlink(link)
	assert.NoError(t, err)
	assert.True(t, isLink)

	isLink, err = fs.IsSymlink(target)
	assert.NoError(t, err)
	assert.False(t, isLink)

	// Missing path is not an error
	isLink, err = fs.IsSymlink(filepath.Join(tmpDir, "missing"))
	assert.NoError(t, err)
	assert.False(t, isLink)
}

func TestFS_MkdirTemp(t *testing.T) {
	fs := NewFS()

	dir, err := fs.MkdirTemp("", "devbox-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	isDir, err := fs.IsDir(dir)
	assert.NoError(t, err)
	assert.True(t, isDir)

	assert.NoError(t, fs.RemoveAll(dir))
	exists, err := fs.Exists(dir)
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestFS_MakeExecutable(t *testing.T) {
	fs := NewFS()

	tmpDir := t.TempDir()
	script := filepath.Join(tmpDir, "script.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"), 0644))

	require.NoError(t, fs.MakeExecutable(script))

	info, err := os.Stat(script)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0111)
}

func TestFS_WriteFileAtomic(t *testing.T) {
	fs := NewFS()

	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "conf.yaml")

	require.NoError(t, fs.WriteFileAtomic(file, []byte("a: 1\n"), 0644))

	data, err := fs.ReadFile(file)
	assert.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(data))

	// Overwrite
	require.NoError(t, fs.WriteFileAtomic(file, []byte("a: 2\n"), 0644))
	data, err = fs.ReadFile(file)
	assert.NoError(t, err)
	assert.Equal(t, "a: 2\n", string(data))
}

func TestFS_CreateFileIfNotExists(t *testing.T) {
	fs := NewFS()

	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "sub", "file.txt")

	require.NoError(t, fs.CreateFileIfNotExists(file, []byte("initial"), 0644))
	data, err := fs.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "initial", string(data))

	// Second call must not overwrite
	require.NoError(t, fs.CreateFileIfNotExists(file, []byte("other"), 0644))
	data, err = fs.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "initial", string(data))
}

func TestFS_Which(t *testing.T) {
	fs := NewFS()

	path, err := fs.Which("sh")
	assert.NoError(t, err)
	assert.NotEmpty(t, path)

	_, err = fs.Which("definitely-not-a-command-12345")
	assert.Error(t, err)
}
