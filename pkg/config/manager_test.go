//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lerenn/devbox/pkg/fs"
)

func TestManager_Load_MissingFile(t *testing.T) {
	manager := NewManager(fs.NewFS())

	cfg, err := manager.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestManager_Load(t *testing.T) {
	manager := NewManager(fs.NewFS())

	dir := t.TempDir()
	data := `{"hooks_all": [["build"]], "hooks_modified": {"*.py": [["lint"]]}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfFile), []byte(data), 0644))

	cfg, err := manager.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []Command{{"build"}}, cfg.HooksAll)
	require.Len(t, cfg.HooksModified, 1)
	assert.Equal(t, "*.py", cfg.HooksModified[0].Pattern)
}

func TestManager_Load_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	confPath := filepath.Join(dir, "alternate.conf")
	require.NoError(t, os.WriteFile(confPath, []byte(`{"hooks_all": [["build"]]}`), 0644))

	manager := NewManagerWithFile(fs.NewFS(), confPath)

	// The repository directory is ignored when a file is bound.
	cfg, err := manager.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, []Command{{"build"}}, cfg.HooksAll)
}

func TestManager_Load_Malformed(t *testing.T) {
	manager := NewManager(fs.NewFS())

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfFile), []byte("nonsense_key: 1"), 0644))

	_, err := manager.Load(dir)
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestManager_SaveAndLoad(t *testing.T) {
	manager := NewManager(fs.NewFS())

	dir := t.TempDir()
	cfg := &Config{
		HooksAll: []Command{{"build"}},
		HooksModified: []PatternHooks{
			{Pattern: "*.py", Commands: []Command{{"pylint"}}},
		},
		Env: &Env{Path: "venv"},
	}

	require.NoError(t, manager.Save(dir, cfg))

	loaded, err := manager.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
