package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(LoaderOptions{ConfigPaths: []string{t.TempDir()}})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Addr)
	assert.Equal(t, 6180, cfg.Server.Port)
	assert.Equal(t, "", cfg.Render.EmptyMessage)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`server:
  addr: 0.0.0.0
  port: 9000
render:
  emptyMessage: Nothing changed
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "diffview.yaml"), content, 0o644))

	cfg, err := Load(LoaderOptions{ConfigPaths: []string{dir}})
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Addr)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "Nothing changed", cfg.Render.EmptyMessage)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DIFFVIEW_SERVER_PORT", "7777")

	cfg, err := Load(LoaderOptions{ConfigPaths: []string{t.TempDir()}})
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Server.Port)
}

func TestLoadCustomFileName(t *testing.T) {
	dir := t.TempDir()
	content := []byte("server:\n  port: 8123\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.yaml"), content, 0o644))

	cfg, err := Load(LoaderOptions{ConfigPaths: []string{dir}, FileName: "custom"})
	require.NoError(t, err)

	assert.Equal(t, 8123, cfg.Server.Port)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "diffview.yaml"), []byte("::: not yaml"), 0o644))

	_, err := Load(LoaderOptions{ConfigPaths: []string{dir}})
	assert.Error(t, err)
}
