package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Locking())
	assert.Equal(t, filepath.Join("assets", "jsons"), filepath.Join(filepath.Base(filepath.Dir(cfg.DataDir)), filepath.Base(cfg.DataDir)))
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
data_dir = "jsons"
indent   = "  "
lock     = false
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "jsons"), cfg.DataDir)
	assert.Equal(t, "  ", cfg.Indent)
	assert.False(t, cfg.Locking())
}

func TestLoad_AbsoluteDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`data_dir = "/srv/jsons"`), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/jsons", cfg.DataDir)
	assert.Empty(t, cfg.Indent)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`data_dir = `), 0o644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")

	require.NoError(t, os.WriteFile(path, []byte(`colour = "red"`), 0o644))
	_, err = Load(path)
	assert.Error(t, err, "unknown attributes are rejected")
}
