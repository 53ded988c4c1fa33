package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specweld/specweld/internal/testutil"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "config.yaml", `
spec_versions: [v1, v2]
spec_dir: openapi
full_spec_file: bundle.yaml
default_group: general
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Versions:     []string{"v1", "v2"},
		SpecDir:      "openapi",
		FullSpecFile: "bundle.yaml",
		DefaultGroup: "general",
	}, cfg)
}

func TestLoad_PartialFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "config.yaml", "spec_versions: [v2]\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"v2"}, cfg.Versions)
	assert.Equal(t, DefaultSpecDir, cfg.SpecDir)
	assert.Equal(t, DefaultFullSpecFile, cfg.FullSpecFile)
	assert.Equal(t, DefaultGroup, cfg.DefaultGroup)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nowhere"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_UnknownKeysIgnored(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "config.yaml", "spec_versions: [v1]\nlanguages:\n  go: {}\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"v1"}, cfg.Versions)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "config.yaml", "spec_versions: [v1\n")

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml")
}
