package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/papyc-lang/papyc/internal/token"
)

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "papyc.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadProjectConfig(t *testing.T) {
	path := writeManifest(t, `
game = "Fallout4"
enable_language_extensions = true
allow_compiler_identifiers = false
sources = ["Scripts/Source"]
`)

	cfg, err := LoadProjectConfig(path)
	require.NoError(t, err)
	require.True(t, cfg.EnableLanguageExtensions)
	require.False(t, cfg.AllowCompilerIdentifiers)
	require.Equal(t, []string{"Scripts/Source"}, cfg.Sources)

	game, err := cfg.ResolveGame()
	require.NoError(t, err)
	require.Equal(t, token.Fallout4, game)
}

func TestLoadProjectConfigDefaultsGameToSkyrim(t *testing.T) {
	path := writeManifest(t, `sources = ["Scripts/Source"]`)

	cfg, err := LoadProjectConfig(path)
	require.NoError(t, err)

	game, err := cfg.ResolveGame()
	require.NoError(t, err)
	require.Equal(t, token.Skyrim, game)
}

func TestLoadProjectConfigRejectsUnknownGame(t *testing.T) {
	path := writeManifest(t, `game = "oblivion"`)

	_, err := LoadProjectConfig(path)
	require.Error(t, err)
}

func TestLoadProjectConfigMissingFile(t *testing.T) {
	_, err := LoadProjectConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
