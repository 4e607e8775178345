package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"DECKGEN_OUTPUT",
	"DECKGEN_FORMATS",
	"DECKGEN_LANGUAGE",
	"DECKGEN_LOG_DIR",
	"DECKGEN_DETAILED_LOG",
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, name := range envVars {
		if old, ok := os.LookupEnv(name); ok {
			t.Cleanup(func() { os.Setenv(name, old) })
		} else {
			t.Cleanup(func() { os.Unsetenv(name) })
		}
		os.Unsetenv(name)
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultFormats, cfg.Formats)
	assert.Equal(t, DefaultLanguage, cfg.Language)
	assert.Equal(t, "", cfg.LogDir)
	assert.False(t, cfg.DetailedLog)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("DECKGEN_OUTPUT", "out/deck.pptx")
	t.Setenv("DECKGEN_FORMATS", "pptx,pdf")
	t.Setenv("DECKGEN_LANGUAGE", "en")
	t.Setenv("DECKGEN_DETAILED_LOG", "true")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "out/deck.pptx", cfg.Output)
	assert.Equal(t, "pptx,pdf", cfg.Formats)
	assert.Equal(t, "en", cfg.Language)
	assert.True(t, cfg.DetailedLog)
}

func TestLoadFromEnv_BadBool(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("DECKGEN_DETAILED_LOG", "maybe")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnvVars(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("DECKGEN_FORMATS=all\nDECKGEN_LOG_DIR=logs\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "all", cfg.Formats)
	assert.Equal(t, "logs", cfg.LogDir)
}

func TestLoad_MissingDotEnvIsFine(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultOutput, cfg.Output)
}

func TestValidate(t *testing.T) {
	assert.Error(t, Config{Formats: "pptx"}.Validate())
	assert.Error(t, Config{Output: "x.pptx"}.Validate())
	assert.NoError(t, Config{Output: "x.pptx", Formats: "pptx"}.Validate())
}
