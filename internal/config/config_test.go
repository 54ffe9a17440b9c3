package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault_UsesEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/skillverify")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("AI_REPO_CHUNK_CHARS", "4000")

	cfg := Default()
	assert.Equal(t, "postgres://localhost/skillverify", cfg.DatabaseURL)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, 4000, cfg.ChunkChars)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, 4, cfg.AnalyzeConcurrency)
}

func TestLoad_FileValuesWinOverEnvironment(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	path := writeConfig(t, `{
		"database_url": "postgres://db.internal/skillverify",
		"gemini_api_key": "file-key",
		"chunk_chars": 5000,
		"cache_enabled": true
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.GeminiAPIKey)
	assert.Equal(t, "postgres://db.internal/skillverify", cfg.DatabaseURL)
	assert.Equal(t, 5000, cfg.ChunkChars)
}

func TestLoad_DefaultsMissingChunkChars(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{"cache_enabled": true}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultChunkChars, cfg.ChunkChars)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, `{"analyze_concurrency": 99, "cache_enabled": true}`))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestJudgeConfigured(t *testing.T) {
	assert.False(t, (&Config{}).JudgeConfigured())
	assert.True(t, (&Config{GeminiAPIKey: "k"}).JudgeConfigured())
}
