package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoadBlankAPIKeyIsMissing(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "   ")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	for _, k := range []string{
		"WANDERPLAN_HTTP_ADDR",
		"WANDERPLAN_GEMINI_MODEL",
		"WANDERPLAN_PROMPT_TEMPLATE",
		"WANDERPLAN_LOG_LEVEL",
		"WANDERPLAN_LOG_FORMAT",
		"WANDERPLAN_LOG_FILE",
		"WANDERPLAN_OTLP_ENDPOINT",
		"WANDERPLAN_SERVICE_NAME",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.AI.GeminiKey)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Empty(t, cfg.AI.GeminiModel)
	assert.Empty(t, cfg.AI.PromptTemplate)
	assert.Equal(t, LogConfig{Level: "info", Format: "json"}, cfg.Log)
	assert.Empty(t, cfg.Tracing.OTLPEndpoint)
	assert.Equal(t, "wanderplan-api", cfg.Tracing.ServiceName)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("WANDERPLAN_HTTP_ADDR", ":9090")
	t.Setenv("WANDERPLAN_GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("WANDERPLAN_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "gemini-1.5-pro", cfg.AI.GeminiModel)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMalformedDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GEMINI_API_KEY=\"unterminated\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("GEMINI_API_KEY", "test-key")

	_, err := Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingAPIKey)
	assert.Contains(t, err.Error(), "load .env")
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WANDERPLAN_HTTP_ADDR=:7070\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("WANDERPLAN_HTTP_ADDR", "")
	os.Unsetenv("WANDERPLAN_HTTP_ADDR")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.HTTP.Addr)
}
