package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("GEMINI_TIMEOUT", "30s")
	t.Setenv("MAX_FILE_SIZE", "1024")
	t.Setenv("PROMPT_CHAR_LIMIT", "500")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.Equal(t, 30*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, int64(1024), cfg.Screener.MaxFileSize)
	assert.Equal(t, 500, cfg.Screener.PromptCharLimit)
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("GEMINI_TIMEOUT", "not-a-duration")
	t.Setenv("MAX_FILE_SIZE", "not-a-number")
	t.Setenv("PROMPT_CHAR_LIMIT", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 60*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, int64(10485760), cfg.Screener.MaxFileSize)
	assert.Equal(t, 3000, cfg.Screener.PromptCharLimit)
}
