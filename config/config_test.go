package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: text
models:
  openai:
    model: qwen2.5
    base_url: http://localhost:11434/v1
defaults:
  model_option: hybrid
  show_analysis: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "qwen2.5", cfg.Models.OpenAI.Model)
	assert.Equal(t, "http://localhost:11434/v1", cfg.Models.OpenAI.BaseURL)
	assert.Equal(t, "hybrid", cfg.Defaults.ModelOption)
	require.NotNil(t, cfg.Defaults.ShowAnalysis)
	assert.True(t, *cfg.Defaults.ShowAnalysis)
	assert.Nil(t, cfg.Defaults.SentimentEnabled, "unset toggles stay nil")
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: info
weather:
  api_key: from-file
`)
	t.Setenv("MULTICHAT_LOG_LEVEL", "error")
	t.Setenv("SENIVERSE_API_KEY", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "from-env", cfg.Weather.APIKey)
}

func TestLoad_EmptyPathSkipsFileLayer(t *testing.T) {
	t.Setenv("MULTICHAT_MODEL_OPTION", "deepseek-r1")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "deepseek-r1", cfg.Defaults.ModelOption)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_NamedMissingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoad_MalformedYAMLIsError(t *testing.T) {
	path := writeConfig(t, "logging: [broken")
	_, err := Load(path)
	require.Error(t, err)
}
