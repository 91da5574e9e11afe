package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var leonardoVars = []string{
	"LEONARDO_API_KEY", "LEONARDO_BASE_URL", "LEONARDO_TEMPLATE_FILE",
	"LEONARDO_BUILTIN_TEMPLATES", "LEONARDO_POLL_INTERVAL", "LEONARDO_POLL_MAX_ATTEMPTS",
	"LEONARDO_HTTP_TIMEOUT", "LEONARDO_DEBUG",
}

// clearEnv unsets every LEONARDO_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range leonardoVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEONARDO_API_KEY", "secret")

	cfg, err := Load(filepath.Join("testdata", "empty.env"))
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "https://cloud.leonardo.ai/api/rest/v1", cfg.BaseURL)
	assert.True(t, cfg.BuiltinTemplates)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
	assert.Equal(t, 30, cfg.PollMaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.False(t, cfg.Debug)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEONARDO_API_KEY", "secret")
	t.Setenv("LEONARDO_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("LEONARDO_POLL_INTERVAL", "2s")
	t.Setenv("LEONARDO_POLL_MAX_ATTEMPTS", "5")
	t.Setenv("LEONARDO_BUILTIN_TEMPLATES", "false")
	t.Setenv("LEONARDO_DEBUG", "true")

	cfg, err := Load(filepath.Join("testdata", "empty.env"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/v1", cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Equal(t, 5, cfg.PollMaxAttempts)
	assert.False(t, cfg.BuiltinTemplates)
	assert.True(t, cfg.Debug)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join("testdata", "empty.env"))
	require.Error(t, err)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// variables already present take precedence over the file
	t.Setenv("LEONARDO_POLL_MAX_ATTEMPTS", "7")

	cfg, err := Load(filepath.Join("testdata", "leonardo.env"))
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.APIKey)
	assert.Equal(t, 7, cfg.PollMaxAttempts)
	assert.Equal(t, 3*time.Second, cfg.PollInterval)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEONARDO_API_KEY", "secret")
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err)
}

func TestNewClient(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"square":{"width":640,"height":640},"mine":{"num_images":2}}`), 0o644))

	cfg := &Config{
		APIKey:           "secret",
		BaseURL:          "http://localhost:8080/v1",
		TemplateFile:     path,
		BuiltinTemplates: true,
		PollInterval:     time.Second,
		PollMaxAttempts:  3,
		HTTPTimeout:      time.Second,
	}
	c, err := cfg.NewClient()
	require.NoError(t, err)

	set := c.Templates()
	assert.Contains(t, set, "mine")
	assert.Contains(t, set, "portrait")
	assert.Equal(t, json.Number("640"), set["square"]["width"])
}

func TestNewClient_InvalidPolling(t *testing.T) {
	cfg := &Config{APIKey: "secret", BaseURL: "http://localhost", HTTPTimeout: time.Second}
	_, err := cfg.NewClient()
	require.Error(t, err)
}
