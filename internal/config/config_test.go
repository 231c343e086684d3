package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdambrauskas/plancheck/internal/groq"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // isolate from any real global config
	t.Setenv("GROQ_API_KEY", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, groq.DefaultModel, cfg.Model)
	assert.Equal(t, groq.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 20, cfg.MaxFields)
	assert.InDelta(t, 0.90, cfg.Threshold, 1e-9)
	assert.Equal(t, 60, cfg.Timeout)
	assert.True(t, cfg.ShowProgress)
	assert.Empty(t, cfg.APIKey)
}

func TestLoadLocalConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GROQ_API_KEY", "")

	localPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{
		"model": "llama-3.1-8b-instant",
		"max_fields": 5,
		"threshold": 0.75
	}`), 0o644))

	cfg, err := Load(localPath)
	require.NoError(t, err)

	assert.Equal(t, "llama-3.1-8b-instant", cfg.Model)
	assert.Equal(t, 5, cfg.MaxFields)
	assert.InDelta(t, 0.75, cfg.Threshold, 1e-9)
	// Untouched keys keep defaults.
	assert.Equal(t, groq.DefaultBaseURL, cfg.BaseURL)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PLANCHECK_MAX_FIELDS", "3")
	t.Setenv("PLANCHECK_MODEL", "env-model")

	localPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{"max_fields": 50}`), 0o644))

	cfg, err := Load(localPath)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.MaxFields)
	assert.Equal(t, "env-model", cfg.Model)
}

func TestLoadGroqAPIKeyFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GROQ_API_KEY", "gsk_from_env")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gsk_from_env", cfg.APIKey)
}

func TestLoadPlancheckKeyBeatsGroqKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GROQ_API_KEY", "gsk_groq")
	t.Setenv("PLANCHECK_API_KEY", "gsk_plancheck")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gsk_plancheck", cfg.APIKey)
}

func TestLoadValidation(t *testing.T) {
	tests := map[string]struct {
		env map[string]string
	}{
		"max_fields too large": {env: map[string]string{"PLANCHECK_MAX_FIELDS": "1000"}},
		"max_fields zero":      {env: map[string]string{"PLANCHECK_MAX_FIELDS": "0"}},
		"timeout too large":    {env: map[string]string{"PLANCHECK_TIMEOUT": "100000"}},
		"bad base url":         {env: map[string]string{"PLANCHECK_BASE_URL": "not a url"}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".plancheck/state"), expandHomePath("~/.plancheck/state"))
	assert.Equal(t, "/absolute/path", expandHomePath("/absolute/path"))
}
