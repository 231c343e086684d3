// Package config loads plancheck configuration from defaults, global and
// local config files, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration holds all plancheck settings.
type Configuration struct {
	// APIKey authenticates against the Groq API. Required only for the
	// ai and hybrid completion methods, so not validated as required here.
	APIKey string `koanf:"api_key"`
	// Model is the chat-completions model name.
	Model string `koanf:"model" validate:"required"`
	// BaseURL is the API root for the generation collaborator.
	BaseURL string `koanf:"base_url" validate:"required,url"`
	// MaxFields caps the number of fields completed per run.
	MaxFields int `koanf:"max_fields" validate:"min=1,max=100"`
	// Threshold is the completeness ratio below which validation
	// suggests a completion run.
	Threshold float64 `koanf:"threshold" validate:"min=0,max=1"`
	// StateDir holds history and run state.
	StateDir string `koanf:"state_dir" validate:"required"`
	// Timeout is the per-request collaborator timeout in seconds.
	Timeout int `koanf:"timeout" validate:"min=1,max=600"`
	// ShowProgress enables spinners during generation.
	ShowProgress bool `koanf:"show_progress"`
}

// Load merges configuration sources.
// Priority: environment > local config > global config > defaults.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Global config if present
	if homeDir, err := os.UserHomeDir(); err == nil {
		globalPath := filepath.Join(homeDir, ".plancheck", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Local config if present
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Environment variables win
	k.Load(env.Provider("PLANCHECK_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// GROQ_API_KEY is honored directly so the tool works alongside other
	// Groq clients without duplicating the key under PLANCHECK_API_KEY.
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GROQ_API_KEY")
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.StateDir = expandHomePath(cfg.StateDir)

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: PLANCHECK_MAX_FIELDS -> max_fields
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "PLANCHECK_"))
}

// expandHomePath expands ~ to the user's home directory.
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
