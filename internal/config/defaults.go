package config

import "github.com/kdambrauskas/plancheck/internal/groq"

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"api_key":       "",
		"model":         groq.DefaultModel,
		"base_url":      groq.DefaultBaseURL,
		"max_fields":    20,
		"threshold":     0.90,
		"state_dir":     "~/.plancheck/state",
		"timeout":       60,
		"show_progress": true,
	}
}
