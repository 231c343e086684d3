// Package history records validate and complete runs in a YAML file
// under the state directory, for the `plancheck history` command.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// HistoryFileName is the name of the history file inside the state dir.
const HistoryFileName = "history.yaml"

// Entry represents a single plancheck run.
type Entry struct {
	// Timestamp is when the run started.
	Timestamp time.Time `yaml:"timestamp"`
	// Command is the plancheck command ("validate" or "complete").
	Command string `yaml:"command"`
	// DataFile is the project data file the run operated on.
	DataFile string `yaml:"data_file"`
	// Method is the completion method (empty for validate runs).
	Method string `yaml:"method,omitempty"`
	// FieldsCompleted is the number of fields appended in a complete run.
	FieldsCompleted int `yaml:"fields_completed,omitempty"`
	// Ratio is the completeness ratio after the run.
	Ratio float64 `yaml:"ratio"`
	// Duration is the run duration in Go duration format.
	Duration string `yaml:"duration"`
}

// File is the YAML document holding all entries, oldest first.
type File struct {
	Entries []Entry `yaml:"entries"`
}

// Load reads the history file from stateDir. A missing file yields an
// empty history.
func Load(stateDir string) (*File, error) {
	path := filepath.Join(stateDir, HistoryFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("reading history: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing history: %w", err)
	}
	return &f, nil
}

// Save writes the history file to stateDir, creating the directory if
// needed.
func Save(stateDir string, f *File) error {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	path := filepath.Join(stateDir, HistoryFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}
