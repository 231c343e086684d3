// Package state persists completion-run progress per data file, so a run
// stopped with quit can be resumed from the first undecided field.
// State lives in <state-dir>/runs.json and is written atomically.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RunStateFileName is the name of the run state file inside the state dir.
const RunStateFileName = "runs.json"

// RunState tracks one data file's most recent completion run.
type RunState struct {
	DataFile        string    `json:"data_file"`
	Method          string    `json:"method"`
	CompletedFields []string  `json:"completed_fields"`
	RemainingFields []string  `json:"remaining_fields"`
	LastAttempt     time.Time `json:"last_attempt"`
}

// Store maps absolute data file paths to their run state.
type Store struct {
	Runs map[string]*RunState `json:"runs"`
}

// Load reads the run state store from stateDir. A missing file yields an
// empty store.
func Load(stateDir string) (*Store, error) {
	path := filepath.Join(stateDir, RunStateFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Store{Runs: make(map[string]*RunState)}, nil
		}
		return nil, fmt.Errorf("reading run state: %w", err)
	}

	var store Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("parsing run state: %w", err)
	}
	if store.Runs == nil {
		store.Runs = make(map[string]*RunState)
	}
	return &store, nil
}

// Save writes the store atomically (temp file + rename) so a crash never
// leaves a half-written state file.
func Save(stateDir string, store *Store) error {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding run state: %w", err)
	}

	path := filepath.Join(stateDir, RunStateFileName)
	tmp, err := os.CreateTemp(stateDir, RunStateFileName+".tmp")
	if err != nil {
		return fmt.Errorf("creating temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp state file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}

// RecordRun updates the state for dataFile after a completion run.
// When nothing remains missing the entry is cleared instead.
func RecordRun(stateDir, dataFile, method string, completed, remaining []string, now time.Time) error {
	store, err := Load(stateDir)
	if err != nil {
		return err
	}

	key, err := normalizeKey(dataFile)
	if err != nil {
		return err
	}

	if len(remaining) == 0 {
		delete(store.Runs, key)
	} else {
		store.Runs[key] = &RunState{
			DataFile:        key,
			Method:          method,
			CompletedFields: completed,
			RemainingFields: remaining,
			LastAttempt:     now,
		}
	}
	return Save(stateDir, store)
}

// LookupRun returns the saved state for dataFile, if any.
func LookupRun(stateDir, dataFile string) (*RunState, bool, error) {
	store, err := Load(stateDir)
	if err != nil {
		return nil, false, err
	}
	key, err := normalizeKey(dataFile)
	if err != nil {
		return nil, false, err
	}
	rs, ok := store.Runs[key]
	return rs, ok, nil
}

func normalizeKey(dataFile string) (string, error) {
	abs, err := filepath.Abs(dataFile)
	if err != nil {
		return "", fmt.Errorf("resolving data file path: %w", err)
	}
	return abs, nil
}
