package history

import (
	"fmt"
	"os"
)

// Writer appends run entries with automatic pruning.
type Writer struct {
	// StateDir is the directory containing the history file.
	StateDir string
	// MaxEntries is the maximum number of entries to retain.
	MaxEntries int
}

// NewWriter creates a history writer.
func NewWriter(stateDir string, maxEntries int) *Writer {
	return &Writer{StateDir: stateDir, MaxEntries: maxEntries}
}

// LogEntry appends an entry, pruning the oldest entries past MaxEntries.
// Errors are non-fatal: they are written to stderr and never fail the
// command that produced the entry.
func (w *Writer) LogEntry(entry Entry) {
	if err := w.logEntryInternal(entry); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to log history: %v\n", err)
	}
}

func (w *Writer) logEntryInternal(entry Entry) error {
	f, err := Load(w.StateDir)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	f.Entries = append(f.Entries, entry)

	if w.MaxEntries > 0 && len(f.Entries) > w.MaxEntries {
		excess := len(f.Entries) - w.MaxEntries
		f.Entries = f.Entries[excess:]
	}

	if err := Save(w.StateDir, f); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}
