package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdambrauskas/plancheck/internal/history"
)

func TestHistoryEmpty(t *testing.T) {
	isolateState(t)

	out, err := runCommand(t, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded yet.")
}

func TestHistoryShowsNewestFirst(t *testing.T) {
	stateDir := isolateState(t)

	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, history.Save(stateDir, &history.File{Entries: []history.Entry{
		{Timestamp: base, Command: "validate", DataFile: "old.txt", Ratio: 0.5, Duration: "1s"},
		{Timestamp: base.Add(time.Hour), Command: "complete", DataFile: "new.txt",
			Method: "ai", FieldsCompleted: 3, Ratio: 0.95, Duration: "4s"},
	}}))

	out, err := runCommand(t, "", "history")
	require.NoError(t, err)

	newest := strings.Index(out, "new.txt")
	oldest := strings.Index(out, "old.txt")
	require.GreaterOrEqual(t, newest, 0)
	require.GreaterOrEqual(t, oldest, 0)
	assert.Less(t, newest, oldest)
	assert.Contains(t, out, "method=ai fields=3")
}

func TestHistoryLimit(t *testing.T) {
	stateDir := isolateState(t)

	f := &history.File{}
	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		f.Entries = append(f.Entries, history.Entry{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Command:   "validate",
			DataFile:  "plan.txt",
			Ratio:     0.8,
			Duration:  "1s",
		})
	}
	require.NoError(t, history.Save(stateDir, f))

	out, err := runCommand(t, "", "history", "--limit", "2")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "plan.txt"))
}
