package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/kdambrauskas/plancheck/internal/schema"
)

// runCommand executes the root command with the given stdin and args,
// returning combined stdout/stderr output. Flag state is reset afterward
// so tests do not leak values into each other.
func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out strings.Builder
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	resetFlags(rootCmd)
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// isolateState points HOME and the state dir at temp dirs so commands
// never touch the real ~/.plancheck.
func isolateState(t *testing.T) string {
	t.Helper()

	stateDir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PLANCHECK_STATE_DIR", stateDir)
	t.Setenv("GROQ_API_KEY", "")
	return stateDir
}

// writeDataFile writes a data file holding every catalog field except
// the named ones.
func writeDataFile(t *testing.T, omit ...string) string {
	t.Helper()

	omitted := make(map[string]bool, len(omit))
	for _, name := range omit {
		omitted[name] = true
	}

	var sb strings.Builder
	for _, f := range schema.Default().Fields() {
		if omitted[f.Name] {
			continue
		}
		sb.WriteString(f.Name + ": sample value\n")
	}

	path := filepath.Join(t.TempDir(), "finalInput.txt")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))
	return path
}
