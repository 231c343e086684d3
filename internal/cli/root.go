// Package cli provides the Cobra commands for plancheck: data-file
// validation, missing-field completion, the run history, and the field
// catalog reference.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kdambrauskas/plancheck/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "plancheck",
	Short: "business-plan data completeness checker",
	Long: `plancheck validates business-plan project data against the required
field catalog and completes missing fields with AI-generated values,
manual input, or a hybrid review flow.

The data file is a flat list of KEY: value lines. Completion runs are
appended as dated blocks; existing content is never rewritten.`,
	Example: `  # Check how complete a data file is
  plancheck validate finalInput.txt

  # Fill missing fields from the Groq API (caps at 20 fields per run)
  plancheck complete finalInput.txt --method ai

  # Review AI suggestions field by field
  plancheck complete finalInput.txt --method hybrid

  # Continue a run stopped with quit
  plancheck complete finalInput.txt --method hybrid --resume

  # Show recent runs
  plancheck history`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the process exit code.
// CLIError categories map to distinct codes; see exit_codes.go.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		errors.Format(os.Stderr, err)
		return ExitCodeFor(err)
	}
	return ExitSuccess
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", ".plancheck/config.json", "Path to config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(fieldsCmd)
}
