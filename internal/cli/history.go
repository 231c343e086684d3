package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kdambrauskas/plancheck/internal/config"
	"github.com/kdambrauskas/plancheck/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent validate and complete runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		f, err := history.Load(cfg.StateDir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(f.Entries) == 0 {
			fmt.Fprintln(out, "No runs recorded yet.")
			return nil
		}

		dim := color.New(color.Faint).SprintFunc()

		entries := f.Entries
		if limit > 0 && len(entries) > limit {
			entries = entries[len(entries)-limit:]
		}
		// Newest first.
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			line := fmt.Sprintf("%s  %-9s %s", e.Timestamp.Format("2006-01-02 15:04:05"), e.Command, e.DataFile)
			if e.Method != "" {
				line += fmt.Sprintf("  method=%s fields=%d", e.Method, e.FieldsCompleted)
			}
			line += fmt.Sprintf("  %.1f%%", e.Ratio*100)
			fmt.Fprintf(out, "%s %s\n", line, dim("("+e.Duration+")"))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 10, "Maximum number of entries to show")
}
