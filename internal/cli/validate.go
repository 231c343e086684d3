package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kdambrauskas/plancheck/internal/complete"
	"github.com/kdambrauskas/plancheck/internal/config"
	"github.com/kdambrauskas/plancheck/internal/history"
	"github.com/kdambrauskas/plancheck/internal/schema"
	"github.com/kdambrauskas/plancheck/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <data-file>",
	Short: "Report data completeness for a project data file",
	Long: `Parse the data file, compare it against the required field catalog,
and report the completeness ratio and the missing fields grouped by
category. Low completeness is informational: the command exits 0 and
suggests a completion run when the ratio is below the threshold.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		start := time.Now()
		session, err := complete.NewSession(args[0], schema.Default())
		if err != nil {
			return err
		}

		printValidation(cmd.OutOrStdout(), session.LastResult, cfg.Threshold)

		writer := history.NewWriter(cfg.StateDir, historyMaxEntries)
		writer.LogEntry(history.Entry{
			Timestamp: start,
			Command:   "validate",
			DataFile:  args[0],
			Ratio:     session.LastResult.Ratio,
			Duration:  time.Since(start).String(),
		})
		return nil
	},
}

// historyMaxEntries bounds the run history file.
const historyMaxEntries = 500

// printValidation renders one validation result.
func printValidation(out io.Writer, res validate.Result, threshold float64) {
	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	ratio := fmt.Sprintf("%.1f%%", res.Ratio*100)
	if res.Complete(threshold) {
		fmt.Fprintf(out, "%s %s (%d/%d fields present)\n",
			bold("Completeness:"), green(ratio), res.PresentFields, res.TotalFields)
	} else {
		fmt.Fprintf(out, "%s %s (%d/%d fields present)\n",
			bold("Completeness:"), yellow(ratio), res.PresentFields, res.TotalFields)
	}

	if len(res.MissingFields) == 0 {
		fmt.Fprintln(out, green("All required fields are present."))
		return
	}

	fmt.Fprintf(out, "\n%s\n", bold(fmt.Sprintf("Missing fields (%d):", len(res.MissingFields))))
	for _, cat := range schema.Categories() {
		var fields []schema.Field
		for _, f := range res.MissingFields {
			if f.Category == cat {
				fields = append(fields, f)
			}
		}
		if len(fields) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n  %s\n", bold(string(cat)))
		for _, f := range fields {
			fmt.Fprintf(out, "    %s  %s\n", f.Name, dim(schema.Describe(f)))
		}
	}

	if !res.Complete(threshold) {
		fmt.Fprintf(out, "\n%s completeness is below %.0f%%, run 'plancheck complete' to fill missing fields\n",
			yellow("hint:"), threshold*100)
	}
}
