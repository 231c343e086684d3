package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kdambrauskas/plancheck/internal/complete"
	"github.com/kdambrauskas/plancheck/internal/config"
	"github.com/kdambrauskas/plancheck/internal/errors"
	"github.com/kdambrauskas/plancheck/internal/groq"
	"github.com/kdambrauskas/plancheck/internal/history"
	"github.com/kdambrauskas/plancheck/internal/progress"
	"github.com/kdambrauskas/plancheck/internal/record"
	"github.com/kdambrauskas/plancheck/internal/schema"
	"github.com/kdambrauskas/plancheck/internal/state"
)

var completeCmd = &cobra.Command{
	Use:   "complete <data-file>",
	Short: "Fill missing fields and append them to the data file",
	Long: `Validate the data file, then complete missing fields with the chosen
method:

  ai      generate every value from the Groq API
  manual  prompt for every value
  hybrid  generate a suggestion per field, then accept/modify/skip/quit

Completed fields are appended to the data file as a dated completion
block; prior content is never rewritten. At most --max-fields fields are
completed per run.`,
	Args: cobra.ExactArgs(1),
	RunE: runComplete,
}

func init() {
	completeCmd.Flags().StringP("method", "m", "", "Completion method: ai, manual, or hybrid (required)")
	completeCmd.Flags().Int("max-fields", 0, "Maximum fields to complete this run (default from config)")
	completeCmd.Flags().Bool("resume", false, "Resume the previous run for this file from its remaining fields")
	completeCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt before calling the API")
	completeCmd.MarkFlagRequired("method")
}

func runComplete(cmd *cobra.Command, args []string) error {
	dataFile := args[0]
	configPath, _ := cmd.Flags().GetString("config")
	methodFlag, _ := cmd.Flags().GetString("method")
	maxFields, _ := cmd.Flags().GetInt("max-fields")
	resume, _ := cmd.Flags().GetBool("resume")
	skipConfirm, _ := cmd.Flags().GetBool("yes")
	out := cmd.OutOrStdout()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if maxFields <= 0 {
		maxFields = cfg.MaxFields
	}

	method, err := record.ParseMethod(methodFlag)
	if err != nil {
		return err
	}

	session, err := complete.NewSession(dataFile, schema.Default())
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	missing := session.LastResult.MissingFields
	if len(missing) == 0 {
		fmt.Fprintln(out, green("Nothing to complete: all required fields are present."))
		return nil
	}

	if resume {
		missing, err = resumeFields(cfg.StateDir, dataFile, missing, out)
		if err != nil {
			return err
		}
		if len(missing) == 0 {
			fmt.Fprintln(out, green("Nothing left to resume."))
			return nil
		}
	}

	fmt.Fprintf(out, "%s %.1f%% complete, %d fields missing\n",
		bold("Current state:"), session.LastResult.Ratio*100, len(session.LastResult.MissingFields))

	strat, err := buildStrategy(cmd, cfg, method, maxFields, skipConfirm, len(missing))
	if err != nil {
		return err
	}
	if strat == nil {
		// Operator declined the confirmation.
		return nil
	}

	start := time.Now()
	summary, err := session.RunOn(cmd.Context(), strat, missing)
	if err != nil {
		return err
	}

	printRunSummary(out, summary)

	completedNames := make([]string, 0, len(summary.Completed))
	for _, f := range schema.Default().Fields() {
		if _, ok := summary.Completed[f.Name]; ok {
			completedNames = append(completedNames, f.Name)
		}
	}
	if err := state.RecordRun(cfg.StateDir, dataFile, string(method), completedNames, summary.Remaining, start); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to save run state: %v\n", err)
	}

	writer := history.NewWriter(cfg.StateDir, historyMaxEntries)
	writer.LogEntry(history.Entry{
		Timestamp:       start,
		Command:         "complete",
		DataFile:        dataFile,
		Method:          string(method),
		FieldsCompleted: len(summary.Completed),
		Ratio:           summary.After.Ratio,
		Duration:        summary.Duration.String(),
	})
	return nil
}

// buildStrategy wires the strategy for the chosen method. Returns a nil
// strategy (and nil error) when the operator declines the API
// confirmation for the ai method.
func buildStrategy(cmd *cobra.Command, cfg *config.Configuration, method record.Method, maxFields int, skipConfirm bool, missingCount int) (complete.Strategy, error) {
	out := cmd.OutOrStdout()
	in := cmd.InOrStdin()

	needsGenerator := method == record.MethodAI || method == record.MethodHybrid
	var gen complete.Generator
	if needsGenerator {
		if cfg.APIKey == "" {
			return nil, errors.NewConfigError(
				"no API key configured for the "+string(method)+" method",
				"set GROQ_API_KEY or PLANCHECK_API_KEY in the environment",
				"or add api_key to .plancheck/config.json",
			)
		}
		gen = groq.NewClient(cfg.APIKey,
			groq.WithModel(cfg.Model),
			groq.WithBaseURL(cfg.BaseURL),
			groq.WithTimeout(time.Duration(cfg.Timeout)*time.Second),
		)
	}

	var prog progress.Reporter = progress.Silent{}
	if cfg.ShowProgress {
		prog = progress.NewDisplay(progress.DetectCapabilities(), out)
	}

	switch method {
	case record.MethodAI:
		if !skipConfirm {
			calls := missingCount
			if calls > maxFields {
				calls = maxFields
			}
			if !confirm(cmd, fmt.Sprintf("This will call the Groq API for up to %d fields. Continue?", calls)) {
				fmt.Fprintln(out, "Aborted.")
				return nil, nil
			}
		}
		s := complete.NewAIStrategy(gen, out, prog)
		s.MaxFields = maxFields
		return s, nil
	case record.MethodManual:
		s := complete.NewManualStrategy(in, out)
		s.MaxFields = maxFields
		return s, nil
	case record.MethodHybrid:
		s := complete.NewHybridStrategy(gen, in, out, prog)
		s.MaxFields = maxFields
		return s, nil
	default:
		return nil, errors.NewArgumentError(fmt.Sprintf("unknown completion method %q", method))
	}
}

// resumeFields narrows missing to the remaining fields of the saved run.
func resumeFields(stateDir, dataFile string, missing []schema.Field, out io.Writer) ([]schema.Field, error) {
	saved, ok, err := state.LookupRun(stateDir, dataFile)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NewArgumentError(
			"no previous run recorded for "+dataFile,
			"run 'plancheck complete' without --resume first",
		)
	}

	remaining := make(map[string]bool, len(saved.RemainingFields))
	for _, name := range saved.RemainingFields {
		remaining[name] = true
	}

	var filtered []schema.Field
	for _, f := range missing {
		if remaining[f.Name] {
			filtered = append(filtered, f)
		}
	}
	fmt.Fprintf(out, "Resuming %s run from %s: %d fields left\n",
		saved.Method, saved.LastAttempt.Format("2006-01-02 15:04"), len(filtered))
	return filtered, nil
}

// confirm asks a y/N question on the command's input.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (y/N): ", question)
	reader := bufio.NewReader(cmd.InOrStdin())
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}

// printRunSummary reports what the run changed.
func printRunSummary(out io.Writer, summary *complete.RunSummary) {
	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	fmt.Fprintln(out)
	if len(summary.Completed) == 0 {
		fmt.Fprintln(out, "No fields were completed.")
		return
	}
	fmt.Fprintf(out, "%s %d fields appended (%s block)\n",
		green("Done:"), len(summary.Completed), summary.Method.Label())
	fmt.Fprintf(out, "%s %.1f%% -> %.1f%%\n", bold("Completeness:"),
		summary.Before.Ratio*100, summary.After.Ratio*100)
	if len(summary.Remaining) > 0 {
		fmt.Fprintf(out, "%d fields still missing\n", len(summary.Remaining))
	}
}
