package complete

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/kdambrauskas/plancheck/internal/progress"
	"github.com/kdambrauskas/plancheck/internal/record"
	"github.com/kdambrauskas/plancheck/internal/schema"
)

// AIStrategy fills missing fields from the generation collaborator
// without operator involvement. Per-field failures are logged and
// skipped; partial completion is the expected outcome.
type AIStrategy struct {
	Gen       Generator
	MaxFields int
	Out       io.Writer
	Progress  progress.Reporter
}

// NewAIStrategy creates an AI strategy with the default field cap.
func NewAIStrategy(gen Generator, out io.Writer, prog progress.Reporter) *AIStrategy {
	if prog == nil {
		prog = progress.Silent{}
	}
	return &AIStrategy{Gen: gen, MaxFields: DefaultMaxFields, Out: out, Progress: prog}
}

// Method returns record.MethodAI.
func (s *AIStrategy) Method() record.Method {
	return record.MethodAI
}

// Complete generates a value for each of the first MaxFields missing
// fields. Returns an error only when ctx is cancelled; generation
// failures skip the field.
func (s *AIStrategy) Complete(ctx context.Context, missing []schema.Field, rec *record.Record) (map[string]string, error) {
	selected := capFields(missing, s.MaxFields)
	recordContext := rec.Context(0)

	yellow := color.New(color.FgYellow).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	completed := make(map[string]string, len(selected))
	for i, field := range selected {
		if err := ctx.Err(); err != nil {
			return completed, err
		}

		s.Progress.Start(fmt.Sprintf("[%d/%d] Generating %s", i+1, len(selected), field.Name))
		value, err := s.Gen.GenerateFieldValue(ctx, field, recordContext)
		s.Progress.Stop()

		if err != nil {
			fmt.Fprintf(s.Out, "%s could not generate %s: %v\n", yellow("skipped:"), field.Name, err)
			continue
		}
		completed[field.Name] = value
		fmt.Fprintf(s.Out, "%s %s: %s\n", green("generated"), field.Name, preview(value))
	}
	return completed, nil
}

// preview truncates long generated values for display.
func preview(v string) string {
	const max = 100
	if len(v) > max {
		return v[:max] + "..."
	}
	return v
}
