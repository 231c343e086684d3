package complete

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/kdambrauskas/plancheck/internal/record"
	"github.com/kdambrauskas/plancheck/internal/schema"
)

// ManualStrategy prompts the operator for every missing field. An empty
// answer skips the field; "quit" stops the run keeping answers collected
// so far.
type ManualStrategy struct {
	In        io.Reader
	Out       io.Writer
	MaxFields int
}

// NewManualStrategy creates a manual strategy with the default field cap.
func NewManualStrategy(in io.Reader, out io.Writer) *ManualStrategy {
	return &ManualStrategy{In: in, Out: out, MaxFields: DefaultMaxFields}
}

// Method returns record.MethodManual.
func (s *ManualStrategy) Method() record.Method {
	return record.MethodManual
}

// Complete collects operator-entered values for the first MaxFields
// missing fields.
func (s *ManualStrategy) Complete(ctx context.Context, missing []schema.Field, _ *record.Record) (map[string]string, error) {
	selected := capFields(missing, s.MaxFields)
	reader := bufio.NewReader(s.In)

	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(s.Out, "Provide values for %d missing fields.\n", len(selected))
	fmt.Fprintln(s.Out, dim("Press Enter to skip a field, type 'quit' to stop."))
	fmt.Fprintln(s.Out)

	completed := make(map[string]string, len(selected))
	for i, field := range selected {
		if err := ctx.Err(); err != nil {
			return completed, err
		}

		fmt.Fprintf(s.Out, "[%d/%d] %s\n", i+1, len(selected), bold(field.Name))
		fmt.Fprintf(s.Out, "  %s\n", dim(schema.Describe(field)))
		fmt.Fprint(s.Out, "  Enter value: ")

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			// Input exhausted: treat like quit, keep what we have.
			fmt.Fprintln(s.Out)
			break
		}
		answer := strings.TrimSpace(line)

		if strings.EqualFold(answer, "quit") {
			fmt.Fprintln(s.Out, "  stopping, keeping answers so far")
			break
		}
		if answer == "" {
			fmt.Fprintln(s.Out, "  skipped")
			continue
		}
		completed[field.Name] = answer
		fmt.Fprintf(s.Out, "  saved: %s\n", preview(answer))
	}
	return completed, nil
}
