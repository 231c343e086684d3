package complete

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/kdambrauskas/plancheck/internal/progress"
	"github.com/kdambrauskas/plancheck/internal/record"
	"github.com/kdambrauskas/plancheck/internal/schema"
)

// decision is the operator's verdict on one AI suggestion.
type decision int

const (
	decisionAccept decision = iota
	decisionModify
	decisionSkip
	decisionQuit
)

// parseDecision maps operator input to a decision.
func parseDecision(s string) (decision, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "accept":
		return decisionAccept, true
	case "m", "modify":
		return decisionModify, true
	case "s", "skip":
		return decisionSkip, true
	case "q", "quit":
		return decisionQuit, true
	default:
		return 0, false
	}
}

// HybridStrategy generates an AI suggestion per field and lets the
// operator accept, modify, or skip it. Quit stops iteration over the
// remaining fields; decided fields are kept. When generation fails for a
// field the operator is asked for a manual value instead.
type HybridStrategy struct {
	Gen       Generator
	In        io.Reader
	Out       io.Writer
	MaxFields int
	Progress  progress.Reporter
}

// NewHybridStrategy creates a hybrid strategy with the default field cap.
func NewHybridStrategy(gen Generator, in io.Reader, out io.Writer, prog progress.Reporter) *HybridStrategy {
	if prog == nil {
		prog = progress.Silent{}
	}
	return &HybridStrategy{Gen: gen, In: in, Out: out, MaxFields: DefaultMaxFields, Progress: prog}
}

// Method returns record.MethodHybrid.
func (s *HybridStrategy) Method() record.Method {
	return record.MethodHybrid
}

// Complete walks the first MaxFields missing fields. Suggestions are
// generated one field at a time: the operator's decision gates the next
// generation call, so a quit leaves later fields ungenerated.
func (s *HybridStrategy) Complete(ctx context.Context, missing []schema.Field, rec *record.Record) (map[string]string, error) {
	selected := capFields(missing, s.MaxFields)
	recordContext := rec.Context(0)
	reader := bufio.NewReader(s.In)

	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	completed := make(map[string]string, len(selected))
	for i, field := range selected {
		if err := ctx.Err(); err != nil {
			return completed, err
		}

		fmt.Fprintf(s.Out, "\n[%d/%d] %s\n", i+1, len(selected), bold(field.Name))
		fmt.Fprintf(s.Out, "  %s\n", dim(schema.Describe(field)))

		s.Progress.Start(fmt.Sprintf("Generating suggestion for %s", field.Name))
		suggestion, err := s.Gen.GenerateFieldValue(ctx, field, recordContext)
		s.Progress.Stop()

		if err != nil {
			fmt.Fprintf(s.Out, "  could not generate a suggestion (%v)\n", err)
			fmt.Fprint(s.Out, "  Enter value manually (Enter to skip): ")
			line, readErr := reader.ReadString('\n')
			answer := strings.TrimSpace(line)
			if answer != "" {
				completed[field.Name] = answer
			}
			if readErr != nil && line == "" {
				return completed, nil
			}
			continue
		}

		fmt.Fprintf(s.Out, "  %s %s\n", cyan("suggestion:"), suggestion)

		quit, err := s.decide(reader, field, suggestion, completed)
		if err != nil || quit {
			return completed, err
		}
	}
	return completed, nil
}

// decide runs the accept/modify/skip/quit loop for one suggestion.
// Invalid input re-prompts. Returns quit=true to stop the run.
func (s *HybridStrategy) decide(reader *bufio.Reader, field schema.Field, suggestion string, completed map[string]string) (quit bool, err error) {
	for {
		fmt.Fprint(s.Out, "  [A]ccept / [M]odify / [S]kip / [Q]uit: ")
		line, readErr := reader.ReadString('\n')
		if readErr != nil && line == "" {
			// Input exhausted mid-decision: stop without recording the field.
			fmt.Fprintln(s.Out)
			return true, nil
		}

		d, ok := parseDecision(line)
		if !ok {
			fmt.Fprintln(s.Out, "  invalid choice, enter A, M, S, or Q")
			continue
		}

		switch d {
		case decisionAccept:
			completed[field.Name] = suggestion
			fmt.Fprintln(s.Out, "  accepted")
			return false, nil
		case decisionModify:
			fmt.Fprint(s.Out, "  Enter your value: ")
			valueLine, _ := reader.ReadString('\n')
			value := strings.TrimSpace(valueLine)
			if value != "" {
				completed[field.Name] = value
				fmt.Fprintln(s.Out, "  saved modified value")
			} else {
				fmt.Fprintln(s.Out, "  empty value, skipped")
			}
			return false, nil
		case decisionSkip:
			fmt.Fprintln(s.Out, "  skipped")
			return false, nil
		case decisionQuit:
			fmt.Fprintln(s.Out, "  stopping, keeping decided fields")
			return true, nil
		}
	}
}
