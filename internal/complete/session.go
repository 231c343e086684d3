package complete

import (
	"context"
	"time"

	"github.com/kdambrauskas/plancheck/internal/record"
	"github.com/kdambrauskas/plancheck/internal/schema"
	"github.com/kdambrauskas/plancheck/internal/validate"
)

// Session carries the workflow state explicitly: the data file path, the
// schema, the current record, and the last validation result. Each
// command threads a session through its calls instead of keeping ambient
// state.
type Session struct {
	Path       string
	Schema     schema.Schema
	Record     *record.Record
	LastResult validate.Result

	// Now is the clock; defaults to time.Now. Overridden in tests.
	Now func() time.Time
}

// NewSession loads the data file and runs an initial validation.
func NewSession(path string, sch schema.Schema) (*Session, error) {
	rec, err := record.Load(path)
	if err != nil {
		return nil, err
	}
	s := &Session{Path: path, Schema: sch, Record: rec, Now: time.Now}
	s.LastResult = validate.Validate(rec, sch)
	return s, nil
}

// Revalidate reloads the record from disk and refreshes LastResult.
func (s *Session) Revalidate() error {
	rec, err := record.Load(s.Path)
	if err != nil {
		return err
	}
	s.Record = rec
	s.LastResult = validate.Validate(rec, s.Schema)
	return nil
}

// RunSummary describes one completed strategy run.
type RunSummary struct {
	Method    record.Method
	Completed map[string]string
	// Remaining lists fields still missing after the run, in schema
	// order, enabling resume.
	Remaining []string
	Before    validate.Result
	After     validate.Result
	Duration  time.Duration
}

// Run executes one completion cycle with the given strategy: take the
// current missing fields, collect values, append them to the data file,
// then reload and re-validate. When the strategy completes nothing the
// file is left untouched.
func (s *Session) Run(ctx context.Context, strat Strategy) (*RunSummary, error) {
	return s.RunOn(ctx, strat, s.LastResult.MissingFields)
}

// RunOn is Run over an explicit missing-field subset, used when resuming
// a previous run that stopped partway through the field list.
func (s *Session) RunOn(ctx context.Context, strat Strategy, missing []schema.Field) (*RunSummary, error) {
	start := s.Now()
	summary := &RunSummary{Method: strat.Method(), Before: s.LastResult}
	if len(missing) == 0 {
		summary.After = s.LastResult
		summary.Duration = s.Now().Sub(start)
		return summary, nil
	}

	completed, err := strat.Complete(ctx, missing, s.Record)
	summary.Completed = completed
	if err != nil {
		summary.Duration = s.Now().Sub(start)
		return summary, err
	}

	if len(completed) > 0 {
		if err := record.AppendCompletion(s.Path, s.Schema, completed, strat.Method(), s.Now()); err != nil {
			summary.Duration = s.Now().Sub(start)
			return summary, err
		}
		if err := s.Revalidate(); err != nil {
			summary.Duration = s.Now().Sub(start)
			return summary, err
		}
	}

	summary.After = s.LastResult
	summary.Remaining = s.LastResult.MissingNames()
	summary.Duration = s.Now().Sub(start)
	return summary, nil
}
