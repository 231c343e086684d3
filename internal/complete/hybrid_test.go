package complete

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdambrauskas/plancheck/internal/errors"
	"github.com/kdambrauskas/plancheck/internal/record"
)

func TestParseDecision(t *testing.T) {
	tests := map[string]struct {
		input  string
		want   decision
		wantOK bool
	}{
		"a":             {input: "a", want: decisionAccept, wantOK: true},
		"accept word":   {input: "Accept", want: decisionAccept, wantOK: true},
		"m":             {input: "M", want: decisionModify, wantOK: true},
		"s":             {input: "s", want: decisionSkip, wantOK: true},
		"q":             {input: "q", want: decisionQuit, wantOK: true},
		"quit word":     {input: "quit\n", want: decisionQuit, wantOK: true},
		"padded accept": {input: "  a  ", want: decisionAccept, wantOK: true},
		"garbage":       {input: "x", wantOK: false},
		"empty":         {input: "", wantOK: false},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, ok := parseDecision(tc.input)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestHybridStrategyAcceptModifySkip(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{values: map[string]string{
		"F00": "suggestion zero",
		"F01": "suggestion one",
		"F02": "suggestion two",
	}}
	var out bytes.Buffer
	in := strings.NewReader("a\nm\nmy own value\ns\n")
	s := NewHybridStrategy(gen, in, &out, nil)

	got, err := s.Complete(context.Background(), fieldList(3), record.New())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"F00": "suggestion zero",
		"F01": "my own value",
	}, got)
}

// Accept then Quit on two missing fields: one entry in the result, and
// the second field is never generated for.
func TestHybridStrategyAcceptThenQuit(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{values: map[string]string{
		"F00": "suggestion zero",
		"F01": "suggestion one",
	}}
	var out bytes.Buffer
	in := strings.NewReader("a\nq\n")
	s := NewHybridStrategy(gen, in, &out, nil)

	got, err := s.Complete(context.Background(), fieldList(2), record.New())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"F00": "suggestion zero"}, got)
	assert.Equal(t, []string{"F00", "F01"}, gen.calls, "quit decided on F01's suggestion, nothing after")
}

func TestHybridStrategyQuitBeforeSecondGeneration(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{}
	var out bytes.Buffer
	in := strings.NewReader("q\n")
	s := NewHybridStrategy(gen, in, &out, nil)

	got, err := s.Complete(context.Background(), fieldList(3), record.New())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, []string{"F00"}, gen.calls, "later fields are never generated")
}

func TestHybridStrategyInvalidInputReprompts(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{values: map[string]string{"F00": "v"}}
	var out bytes.Buffer
	in := strings.NewReader("x\nwhat\na\n")
	s := NewHybridStrategy(gen, in, &out, nil)

	got, err := s.Complete(context.Background(), fieldList(1), record.New())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"F00": "v"}, got)
	assert.Contains(t, out.String(), "invalid choice")
}

func TestHybridStrategyModifyEmptySkips(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{values: map[string]string{"F00": "v"}}
	var out bytes.Buffer
	in := strings.NewReader("m\n\n")
	s := NewHybridStrategy(gen, in, &out, nil)

	got, err := s.Complete(context.Background(), fieldList(1), record.New())
	require.NoError(t, err)
	assert.Empty(t, got)
}

// When generation fails the operator is asked for a manual value for
// that field; the run continues.
func TestHybridStrategyGenerationFailureFallsBackToManual(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{
		errs:   map[string]error{"F00": errors.NewGenerationError("api down", nil)},
		values: map[string]string{"F01": "suggestion one"},
	}
	var out bytes.Buffer
	in := strings.NewReader("typed by hand\na\n")
	s := NewHybridStrategy(gen, in, &out, nil)

	got, err := s.Complete(context.Background(), fieldList(2), record.New())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"F00": "typed by hand",
		"F01": "suggestion one",
	}, got)
}

func TestHybridStrategyGenerationFailureManualSkip(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{
		errs: map[string]error{"F00": errors.NewGenerationError("api down", nil)},
	}
	var out bytes.Buffer
	in := strings.NewReader("\na\n")
	s := NewHybridStrategy(gen, in, &out, nil)

	got, err := s.Complete(context.Background(), fieldList(2), record.New())
	require.NoError(t, err)
	assert.NotContains(t, got, "F00", "empty manual fallback skips the field")
	assert.Equal(t, map[string]string{"F01": "generated F01"}, got)
}

func TestHybridStrategyMaxFields(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{}
	var out bytes.Buffer
	in := strings.NewReader("a\na\na\na\n")
	s := NewHybridStrategy(gen, in, &out, nil)
	s.MaxFields = 2

	got, err := s.Complete(context.Background(), fieldList(4), record.New())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Len(t, gen.calls, 2)
}

func TestHybridStrategyMethod(t *testing.T) {
	t.Parallel()

	s := NewHybridStrategy(&fakeGenerator{}, strings.NewReader(""), &bytes.Buffer{}, nil)
	assert.Equal(t, record.MethodHybrid, s.Method())
}
