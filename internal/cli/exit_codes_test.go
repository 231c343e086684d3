package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kdambrauskas/plancheck/internal/errors"
)

func TestExitCodeFor(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":           {err: nil, want: ExitSuccess},
		"plain error":   {err: fmt.Errorf("boom"), want: ExitRuntime},
		"argument":      {err: errors.NewArgumentError("bad"), want: ExitArgument},
		"configuration": {err: errors.NewConfigError("bad"), want: ExitConfiguration},
		"io":            {err: errors.NewIOError("bad", nil), want: ExitRuntime},
		"generation":    {err: errors.NewGenerationError("bad", nil), want: ExitRuntime},
		"write":         {err: errors.NewWriteError("bad", nil), want: ExitRuntime},
		"wrapped argument": {
			err:  fmt.Errorf("context: %w", errors.NewArgumentError("bad")),
			want: ExitArgument,
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ExitCodeFor(tc.err))
		})
	}
}
