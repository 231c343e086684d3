package cli

import "github.com/kdambrauskas/plancheck/internal/errors"

// Exit codes returned by Execute.
const (
	ExitSuccess       = 0
	ExitRuntime       = 1
	ExitArgument      = 2
	ExitConfiguration = 3
)

// ExitCodeFor maps an error to a process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	category, ok := errors.CategoryOf(err)
	if !ok {
		return ExitRuntime
	}
	switch category {
	case errors.Argument:
		return ExitArgument
	case errors.Configuration:
		return ExitConfiguration
	default:
		return ExitRuntime
	}
}
