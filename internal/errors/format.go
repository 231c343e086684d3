package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Format writes a CLIError (or any error) to w in display form:
// category header, message, then remediation bullets if present.
// Wrapped CLIErrors are unwrapped for display.
func Format(w io.Writer, err error) {
	if err == nil {
		return
	}

	red := color.New(color.FgRed, color.Bold).SprintFunc()

	var cliErr *CLIError
	if !stderrors.As(err, &cliErr) {
		fmt.Fprintf(w, "%s %v\n", red("Error:"), err)
		return
	}

	fmt.Fprintf(w, "%s %s\n", red(cliErr.Category.String()+":"), cliErr.Message)
	if len(cliErr.Remediation) > 0 {
		fmt.Fprintln(w)
		for _, step := range cliErr.Remediation {
			fmt.Fprintf(w, "  - %s\n", step)
		}
	}
}

// Sprint renders err the way Format does, as a string.
func Sprint(err error) string {
	var sb strings.Builder
	Format(&sb, err)
	return sb.String()
}
