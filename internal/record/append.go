package record

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kdambrauskas/plancheck/internal/errors"
	"github.com/kdambrauskas/plancheck/internal/schema"
)

// Method identifies which completion strategy produced a block.
type Method string

const (
	MethodAI     Method = "ai"
	MethodManual Method = "manual"
	MethodHybrid Method = "hybrid"
)

// Label returns the block header label for the method.
func (m Method) Label() string {
	switch m {
	case MethodAI:
		return "AI-GENERATED"
	case MethodManual:
		return "USER-PROVIDED"
	case MethodHybrid:
		return "HYBRID"
	default:
		return strings.ToUpper(string(m))
	}
}

// ParseMethod converts a user-supplied method name.
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case MethodAI:
		return MethodAI, nil
	case MethodManual:
		return MethodManual, nil
	case MethodHybrid:
		return MethodHybrid, nil
	default:
		return "", errors.NewArgumentError(
			fmt.Sprintf("unknown completion method %q", s),
			"use one of: ai, manual, hybrid",
		)
	}
}

const completionDateLayout = "2006-01-02 15:04:05"

// AppendCompletion appends one completion block to the data file at path:
// a header line naming the method, the completion date, a field count,
// then one `NAME: value` line per completed field in schema order.
//
// The block is rendered in memory and written with a single append write,
// so a failure leaves prior file content untouched. An empty completed map
// appends nothing and returns nil.
func AppendCompletion(path string, sch schema.Schema, completed map[string]string, method Method, now time.Time) error {
	if len(completed) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n\n--- %s DATA COMPLETION ---\n", method.Label()))
	sb.WriteString(fmt.Sprintf("Completion Date: %s\n", now.Format(completionDateLayout)))
	sb.WriteString(fmt.Sprintf("Fields Completed: %d\n\n", len(completed)))
	for _, name := range orderCompleted(sch, completed) {
		sb.WriteString(fmt.Sprintf("%s: %s\n", name, completed[name]))
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.NewWriteError(
			fmt.Sprintf("cannot open data file %s for append", path), err,
			"check file permissions and that the path exists",
		)
	}
	defer f.Close()

	if _, err := f.WriteString(sb.String()); err != nil {
		return errors.NewWriteError(
			fmt.Sprintf("failed appending completion block to %s", path), err,
		)
	}
	return nil
}

// orderCompleted returns the completed field names in schema declaration
// order, with any names outside the catalog appended last in the order
// they appear in the schema-miss scan.
func orderCompleted(sch schema.Schema, completed map[string]string) []string {
	ordered := make([]string, 0, len(completed))
	seen := make(map[string]bool, len(completed))
	for _, f := range sch.Fields() {
		if _, ok := completed[f.Name]; ok {
			ordered = append(ordered, f.Name)
			seen[f.Name] = true
		}
	}
	if len(ordered) < len(completed) {
		for name := range completed {
			if !seen[name] {
				ordered = append(ordered, name)
			}
		}
	}
	return ordered
}
