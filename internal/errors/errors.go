// Package errors provides categorized errors for plancheck commands.
// Each error carries a category that maps to an exit code and optional
// remediation steps shown to the operator.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory classifies a failure for exit-code mapping and display.
type ErrorCategory int

const (
	// Argument indicates invalid command-line arguments.
	Argument ErrorCategory = iota
	// Configuration indicates invalid or missing configuration.
	Configuration
	// IO indicates the backing data file could not be read.
	IO
	// Generation indicates the text-generation collaborator failed or
	// returned empty output. Always recoverable by skipping the field.
	Generation
	// Write indicates the backing data file could not be appended to.
	// Fatal to the current run; prior file content is unaffected.
	Write
)

// String returns a human-readable category name.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case IO:
		return "I/O Error"
	case Generation:
		return "Generation Error"
	case Write:
		return "Write Error"
	default:
		return "Error"
	}
}

// CLIError is an error with a category and remediation guidance.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Remediation []string
	// Err is the wrapped cause, if any.
	Err error
}

// Error returns the error message.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped cause.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewArgumentError creates an Argument-category error.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Remediation: remediation}
}

// NewConfigError creates a Configuration-category error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Configuration, Message: message, Remediation: remediation}
}

// NewIOError creates an IO-category error wrapping cause.
func NewIOError(message string, cause error, remediation ...string) *CLIError {
	return &CLIError{Category: IO, Message: message, Remediation: remediation, Err: cause}
}

// NewGenerationError creates a Generation-category error wrapping cause.
func NewGenerationError(message string, cause error) *CLIError {
	return &CLIError{Category: Generation, Message: message, Err: cause}
}

// NewWriteError creates a Write-category error wrapping cause.
func NewWriteError(message string, cause error, remediation ...string) *CLIError {
	return &CLIError{Category: Write, Message: message, Remediation: remediation, Err: cause}
}

// Wrap attaches a category and remediation to an existing error.
// Returns nil if err is nil.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
		Err:         err,
	}
}

// WrapWithMessage wraps err with a category and an outer message.
// Returns nil if err is nil.
func WrapWithMessage(err error, category ErrorCategory, message string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category: category,
		Message:  fmt.Sprintf("%s: %s", message, err.Error()),
		Err:      err,
	}
}

// IsCLIError reports whether err is (or wraps) a CLIError.
func IsCLIError(err error) bool {
	var cliErr *CLIError
	return stderrors.As(err, &cliErr)
}

// CategoryOf returns the category of err if it is a CLIError.
func CategoryOf(err error) (ErrorCategory, bool) {
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr.Category, true
	}
	return 0, false
}

// IsGeneration reports whether err is a Generation-category error.
func IsGeneration(err error) bool {
	c, ok := CategoryOf(err)
	return ok && c == Generation
}

// IsWrite reports whether err is a Write-category error.
func IsWrite(err error) bool {
	c, ok := CategoryOf(err)
	return ok && c == Write
}

// IsIO reports whether err is an IO-category error.
func IsIO(err error) bool {
	c, ok := CategoryOf(err)
	return ok && c == IO
}
