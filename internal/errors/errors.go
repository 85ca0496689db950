package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for ui512calc.
// These codes signal the outcome of the program execution to the OS.
const (
	ExitSuccess           = 0   // Indicates successful execution.
	ExitErrorGeneric      = 1   // Indicates a generic error.
	ExitErrorDivideByZero = 2   // Indicates a division by zero was requested.
	ExitErrorMismatch     = 3   // Indicates a result mismatch between backends.
	ExitErrorConfig       = 4   // Indicates a configuration error.
	ExitErrorCanceled     = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags
// or values. It indicates that the application cannot proceed due to
// incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies
// which field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MismatchError reports that two computation backends disagreed on a
// result. It preserves both values for diagnostics.
type MismatchError struct {
	// Operation is the operation the backends disagreed on.
	Operation string
	// Backends names the two disagreeing backends.
	Backends [2]string
	// Values holds the conflicting results, formatted for display.
	Values [2]string
}

// Error returns a formatted message describing the mismatch.
func (e MismatchError) Error() string {
	return fmt.Sprintf("%s mismatch: %s returned %s, %s returned %s",
		e.Operation, e.Backends[0], e.Values[0], e.Backends[1], e.Values[1])
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// The wrapped error can be unwrapped with errors.Unwrap and checked with
// errors.Is and errors.As. A nil err yields nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
