package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between convolution paths.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
// It allows for the creation of configuration-specific errors with dynamic
// content.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents a caller precondition violation: mismatched or
// empty vectors, out-of-range arguments, a non-power-of-two length on the
// radix-2 path, and similar invalid-argument conditions. It identifies which
// argument failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the argument that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
//
// Returns:
//   - string: The error message string.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given argument with a
// formatted message.
//
// Parameters:
//   - field: The name of the offending argument.
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ValidationError instance.
func NewValidationError(field, format string, a ...any) error {
	return ValidationError{Field: field, Message: fmt.Sprintf(format, a...)}
}

// ArithmeticError represents a number-theoretic impossibility discovered at
// run time, such as a multiplicative group with no generator or a value with
// no modular inverse. It signals a violated internal assumption rather than
// bad caller input, and is therefore distinct from ValidationError.
type ArithmeticError struct {
	// Op is the name of the operation that failed (e.g., "FindGenerator").
	Op string
	// Message explains the arithmetic failure.
	Message string
}

// Error returns a formatted message describing the arithmetic failure.
//
// Returns:
//   - string: The error message string.
func (e ArithmeticError) Error() string {
	return fmt.Sprintf("arithmetic error in %s: %s", e.Op, e.Message)
}

// SearchLimitError indicates that a bounded modulus search exhausted its
// configured iteration cap before finding a working prime. The search is
// guaranteed to terminate eventually by Dirichlet's theorem, but not in
// bounded time, so callers may opt into a cap and receive this error instead
// of an unbounded loop.
type SearchLimitError struct {
	// Iterations is the number of candidates tested before giving up.
	Iterations uint64
}

// Error returns a formatted message describing the exhausted search.
//
// Returns:
//   - string: The error message string.
func (e SearchLimitError) Error() string {
	return fmt.Sprintf("modulus search exhausted its cap of %d iterations", e.Iterations)
}

// ConvolutionError encapsulates a convolution failure while preserving the
// original cause. This allows for structured error handling and inspection
// of what went wrong inside the transform pipeline.
type ConvolutionError struct {
	// Cause is the underlying error that triggered this convolution error.
	Cause error
}

// Error returns the error message from the underlying cause.
//
// Returns:
//   - string: The error message string from the wrapped error.
func (e ConvolutionError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the ConvolutionError.
func (e ConvolutionError) Unwrap() error { return e.Cause }

// TimeoutError represents a convolution timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
//
// Returns:
//   - string: The error message string.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
