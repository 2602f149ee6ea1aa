package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies ANSI escape codes for error reporting without
// coupling this package to a concrete UI theme.
type ColorProvider interface {
	// ErrorColor returns the escape code for failure messages.
	ErrorColor() string
	// WarningColor returns the escape code for cancellation and timeout messages.
	WarningColor() string
	// ResetColor returns the escape code that clears formatting.
	ResetColor() string
}

// HandleConvolutionError reports a convolution failure to the user and maps
// it to a process exit code.
//
// Parameters:
//   - err: The error to report. A nil error yields ExitSuccess.
//   - duration: How long the operation ran before failing (zero if unknown).
//   - out: The writer for the failure message.
//   - colors: The color provider for message formatting.
//
// Returns:
//   - int: The exit code corresponding to the error category.
func HandleConvolutionError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}

	var timeoutErr TimeoutError
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.As(err, &timeoutErr):
		fmt.Fprintf(out, "\n%sOperation timed out after %s.%s\n", colors.WarningColor(), duration, colors.ResetColor())
		return ExitErrorTimeout

	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "\n%sOperation canceled.%s\n", colors.WarningColor(), colors.ResetColor())
		return ExitErrorCanceled
	}

	var cfgErr ConfigError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(out, "\n%sConfiguration error: %v%s\n", colors.ErrorColor(), err, colors.ResetColor())
		return ExitErrorConfig
	}

	fmt.Fprintf(out, "\n%sError: %v%s\n", colors.ErrorColor(), err, colors.ResetColor())
	return ExitErrorGeneric
}
