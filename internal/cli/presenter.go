package cli

import (
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/nttcalc/internal/errors"
	"github.com/agbru/nttcalc/internal/format"
	"github.com/agbru/nttcalc/internal/orchestration"
	"github.com/agbru/nttcalc/internal/ui"
)

// CLIColorProvider implements apperrors.ColorProvider using the active theme.
type CLIColorProvider struct{}

// Verify interface compliance.
var _ apperrors.ColorProvider = CLIColorProvider{}

// ErrorColor returns the active theme's error escape code.
func (CLIColorProvider) ErrorColor() string { return ui.ColorError() }

// WarningColor returns the active theme's warning escape code.
func (CLIColorProvider) WarningColor() string { return ui.ColorWarning() }

// ResetColor returns the active theme's reset escape code.
func (CLIColorProvider) ResetColor() string { return ui.ColorReset() }

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for convolution results in the
// command-line interface.
type CLIResultPresenter struct {
	// Output controls how the final result is rendered.
	Output OutputConfig
}

// Verify that CLIResultPresenter implements orchestration.ResultPresenter.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable displays the comparison summary table with
// path names, durations, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.ConvolutionResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	// Find the maximum name and duration widths for proper alignment
	maxNameLen := 4     // "Path" header length
	maxDurationLen := 8 // "Duration" header length
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		duration := formatResultDuration(res.Duration)
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	fmt.Fprintf(out, "%sPath%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-4),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorError(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorSuccess(), ui.ColorReset())
		}
		duration := formatResultDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorPrimary(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorWarning(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// formatResultDuration renders a duration, flooring sub-microsecond values.
func formatResultDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// padRight returns a string of spaces with the given length appended to s.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult displays the final convolution result using the CLI's
// display functions.
func (p CLIResultPresenter) PresentResult(result orchestration.ConvolutionResult, opts orchestration.PresentationOptions, out io.Writer) {
	cfg := p.Output
	cfg.Verbose = opts.Verbose
	cfg.Hex = opts.Hex
	DisplayVectorResult(out, result.Result, result.Duration, cfg)
}

// HandleError handles convolution errors and returns an appropriate exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleConvolutionError(err, duration, out, CLIColorProvider{})
}
