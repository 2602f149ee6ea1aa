package cli

import (
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/nttcalc/internal/format"
)

const (
	// TruncationLimit is the digit threshold from which a value is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated number.
	DisplayEdges = 25
	// SpinnerRefreshRate defines the animation frequency of the wait spinner.
	SpinnerRefreshRate = 200 * time.Millisecond
)

// FormatExecutionDuration formats a time.Duration for display.
// It delegates to format.FormatExecutionDuration so the CLI and file output
// render durations identically.
func FormatExecutionDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This decouples the wait display from a specific spinner implementation,
// facilitating easier testing. It defines the essential controls for a
// spinner: starting, stopping, and updating its status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface. This adapter allows the `spinner` library to be used
// within the application's CLI framework.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
//
// Parameters:
//   - suffix: The string to display.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// newSpinner builds a Spinner. Declared as a variable so tests can inject a
// fake implementation.
var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// StartWaitSpinner starts a spinner with the given status message and
// returns it. The caller is responsible for stopping it.
//
// Parameters:
//   - message: The status text displayed next to the spinner.
//
// Returns:
//   - Spinner: The started spinner.
func StartWaitSpinner(message string) Spinner {
	sp := newSpinner()
	sp.UpdateSuffix(" " + message)
	sp.Start()
	return sp
}
