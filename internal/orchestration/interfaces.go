package orchestration

import (
	"io"
	"math/big"
	"time"
)

// ConvolutionResult encapsulates the outcome of a single convolution run.
// It serves as the shared domain type between orchestration and presentation layers.
type ConvolutionResult struct {
	// Name is the identifier of the convolution path (e.g., "NTT").
	Name string
	// Result is the computed output vector. It is nil if an error occurred.
	Result []*big.Int
	// Duration is the time taken to complete the convolution.
	Duration time.Duration
	// Err contains any error that occurred during the convolution.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Verbose bool
	Hex     bool
}

// ResultPresenter defines the interface for presenting convolution results.
// This interface decouples the orchestration layer from presentation concerns,
// allowing different output formats without modifying the orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []ConvolutionResult, out io.Writer)

	// PresentResult displays the final convolution result.
	PresentResult(result ConvolutionResult, opts PresentationOptions, out io.Writer)

	// HandleError handles a convolution error and returns an exit code.
	HandleError(err error, duration time.Duration, out io.Writer) int
}
