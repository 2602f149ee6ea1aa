package orchestration

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/nttcalc/internal/errors"
	"github.com/agbru/nttcalc/internal/ntt"
)

// ExecuteConvolutions orchestrates the concurrent execution of one or more
// convolution paths over the same input vectors.
//
// It manages the lifecycle of the worker goroutines and collects their
// results. Each path gets the full inputs; paths never observe each other's
// intermediate state because Convolve implementations do not mutate their
// arguments.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - convolvers: A slice of convolution paths to execute.
//   - vec0, vec1: The input vectors, equal length.
//   - opts: The convolution options shared by every path.
//
// Returns:
//   - []ConvolutionResult: A slice containing the result of each path, in
//     the order the convolvers were given.
func ExecuteConvolutions(ctx context.Context, convolvers []ntt.Convolver, vec0, vec1 []*big.Int, opts ntt.Options) []ConvolutionResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]ConvolutionResult, len(convolvers))

	for i, conv := range convolvers {
		idx, convolver := i, conv
		g.Go(func() error {
			startTime := time.Now()
			res, err := convolver.Convolve(ctx, vec0, vec1, opts)
			results[idx] = ConvolutionResult{
				Name: convolver.Name(), Result: res, Duration: time.Since(startTime), Err: err,
			}
			return nil
		})
	}

	g.Wait()
	return results
}

// AnalyzeComparisonResults processes the results from multiple convolution
// paths and generates a summary report.
//
// It sorts the results by execution time, validates consistency across
// successful runs, and displays a comparative table. An inconsistency
// between paths is treated as a critical failure.
//
// Parameters:
//   - results: The slice of convolution results to analyze.
//   - presOpts: The presentation options.
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []ConvolutionResult, presOpts PresentationOptions, presenter ResultPresenter, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *ConvolutionResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No convolution path could complete.\n")
		return presenter.HandleError(firstError, 0, out)
	}

	mismatch := false
	for _, res := range results {
		if res.Err == nil && !vectorsMatch(res.Result, firstValidResult.Result) {
			mismatch = true
			break
		}
	}
	if mismatch {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the convolution paths.\n")
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValidResult, presOpts, out)
	return apperrors.ExitSuccess
}

// vectorsMatch reports whether two output vectors are element-wise equal.
func vectorsMatch(a, b []*big.Int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}
