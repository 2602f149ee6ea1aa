package app

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/nttcalc/internal/cli"
	apperrors "github.com/agbru/nttcalc/internal/errors"
	"github.com/agbru/nttcalc/internal/format"
	"github.com/agbru/nttcalc/internal/metrics"
	"github.com/agbru/nttcalc/internal/ntt"
	"github.com/agbru/nttcalc/internal/orchestration"
	"github.com/agbru/nttcalc/internal/ui"
)

// cliColors returns the color provider for error reporting.
func cliColors() apperrors.ColorProvider { return cli.CLIColorProvider{} }

// runConvolve orchestrates the execution of the convolution command,
// covering both single-path and verify modes.
func (a *Application) runConvolve(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	convolvers := a.selectConvolvers()

	var sp cli.Spinner
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(convolvers, out)
		sp = cli.StartWaitSpinner("convolving...")
	}

	memCollector := metrics.NewCollector()
	memBefore := memCollector.Snapshot()

	results := orchestration.ExecuteConvolutions(ctx, convolvers, a.Config.Vec0, a.Config.Vec1, a.Config.ToOptions())

	if sp != nil {
		sp.Stop()
	}
	if a.Config.Verbose {
		printMemoryUsage(memCollector, memBefore, out)
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		Hex:        a.Config.Hex,
	}

	// Quiet single-path runs skip the comparison report entirely.
	if a.Config.Quiet && len(results) == 1 {
		res := results[0]
		if res.Err != nil {
			return a.reportError(res.Err)
		}
		cli.DisplayVectorResult(out, res.Result, res.Duration, outputCfg)
		return a.saveResultIfNeeded(res, outputCfg, out)
	}

	presOpts := orchestration.PresentationOptions{
		Verbose: a.Config.Verbose,
		Hex:     a.Config.Hex,
	}
	presenter := cli.CLIResultPresenter{Output: outputCfg}
	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, out)

	if exitCode == apperrors.ExitSuccess {
		if best := findBestResult(results); best != nil {
			if code := a.saveResultIfNeeded(*best, outputCfg, out); code != apperrors.ExitSuccess {
				return code
			}
		}
	}
	return exitCode
}

// runMultiply computes an exact integer product through the convolution
// pipeline and reports it.
func (a *Application) runMultiply(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var sp cli.Spinner
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		sp = cli.StartWaitSpinner("multiplying...")
	}

	memCollector := metrics.NewCollector()
	memBefore := memCollector.Snapshot()

	start := time.Now()
	product, err := a.multiplyWithContext(ctx)
	elapsed := time.Since(start)

	if sp != nil {
		sp.Stop()
	}
	if a.Config.Verbose {
		printMemoryUsage(memCollector, memBefore, out)
	}

	if err != nil {
		return a.reportError(err)
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		Hex:        a.Config.Hex,
	}
	cli.DisplayProductResult(out, product, elapsed, outputCfg)

	return a.saveResultIfNeeded(orchestration.ConvolutionResult{
		Name:     "NTT multiply",
		Result:   []*big.Int{product},
		Duration: elapsed,
	}, outputCfg, out)
}

// multiplyWithContext runs ntt.Multiply on a worker goroutine so the run can
// be abandoned on timeout or interrupt. The worker itself is not preemptible.
func (a *Application) multiplyWithContext(ctx context.Context) (*big.Int, error) {
	type outcome struct {
		product *big.Int
		err     error
	}
	done := make(chan outcome, 1)
	go func() {
		product, err := ntt.Multiply(a.Config.X, a.Config.Y, a.Config.ToOptions())
		done <- outcome{product, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		return res.product, res.err
	}
}

// printMemoryUsage reports the heap growth and GC activity of the run.
func printMemoryUsage(collector *metrics.Collector, before metrics.Snapshot, out io.Writer) {
	after := collector.Snapshot()
	fmt.Fprintf(out, "Heap growth: %s, GC cycles: %d\n",
		format.FormatBytes(after.AllocDelta(before)), after.GCCycles-before.GCCycles)
}

// findBestResult returns the fastest successful run, or nil if none succeeded.
func findBestResult(results []orchestration.ConvolutionResult) *orchestration.ConvolutionResult {
	var bestResult *orchestration.ConvolutionResult
	for i := range results {
		if results[i].Err == nil {
			if bestResult == nil || results[i].Duration < bestResult.Duration {
				bestResult = &results[i]
			}
		}
	}
	return bestResult
}

// saveResultIfNeeded writes the result to the configured output file.
func (a *Application) saveResultIfNeeded(res orchestration.ConvolutionResult, cfg cli.OutputConfig, out io.Writer) int {
	if cfg.OutputFile == "" {
		return apperrors.ExitSuccess
	}
	if err := cli.WriteResultToFile(res.Result, res.Duration, res.Name, cfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s\n",
			ui.ColorSuccess(), cfg.OutputFile, ui.ColorReset())
	}
	return apperrors.ExitSuccess
}
