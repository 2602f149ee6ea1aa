package config

import (
	"runtime"

	"github.com/agbru/nttcalc/internal/ntt"
)

// Threshold resolution chain (highest priority first):
//   1. CLI flag (--threshold)
//   2. Environment variable (NTTCALC_THRESHOLD)
//   3. Adaptive hardware estimation (this file)

// ApplyAdaptiveThresholds fills in the parallel threshold from hardware
// characteristics when it is left at its zero default. A negative threshold
// is preserved and means parallelism is disabled.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.Threshold == 0 {
		cfg.Threshold = EstimateOptimalParallelThreshold()
	}
	return cfg
}

// EstimateOptimalParallelThreshold provides a heuristic estimate of the
// vector length above which the forward transforms are worth running
// concurrently, without running benchmarks.
func EstimateOptimalParallelThreshold() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU == 1:
		return -1 // No parallelism
	case numCPU <= 2:
		return 4 * ntt.DefaultParallelThreshold // Parallelism overhead is significant
	case numCPU <= 4:
		return 2 * ntt.DefaultParallelThreshold
	default:
		return ntt.DefaultParallelThreshold
	}
}

// ToOptions converts the configuration into convolution options.
// A negative threshold maps to zero, which disables the parallel path.
func (c AppConfig) ToOptions() ntt.Options {
	threshold := c.Threshold
	if threshold < 0 {
		threshold = 0
	}
	return ntt.Options{
		ParallelThreshold: threshold,
		ModulusSearchCap:  c.ModulusCap,
	}
}
