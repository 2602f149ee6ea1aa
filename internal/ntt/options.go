package ntt

// DefaultParallelThreshold is the vector length at which the convolution
// driver starts running the two forward transforms concurrently. Below this
// size the goroutine overhead outweighs the win.
const DefaultParallelThreshold = 512

// Options configures the convolution driver. The zero value requests a fully
// sequential, unbounded run.
type Options struct {
	// ParallelThreshold is the minimum vector length at which the two
	// independent forward transforms run on separate goroutines. Zero
	// disables parallelism entirely.
	ParallelThreshold int

	// ModulusSearchCap bounds the number of candidate primes the modulus
	// search may test before failing with a SearchLimitError. Zero means
	// unbounded, matching the theoretical guarantee (Dirichlet) that a
	// prime is eventually found.
	ModulusSearchCap uint64
}

// DefaultOptions returns the options used when the caller has no specific
// requirements.
//
// Returns:
//   - Options: Sequential-below-threshold, unbounded modulus search.
func DefaultOptions() Options {
	return Options{ParallelThreshold: DefaultParallelThreshold}
}
