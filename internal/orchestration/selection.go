package orchestration

import "github.com/agbru/nttcalc/internal/ntt"

// ConvolversToRun returns the convolution paths for a run. The transform
// pipeline always runs; verify mode adds the direct double-sum path so the
// outputs can be cross-checked.
//
// Parameters:
//   - verify: Whether to include the reference path for comparison.
//
// Returns:
//   - []ntt.Convolver: The instrumented convolution paths to execute.
func ConvolversToRun(verify bool) []ntt.Convolver {
	convolvers := []ntt.Convolver{ntt.NewConvolver(&ntt.NTTConvolver{})}
	if verify {
		convolvers = append(convolvers, ntt.NewConvolver(&ntt.ReferenceConvolver{}))
	}
	return convolvers
}
