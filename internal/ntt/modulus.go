package ntt

import (
	"math/big"

	apperrors "github.com/agbru/nttcalc/internal/errors"
)

// FindModulus returns the smallest prime of the form k*n+1 with k >= 1 that
// is at least minimum. Such a prime always exceeds n, so n is invertible
// modulo it, and the multiplicative group order k*n is divisible by n, which
// are the two properties the transform needs.
//
// Dirichlet's theorem guarantees a prime exists in the progression, but
// gives no bound on how far away it is, so the search is unbounded. Callers
// needing bounded latency should use the capped search through
// Options.ModulusSearchCap on the convolution driver.
//
// Parameters:
//   - n: The transform length. Must be at least 1.
//   - minimum: The lower bound for the modulus. Must be at least 1.
//
// Returns:
//   - *big.Int: The smallest qualifying prime.
//   - error: A ValidationError for out-of-range arguments.
func FindModulus(n int, minimum *big.Int) (*big.Int, error) {
	return searchModulus(n, minimum, 0)
}

// searchModulus implements FindModulus with an optional iteration cap.
// A cap of 0 means unbounded. Each tested candidate counts as one iteration;
// exceeding a positive cap yields a SearchLimitError.
func searchModulus(n int, minimum *big.Int, cap uint64) (*big.Int, error) {
	if n < 1 {
		return nil, apperrors.NewValidationError("n", "transform length must be at least 1")
	}
	if minimum == nil || minimum.Cmp(bigOne) < 0 {
		return nil, apperrors.NewValidationError("minimum", "value must be at least 1")
	}
	veclen := big.NewInt(int64(n))

	// Start at k = max(1, ceil((minimum-1)/n)) so the first candidate k*n+1
	// is already >= minimum.
	k := new(big.Int).Add(minimum, big.NewInt(int64(n)-2))
	k.Quo(k, veclen)
	if k.Cmp(bigOne) < 0 {
		k.Set(bigOne)
	}

	mod := new(big.Int)
	var iterations uint64
	for {
		if cap > 0 && iterations >= cap {
			modulusSearchIterations.Observe(float64(iterations))
			return nil, apperrors.SearchLimitError{Iterations: cap}
		}
		iterations++
		mod.Mul(k, veclen)
		mod.Add(mod, bigOne)
		// mod = k*n+1 >= 2 here, so the IsPrime precondition always holds.
		prime, err := IsPrime(mod)
		if err != nil {
			return nil, err
		}
		if prime {
			modulusSearchIterations.Observe(float64(iterations))
			return new(big.Int).Set(mod), nil
		}
		k.Add(k, bigOne)
	}
}
