package ntt

import (
	"math/big"

	apperrors "github.com/agbru/nttcalc/internal/errors"
)

// Shared small constants. These are never mutated.
var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// probablyPrimeRounds is the number of Miller-Rabin rounds used by the fast
// compositeness pre-check in IsPrime. The pre-check can only reject values
// that are definitely composite; every accepted candidate is still confirmed
// by trial division.
const probablyPrimeRounds = 20

// Sqrt returns floor(sqrt(x)) for a non-negative x.
// The root is built bit by bit from the most significant candidate position
// (BitLen(x)/2) downward: each bit is tentatively set and kept only if the
// squared candidate does not exceed x.
//
// Parameters:
//   - x: The radicand. Must be non-negative.
//
// Returns:
//   - *big.Int: The integer square root of x.
//   - error: A ValidationError if x is nil or negative.
func Sqrt(x *big.Int) (*big.Int, error) {
	if x == nil || x.Sign() < 0 {
		return nil, apperrors.NewValidationError("x", "value must be non-negative")
	}
	y := new(big.Int)
	tmp := new(big.Int)
	for i := x.BitLen() / 2; i >= 0; i-- {
		y.SetBit(y, i, 1)
		if tmp.Mul(y, y).Cmp(x) > 0 {
			y.SetBit(y, i, 0)
		}
	}
	return y, nil
}

// IsPrime reports whether n is prime.
// A probabilistic compositeness pre-check rejects most composites
// immediately; survivors are confirmed deterministically by trial division
// with odd divisors up to floor(sqrt(n)), so the final answer carries no
// probabilistic caveat.
//
// Parameters:
//   - n: The candidate. Must be at least 2.
//
// Returns:
//   - bool: true if n is prime.
//   - error: A ValidationError if n is nil or below 2.
func IsPrime(n *big.Int) (bool, error) {
	if n == nil || n.Cmp(bigTwo) < 0 {
		return false, apperrors.NewValidationError("n", "value must be at least 2")
	}
	// ProbablyPrime never rejects a prime, so a false here is definitive.
	if !n.ProbablyPrime(probablyPrimeRounds) {
		return false, nil
	}
	if n.Bit(0) == 0 {
		return n.Cmp(bigTwo) == 0, nil
	}
	end, err := Sqrt(n)
	if err != nil {
		return false, err
	}
	rem := new(big.Int)
	for i := big.NewInt(3); i.Cmp(end) <= 0; i.Add(i, bigTwo) {
		if rem.Mod(n, i).Sign() == 0 {
			return false, nil
		}
	}
	return true, nil
}

// UniquePrimeFactors returns the distinct primes dividing n in ascending
// order. Trial division runs from 2 upward; when a factor is found its full
// multiplicity is divided out and the division bound floor(sqrt(remaining))
// is recomputed, so the loop shrinks as factors are extracted. A remaining
// value above 1 at the end is itself prime and is appended.
//
// Parameters:
//   - n: The value to factor. Must be at least 1.
//
// Returns:
//   - []*big.Int: The ascending distinct prime factors of n (empty for n=1).
//   - error: A ValidationError if n is nil or below 1.
func UniquePrimeFactors(n *big.Int) ([]*big.Int, error) {
	if n == nil || n.Cmp(bigOne) < 0 {
		return nil, apperrors.NewValidationError("n", "value must be at least 1")
	}
	result := make([]*big.Int, 0)
	remaining := new(big.Int).Set(n)
	end, err := Sqrt(remaining)
	if err != nil {
		return nil, err
	}
	rem := new(big.Int)
	for i := big.NewInt(2); i.Cmp(end) <= 0; i.Add(i, bigOne) {
		if rem.Mod(remaining, i).Sign() != 0 {
			continue
		}
		result = append(result, new(big.Int).Set(i))
		for rem.Mod(remaining, i).Sign() == 0 {
			remaining.Quo(remaining, i)
		}
		// The bound shrinks with every extracted factor.
		if end, err = Sqrt(remaining); err != nil {
			return nil, err
		}
	}
	if remaining.Cmp(bigOne) > 0 {
		result = append(result, remaining)
	}
	return result, nil
}
